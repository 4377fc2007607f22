package services

import (
	"math/rand"
	"testing"

	"paintestimator/config"
	"paintestimator/models"
)

func TestRecalcRoom_ReferenceScenario(t *testing.T) {
	rates := config.DefaultRates()

	room := models.Room{
		Length:          10,
		Width:           10,
		Height:          8,
		IncludeWalls:    true,
		IncludeCeilings: true,
	}
	RecalcRoom(&room, rates)

	if !almostEqual(room.SubtotalWalls, 294.40) {
		t.Errorf("SubtotalWalls = %v, want 294.40", room.SubtotalWalls)
	}
	if !almostEqual(room.SubtotalCeilings, 92.00) {
		t.Errorf("SubtotalCeilings = %v, want 92.00", room.SubtotalCeilings)
	}
	if !almostEqual(room.InteriorTotal(), 386.40) {
		t.Errorf("InteriorTotal = %v, want 386.40", room.InteriorTotal())
	}
}

func TestRecalcRoom_ExcludedCategoriesZeroOut(t *testing.T) {
	rates := config.DefaultRates()

	room := models.Room{
		Length:       10,
		Width:        10,
		Height:       8,
		IncludeWalls: true,
		IncludeDoors: true,
		DoorCount:    2,
	}
	RecalcRoom(&room, rates)

	if room.SubtotalDoors != 200 {
		t.Fatalf("SubtotalDoors = %v, want 200", room.SubtotalDoors)
	}

	// Flipping doors off must zero the door subtotal on the next pass,
	// not leave the old value behind.
	room.IncludeDoors = false
	RecalcRoom(&room, rates)

	if room.SubtotalDoors != 0 {
		t.Errorf("SubtotalDoors after exclusion = %v, want 0", room.SubtotalDoors)
	}
	if !almostEqual(room.InteriorTotal(), room.SubtotalWalls) {
		t.Errorf("InteriorTotal = %v, want walls only %v",
			room.InteriorTotal(), room.SubtotalWalls)
	}
}

func TestRecalcRoom_TotalAlwaysMatchesSubtotals(t *testing.T) {
	rates := config.DefaultRates()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		room := models.Room{
			Length:             rng.Float64() * 40,
			Width:              rng.Float64() * 40,
			Height:             rng.Float64() * 12,
			IncludeWalls:       rng.Intn(2) == 0,
			IncludeCeilings:    rng.Intn(2) == 0,
			IncludeTrim:        rng.Intn(2) == 0,
			IncludeDoors:       rng.Intn(2) == 0,
			IncludeDoorCasing:  rng.Intn(2) == 0,
			IncludeWindows:     rng.Intn(2) == 0,
			IncludeFeatureWall: rng.Intn(2) == 0,
			DoorCount:          rng.Intn(6),
			DoorCasingCount:    rng.Intn(6),
			WindowCount:        rng.Intn(8),
			FeatureWallSqFt:    rng.Float64() * 200,
		}
		RecalcRoom(&room, rates)

		sum := room.SubtotalWalls + room.SubtotalCeilings + room.SubtotalTrim +
			room.SubtotalDoors + room.SubtotalDoorCasings + room.SubtotalWindows +
			room.SubtotalFeatureWall
		if !almostEqual(room.InteriorTotal(), sum) {
			t.Fatalf("iteration %d: InteriorTotal %v != subtotal sum %v",
				i, room.InteriorTotal(), sum)
		}
	}
}

func TestRecalcSide_ParsesRawStrings(t *testing.T) {
	rates := config.DefaultRates()

	tests := []struct {
		name   string
		side   models.SideArea
		expect float64
	}{
		{
			name:   "body and trim",
			side:   models.SideArea{Length: "30", Width: "12", IsBody: true, IsTrim: true},
			expect: 30*12*1.13 + 30*19.72,
		},
		{
			name:   "unparsable width prices body at zero",
			side:   models.SideArea{Length: "30", Width: "wide", IsBody: true},
			expect: 0,
		},
		{
			name:   "empty strings",
			side:   models.SideArea{IsBody: true, IsTrim: true},
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecalcSide(&tt.side, rates)
			if !almostEqual(tt.side.TotalPrice, tt.expect) {
				t.Errorf("TotalPrice = %v, want %v", tt.side.TotalPrice, tt.expect)
			}
		})
	}
}

func TestRecalcExterior(t *testing.T) {
	rates := config.DefaultRates()

	extras := models.ExteriorExtras{
		HouseSqFt:          "2000",
		DeckLength:         "20",
		DeckWidth:          "10",
		SandingRequired:    true,
		FenceLength:        "50",
		FenceHeight:        "6",
		IsTransparentStain: true,
		BothSides:          true,
	}
	RecalcExterior(&extras, rates)

	if !almostEqual(extras.HouseTotal, 4600) {
		t.Errorf("HouseTotal = %v, want 4600", extras.HouseTotal)
	}
	if !almostEqual(extras.DeckPrice, 900) {
		t.Errorf("DeckPrice = %v, want 900", extras.DeckPrice)
	}
	if !almostEqual(extras.FencePrice, 1500) {
		t.Errorf("FencePrice = %v, want 1500", extras.FencePrice)
	}
	if !almostEqual(extras.Total(), 7000) {
		t.Errorf("Total = %v, want 7000", extras.Total())
	}
}

func TestCalcProjectTotals_AbsentCategoriesContributeZero(t *testing.T) {
	p := &models.Project{}

	totals := CalcProjectTotals(p)
	if totals.Grand != 0 {
		t.Errorf("empty project grand total = %v, want 0", totals.Grand)
	}
}

func TestCalcProjectTotals_OrderIndependent(t *testing.T) {
	rates := config.DefaultRates()

	p := &models.Project{
		CabinetData: &models.CabinetData{DoorCount: 20, DrawerCount: 5},
	}
	RecalcCabinet(p.CabinetData, rates)

	for i := 0; i < 5; i++ {
		room := models.Room{
			Name:            "Room",
			Length:          float64(8 + i),
			Width:           float64(9 + i),
			Height:          8,
			IncludeWalls:    true,
			IncludeCeilings: i%2 == 0,
		}
		RecalcRoom(&room, rates)
		p.InteriorData = append(p.InteriorData, room)

		side := models.SideArea{Length: "20", Width: "10", IsBody: true, IsTrim: i%2 == 1}
		RecalcSide(&side, rates)
		p.ExteriorData = append(p.ExteriorData, side)
	}

	want := CalcProjectTotals(p).Grand

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		rng.Shuffle(len(p.InteriorData), func(i, j int) {
			p.InteriorData[i], p.InteriorData[j] = p.InteriorData[j], p.InteriorData[i]
		})
		rng.Shuffle(len(p.ExteriorData), func(i, j int) {
			p.ExteriorData[i], p.ExteriorData[j] = p.ExteriorData[j], p.ExteriorData[i]
		})

		if got := CalcProjectTotals(p).Grand; !almostEqual(got, want) {
			t.Fatalf("trial %d: grand total %v after shuffle, want %v", trial, got, want)
		}
	}
}

func TestCalcProjectTotals_MatchesGrandTotal(t *testing.T) {
	rates := config.DefaultRates()

	room := models.Room{Length: 10, Width: 10, Height: 8, IncludeWalls: true}
	RecalcRoom(&room, rates)

	p := &models.Project{
		InteriorData: []models.Room{room},
		CabinetData:  &models.CabinetData{DoorCount: 20, DrawerCount: 5},
		Exterior:     &models.ExteriorExtras{HouseSqFt: "1000"},
	}
	RecalcCabinet(p.CabinetData, rates)
	RecalcExterior(p.Exterior, rates)

	totals := CalcProjectTotals(p)
	if !almostEqual(totals.Grand, p.GrandTotal()) {
		t.Errorf("CalcProjectTotals Grand %v != Project.GrandTotal %v",
			totals.Grand, p.GrandTotal())
	}
}
