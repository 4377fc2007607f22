package services

import (
	"paintestimator/config"
	"paintestimator/models"
)

// The aggregator recomputes dependent totals after a structural edit. Each
// Recalc* rewrites every subtotal of its entity as a unit, never a subset,
// so a stored subtotal can never be stale relative to its siblings.
// Project-level totals are live sums and are never cached.

// RecalcRoom rewrites all seven category subtotals from the room's current
// measurements and inclusion flags. Excluded categories zero out.
func RecalcRoom(room *models.Room, rates config.Rates) {
	room.SubtotalWalls = 0
	room.SubtotalCeilings = 0
	room.SubtotalTrim = 0
	room.SubtotalDoors = 0
	room.SubtotalDoorCasings = 0
	room.SubtotalWindows = 0
	room.SubtotalFeatureWall = 0

	if room.IncludeWalls {
		room.SubtotalWalls = CalcWalls(room.Length, room.Width, room.Height, rates)
	}
	if room.IncludeCeilings {
		room.SubtotalCeilings = CalcCeilings(room.Length, room.Width, rates)
	}
	if room.IncludeTrim {
		room.SubtotalTrim = CalcTrim(room.Length, room.Width, rates)
	}
	if room.IncludeDoors {
		room.SubtotalDoors = CalcDoors(room.DoorCount, rates)
	}
	if room.IncludeDoorCasing {
		room.SubtotalDoorCasings = CalcDoorCasings(room.DoorCasingCount, rates)
	}
	if room.IncludeWindows {
		room.SubtotalWindows = CalcWindows(room.WindowCount, rates)
	}
	if room.IncludeFeatureWall {
		room.SubtotalFeatureWall = CalcFeatureWall(room.FeatureWallSqFt, rates)
	}
}

// RecalcSide reprices an elevation side from its raw string dimensions.
func RecalcSide(side *models.SideArea, rates config.Rates) {
	length := ParseDimension(side.Length)
	width := ParseDimension(side.Width)
	side.TotalPrice = CalcSide(length, width, side.IsBody, side.IsTrim, rates)
}

// RecalcCabinet reprices the cabinetry section.
func RecalcCabinet(cab *models.CabinetData, rates config.Rates) {
	cab.TotalPrice = CalcCabinet(cab.DoorCount, cab.DrawerCount, rates)
}

// RecalcExterior reprices the house, deck and fence figures as a unit.
func RecalcExterior(x *models.ExteriorExtras, rates config.Rates) {
	x.HouseTotal = CalcHouse(ParseDimension(x.HouseSqFt), rates)
	x.DeckPrice = CalcDeck(
		ParseDimension(x.DeckLength),
		ParseDimension(x.DeckWidth),
		x.SandingRequired,
		rates,
	)
	x.FencePrice = CalcFence(
		ParseDimension(x.FenceLength),
		ParseDimension(x.FenceHeight),
		x.IsTransparentStain,
		x.IsSolidStain,
		x.BothSides,
		rates,
	)
}

// RecalcProject reprices every entity in the project. Used after a rate
// table change or a bulk import; single-entity edits go through the
// entity-level Recalc funcs.
func RecalcProject(p *models.Project, rates config.Rates) {
	for i := range p.InteriorData {
		RecalcRoom(&p.InteriorData[i], rates)
	}
	for i := range p.ExteriorData {
		RecalcSide(&p.ExteriorData[i], rates)
	}
	if p.CabinetData != nil {
		RecalcCabinet(p.CabinetData, rates)
	}
	if p.Exterior != nil {
		RecalcExterior(p.Exterior, rates)
	}
}

// ProjectTotals holds the per-category roll-up for one project.
type ProjectTotals struct {
	Interior float64
	Sides    float64
	Cabinet  float64
	Exterior float64
	Grand    float64
}

// CalcProjectTotals sums every category present in the project. Absent
// categories contribute 0; summation order does not matter.
func CalcProjectTotals(p *models.Project) ProjectTotals {
	var totals ProjectTotals
	for i := range p.InteriorData {
		totals.Interior += p.InteriorData[i].InteriorTotal()
	}
	for i := range p.ExteriorData {
		totals.Sides += p.ExteriorData[i].TotalPrice
	}
	if p.CabinetData != nil {
		totals.Cabinet = p.CabinetData.TotalPrice
	}
	if p.Exterior != nil {
		totals.Exterior = p.Exterior.Total()
	}
	totals.Grand = totals.Interior + totals.Sides + totals.Cabinet + totals.Exterior
	return totals
}
