package services

import (
	"paintestimator/models"
)

// SummaryRoom is one room block of the summary report.
type SummaryRoom struct {
	Name     string
	Included []string // display-ordered included category labels
	Total    float64
	Images   [][]byte
}

// SummarySide is one exterior elevation line of the full estimate exports.
type SummarySide struct {
	Title string
	Price float64
}

// SummaryData holds everything the renderers need, detached from the live
// project. Build it once from a snapshot and feed it to every output
// format.
type SummaryData struct {
	Title       string
	ClientName  string
	CreatedDate string

	Rooms []SummaryRoom
	Sides []SummarySide

	HasCabinet     bool
	CabinetDoors   int
	CabinetDrawers int
	CabinetTotal   float64

	HasExterior bool
	HouseTotal  float64
	DeckPrice   float64
	FencePrice  float64

	Totals ProjectTotals
}

var roomCategoryLabels = []struct {
	label    string
	included func(*models.Room) bool
}{
	{"Walls included", func(r *models.Room) bool { return r.IncludeWalls }},
	{"Ceilings included", func(r *models.Room) bool { return r.IncludeCeilings }},
	{"Trim included", func(r *models.Room) bool { return r.IncludeTrim }},
	{"Doors included", func(r *models.Room) bool { return r.IncludeDoors }},
	{"Door casings included", func(r *models.Room) bool { return r.IncludeDoorCasing }},
	{"Windows included", func(r *models.Room) bool { return r.IncludeWindows }},
	{"Feature wall included", func(r *models.Room) bool { return r.IncludeFeatureWall }},
}

// BuildSummaryData flattens a project snapshot into renderer input.
func BuildSummaryData(p *models.Project) SummaryData {
	data := SummaryData{
		Title:       "Painting Estimate Summary",
		ClientName:  p.ClientName,
		CreatedDate: p.CreatedAt.Format("2006-01-02"),
		Totals:      CalcProjectTotals(p),
	}

	for i := range p.InteriorData {
		room := &p.InteriorData[i]
		name := room.Name
		if name == "" {
			name = "Unnamed Room"
		}

		var included []string
		for _, cat := range roomCategoryLabels {
			if cat.included(room) {
				included = append(included, cat.label)
			}
		}

		data.Rooms = append(data.Rooms, SummaryRoom{
			Name:     name,
			Included: included,
			Total:    room.InteriorTotal(),
			Images:   room.Images,
		})
	}

	for i := range p.ExteriorData {
		side := &p.ExteriorData[i]
		title := side.Title
		if title == "" {
			title = "Elevation"
		}
		data.Sides = append(data.Sides, SummarySide{
			Title: title,
			Price: side.TotalPrice,
		})
	}

	if p.CabinetData != nil {
		data.HasCabinet = true
		data.CabinetDoors = p.CabinetData.DoorCount
		data.CabinetDrawers = p.CabinetData.DrawerCount
		data.CabinetTotal = p.CabinetData.TotalPrice
	}

	if p.Exterior != nil {
		data.HasExterior = true
		data.HouseTotal = p.Exterior.HouseTotal
		data.DeckPrice = p.Exterior.DeckPrice
		data.FencePrice = p.Exterior.FencePrice
	}

	return data
}
