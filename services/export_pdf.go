package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateEstimatePDF creates the client-facing estimate document from a
// summary snapshot using maroto/v2. It returns the raw PDF bytes.
func GenerateEstimatePDF(data SummaryData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addEstimateHeader(m, data)

	if len(data.Rooms) > 0 {
		addSectionTitle(m, "Interior Rooms")
		addRoomTableHeader(m)
		for _, r := range data.Rooms {
			addRoomRow(m, r)
		}
	}

	if len(data.Sides) > 0 || data.HasExterior {
		addSectionTitle(m, "Exterior")
		for _, s := range data.Sides {
			addLabelPriceRow(m, s.Title, s.Price)
		}
		if data.HasExterior {
			addLabelPriceRow(m, "House body", data.HouseTotal)
			addLabelPriceRow(m, "Deck", data.DeckPrice)
			addLabelPriceRow(m, "Fence", data.FencePrice)
		}
	}

	if data.HasCabinet {
		addSectionTitle(m, "Cabinetry")
		addLabelPriceRow(m,
			fmt.Sprintf("%d doors, %d drawers", data.CabinetDoors, data.CabinetDrawers),
			data.CabinetTotal)
	}

	addEstimateSummary(m, data)
	addEstimateFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addEstimateHeader adds the title, client and date lines.
func addEstimateHeader(m core.Maroto, data SummaryData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Client: %s", data.ClientName), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

func addRoomTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(
				text.New("Room", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(5).Add(
				text.New("Included Work", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Room Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addRoomRow(m core.Maroto, r SummaryRoom) {
	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := baseText
	rightText.Align = align.Right

	detail := "None"
	if len(r.Included) > 0 {
		detail = strings.Join(r.Included, "\n")
	}

	// One line per included category keeps the row height proportional.
	height := float64(7 + 4*len(r.Included))

	m.AddRows(
		row.New(height).Add(
			col.New(4).Add(text.New(r.Name, baseText)),
			col.New(5).Add(text.New(detail, baseText)),
			col.New(3).Add(text.New(FormatUSD(r.Total), rightText)),
		),
	)
}

func addLabelPriceRow(m core.Maroto, label string, price float64) {
	baseText := props.Text{Size: 8, Align: align.Left}
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New(label, baseText)),
			col.New(3).Add(text.New(FormatUSD(price), rightText)),
		),
	)
}

// addEstimateSummary adds the category totals and the grand total band.
func addEstimateSummary(m core.Maroto, data SummaryData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addTotalRow := func(label string, amount float64) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(FormatUSD(amount), labelStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addTotalRow("Interior Total", data.Totals.Interior)
	addTotalRow("Exterior Total", data.Totals.Sides+data.Totals.Exterior)
	if data.HasCabinet {
		addTotalRow("Cabinetry Total", data.Totals.Cabinet)
	}
	addTotalRow("Grand Total", data.Totals.Grand)
}

func addEstimateFooter(m core.Maroto, data SummaryData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
