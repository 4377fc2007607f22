package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// GenerateEstimateExcel creates an Excel workbook from the given summary
// snapshot and returns the file contents as a byte slice.
func GenerateEstimateExcel(data SummaryData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Estimate"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references and widths.
	columns := []string{"A", "B", "C"}
	widths := []float64{32, 44, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#F0F0F0"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Content ─────────────────────────────────────────────────────────

	rowNum := 1
	setCell := func(col string, value any) {
		_ = f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, rowNum), value)
	}
	styleRow := func(style int) {
		first := fmt.Sprintf("A%d", rowNum)
		last := fmt.Sprintf("C%d", rowNum)
		_ = f.SetCellStyle(sheetName, first, last, style)
	}

	setCell("A", data.Title)
	styleRow(titleStyle)
	rowNum++

	setCell("A", fmt.Sprintf("Client: %s", data.ClientName))
	setCell("C", data.CreatedDate)
	styleRow(subtitleStyle)
	rowNum += 2

	if len(data.Rooms) > 0 {
		setCell("A", "Room")
		setCell("B", "Included Work")
		setCell("C", "Room Total")
		styleRow(headerStyle)
		rowNum++

		for _, r := range data.Rooms {
			setCell("A", r.Name)
			setCell("B", strings.Join(r.Included, ", "))
			setCell("C", FormatUSD(r.Total))
			rowNum++
		}
		rowNum++
	}

	if len(data.Sides) > 0 || data.HasExterior {
		setCell("A", "Exterior")
		setCell("C", "Price")
		styleRow(headerStyle)
		rowNum++

		for _, s := range data.Sides {
			setCell("A", s.Title)
			setCell("C", FormatUSD(s.Price))
			rowNum++
		}
		if data.HasExterior {
			setCell("A", "House body")
			setCell("C", FormatUSD(data.HouseTotal))
			rowNum++
			setCell("A", "Deck")
			setCell("C", FormatUSD(data.DeckPrice))
			rowNum++
			setCell("A", "Fence")
			setCell("C", FormatUSD(data.FencePrice))
			rowNum++
		}
		rowNum++
	}

	if data.HasCabinet {
		setCell("A", "Cabinetry")
		setCell("C", "Price")
		styleRow(headerStyle)
		rowNum++

		setCell("A", fmt.Sprintf("%d doors, %d drawers", data.CabinetDoors, data.CabinetDrawers))
		setCell("C", FormatUSD(data.CabinetTotal))
		rowNum += 2
	}

	setCell("A", "Interior Total")
	setCell("C", FormatUSD(data.Totals.Interior))
	styleRow(totalStyle)
	rowNum++

	setCell("A", "Exterior Total")
	setCell("C", FormatUSD(data.Totals.Sides+data.Totals.Exterior))
	styleRow(totalStyle)
	rowNum++

	if data.HasCabinet {
		setCell("A", "Cabinetry Total")
		setCell("C", FormatUSD(data.Totals.Cabinet))
		styleRow(totalStyle)
		rowNum++
	}

	setCell("A", "Grand Total")
	setCell("C", FormatUSD(data.Totals.Grand))
	styleRow(totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
