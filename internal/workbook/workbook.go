package workbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"inquirykit/internal/benchmark"
	"inquirykit/internal/catalog"
)

const (
	navy     = "2C3E6B"
	paleBlue = "EEF2F9"
	white    = "FFFFFF"
)

// Build produces the offline reference workbook: one checklist tab per
// phase plus a tab with the historical benchmark table.
func Build(now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: white, Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{navy}},
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	altStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{paleBlue}},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: navy},
	})
	if err != nil {
		return nil, err
	}

	styles := sheetStyles{header: headerStyle, body: bodyStyle, alt: altStyle, title: titleStyle}

	for _, phase := range catalog.Phases() {
		if err := addPhaseSheet(f, phase, styles); err != nil {
			return nil, err
		}
	}

	if err := addBenchmarkSheet(f, now, styles); err != nil {
		return nil, err
	}

	// The default sheet is replaced by the first phase tab.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

type sheetStyles struct {
	header int
	body   int
	alt    int
	title  int
}

func addPhaseSheet(f *excelize.File, phase catalog.Phase, styles sheetStyles) error {
	sheet := phase.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	tab := strings.TrimPrefix(phase.Color, "#")
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{TabColorRGB: &tab}); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", phase.Name); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
		return err
	}

	headers := []string{"#", "Action Item", "Description / Guidance", "Priority", "Responsible Role", "Status", "Target Date", "Notes"}
	widths := []float64{5, 35, 55, 10, 20, 14, 14, 30}
	const headerRow = 2

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	endCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", endCol, headerRow), styles.header); err != nil {
		return err
	}

	for i, q := range phase.Questions {
		row := headerRow + 1 + i
		values := []interface{}{i + 1, q.Text, q.Guidance, catalog.RiskLabel[q.Risk], q.Category, "Not Started", "", ""}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		style := styles.body
		if i%2 == 1 {
			style = styles.alt
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", endCol, row), style); err != nil {
			return err
		}
	}

	lastRow := headerRow + len(phase.Questions)

	statusDV := excelize.NewDataValidation(true)
	statusDV.Sqref = fmt.Sprintf("F%d:F%d", headerRow+1, lastRow)
	if err := statusDV.SetDropList([]string{"Not Started", "In Progress", "Complete", "N/A"}); err != nil {
		return err
	}
	if err := f.AddDataValidation(sheet, statusDV); err != nil {
		return err
	}

	if err := f.AutoFilter(sheet, fmt.Sprintf("A%d:%s%d", headerRow, endCol, lastRow), nil); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	})
}

func addBenchmarkSheet(f *excelize.File, now time.Time, styles sheetStyles) error {
	const sheet = "Benchmarks"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Historical Inquiry Benchmarks"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styles.title); err != nil {
		return err
	}

	headers := []string{"Inquiry", "Year", "Type", "Subject", "Status", "Duration", "Cost (£m)", "Scale"}
	widths := []float64{45, 14, 22, 18, 12, 12, 10, 12}
	const headerRow = 2

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return err
		}
	}
	endCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", endCol, headerRow), styles.header); err != nil {
		return err
	}

	cases := benchmark.Cases(now)
	for i, cs := range cases {
		row := headerRow + 1 + i

		cost := interface{}("")
		if cs.Cost != nil {
			cost = *cs.Cost
		}
		duration := cs.Duration
		if duration == "" {
			duration = "—"
		}

		values := []interface{}{cs.Name, cs.Year, cs.Type, cs.Subject, cs.Status, duration, cost, string(cs.Scale)}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		style := styles.body
		if i%2 == 1 {
			style = styles.alt
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", endCol, row), style); err != nil {
			return err
		}
	}

	lastRow := headerRow + len(cases)
	if err := f.AutoFilter(sheet, fmt.Sprintf("A%d:%s%d", headerRow, endCol, lastRow), nil); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", headerRow+1),
		ActivePane:  "bottomLeft",
	})
}
