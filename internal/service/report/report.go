package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"decor-golang/internal/service/revalidate"
	"decor-golang/internal/storage"
)

const (
	resultsSheet = "Decorations"
	summarySheet = "Summary"
)

var headers = []string{"Line item", "Order", "Product", "Technique", "Placement", "Status", "Errors"}

type Revalidator interface {
	Revalidate(ctx context.Context, filter storage.LineItemFilter) (*revalidate.Report, error)
}

type ExcelService struct {
	revalidator Revalidator
}

func NewExcelService(revalidator Revalidator) *ExcelService {
	return &ExcelService{revalidator: revalidator}
}

// GenerateExcel revalidates the stored decorations matching filter and renders
// the outcome as an xlsx workbook.
func (s *ExcelService) GenerateExcel(ctx context.Context, filter storage.LineItemFilter) ([]byte, error) {
	const op = "service.report.GenerateExcel"

	rep, err := s.revalidator.Revalidate(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b, err := Render(rep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

// Render writes one row per line item plus a summary sheet.
func Render(rep *revalidate.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	invalidStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "C00000"},
	})
	if err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	for i, name := range headers {
		f.SetCellValue(resultsSheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(resultsSheet, "A1", cellName(len(headers), 1), headerStyle)

	for i, item := range rep.Items {
		row := i + 2
		technique, placement := "", ""
		if item.Result.Data != nil {
			technique = string(item.Result.Data.Technique)
			placement = item.Result.Data.Placement
		}

		f.SetCellValue(resultsSheet, cellName(1, row), item.LineItemID)
		f.SetCellValue(resultsSheet, cellName(2, row), item.OrderID)
		f.SetCellValue(resultsSheet, cellName(3, row), item.ProductName)
		f.SetCellValue(resultsSheet, cellName(4, row), technique)
		f.SetCellValue(resultsSheet, cellName(5, row), placement)

		if item.Result.IsValid {
			f.SetCellValue(resultsSheet, cellName(6, row), "valid")
			continue
		}
		f.SetCellValue(resultsSheet, cellName(6, row), "invalid")
		f.SetCellValue(resultsSheet, cellName(7, row), errorLines(item))
		f.SetCellStyle(resultsSheet, cellName(6, row), cellName(6, row), invalidStyle)
	}

	f.SetPanes(resultsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(resultsSheet, "A", "F", 18)
	f.SetColWidth(resultsSheet, "G", "G", 60)

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	summary := [][2]any{
		{"Company", rep.CompanyID},
		{"Order", rep.OrderID},
		{"Total", rep.Total},
		{"Valid", rep.Valid},
		{"Invalid", rep.Invalid},
	}
	for i, kv := range summary {
		f.SetCellValue(summarySheet, cellName(1, i+1), kv[0])
		f.SetCellValue(summarySheet, cellName(2, i+1), kv[1])
	}
	f.SetCellStyle(summarySheet, "A1", cellName(1, len(summary)), headerStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// errorLines renders the error tree as "path: message" lines, root first.
func errorLines(item revalidate.ItemResult) string {
	flat := item.Result.Errors.Flatten()
	var lines []string
	for _, path := range item.Result.Errors.Paths() {
		label := path
		if label == "" {
			label = "(root)"
		}
		for _, msg := range flat[path] {
			lines = append(lines, label+": "+msg)
		}
	}
	return strings.Join(lines, "\n")
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
