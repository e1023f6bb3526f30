package reporting

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/quantlab/lsi-dca-backtest/internal/backtest"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// excelStyles holds the workbook styles
type excelStyles struct {
	header  int
	percent int
	count   int
}

// WriteResultsXLSX writes the comparison rows to a styled workbook
func (r *DefaultExcelReporter) WriteResultsXLSX(rows []backtest.ReportRow, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Results"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	styles, err := r.createStyles(fx)
	if err != nil {
		return err
	}

	headers := []string{"Duration (Years)", "LSI Wins", "DCA Wins", "Avg LSI Annualized Return", "Avg DCA Annualized Return", "LSI Win Ratio"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		fx.SetCellValue(sheet, cell, header)
		fx.SetCellStyle(sheet, cell, cell, styles.header)
	}

	for i, row := range rows {
		rowNum := i + 2
		r.setCell(fx, sheet, 1, rowNum, row.Years, styles.count)
		r.setCell(fx, sheet, 2, rowNum, row.LSIWins, styles.count)
		r.setCell(fx, sheet, 3, rowNum, row.DCAWins, styles.count)
		r.setPercentCell(fx, sheet, 4, rowNum, row.AvgLSIAnnualized, styles)
		r.setPercentCell(fx, sheet, 5, rowNum, row.AvgDCAAnnualized, styles)
		r.setPercentCell(fx, sheet, 6, rowNum, row.LSIWinRatio, styles)
	}

	fx.SetColWidth(sheet, "A", "F", 24)

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) setCell(fx *excelize.File, sheet string, col, row int, value interface{}, style int) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	fx.SetCellValue(sheet, cell, value)
	fx.SetCellStyle(sheet, cell, cell, style)
}

func (r *DefaultExcelReporter) setPercentCell(fx *excelize.File, sheet string, col, row int, value float64, styles excelStyles) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	if math.IsNaN(value) {
		fx.SetCellValue(sheet, cell, "n/a")
		fx.SetCellStyle(sheet, cell, cell, styles.count)
		return
	}
	fx.SetCellValue(sheet, cell, value)
	fx.SetCellStyle(sheet, cell, cell, styles.percent)
}

// createStyles creates the workbook styles
func (r *DefaultExcelReporter) createStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	percentFormat := "0.00%"
	styles.percent, err = fx.NewStyle(&excelize.Style{
		CustomNumFmt: &percentFormat,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.count, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	return styles, err
}
