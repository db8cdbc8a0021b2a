package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dutchbot/budget-cli/internal/domain/entity"
	"github.com/dutchbot/budget-cli/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX report.
const (
	SheetByDate       = "Retailer Expenditure by date"
	SheetAccumulative = "Retailer Accumulative"
	SheetByMonth      = "Retailer cost by month"
)

// euroFormat renders currency cells with two decimals and a euro symbol.
const euroFormat = "€#,##0.00"

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToXLSX writes the three report sheets into a workbook named
// <filename>.xlsx. The by-date sheet spans each date over the rows of its
// layout bounds; the month sheet carries a line chart of the monthly totals.
func (r *ExportRepositoryImpl) ExportToXLSX(report *entity.BudgetReport, filename, outputDir string) (string, error) {
	outputFilename, err := resolveFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	currencyFormat := euroFormat
	currencyStyle, err := workbook.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return "", fmt.Errorf("error creating currency style: %w", err)
	}

	if err := workbook.SetSheetName("Sheet1", SheetByDate); err != nil {
		return "", fmt.Errorf("error naming sheet: %w", err)
	}
	if err := writeByDateSheet(workbook, report.Layout, currencyStyle); err != nil {
		return "", err
	}

	if _, err := workbook.NewSheet(SheetAccumulative); err != nil {
		return "", fmt.Errorf("error creating sheet '%s': %w", SheetAccumulative, err)
	}
	if err := writeTotalsSheet(workbook, SheetAccumulative, report.RetailerTotals, currencyStyle); err != nil {
		return "", err
	}

	if _, err := workbook.NewSheet(SheetByMonth); err != nil {
		return "", fmt.Errorf("error creating sheet '%s': %w", SheetByMonth, err)
	}
	if err := writeTotalsSheet(workbook, SheetByMonth, report.MonthTotals, currencyStyle); err != nil {
		return "", err
	}
	if err := addMonthChart(workbook, report.MonthTotals.Len()); err != nil {
		return "", err
	}

	if err := workbook.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// writeByDateSheet writes the date once at the first row of its bounds and a
// retailer/amount pair on every row the date spans.
func writeByDateSheet(workbook *excelize.File, layout entity.ReportLayout, currencyStyle int) error {
	dateValues := make([]string, 0, len(layout.Dates))
	retailerValues := make([]string, 0, len(layout.Rows))
	amountValues := make([]string, 0, len(layout.Rows))

	for _, date := range layout.Dates {
		bounds := layout.Bounds[date]
		rendered := renderDate(date)
		dateValues = append(dateValues, rendered)

		if err := workbook.SetCellValue(SheetByDate, fmt.Sprintf("A%d", bounds.Start+1), rendered); err != nil {
			return fmt.Errorf("error writing date cell: %w", err)
		}

		for i := bounds.Start; i < bounds.End; i++ {
			row := layout.Rows[i]
			retailerValues = append(retailerValues, row.Retailer)
			amountValues = append(amountValues, "€"+row.Amount.StringFixed(2))

			if err := workbook.SetCellValue(SheetByDate, fmt.Sprintf("B%d", i+1), row.Retailer); err != nil {
				return fmt.Errorf("error writing retailer cell: %w", err)
			}
			// Cell values are rendering-only; aggregation is done in decimals.
			if err := workbook.SetCellValue(SheetByDate, fmt.Sprintf("C%d", i+1), row.Amount.InexactFloat64()); err != nil {
				return fmt.Errorf("error writing amount cell: %w", err)
			}
		}
	}

	if len(layout.Rows) > 0 {
		if err := workbook.SetCellStyle(SheetByDate, "C1", fmt.Sprintf("C%d", len(layout.Rows)), currencyStyle); err != nil {
			return fmt.Errorf("error applying currency style: %w", err)
		}
	}

	return applyColumnWidths(workbook, SheetByDate, [][]string{dateValues, retailerValues, amountValues})
}

// writeTotalsSheet writes one key/amount row per entry, in insertion order.
func writeTotalsSheet(workbook *excelize.File, sheet string, totals *entity.OrderedTotals, currencyStyle int) error {
	keyValues := []string{}
	amountValues := []string{}

	for i, entry := range totals.Entries() {
		keyValues = append(keyValues, entry.Key)
		amountValues = append(amountValues, "€"+entry.Total.StringFixed(2))

		if err := workbook.SetCellValue(sheet, fmt.Sprintf("A%d", i+1), entry.Key); err != nil {
			return fmt.Errorf("error writing key cell: %w", err)
		}
		if err := workbook.SetCellValue(sheet, fmt.Sprintf("B%d", i+1), entry.Total.InexactFloat64()); err != nil {
			return fmt.Errorf("error writing amount cell: %w", err)
		}
	}

	if totals.Len() > 0 {
		if err := workbook.SetCellStyle(sheet, "B1", fmt.Sprintf("B%d", totals.Len()), currencyStyle); err != nil {
			return fmt.Errorf("error applying currency style: %w", err)
		}
	}

	return applyColumnWidths(workbook, sheet, [][]string{keyValues, amountValues})
}

// addMonthChart attaches a line chart over the month sheet's totals column.
func addMonthChart(workbook *excelize.File, months int) error {
	if months == 0 {
		return nil
	}

	chart := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       "Monthly total",
				Categories: fmt.Sprintf("'%s'!$A$1:$A$%d", SheetByMonth, months),
				Values:     fmt.Sprintf("'%s'!$B$1:$B$%d", SheetByMonth, months),
			},
		},
		Title:  []excelize.RichTextRun{{Text: SheetByMonth}},
		Legend: excelize.ChartLegend{Position: "bottom"},
	}

	if err := workbook.AddChart(SheetByMonth, "D2", chart); err != nil {
		return fmt.Errorf("error adding month chart: %w", err)
	}
	return nil
}

// applyColumnWidths sizes columns A.. by the longest rendered value plus one.
func applyColumnWidths(workbook *excelize.File, sheet string, columns [][]string) error {
	for i, values := range columns {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("error resolving column name: %w", err)
		}
		width := float64(entity.ColumnWidth(values))
		if err := workbook.SetColWidth(sheet, column, column, width); err != nil {
			return fmt.Errorf("error sizing column %s: %w", column, err)
		}
	}
	return nil
}

// ExportToCSV writes the filtered transaction detail: one row per ledger
// record in layout order.
func (r *ExportRepositoryImpl) ExportToCSV(report *entity.BudgetReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Date", "Retailer", "Amount"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, date := range report.Layout.Dates {
		bounds := report.Layout.Bounds[date]
		for i := bounds.Start; i < bounds.End; i++ {
			row := report.Layout.Rows[i]
			record := []string{renderDate(date), row.Retailer, row.Amount.StringFixed(2)}
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
		}
	}

	return filepath.Abs(outputFilename)
}

// reportDocument is the JSON shape of a full report.
type reportDocument struct {
	ByDate         []dateSection       `json:"by_date"`
	RetailerTotals []entity.TotalEntry `json:"retailer_totals"`
	MonthTotals    []entity.TotalEntry `json:"month_totals"`
	GrandTotal     string              `json:"grand_total"`
}

type dateSection struct {
	Date string             `json:"date"`
	Rows []entity.ReportRow `json:"rows"`
}

func (r *ExportRepositoryImpl) ExportToJSON(report *entity.BudgetReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	document := reportDocument{
		RetailerTotals: report.RetailerTotals.Entries(),
		MonthTotals:    report.MonthTotals.Entries(),
		GrandTotal:     report.GrandTotal().StringFixed(2),
	}
	for _, date := range report.Layout.Dates {
		bounds := report.Layout.Bounds[date]
		document.ByDate = append(document.ByDate, dateSection{
			Date: renderDate(date),
			Rows: report.Layout.Rows[bounds.Start:bounds.End],
		})
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF writes a one-page summary of the aggregate views.
func (r *ExportRepositoryImpl) ExportToPDF(report *entity.BudgetReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	pdf.AddPage()

	// Header
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Budget Analysis"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Grand total: €%s", report.GrandTotal().StringFixed(2))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	var retailers strings.Builder
	for _, entry := range report.RetailerTotals.Entries() {
		retailers.WriteString(fmt.Sprintf("%s: €%s\n", entry.Key, entry.Total.StringFixed(2)))
	}
	drawSection("Retailer Accumulative", retailers.String())

	var months strings.Builder
	for _, entry := range report.MonthTotals.Entries() {
		months.WriteString(fmt.Sprintf("%s: €%s\n", entry.Key, entry.Total.StringFixed(2)))
	}
	drawSection("Retailer cost by month", months.String())

	if len(report.Layout.Rows) > 0 {
		var detail strings.Builder
		limit := len(report.Layout.Dates)
		if limit > 30 {
			limit = 30
		}
		for _, date := range report.Layout.Dates[:limit] {
			bounds := report.Layout.Bounds[date]
			for i := bounds.Start; i < bounds.End; i++ {
				row := report.Layout.Rows[i]
				detail.WriteString(fmt.Sprintf("%s | %s: €%s\n", renderDate(date), row.Retailer, row.Amount.StringFixed(2)))
			}
		}
		if len(report.Layout.Dates) > limit {
			detail.WriteString(fmt.Sprintf("... (+%d more dates)\n", len(report.Layout.Dates)-limit))
		}
		drawSection("Retailer Expenditure by date", detail.String())
	}

	// Footer
	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by budget-cli | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// resolveFilename builds a stable <base>.<ext> path; the XLSX report keeps a
// predictable name so repeated runs overwrite the previous analysis.
func resolveFilename(base, dir, ext string) (string, error) {
	dir, err := ensureOutputDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, ext)), nil
}

// generateFilename cria um nome de arquivo único com timestamp.
func generateFilename(base, dir, ext string) (string, error) {
	dir, err := ensureOutputDir(dir)
	if err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", base, timestamp, ext)), nil
}

func ensureOutputDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	return dir, nil
}

// renderDate converts a YYYYMMDD ledger date to dd-mm-yyyy. Dates reach the
// exporters already validated; an unparseable value is passed through as-is.
func renderDate(date string) string {
	parsed, err := time.Parse(entity.InputDateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format(entity.OutputDateFormat)
}
