package usecase

import (
	"context"
	"fmt"

	"github.com/dutchbot/budget-cli/internal/domain/entity"
	"github.com/dutchbot/budget-cli/internal/domain/repository"
	"github.com/dutchbot/budget-cli/internal/shared/types"
)

// ReportUseCase turns a transaction ledger into the budget report views and
// hands them to the export repository.
type ReportUseCase struct {
	ledgerRepo repository.LedgerRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	ledgerRepo repository.LedgerRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		ledgerRepo: ledgerRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// ResolveRetailers returns the target retailer list: the --retailers flags
// when given, otherwise the names read from the retailers file. An empty
// result is valid and produces a report with no matched transactions.
func (uc *ReportUseCase) ResolveRetailers(args *types.CLIArgs) ([]string, error) {
	if len(args.Retailers) > 0 {
		return args.Retailers, nil
	}
	if args.RetailersFile != "" {
		return uc.ledgerRepo.ReadRetailerNames(args.RetailersFile)
	}
	return nil, nil
}

// BuildReport filters the ledger and runs the three aggregations. Any
// malformed amount or date aborts with the row-carrying error; no report is
// produced in that case.
func (uc *ReportUseCase) BuildReport(targets []string, transactions []entity.Transaction) (*entity.BudgetReport, error) {
	filtered := FilterTransactions(targets, transactions)

	layout, err := BuildLayout(filtered)
	if err != nil {
		return nil, err
	}
	retailerTotals, err := AccumulateByRetailer(filtered)
	if err != nil {
		return nil, err
	}
	monthTotals, err := AccumulateByMonth(filtered)
	if err != nil {
		return nil, err
	}

	return &entity.BudgetReport{
		Layout:         layout,
		RetailerTotals: retailerTotals,
		MonthTotals:    monthTotals,
	}, nil
}

// RunReport executa o fluxo principal: ler, filtrar, agregar, exibir, exportar.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		applyConfig(args, config)
	}

	status := uc.console.Status(fmt.Sprintf("Reading ledger %s...", args.InputFilePath))

	transactions, err := uc.ledgerRepo.ReadTransactions(args.InputFilePath)
	if err != nil {
		status.Stop()
		return err
	}

	targets, err := uc.ResolveRetailers(args)
	if err != nil {
		status.Stop()
		return err
	}

	if args.OldestFirst {
		reverseTransactions(transactions)
	}

	status.Update("Aggregating transactions...")

	report, err := uc.BuildReport(targets, transactions)
	if err != nil {
		status.Stop()
		return err
	}

	status.Stop()

	if len(targets) == 0 {
		uc.console.LogWarning("No retailers specified; the report contains no matched transactions")
	}

	uc.displaySummary(report)

	return uc.exportReport(report, args)
}

// displaySummary prints the retailer totals table and the monthly bar panel.
func (uc *ReportUseCase) displaySummary(report *entity.BudgetReport) {
	table := uc.console.CreateTable()
	table.AddColumn("Retailer")
	table.AddColumn("Total")

	for _, entry := range report.RetailerTotals.Entries() {
		table.AddRow(entry.Key, fmt.Sprintf("€%s", entry.Total.StringFixed(2)))
	}
	table.AddRow("All retailers", fmt.Sprintf("€%s", report.GrandTotal().StringFixed(2)))

	uc.console.Print(table.Render())
	uc.console.DisplayMonthlyBars(monthlyTotals(report.MonthTotals))
}

// exportReport writes one report file per requested type.
func (uc *ReportUseCase) exportReport(report *entity.BudgetReport, args *types.CLIArgs) error {
	progress := uc.console.ProgressWithTotal(len(args.ReportType))
	defer progress.Stop()

	for _, reportType := range args.ReportType {
		switch reportType {
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportToXLSX(report, args.ReportName, args.Dir)
			if err != nil {
				return fmt.Errorf("failed to export to XLSX: %w", err)
			}
			uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (valid: xlsx, csv, json, pdf)", reportType)
		}
		progress.Increment()
	}

	return nil
}

// applyConfig fills in args fields that were not set on the command line.
func applyConfig(args *types.CLIArgs, config *types.Config) {
	if len(args.Retailers) == 0 {
		args.Retailers = config.Retailers
	}
	if args.RetailersFile == "" {
		args.RetailersFile = config.RetailersFile
	}
	if config.ReportName != "" && args.ReportName == defaultReportName {
		args.ReportName = config.ReportName
	}
	if len(config.ReportType) > 0 && isDefaultReportType(args.ReportType) {
		args.ReportType = config.ReportType
	}
	if config.Dir != "" && args.Dir == "" {
		args.Dir = config.Dir
	}
	if config.OldestFirst {
		args.OldestFirst = true
	}
}

// defaultReportName is the base name of the output file when no name is given.
const defaultReportName = "budget_analysis"

func isDefaultReportType(reportTypes []string) bool {
	return len(reportTypes) == 1 && reportTypes[0] == "xlsx"
}

func reverseTransactions(transactions []entity.Transaction) {
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}
}

func monthlyTotals(totals *entity.OrderedTotals) []types.MonthlyTotal {
	monthly := make([]types.MonthlyTotal, 0, totals.Len())
	for _, entry := range totals.Entries() {
		monthly = append(monthly, types.MonthlyTotal{Month: entry.Key, Total: entry.Total})
	}
	return monthly
}
