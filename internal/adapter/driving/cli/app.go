package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dutchbot/budget-cli/internal/application/usecase"
	"github.com/dutchbot/budget-cli/internal/shared/types"
	"github.com/dutchbot/budget-cli/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd       *cobra.Command
	reportUseCase *usecase.ReportUseCase
	version       string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "budget-cli <input_file_path>",
		Short:   "Generate a structured budget analysis spreadsheet from a transaction ledger",
		Long:    "Based on an input CSV containing transactions, generate a structured Excel workbook to allow detailed analysis and budgeting.",
		Args:    cobra.ExactArgs(1),
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Budget CLI version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringSliceP("retailers", "r", nil, "Retailer names to filter transactions on (comma-separated)")
	rootCmd.PersistentFlags().StringP("retailers-file", "f", "", "CSV file whose first column lists retailer names, used when --retailers is empty")
	rootCmd.PersistentFlags().StringP("report-name", "n", "budget_analysis", "Base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"xlsx"}, "Report types: xlsx, csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.PersistentFlags().BoolP("oldest-first", "o", false, "Reverse the ledger so transactions are processed oldest-first")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(args []string) (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	retailers, _ := app.rootCmd.Flags().GetStringSlice("retailers")
	retailersFile, _ := app.rootCmd.Flags().GetString("retailers-file")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")
	oldestFirst, _ := app.rootCmd.Flags().GetBool("oldest-first")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	for _, rt := range reportType {
		switch rt {
		case "xlsx", "csv", "json", "pdf":
		default:
			return nil, fmt.Errorf("%w (got '%s')", types.ErrUnsupportedReportType, rt)
		}
	}

	return &types.CLIArgs{
		InputFilePath: args[0],
		ConfigFile:    configFile,
		Retailers:     retailers,
		RetailersFile: retailersFile,
		ReportName:    reportName,
		ReportType:    reportType,
		Dir:           dir,
		OldestFirst:   oldestFirst,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return app.reportUseCase.RunReport(ctx, cliArgs)
}

// SetReportUseCase sets the report use case for the CLI app.
func (app *CLIApp) SetReportUseCase(useCase *usecase.ReportUseCase) {
	app.reportUseCase = useCase
}
