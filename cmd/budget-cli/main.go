package main

import (
	"fmt"
	"os"

	"github.com/dutchbot/budget-cli/internal/adapter/driven/config"
	"github.com/dutchbot/budget-cli/internal/adapter/driven/export"
	"github.com/dutchbot/budget-cli/internal/adapter/driven/ledger"
	"github.com/dutchbot/budget-cli/internal/adapter/driving/cli"
	"github.com/dutchbot/budget-cli/internal/application/usecase"
	"github.com/dutchbot/budget-cli/pkg/console"
	"github.com/dutchbot/budget-cli/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	ledgerRepo := ledger.NewLedgerRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	reportUseCase := usecase.NewReportUseCase(
		ledgerRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetReportUseCase(reportUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
