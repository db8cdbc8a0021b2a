package repository

import (
	"github.com/dutchbot/budget-cli/internal/domain/entity"
)

// ExportRepository defines the interface for writing report files. Each
// method returns the absolute path of the file it wrote.
type ExportRepository interface {
	ExportToXLSX(report *entity.BudgetReport, filename string, outputDir string) (string, error)
	ExportToCSV(report *entity.BudgetReport, filename string, outputDir string) (string, error)
	ExportToJSON(report *entity.BudgetReport, filename string, outputDir string) (string, error)
	ExportToPDF(report *entity.BudgetReport, filename string, outputDir string) (string, error)
}
