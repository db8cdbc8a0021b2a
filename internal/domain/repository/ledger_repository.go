package repository

import (
	"github.com/dutchbot/budget-cli/internal/domain/entity"
)

// LedgerRepository defines the interface for reading transaction input files.
type LedgerRepository interface {
	// ReadTransactions reads a ';'-delimited ledger file into transactions,
	// preserving file order.
	ReadTransactions(filePath string) ([]entity.Transaction, error)

	// ReadRetailerNames reads a CSV file whose first column per row is a
	// retailer name.
	ReadRetailerNames(filePath string) ([]string, error)
}
