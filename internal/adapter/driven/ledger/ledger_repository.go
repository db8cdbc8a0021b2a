package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/dutchbot/budget-cli/internal/domain/entity"
	"github.com/dutchbot/budget-cli/internal/domain/repository"
	"github.com/dutchbot/budget-cli/internal/shared/types"
)

// ledger files are ';'-delimited; the retailers fallback file is a plain
// comma-separated CSV.
const ledgerDelimiter = ';'

// LedgerRepositoryImpl implementa o LedgerRepository.
type LedgerRepositoryImpl struct{}

// NewLedgerRepository cria uma nova implementação do LedgerRepository.
func NewLedgerRepository() repository.LedgerRepository {
	return &LedgerRepositoryImpl{}
}

// ReadTransactions reads the whole ledger file into memory, in file order.
// Records keep their 1-based row number for error reporting.
func (r *LedgerRepositoryImpl) ReadTransactions(filePath string) ([]entity.Transaction, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &types.NotFoundError{Path: filePath, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ledgerDelimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading ledger file '%s': %w", filePath, err)
	}

	transactions := make([]entity.Transaction, 0, len(records))
	for i, fields := range records {
		transaction, err := entity.NewTransaction(fields, i+1)
		if err != nil {
			return nil, fmt.Errorf("error reading ledger file '%s': %w", filePath, err)
		}
		transactions = append(transactions, transaction)
	}

	return transactions, nil
}

// ReadRetailerNames reads the retailers fallback file: one retailer per row,
// first column. Empty names are skipped.
func (r *LedgerRepositoryImpl) ReadRetailerNames(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &types.NotFoundError{Path: filePath, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading retailers file '%s': %w", filePath, err)
	}

	names := []string{}
	for _, fields := range records {
		if len(fields) == 0 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		if name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}
