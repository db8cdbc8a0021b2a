package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/dutchbot/budget-cli/internal/shared/types"
	"github.com/shopspring/decimal"
)

// Field positions in a ledger record. The export has no header row; the
// column layout is fixed by the exporting bank.
const (
	FieldDate     = 0
	FieldRetailer = 1
	FieldAmount   = 6

	// MinFields is the number of columns a record must carry for the
	// amount field to exist.
	MinFields = 7
)

// InputDateFormat is the date layout used in the ledger (YYYYMMDD).
const InputDateFormat = "20060102"

// OutputDateFormat is how dates are rendered in reports (dd-mm-yyyy).
const OutputDateFormat = "02-01-2006"

// Transaction represents a single ledger record. Date, Retailer and Amount
// hold the raw field values; Fields keeps the full record for reference.
// Row is the 1-based position in the input file, used in error reports.
type Transaction struct {
	Date     string   `json:"date"`
	Retailer string   `json:"retailer"`
	Amount   string   `json:"amount"`
	Fields   []string `json:"-"`
	Row      int      `json:"-"`
}

// NewTransaction builds a Transaction from one raw ledger row.
func NewTransaction(fields []string, row int) (Transaction, error) {
	if len(fields) < MinFields {
		return Transaction{}, fmt.Errorf("row %d: record has %d fields, expected at least %d", row, len(fields), MinFields)
	}
	return Transaction{
		Date:     fields[FieldDate],
		Retailer: fields[FieldRetailer],
		Amount:   fields[FieldAmount],
		Fields:   fields,
		Row:      row,
	}, nil
}

// WithRetailer returns a copy of the transaction with the retailer field
// replaced by the canonical name. The receiver is left untouched.
func (t Transaction) WithRetailer(name string) Transaction {
	t.Retailer = name
	return t
}

// ParseAmount converts a comma-decimal amount field ("12,34") into an exact
// decimal value. No currency symbols or grouping separators are stripped.
func ParseAmount(value string, row int) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(value, ",", ".")
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, &types.ParseError{Value: value, Row: row, Err: err}
	}
	return amount, nil
}

// ParseDate parses a YYYYMMDD ledger date.
func ParseDate(value string, row int) (time.Time, error) {
	date, err := time.Parse(InputDateFormat, value)
	if err != nil {
		return time.Time{}, &types.DateFormatError{Value: value, Row: row, Err: err}
	}
	return date, nil
}

// MonthName returns the calendar name ("January" .. "December") for a
// ledger date.
func MonthName(date time.Time) string {
	return date.Month().String()
}
