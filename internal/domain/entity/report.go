package entity

import "github.com/shopspring/decimal"

// ReportRow is one flat row of the by-date sheet: a single retailer/amount
// pair originating from one ledger record.
type ReportRow struct {
	Retailer string          `json:"retailer"`
	Amount   decimal.Decimal `json:"amount"`
}

// DateBounds is the contiguous [Start, End) range of flat rows occupied by
// one date.
type DateBounds struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ReportLayout positions the filtered ledger for sequential sheet writing:
// Rows holds one entry per ledger record, grouped by date in first-seen date
// order, and Bounds maps each date to its row range. Ranges are contiguous,
// non-overlapping and cover Rows exactly once.
type ReportLayout struct {
	Rows   []ReportRow           `json:"rows"`
	Dates  []string              `json:"dates"`
	Bounds map[string]DateBounds `json:"bounds"`
}

// Span returns the total number of flat rows.
func (l ReportLayout) Span() int {
	return len(l.Rows)
}

// BudgetReport bundles the three aggregate views produced from one ledger run.
type BudgetReport struct {
	Layout         ReportLayout
	RetailerTotals *OrderedTotals
	MonthTotals    *OrderedTotals
}

// GrandTotal returns the sum of all filtered transaction amounts.
func (r *BudgetReport) GrandTotal() decimal.Decimal {
	return r.RetailerTotals.GrandTotal()
}

// ColumnWidth returns the rendering width hint for a sheet column: the
// character length of the longest rendered value, plus one.
func ColumnWidth(values []string) int {
	longest := 0
	for _, value := range values {
		if len(value) > longest {
			longest = len(value)
		}
	}
	return longest + 1
}
