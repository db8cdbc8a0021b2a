package usecase

import (
	"strings"

	"github.com/dutchbot/budget-cli/internal/domain/entity"
)

// FilterTransactions keeps the transactions whose description contains one of
// the target names as a case-insensitive substring. Targets are scanned in
// order and the first match wins: the transaction is emitted once, with its
// retailer field rewritten to the exact target string. Transactions matching
// no target are dropped. Output preserves input order; an empty target list
// yields an empty result.
func FilterTransactions(targets []string, transactions []entity.Transaction) []entity.Transaction {
	filtered := []entity.Transaction{}

	for _, transaction := range transactions {
		name := strings.ToLower(transaction.Retailer)
		for _, target := range targets {
			if strings.Contains(name, strings.ToLower(target)) {
				filtered = append(filtered, transaction.WithRetailer(target))
				break
			}
		}
	}

	return filtered
}

// AccumulateByRetailer sums amounts per canonical retailer name across the
// whole filtered ledger, in first-seen order.
func AccumulateByRetailer(transactions []entity.Transaction) (*entity.OrderedTotals, error) {
	totals := entity.NewOrderedTotals()

	for _, transaction := range transactions {
		amount, err := entity.ParseAmount(transaction.Amount, transaction.Row)
		if err != nil {
			return nil, err
		}
		totals.Add(transaction.Retailer, amount)
	}

	return totals, nil
}

// AccumulateByMonth sums amounts per calendar month name, in first-seen
// order. The order is chronological only if the caller processes the ledger
// oldest-first.
func AccumulateByMonth(transactions []entity.Transaction) (*entity.OrderedTotals, error) {
	totals := entity.NewOrderedTotals()

	for _, transaction := range transactions {
		date, err := entity.ParseDate(transaction.Date, transaction.Row)
		if err != nil {
			return nil, err
		}
		amount, err := entity.ParseAmount(transaction.Amount, transaction.Row)
		if err != nil {
			return nil, err
		}
		totals.Add(entity.MonthName(date), amount)
	}

	return totals, nil
}

// BuildLayout groups the filtered ledger by date and flattens it into the
// position-addressable layout used for sheet writing: one flat row per
// record, dates in first-seen order, and per-date [start, end) bounds
// computed with a running end offset (each date starts where the previous
// one ended).
func BuildLayout(transactions []entity.Transaction) (entity.ReportLayout, error) {
	dates := []string{}
	grouped := map[string][]entity.ReportRow{}

	for _, transaction := range transactions {
		if _, err := entity.ParseDate(transaction.Date, transaction.Row); err != nil {
			return entity.ReportLayout{}, err
		}
		amount, err := entity.ParseAmount(transaction.Amount, transaction.Row)
		if err != nil {
			return entity.ReportLayout{}, err
		}

		if _, ok := grouped[transaction.Date]; !ok {
			dates = append(dates, transaction.Date)
		}
		grouped[transaction.Date] = append(grouped[transaction.Date], entity.ReportRow{
			Retailer: transaction.Retailer,
			Amount:   amount,
		})
	}

	layout := entity.ReportLayout{
		Dates:  dates,
		Bounds: map[string]entity.DateBounds{},
	}

	end := 0
	for _, date := range dates {
		start := end
		layout.Rows = append(layout.Rows, grouped[date]...)
		end += len(grouped[date])
		layout.Bounds[date] = entity.DateBounds{Start: start, End: end}
	}

	return layout, nil
}
