package usecase

import (
	"fmt"
	"testing"

	"github.com/dutchbot/budget-cli/internal/domain/entity"
	"github.com/dutchbot/budget-cli/internal/shared/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transaction(date, retailer, amount string, row int) entity.Transaction {
	return entity.Transaction{
		Date:     date,
		Retailer: retailer,
		Amount:   amount,
		Fields:   []string{date, retailer, "", "", "", "", amount},
		Row:      row,
	}
}

func TestFilterTransactionsFirstTargetWins(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart downtown branch", "10,50", 1),
	}

	// Both targets match; the first one in target order wins and the record
	// is emitted exactly once.
	filtered := FilterTransactions([]string{"SuperMart", "downtown"}, transactions)

	require.Len(t, filtered, 1)
	assert.Equal(t, "SuperMart", filtered[0].Retailer)
}

func TestFilterTransactionsCaseInsensitive(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SUPERMART X", "10,50", 1),
		transaction("20230106", "supermart y", "5,00", 2),
	}

	filtered := FilterTransactions([]string{"SuperMart"}, transactions)

	require.Len(t, filtered, 2)
	assert.Equal(t, "SuperMart", filtered[0].Retailer)
	assert.Equal(t, "SuperMart", filtered[1].Retailer)
}

func TestFilterTransactionsDropsNonMatching(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart X", "10,50", 1),
		transaction("20230105", "Other Shop", "5,00", 2),
		transaction("20230112", "SuperMart X", "3,25", 3),
	}

	filtered := FilterTransactions([]string{"SuperMart"}, transactions)

	require.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].Row)
	assert.Equal(t, 3, filtered[1].Row)
}

func TestFilterTransactionsPreservesInputOrder(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230301", "Bakery A", "1,00", 1),
		transaction("20230302", "Cafe B", "2,00", 2),
		transaction("20230303", "Bakery A", "3,00", 3),
	}

	filtered := FilterTransactions([]string{"Cafe", "Bakery"}, transactions)

	require.Len(t, filtered, 3)
	assert.Equal(t, "Bakery", filtered[0].Retailer)
	assert.Equal(t, "Cafe", filtered[1].Retailer)
	assert.Equal(t, "Bakery", filtered[2].Retailer)
}

func TestFilterTransactionsEmptyTargets(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart X", "10,50", 1),
	}

	assert.Empty(t, FilterTransactions(nil, transactions))
	assert.Empty(t, FilterTransactions([]string{}, transactions))
}

func TestFilterTransactionsIdempotent(t *testing.T) {
	targets := []string{"SuperMart", "Cafe"}
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart X", "10,50", 1),
		transaction("20230106", "Cafe Central", "2,50", 2),
		transaction("20230107", "Other Shop", "9,99", 3),
	}

	once := FilterTransactions(targets, transactions)
	twice := FilterTransactions(targets, once)

	assert.Equal(t, once, twice)
}

func TestFilterTransactionsDoesNotMutateInput(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart X", "10,50", 1),
	}

	FilterTransactions([]string{"SuperMart"}, transactions)

	assert.Equal(t, "SuperMart X", transactions[0].Retailer)
}

func TestAccumulateByRetailer(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart", "10,50", 1),
		transaction("20230112", "SuperMart", "3,25", 2),
		transaction("20230112", "Cafe", "2,00", 3),
	}

	totals, err := AccumulateByRetailer(transactions)
	require.NoError(t, err)

	assert.Equal(t, []string{"SuperMart", "Cafe"}, totals.Keys())

	superMart, _ := totals.Get("SuperMart")
	assert.Equal(t, "13.75", superMart.StringFixed(2))
	cafe, _ := totals.Get("Cafe")
	assert.Equal(t, "2.00", cafe.StringFixed(2))
}

func TestAccumulateByMonth(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230215", "Cafe", "1,00", 1),
		transaction("20230105", "Cafe", "2,00", 2),
		transaction("20230220", "Cafe", "4,00", 3),
	}

	totals, err := AccumulateByMonth(transactions)
	require.NoError(t, err)

	// First-seen order, not calendar order.
	assert.Equal(t, []string{"February", "January"}, totals.Keys())

	february, _ := totals.Get("February")
	assert.Equal(t, "5.00", february.StringFixed(2))
}

func TestAccumulateByRetailerParseError(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "Cafe", "12.34.56", 2),
	}

	_, err := AccumulateByRetailer(transactions)
	require.Error(t, err)

	var parseErr *types.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Row)
}

func TestAccumulateByMonthDateFormatError(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("2023-01-05", "Cafe", "1,00", 5),
	}

	_, err := AccumulateByMonth(transactions)
	require.Error(t, err)

	var dateErr *types.DateFormatError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, 5, dateErr.Row)
}

func TestBuildLayout(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart", "10,50", 1),
		transaction("20230105", "Cafe", "2,00", 2),
		transaction("20230112", "SuperMart", "3,25", 3),
	}

	layout, err := BuildLayout(transactions)
	require.NoError(t, err)

	assert.Equal(t, []string{"20230105", "20230112"}, layout.Dates)
	assert.Equal(t, 3, layout.Span())
	assert.Equal(t, entity.DateBounds{Start: 0, End: 2}, layout.Bounds["20230105"])
	assert.Equal(t, entity.DateBounds{Start: 2, End: 3}, layout.Bounds["20230112"])

	assert.Equal(t, "SuperMart", layout.Rows[0].Retailer)
	assert.Equal(t, "Cafe", layout.Rows[1].Retailer)
	assert.Equal(t, "3.25", layout.Rows[2].Amount.StringFixed(2))
}

func TestBuildLayoutGroupsNonAdjacentDates(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "A", "1,00", 1),
		transaction("20230112", "B", "2,00", 2),
		transaction("20230105", "C", "3,00", 3),
	}

	layout, err := BuildLayout(transactions)
	require.NoError(t, err)

	// Same-date records end up in one contiguous range even when they are
	// not adjacent in the input.
	assert.Equal(t, entity.DateBounds{Start: 0, End: 2}, layout.Bounds["20230105"])
	assert.Equal(t, entity.DateBounds{Start: 2, End: 3}, layout.Bounds["20230112"])
	assert.Equal(t, "A", layout.Rows[0].Retailer)
	assert.Equal(t, "C", layout.Rows[1].Retailer)
	assert.Equal(t, "B", layout.Rows[2].Retailer)
}

func TestBuildLayoutBoundsInvariants(t *testing.T) {
	// Generated ledgers of varying shapes: bounds must stay contiguous,
	// non-overlapping, and cover the flat rows exactly once.
	for iteration := 0; iteration < 50; iteration++ {
		transactions := []entity.Transaction{}
		numRecords := iteration%7 + 1
		for i := 0; i < numRecords; i++ {
			date := fmt.Sprintf("202301%02d", (i*iteration)%28+1)
			retailer := fmt.Sprintf("Shop %d", i%3)
			amount := fmt.Sprintf("%d,%02d", i+1, (i*13)%100)
			transactions = append(transactions, transaction(date, retailer, amount, i+1))
		}

		layout, err := BuildLayout(transactions)
		require.NoError(t, err)

		require.Equal(t, len(transactions), layout.Span())
		require.Len(t, layout.Bounds, len(layout.Dates))

		end := 0
		for _, date := range layout.Dates {
			bounds := layout.Bounds[date]
			require.Equal(t, end, bounds.Start, "iteration %d: range must start where the previous ended", iteration)
			require.Greater(t, bounds.End, bounds.Start)
			end = bounds.End
		}
		require.Equal(t, layout.Span(), end, "iteration %d: ranges must cover the flat list", iteration)
	}
}

func TestAggregatorsAgreeOnGrandTotal(t *testing.T) {
	// The three views must produce identical grand totals for any ledger.
	for iteration := 0; iteration < 50; iteration++ {
		transactions := []entity.Transaction{}
		numRecords := iteration%9 + 1
		for i := 0; i < numRecords; i++ {
			date := fmt.Sprintf("2023%02d%02d", (i+iteration)%12+1, i%28+1)
			retailer := fmt.Sprintf("Shop %d", (i*7)%4)
			amount := fmt.Sprintf("%d,%02d", (i*31)%50, (i*17)%100)
			transactions = append(transactions, transaction(date, retailer, amount, i+1))
		}

		layout, err := BuildLayout(transactions)
		require.NoError(t, err)
		retailerTotals, err := AccumulateByRetailer(transactions)
		require.NoError(t, err)
		monthTotals, err := AccumulateByMonth(transactions)
		require.NoError(t, err)

		flatTotal := decimal.Zero
		for _, row := range layout.Rows {
			flatTotal = flatTotal.Add(row.Amount)
		}

		require.True(t, retailerTotals.GrandTotal().Equal(flatTotal),
			"iteration %d: retailer total %s != flat total %s", iteration, retailerTotals.GrandTotal(), flatTotal)
		require.True(t, monthTotals.GrandTotal().Equal(flatTotal),
			"iteration %d: month total %s != flat total %s", iteration, monthTotals.GrandTotal(), flatTotal)
	}
}

func TestCrossAggregatorRetailerConsistency(t *testing.T) {
	transactions := []entity.Transaction{
		transaction("20230105", "SuperMart", "10,50", 1),
		transaction("20230105", "Cafe", "2,00", 2),
		transaction("20230112", "SuperMart", "3,25", 3),
		transaction("20230215", "Cafe", "0,75", 4),
	}

	layout, err := BuildLayout(transactions)
	require.NoError(t, err)
	retailerTotals, err := AccumulateByRetailer(transactions)
	require.NoError(t, err)

	// Per-retailer sum over the by-date layout equals the retailer view.
	fromLayout := map[string]decimal.Decimal{}
	for _, row := range layout.Rows {
		fromLayout[row.Retailer] = fromLayout[row.Retailer].Add(row.Amount)
	}

	for _, entry := range retailerTotals.Entries() {
		require.True(t, entry.Total.Equal(fromLayout[entry.Key]),
			"retailer %s: %s != %s", entry.Key, entry.Total, fromLayout[entry.Key])
	}
}

func TestEmptyFilteredListYieldsEmptyViews(t *testing.T) {
	layout, err := BuildLayout(nil)
	require.NoError(t, err)
	assert.Zero(t, layout.Span())
	assert.Empty(t, layout.Dates)

	retailerTotals, err := AccumulateByRetailer(nil)
	require.NoError(t, err)
	assert.Zero(t, retailerTotals.Len())

	monthTotals, err := AccumulateByMonth(nil)
	require.NoError(t, err)
	assert.Zero(t, monthTotals.Len())
}
