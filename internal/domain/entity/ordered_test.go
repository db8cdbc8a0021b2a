package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedTotalsInsertionOrder(t *testing.T) {
	totals := NewOrderedTotals()
	totals.Add("Zebra", decimal.NewFromInt(1))
	totals.Add("Apple", decimal.NewFromInt(2))
	totals.Add("Zebra", decimal.NewFromInt(3))
	totals.Add("Mango", decimal.NewFromInt(4))

	// First-seen order, not sorted order.
	assert.Equal(t, []string{"Zebra", "Apple", "Mango"}, totals.Keys())
	assert.Equal(t, 3, totals.Len())
}

func TestOrderedTotalsUpsert(t *testing.T) {
	totals := NewOrderedTotals()
	totals.Add("SuperMart", decimal.RequireFromString("10.50"))
	totals.Add("SuperMart", decimal.RequireFromString("3.25"))

	total, ok := totals.Get("SuperMart")
	require.True(t, ok)
	assert.Equal(t, "13.75", total.StringFixed(2))
}

func TestOrderedTotalsGetMissing(t *testing.T) {
	totals := NewOrderedTotals()

	total, ok := totals.Get("Nowhere")
	assert.False(t, ok)
	assert.True(t, total.IsZero())
}

func TestOrderedTotalsGrandTotal(t *testing.T) {
	totals := NewOrderedTotals()
	totals.Add("A", decimal.RequireFromString("0.10"))
	totals.Add("B", decimal.RequireFromString("0.20"))
	totals.Add("A", decimal.RequireFromString("0.30"))

	// Exact decimal arithmetic: no binary-float drift on small amounts.
	assert.Equal(t, "0.60", totals.GrandTotal().StringFixed(2))
}

func TestOrderedTotalsEntries(t *testing.T) {
	totals := NewOrderedTotals()
	totals.Add("B", decimal.NewFromInt(2))
	totals.Add("A", decimal.NewFromInt(1))

	entries := totals.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Key)
	assert.Equal(t, "A", entries[1].Key)
	assert.Equal(t, "2", entries[0].Total.String())
}

func TestOrderedTotalsEmpty(t *testing.T) {
	totals := NewOrderedTotals()
	assert.Empty(t, totals.Keys())
	assert.Empty(t, totals.Entries())
	assert.True(t, totals.GrandTotal().IsZero())
}
