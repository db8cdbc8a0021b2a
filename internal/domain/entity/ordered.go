package entity

import "github.com/shopspring/decimal"

// TotalEntry is one key/total pair of an OrderedTotals view.
type TotalEntry struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// OrderedTotals accumulates decimal amounts per key while preserving the
// order in which keys were first seen. All report views (retailer totals,
// month totals) are built on it so that sheet rows come out in discovery
// order rather than sorted order.
type OrderedTotals struct {
	keys   []string
	totals map[string]decimal.Decimal
}

// NewOrderedTotals creates an empty view.
func NewOrderedTotals() *OrderedTotals {
	return &OrderedTotals{totals: map[string]decimal.Decimal{}}
}

// Add upserts: a key seen for the first time starts at zero and is appended
// to the key order, then amount is added to its total.
func (o *OrderedTotals) Add(key string, amount decimal.Decimal) {
	if _, ok := o.totals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.totals[key] = o.totals[key].Add(amount)
}

// Get returns the accumulated total for key.
func (o *OrderedTotals) Get(key string) (decimal.Decimal, bool) {
	total, ok := o.totals[key]
	return total, ok
}

// Keys returns the keys in first-seen order.
func (o *OrderedTotals) Keys() []string {
	return o.keys
}

// Len returns the number of distinct keys.
func (o *OrderedTotals) Len() int {
	return len(o.keys)
}

// Entries returns the key/total pairs in first-seen order.
func (o *OrderedTotals) Entries() []TotalEntry {
	entries := make([]TotalEntry, 0, len(o.keys))
	for _, key := range o.keys {
		entries = append(entries, TotalEntry{Key: key, Total: o.totals[key]})
	}
	return entries
}

// GrandTotal returns the sum over all keys.
func (o *OrderedTotals) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, key := range o.keys {
		total = total.Add(o.totals[key])
	}
	return total
}
