package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   int
	}{
		{name: "longest plus one", values: []string{"a", "abc", "ab"}, want: 4},
		{name: "single value", values: []string{"12-01-2023"}, want: 11},
		{name: "empty set", values: nil, want: 1},
		{name: "tie on length", values: []string{"abc", "xyz"}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnWidth(tt.values))
		})
	}
}
