package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	assert.Equal(t, "10-3", FormatRecord(10, 3, 0))
	assert.Equal(t, "7-6-1", FormatRecord(7, 6, 1))
	assert.Equal(t, "0-0", FormatRecord(0, 0, 0))
}

func TestFormatOwners(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"Alice"}, "Alice"},
		{[]string{"Alice", "Bob"}, "Alice & Bob"},
		{[]string{"Alice", "Bob", "Carol"}, "Alice, Bob & Carol"},
		{[]string{"A", "B", "C", "D"}, "A, B, C & D"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOwners(tt.names))
		})
	}
}
