package loader

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowIDs(t *testing.T) {
	tests := []struct {
		name       string
		last       uint64
		windowSize int
		expected   []uint64
	}{
		{"no tokens minted", 0, 5, nil},
		{"window equals supply", 5, 5, []uint64{1, 2, 3, 4, 5}},
		{"window smaller than supply", 10, 3, []uint64{8, 9, 10}},
		{"window larger than supply", 3, 10, []uint64{1, 2, 3}},
		{"single token window", 7, 1, []uint64{7}},
		{"invalid window", 7, 0, nil},
		{"last id at uint64 limit", math.MaxUint64, 3, []uint64{math.MaxUint64 - 2, math.MaxUint64 - 1, math.MaxUint64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, windowIDs(tt.last, tt.windowSize))
		})
	}
}
