package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{
			name:     "lowercase address is checksummed",
			address:  "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			expected: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		},
		{
			name:     "zero address is absent",
			address:  "0x0000000000000000000000000000000000000000",
			expected: "",
		},
		{
			name:     "malformed address",
			address:  "0x123",
			expected: "",
		},
		{
			name:     "empty address",
			address:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.address))
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress(" 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed "))
	assert.False(t, IsValidAddress("0x0000000000000000000000000000000000000000"))
	assert.False(t, IsValidAddress("not-an-address"))
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		input    string
		expected DateRange
	}{
		{"today", DateRangeToday},
		{"WEEK", DateRangeWeek},
		{" month ", DateRangeMonth},
		{"year", DateRangeYear},
		{"all", DateRangeAll},
		{"", DateRangeAll},
		{"decade", DateRangeAll},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDateRange(tt.input))
		})
	}
}

func TestParseMessageLength(t *testing.T) {
	assert.Equal(t, MessageLengthShort, ParseMessageLength("short"))
	assert.Equal(t, MessageLengthMedium, ParseMessageLength("Medium"))
	assert.Equal(t, MessageLengthLong, ParseMessageLength("long"))
	assert.Equal(t, MessageLengthAny, ParseMessageLength("huge"))
	assert.Equal(t, MessageLengthAny, ParseMessageLength(""))
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortOrderAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortOrderAsc, ParseSortOrder("ASC"))
	assert.Equal(t, SortOrderDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortOrderDesc, ParseSortOrder("sideways"))
}

func TestFilterCriteria_Normalize(t *testing.T) {
	c := FilterCriteria{
		DateRange:     "fortnight",
		MessageLength: "epic",
		SortBy:        "random",
		SortOrder:     "",
	}.Normalize()

	assert.Equal(t, DateRangeAll, c.DateRange)
	assert.Equal(t, MessageLengthAny, c.MessageLength)
	assert.Equal(t, SortKey("random"), c.SortBy, "unknown sort keys are kept for the sort stage")
	assert.Equal(t, SortOrderDesc, c.SortOrder)
}

func TestFilterCriteria_WithSearchTerm(t *testing.T) {
	base := DefaultCriteria()
	c := base.WithSearchTerm("diwali")

	assert.Equal(t, "diwali", c.SearchTerm)
	assert.Empty(t, base.SearchTerm)
	assert.Equal(t, SortKeyNewest, c.SortBy)
}

func TestTokenRecord_HasApprovedOperator(t *testing.T) {
	assert.False(t, TokenRecord{TokenID: 1}.HasApprovedOperator())
	assert.True(t, TokenRecord{TokenID: 1, ApprovedOperator: "0xabc"}.HasApprovedOperator())
}
