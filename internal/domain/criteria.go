package domain

import "strings"

// DateRange restricts results to cards created within a window relative to now
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
	DateRangeYear  DateRange = "year"
)

// ParseDateRange parses a date range, falling back to DateRangeAll for unknown values
func ParseDateRange(s string) DateRange {
	switch dr := DateRange(strings.ToLower(strings.TrimSpace(s))); dr {
	case DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeYear:
		return dr
	default:
		return DateRangeAll
	}
}

// MessageLength buckets the greeting message by character count
type MessageLength string

const (
	MessageLengthAny    MessageLength = "any"
	MessageLengthShort  MessageLength = "short"  // 1-50
	MessageLengthMedium MessageLength = "medium" // 51-200
	MessageLengthLong   MessageLength = "long"   // 201-500
)

// ParseMessageLength parses a message length bucket, falling back to MessageLengthAny
func ParseMessageLength(s string) MessageLength {
	switch ml := MessageLength(strings.ToLower(strings.TrimSpace(s))); ml {
	case MessageLengthShort, MessageLengthMedium, MessageLengthLong:
		return ml
	default:
		return MessageLengthAny
	}
}

// SortKey selects the comparator used to order results
type SortKey string

const (
	SortKeyNewest        SortKey = "newest"
	SortKeyOldest        SortKey = "oldest"
	SortKeyName          SortKey = "name"
	SortKeyFestival      SortKey = "festival"
	SortKeyMessageLength SortKey = "messageLength"
	// SortKeyPopular has no popularity signal behind it and orders like SortKeyNewest
	SortKeyPopular SortKey = "popular"
)

// SortOrder is the direction applied to keys that do not encode one in their name
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortOrder parses a sort order, falling back to SortOrderDesc
func ParseSortOrder(s string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(s))) == SortOrderAsc {
		return SortOrderAsc
	}
	return SortOrderDesc
}

// FilterCriteria is the transient search, filter and sort state of one interaction
type FilterCriteria struct {
	SearchTerm    string        `json:"search_term"`
	Festival      string        `json:"festival"`
	DateRange     DateRange     `json:"date_range"`
	Owner         string        `json:"owner"`
	HasImage      bool          `json:"has_image"`
	MessageLength MessageLength `json:"message_length"`
	SortBy        SortKey       `json:"sort_by"`
	SortOrder     SortOrder     `json:"sort_order"`
}

// DefaultCriteria returns criteria that keep every record, newest first
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		DateRange:     DateRangeAll,
		MessageLength: MessageLengthAny,
		SortBy:        SortKeyNewest,
		SortOrder:     SortOrderDesc,
	}
}

// Normalize maps malformed enum values to their documented defaults.
// SortBy is left untouched: an unknown key is a no-op for the sort stage.
func (c FilterCriteria) Normalize() FilterCriteria {
	c.DateRange = ParseDateRange(string(c.DateRange))
	c.MessageLength = ParseMessageLength(string(c.MessageLength))
	c.SortOrder = ParseSortOrder(string(c.SortOrder))
	return c
}

// WithSearchTerm returns a copy of the criteria with the free-text term replaced
func (c FilterCriteria) WithSearchTerm(term string) FilterCriteria {
	c.SearchTerm = term
	return c
}
