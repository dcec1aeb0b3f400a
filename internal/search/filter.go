package search

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// placeholderMarkers identify generated placeholder images that do not count as a real image
var placeholderMarkers = []string{
	"placeholder.com",
	"placehold.co",
	"placehold.it",
}

const day = 24 * time.Hour

// Filter returns the records matching every active predicate of the criteria.
// It never reorders: with default criteria the output equals the input.
func Filter(records []domain.TokenRecord, criteria domain.FilterCriteria, now time.Time) []domain.TokenRecord {
	criteria = criteria.Normalize()
	term := strings.ToLower(criteria.SearchTerm)
	festival := strings.ToLower(criteria.Festival)
	owner := strings.ToLower(criteria.Owner)

	out := make([]domain.TokenRecord, 0, len(records))
	for _, r := range records {
		if term != "" && !matchesText(r, term) {
			continue
		}
		if festival != "" && !strings.Contains(strings.ToLower(r.Metadata.Festival), festival) {
			continue
		}
		if !inDateRange(r.Metadata.CreatedAt, criteria.DateRange, now) {
			continue
		}
		if owner != "" && !strings.Contains(strings.ToLower(r.Owner), owner) {
			continue
		}
		if criteria.HasImage && !HasRealImage(r.Metadata.ImageURI) {
			continue
		}
		if !inLengthBucket(r.Metadata.Message, criteria.MessageLength) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// HasRealImage reports whether an image URI is set and is not a placeholder service
func HasRealImage(imageURI string) bool {
	if strings.TrimSpace(imageURI) == "" {
		return false
	}

	lower := strings.ToLower(imageURI)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}

// matchesText checks the lowercased term against the searchable fields
func matchesText(r domain.TokenRecord, term string) bool {
	fields := [...]string{
		r.Metadata.Name,
		r.Metadata.Message,
		r.Metadata.Festival,
		r.Metadata.Sender,
		r.Owner,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// inDateRange checks the creation time against a window ending now.
// "today" is the calendar day of now in now's location.
func inDateRange(createdAt int64, dr domain.DateRange, now time.Time) bool {
	created := time.Unix(createdAt, 0).In(now.Location())

	var from time.Time
	switch dr {
	case domain.DateRangeToday:
		cy, cm, cd := created.Date()
		ny, nm, nd := now.Date()
		return cy == ny && cm == nm && cd == nd
	case domain.DateRangeWeek:
		from = now.Add(-7 * day)
	case domain.DateRangeMonth:
		from = now.Add(-30 * day)
	case domain.DateRangeYear:
		from = now.Add(-365 * day)
	default:
		return true
	}

	return !created.Before(from) && !created.After(now)
}

// inLengthBucket checks the message character count against a bucket
func inLengthBucket(message string, ml domain.MessageLength) bool {
	n := utf8.RuneCountInString(message)
	switch ml {
	case domain.MessageLengthShort:
		return n >= 1 && n <= 50
	case domain.MessageLengthMedium:
		return n >= 51 && n <= 200
	case domain.MessageLengthLong:
		return n >= 201 && n <= 500
	default:
		return true
	}
}
