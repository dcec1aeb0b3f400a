package search

import (
	"golang.org/x/text/language"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// Engine combines the filter and sort stages into one search
type Engine struct {
	locale language.Tag
	clock  adapter.Clock
}

// NewEngine creates a search engine collating strings for the given locale
func NewEngine(locale language.Tag, clock adapter.Clock) *Engine {
	return &Engine{
		locale: locale,
		clock:  clock,
	}
}

// Search filters records with the criteria and the free-text term, then sorts them.
// The term replaces criteria.SearchTerm.
func (e *Engine) Search(records []domain.TokenRecord, term string, criteria domain.FilterCriteria) []domain.TokenRecord {
	criteria = criteria.Normalize().WithSearchTerm(term)
	filtered := Filter(records, criteria, e.clock.Now())
	return Sort(filtered, criteria.SortBy, criteria.SortOrder, e.locale)
}

// Locale returns the collation locale
func (e *Engine) Locale() language.Tag {
	return e.locale
}
