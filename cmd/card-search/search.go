package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/feral-file/ff-greeting-cards/internal/api/shared/dto"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/loader"
	"github.com/feral-file/ff-greeting-cards/internal/search"
)

type searchOptions struct {
	Term          string
	Festival      string
	DateRange     string
	Owner         string
	HasImage      bool
	MessageLength string
	SortBy        string
	SortOrder     string
	Window        int
	Limit         int
}

func (o searchOptions) criteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		SearchTerm:    o.Term,
		Festival:      o.Festival,
		DateRange:     domain.DateRange(o.DateRange),
		Owner:         o.Owner,
		HasImage:      o.HasImage,
		MessageLength: domain.MessageLength(o.MessageLength),
		SortBy:        domain.SortKey(o.SortBy),
		SortOrder:     domain.SortOrder(o.SortOrder),
	}.Normalize()
}

type searchOutput struct {
	Term     string                `json:"term"`
	Criteria domain.FilterCriteria `json:"criteria"`
	Loaded   int                   `json:"loaded"`
	Total    int                   `json:"total"`
	Cards    []dto.CardResponse    `json:"cards"`
}

// searchCards loads the newest window once, searches it and writes the result as JSON
func searchCards(ctx context.Context, opts searchOptions, l loader.Loader, engine *search.Engine, out io.Writer) error {
	if opts.Window < 1 {
		return fmt.Errorf("%w: window must be at least 1", domain.ErrInvalidWindow)
	}

	records, err := l.LoadLatest(ctx, opts.Window)
	if err != nil {
		return fmt.Errorf("failed to load cards: %w", err)
	}

	criteria := opts.criteria()
	results := engine.Search(records, opts.Term, criteria)
	total := len(results)
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(searchOutput{
		Term:     opts.Term,
		Criteria: criteria,
		Loaded:   len(records),
		Total:    total,
		Cards:    dto.MapRecordsToDTO(results),
	})
}
