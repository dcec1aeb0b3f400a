package search

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// Sort returns a stably ordered copy of records. The input is never modified.
//
// newest and oldest always order by creation time descending and ascending; popular has no
// popularity signal and orders like newest. name and festival use locale-aware collation and
// messageLength uses the character count, all in the given order. Unknown keys keep the input order.
func Sort(records []domain.TokenRecord, key domain.SortKey, order domain.SortOrder, locale language.Tag) []domain.TokenRecord {
	out := slices.Clone(records)
	if out == nil {
		out = []domain.TokenRecord{}
	}

	compare := comparator(key, order, locale)
	if compare == nil {
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(key domain.SortKey, order domain.SortOrder, locale language.Tag) func(a, b domain.TokenRecord) int {
	byCreated := func(a, b domain.TokenRecord) int {
		return cmp.Compare(a.Metadata.CreatedAt, b.Metadata.CreatedAt)
	}

	switch key {
	case domain.SortKeyNewest, domain.SortKeyPopular:
		return reverse(byCreated)
	case domain.SortKeyOldest:
		return byCreated
	case domain.SortKeyName:
		col := collate.New(locale)
		return directed(order, func(a, b domain.TokenRecord) int {
			return col.CompareString(a.Metadata.Name, b.Metadata.Name)
		})
	case domain.SortKeyFestival:
		col := collate.New(locale)
		return directed(order, func(a, b domain.TokenRecord) int {
			return col.CompareString(a.Metadata.Festival, b.Metadata.Festival)
		})
	case domain.SortKeyMessageLength:
		return directed(order, func(a, b domain.TokenRecord) int {
			return cmp.Compare(utf8.RuneCountInString(a.Metadata.Message), utf8.RuneCountInString(b.Metadata.Message))
		})
	default:
		return nil
	}
}

func directed(order domain.SortOrder, compare func(a, b domain.TokenRecord) int) func(a, b domain.TokenRecord) int {
	if order == domain.SortOrderAsc {
		return compare
	}
	return reverse(compare)
}

func reverse(compare func(a, b domain.TokenRecord) int) func(a, b domain.TokenRecord) int {
	return func(a, b domain.TokenRecord) int {
		return compare(b, a)
	}
}
