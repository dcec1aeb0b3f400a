package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/search"
)

func created(id uint64, at int64) domain.TokenRecord {
	return card(id, func(r *domain.TokenRecord) { r.Metadata.CreatedAt = at })
}

func named(id uint64, name string) domain.TokenRecord {
	return card(id, func(r *domain.TokenRecord) { r.Metadata.Name = name })
}

func TestSort_NewestIgnoresOrder(t *testing.T) {
	records := []domain.TokenRecord{created(1, 100), created(2, 300), created(3, 200)}

	for _, order := range []domain.SortOrder{domain.SortOrderAsc, domain.SortOrderDesc} {
		out := search.Sort(records, domain.SortKeyNewest, order, language.English)
		assert.Equal(t, []uint64{2, 3, 1}, tokenIDs(out))

		out = search.Sort(records, domain.SortKeyOldest, order, language.English)
		assert.Equal(t, []uint64{1, 3, 2}, tokenIDs(out))
	}
}

func TestSort_PopularOrdersLikeNewest(t *testing.T) {
	records := []domain.TokenRecord{created(1, 100), created(2, 300), created(3, 200)}

	out := search.Sort(records, domain.SortKeyPopular, domain.SortOrderAsc, language.English)
	assert.Equal(t, []uint64{2, 3, 1}, tokenIDs(out))
}

func TestSort_IsStable(t *testing.T) {
	records := []domain.TokenRecord{created(1, 100), created(2, 100), created(3, 200), created(4, 100)}

	out := search.Sort(records, domain.SortKeyNewest, domain.SortOrderDesc, language.English)
	assert.Equal(t, []uint64{3, 1, 2, 4}, tokenIDs(out))

	out = search.Sort(records, domain.SortKeyOldest, domain.SortOrderDesc, language.English)
	assert.Equal(t, []uint64{1, 2, 4, 3}, tokenIDs(out))
}

func TestSort_NameCollation(t *testing.T) {
	records := []domain.TokenRecord{named(1, "zebra"), named(2, "Émile"), named(3, "apple"), named(4, "Banana")}

	out := search.Sort(records, domain.SortKeyName, domain.SortOrderAsc, language.English)
	assert.Equal(t, []uint64{3, 4, 2, 1}, tokenIDs(out))

	out = search.Sort(records, domain.SortKeyName, domain.SortOrderDesc, language.English)
	assert.Equal(t, []uint64{1, 2, 4, 3}, tokenIDs(out))
}

func TestSort_Festival(t *testing.T) {
	records := []domain.TokenRecord{
		card(1, func(r *domain.TokenRecord) { r.Metadata.Festival = "Hanukkah" }),
		card(2, func(r *domain.TokenRecord) { r.Metadata.Festival = "Diwali" }),
		card(3, func(r *domain.TokenRecord) { r.Metadata.Festival = "Eid" }),
	}

	out := search.Sort(records, domain.SortKeyFestival, domain.SortOrderAsc, language.English)
	assert.Equal(t, []uint64{2, 3, 1}, tokenIDs(out))
}

func TestSort_MessageLength(t *testing.T) {
	records := []domain.TokenRecord{
		card(1, func(r *domain.TokenRecord) { r.Metadata.Message = "medium size" }),
		card(2, func(r *domain.TokenRecord) { r.Metadata.Message = "a" }),
		card(3, func(r *domain.TokenRecord) { r.Metadata.Message = "the longest message here" }),
	}

	out := search.Sort(records, domain.SortKeyMessageLength, domain.SortOrderAsc, language.English)
	assert.Equal(t, []uint64{2, 1, 3}, tokenIDs(out))

	out = search.Sort(records, domain.SortKeyMessageLength, domain.SortOrderDesc, language.English)
	assert.Equal(t, []uint64{3, 1, 2}, tokenIDs(out))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	records := []domain.TokenRecord{created(1, 100), created(2, 300), created(3, 200)}

	out := search.Sort(records, domain.SortKey("rarity"), domain.SortOrderAsc, language.English)
	assert.Equal(t, []uint64{1, 2, 3}, tokenIDs(out))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	records := []domain.TokenRecord{created(1, 100), created(2, 300), created(3, 200)}

	out := search.Sort(records, domain.SortKeyNewest, domain.SortOrderDesc, language.English)
	assert.Equal(t, []uint64{1, 2, 3}, tokenIDs(records))

	out[0].Metadata.Name = "changed"
	assert.Equal(t, "Card", records[1].Metadata.Name)
}

func TestSort_Empty(t *testing.T) {
	out := search.Sort(nil, domain.SortKeyNewest, domain.SortOrderDesc, language.English)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
