package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrsameer/rag-with-gemini/internal/entity"
)

func catalogFixture() []*entity.Document {
	return []*entity.Document{
		{DisplayName: "Zeta", State: entity.DocumentStateActive, SizeBytes: 10, CreateTime: "2025-03-01T00:00:00Z"},
		{DisplayName: "alpha", State: entity.DocumentStatePending, SizeBytes: 30, CreateTime: "2025-03-02T00:00:00Z"},
		{DisplayName: "Beta", State: entity.DocumentStateActive, SizeBytes: 20, CreateTime: "2025-03-03T00:00:00Z"},
	}
}

func displayNames(docs []*entity.Document) []string {
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.DisplayName)
	}
	return names
}

func TestFilterAndSortNameAscCaseInsensitive(t *testing.T) {
	out := FilterAndSort(catalogFixture(), DocumentFilter{Sort: SortNameAsc})
	assert.Equal(t, []string{"alpha", "Beta", "Zeta"}, displayNames(out))
}

func TestFilterAndSortDefaultsToNewestFirst(t *testing.T) {
	out := FilterAndSort(catalogFixture(), DocumentFilter{})
	assert.Equal(t, []string{"Beta", "alpha", "Zeta"}, displayNames(out))
}

func TestFilterAndSortCreatedAsc(t *testing.T) {
	out := FilterAndSort(catalogFixture(), DocumentFilter{Sort: SortCreatedAsc})
	assert.Equal(t, []string{"Zeta", "alpha", "Beta"}, displayNames(out))
}

func TestFilterAndSortSizeDesc(t *testing.T) {
	out := FilterAndSort(catalogFixture(), DocumentFilter{Sort: SortSizeDesc})
	assert.Equal(t, []string{"alpha", "Beta", "Zeta"}, displayNames(out))
}

func TestFilterAndSortStateFilter(t *testing.T) {
	out := FilterAndSort(catalogFixture(), DocumentFilter{State: entity.DocumentStateActive, Sort: SortNameAsc})
	assert.Equal(t, []string{"Beta", "Zeta"}, displayNames(out))
}

func TestFilterAndSortQuerySubstring(t *testing.T) {
	out := FilterAndSort(catalogFixture(), DocumentFilter{Query: "ETA", Sort: SortNameAsc})
	assert.Equal(t, []string{"Beta", "Zeta"}, displayNames(out))
}

func TestFilterAndSortIdempotent(t *testing.T) {
	filter := DocumentFilter{State: entity.DocumentStateActive, Query: "e", Sort: SortNameAsc}
	once := FilterAndSort(catalogFixture(), filter)
	twice := FilterAndSort(once, filter)
	assert.Equal(t, displayNames(once), displayNames(twice))
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	in := catalogFixture()
	FilterAndSort(in, DocumentFilter{Sort: SortNameAsc})
	assert.Equal(t, []string{"Zeta", "alpha", "Beta"}, displayNames(in))
}
