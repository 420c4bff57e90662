package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/catalog"
	"github.com/Shivanand-hulikatti/event-booking-dashboard/internal/model"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{10, 6, 2},
		{13, 6, 3},
		{5, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 1, Clamp(-4, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 3, Clamp(9, 3))
	assert.Equal(t, 1, Clamp(5, 1))
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, Slice(items, 1, 6))
	assert.Equal(t, []int{7, 8, 9, 10}, Slice(items, 2, 6))
	assert.Empty(t, Slice(items, 3, 6))
	assert.Empty(t, Slice(items, 0, 6))
	assert.Empty(t, Slice([]int{}, 1, 6))
}

func TestSummitSearch_SinglePage(t *testing.T) {
	filtered := Filter(catalog.DefaultEvents(), "summit", nil)
	assert.Equal(t, 1, TotalPages(len(filtered), 6))
}

// TestPages_UnionEqualsFiltered checks that walking every page yields each
// filtered event exactly once, for arbitrary queries, categories and sizes.
func TestPages_UnionEqualsFiltered(t *testing.T) {
	events := catalog.DefaultEvents()
	cats := []string{
		catalog.CategorySports, catalog.CategoryConference, catalog.CategoryTechnology,
		catalog.CategoryCareer, catalog.CategoryWorkshop,
	}

	rapid.Check(t, func(t *rapid.T) {
		query := rapid.SampledFrom([]string{"", " ", "usiu", "summit", "congress", "workshop", "a", "zzz"}).Draw(t, "query")
		selected := rapid.SliceOfDistinct(rapid.SampledFrom(cats), rapid.ID[string]).Draw(t, "categories")
		size := rapid.IntRange(1, 12).Draw(t, "pageSize")

		filtered := Filter(events, query, selected)
		total := TotalPages(len(filtered), size)
		if total < 1 {
			t.Fatalf("totalPages = %d, want >= 1", total)
		}

		var union []model.Event
		for p := 1; p <= total; p++ {
			union = append(union, Slice(filtered, p, size)...)
		}
		if len(union) != len(filtered) {
			t.Fatalf("union has %d items, filtered has %d", len(union), len(filtered))
		}
		for i := range union {
			if union[i].ID != filtered[i].ID {
				t.Fatalf("item %d: got id %d, want %d", i, union[i].ID, filtered[i].ID)
			}
		}
	})
}

func TestClamp_NeverProducesBadSlice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		size := rapid.IntRange(1, 10).Draw(t, "size")
		page := rapid.IntRange(-5, 50).Draw(t, "page")

		items := make([]int, n)
		total := TotalPages(n, size)
		p := Clamp(page, total)
		if p < 1 || p > total {
			t.Fatalf("clamped page %d outside [1,%d]", p, total)
		}
		got := Slice(items, p, size)
		if len(got) > size {
			t.Fatalf("slice of %d exceeds page size %d", len(got), size)
		}
		if n > 0 && len(got) == 0 {
			t.Fatalf("empty slice for clamped page %d of %d items", p, n)
		}
	})
}
