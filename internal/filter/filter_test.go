package filter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/filter"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		state filter.State
		want  string
	}{
		{
			name:  "defaults serialize to page only",
			state: filter.Default(),
			want:  "page=1",
		},
		{
			name:  "All category and empty search are omitted",
			state: filter.State{Category: "All", Search: "", Page: 1},
			want:  "page=1",
		},
		{
			name:  "fixed parameter order",
			state: filter.State{Search: "lamp", Category: "Home", MinPrice: "10", MaxPrice: "50", Page: 3},
			want:  "search=lamp&category=Home&minPrice=10&maxPrice=50&page=3",
		},
		{
			name:  "search is escaped",
			state: filter.State{Search: "desk lamp", Page: 1},
			want:  "search=desk+lamp&page=1",
		},
		{
			name:  "zero page normalizes to 1",
			state: filter.State{Category: "Books"},
			want:  "category=Books&page=1",
		},
		{
			name:  "min without max",
			state: filter.State{MinPrice: "25", Page: 2},
			want:  "minPrice=25&page=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.Build(tt.state))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want filter.State
	}{
		{
			name: "empty string yields defaults",
			raw:  "",
			want: filter.State{Category: "All", Page: 1},
		},
		{
			name: "leading question mark is tolerated",
			raw:  "?category=Books&page=2",
			want: filter.State{Category: "Books", Page: 2},
		},
		{
			name: "all fields recovered",
			raw:  "search=desk+lamp&category=Home&minPrice=10&maxPrice=50&page=3",
			want: filter.State{Search: "desk lamp", Category: "Home", MinPrice: "10", MaxPrice: "50", Page: 3},
		},
		{
			name: "invalid page falls back to 1",
			raw:  "page=abc",
			want: filter.State{Category: "All", Page: 1},
		},
		{
			name: "negative page falls back to 1",
			raw:  "page=-4",
			want: filter.State{Category: "All", Page: 1},
		},
		{
			name: "malformed query yields defaults",
			raw:  "a=%zz",
			want: filter.State{Category: "All", Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filter.Parse(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	queries := []string{
		"",
		"page=5",
		"search=mug&page=1",
		"category=Kitchen&minPrice=5&maxPrice=30&page=2",
		"maxPrice=100",
		"category=All&search=&page=1",
		"search=a%26b&page=1",
	}

	for _, q := range queries {
		once := filter.Parse(q)
		again := filter.Parse(filter.Build(once))
		require.Equal(t, once, again, "round-trip changed meaning of %q", q)
	}
}

func TestIsFiltered(t *testing.T) {
	assert.False(t, filter.Default().IsFiltered())
	assert.False(t, filter.State{Category: "All", Page: 7}.IsFiltered())
	assert.True(t, filter.State{Category: "Books", Page: 1}.IsFiltered())
	assert.True(t, filter.State{Search: "x", Page: 1}.IsFiltered())
	assert.True(t, filter.State{MinPrice: "1"}.IsFiltered())
	assert.True(t, filter.State{MaxPrice: "9"}.IsFiltered())
}
