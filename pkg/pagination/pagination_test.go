package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name       string
		in         PaginationParams
		wantPage   int
		wantPer    int
		wantOffset int
	}{
		{"zero values", PaginationParams{}, 1, DefaultPerPage, 0},
		{"negative page", PaginationParams{Page: -3, PerPage: 10}, 1, 10, 0},
		{"too large", PaginationParams{Page: 2, PerPage: 1000}, 2, MaxPerPage, MaxPerPage},
		{"third page", PaginationParams{Page: 3, PerPage: 20}, 3, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			p.Validate()
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPer, p.PerPage)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}

func TestNewPage_Links(t *testing.T) {
	base, err := url.Parse("http://example.com/link/?country=Russia&page=2")
	require.NoError(t, err)

	page := NewPage([]int{4, 5, 6}, &PaginationParams{Page: 2, PerPage: 3}, 10, base)

	assert.Equal(t, int64(10), page.Count)
	require.NotNil(t, page.Next)
	require.NotNil(t, page.Previous)
	assert.Equal(t, "http://example.com/link/?country=Russia&page=3", *page.Next)
	assert.Equal(t, "http://example.com/link/?country=Russia", *page.Previous)
}

func TestNewPage_LastPageAndEmpty(t *testing.T) {
	base, err := url.Parse("http://example.com/product/")
	require.NoError(t, err)

	last := NewPage([]string{"x"}, &PaginationParams{Page: 1, PerPage: 15}, 1, base)
	assert.Nil(t, last.Next)
	assert.Nil(t, last.Previous)

	empty := NewPage[string](nil, DefaultPagination(), 0, nil)
	assert.NotNil(t, empty.Results)
	assert.Len(t, empty.Results, 0)
}
