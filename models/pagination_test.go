package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"zero values get defaults", PageRequest{}, PageRequest{Page: 1, PageSize: DefaultPageSize}},
		{"negative page", PageRequest{Page: -3, PageSize: 5}, PageRequest{Page: 1, PageSize: 5}},
		{"page size above max", PageRequest{Page: 2, PageSize: 1000}, PageRequest{Page: 2, PageSize: MaxPageSize}},
		{"valid request untouched", PageRequest{Page: 4, PageSize: 20}, PageRequest{Page: 4, PageSize: 20}},
		{"page above max", PageRequest{Page: math.MaxInt, PageSize: 100}, PageRequest{Page: MaxPage, PageSize: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, PageRequest{Page: 3, PageSize: 10}.Offset())
	assert.Equal(t, 0, PageRequest{}.Offset())
}

func TestPageRequest_OffsetNeverOverflows(t *testing.T) {
	for _, page := range []int{MaxPage, MaxPage + 1, 922337203685477581, math.MaxInt} {
		for _, pageSize := range []int{1, 7, MaxPageSize} {
			offset := PageRequest{Page: page, PageSize: pageSize}.Offset()
			assert.GreaterOrEqual(t, offset, 0, "page=%d pageSize=%d", page, pageSize)
		}
	}
}

func TestTotalPages_IsCeilOfTotalOverPageSize(t *testing.T) {
	for total := 0; total <= 57; total++ {
		for pageSize := 1; pageSize <= 12; pageSize++ {
			want := total / pageSize
			if total%pageSize != 0 {
				want++
			}
			assert.Equal(t, want, TotalPages(total, pageSize), "total=%d pageSize=%d", total, pageSize)
		}
	}
}

func TestTotalPages_NonPositivePageSize(t *testing.T) {
	assert.Equal(t, 0, TotalPages(10, 0))
	assert.Equal(t, 0, TotalPages(10, -1))
}

// TestNewPaginationData_ListLength checks len(list) == min(pageSize, total-offset)
// when the list is sliced from a full result set the way the store does it.
func TestNewPaginationData_ListLength(t *testing.T) {
	all := make([]int, 23)
	for i := range all {
		all[i] = i
	}

	for page := 1; page <= 4; page++ {
		req := PageRequest{Page: page, PageSize: 10}
		start := min(req.Offset(), len(all))
		end := min(start+req.PageSize, len(all))

		got := NewPaginationData(all[start:end], len(all), req)

		assert.Equal(t, min(req.PageSize, max(len(all)-req.Offset(), 0)), len(got.List))
		assert.Equal(t, 3, got.TotalPages)
		assert.Equal(t, page, got.Page)
		assert.LessOrEqual(t, len(got.List), got.PageSize)
	}
}

func TestNewPaginationData_TruncatesOversizedList(t *testing.T) {
	got := NewPaginationData([]int{1, 2, 3, 4, 5}, 5, PageRequest{Page: 1, PageSize: 2})

	assert.Equal(t, []int{1, 2}, got.List)
	assert.Equal(t, 3, got.TotalPages)
}

func TestNewPaginationData_NilListSerializesAsEmptyArray(t *testing.T) {
	got := NewPaginationData[User](nil, 0, PageRequest{})

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[],"total":0,"page":1,"pageSize":10,"totalPages":0}`, string(b))
}
