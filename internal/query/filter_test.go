package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		input string
		want  DateRange
	}{
		{"today", RangeToday},
		{"week", RangeWeek},
		{"month", RangeMonth},
		{"", RangeNone},
		{"yesterday", RangeNone},
		{"TODAY", RangeNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDateRange(tt.input), "input %q", tt.input)
	}
}

func TestDateRangeBounds(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("today", func(t *testing.T) {
		from, to := RangeToday.Bounds(now)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, today, *from)
		assert.Equal(t, today, *to)
	})

	t.Run("week", func(t *testing.T) {
		from, to := RangeWeek.Bounds(now)
		require.NotNil(t, from)
		assert.Equal(t, today.AddDate(0, 0, -7), *from)
		assert.Nil(t, to)
	})

	t.Run("month", func(t *testing.T) {
		from, to := RangeMonth.Bounds(now)
		require.NotNil(t, from)
		assert.Equal(t, today.AddDate(0, 0, -30), *from)
		assert.Nil(t, to)
	})

	t.Run("none", func(t *testing.T) {
		from, to := RangeNone.Bounds(now)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})
}

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{"zero values", Pagination{}, Pagination{Page: 1, PageSize: DefaultPageSize}},
		{"negative page", Pagination{Page: -3, PageSize: 10}, Pagination{Page: 1, PageSize: 10}},
		{"oversized page size capped", Pagination{Page: 2, PageSize: 500}, Pagination{Page: 2, PageSize: DefaultPageSize}},
		{"valid untouched", Pagination{Page: 3, PageSize: 15}, Pagination{Page: 3, PageSize: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%go%", SearchPattern("  Go "))
	assert.Equal(t, "%%", SearchPattern(""))
	assert.Equal(t, "%react native%", SearchPattern("React Native"))
}
