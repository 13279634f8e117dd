package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name         string
		number, size int
		wantNumber   int
		wantSize     int
	}{
		{"defaults kept", 3, 25, 3, 25},
		{"zero page clamps to one", 0, 10, 1, 10},
		{"negative page clamps to one", -5, 10, 1, 10},
		{"zero size falls back to ten", 1, 0, 1, 10},
		{"oversized page falls back to ten", 1, 500, 1, 10},
		{"max size allowed", 2, 100, 2, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NormalizePage(tt.number, tt.size)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantSize, page.Size)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Size: 10}.Offset())
	assert.Equal(t, 10, Page{Number: 2, Size: 10}.Offset())
	assert.Equal(t, 50, Page{Number: 3, Size: 25}.Offset())
}

func TestParseSort(t *testing.T) {
	t.Run("empty means no sort", func(t *testing.T) {
		sorts, err := ParseSort("", "")
		require.NoError(t, err)
		assert.Nil(t, sorts)
	})

	t.Run("missing directions default to asc", func(t *testing.T) {
		sorts, err := ParseSort("name,created_at", "desc")
		require.NoError(t, err)
		require.Len(t, sorts, 2)
		assert.Equal(t, SortKey{Field: "name", Direction: "desc"}, sorts[0])
		assert.Equal(t, SortKey{Field: "created_at", Direction: "asc"}, sorts[1])
	})

	t.Run("directions are case insensitive", func(t *testing.T) {
		sorts, err := ParseSort("name", "DESC")
		require.NoError(t, err)
		assert.Equal(t, "desc", sorts[0].Direction)
	})

	t.Run("more directions than keys is rejected", func(t *testing.T) {
		_, err := ParseSort("name", "asc,desc")
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})

	t.Run("unknown direction is rejected", func(t *testing.T) {
		_, err := ParseSort("name", "upward")
		assert.True(t, errors.Is(err, ErrInvalidQuery))
	})

	t.Run("whitespace and empty segments are ignored", func(t *testing.T) {
		sorts, err := ParseSort(" name , ,created_at ", "asc")
		require.NoError(t, err)
		require.Len(t, sorts, 2)
		assert.Equal(t, "name", sorts[0].Field)
		assert.Equal(t, "created_at", sorts[1].Field)
	})
}
