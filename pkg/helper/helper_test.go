package helper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{"empty result has no pages", 0, 20, 0},
		{"exact fit", 40, 20, 2},
		{"partial last page", 5, 2, 3},
		{"single row", 1, 20, 1},
		{"invalid limit", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTotalPages(tt.total, tt.limit))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 4, CalculateOffset(3, 2))
	assert.Equal(t, 0, CalculateOffset(0, 20))
}

func TestDefaultPagination(t *testing.T) {
	page, size := DefaultPagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = DefaultPagination(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = DefaultPagination(4, 500)
	assert.Equal(t, 4, page)
	assert.Equal(t, 100, size)

	page, size = DefaultPagination(math.MaxInt/10, 20)
	assert.Equal(t, math.MaxInt/20, page)
	assert.Equal(t, 20, size)
	assert.GreaterOrEqual(t, CalculateOffset(page, size), 0)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%%", ContainsPattern(""))
	assert.Equal(t, "%hartford%", ContainsPattern("  Hartford "))
	assert.Equal(t, `%100\% fun\_run%`, ContainsPattern("100% Fun_Run"))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "ctrunner:cache:towns", BuildCacheKey("towns"))
	assert.Equal(t, "ctrunner:cache:towns:all", BuildCacheKey("towns", "all"))
}
