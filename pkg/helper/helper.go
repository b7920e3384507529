package helper

import (
	"fmt"
	"math"
	"strings"

	"github.com/bytebury/ctrunner/pkg/constant"
)

// BuildCacheKey builds a cache key based on the provided key and optional postfix
func BuildCacheKey(key string, postfix ...string) string {
	if len(postfix) > 0 && postfix[0] != "" {
		return fmt.Sprintf("%s:cache:%s:%s", constant.CacheParentKey, key, postfix[0])
	}

	return fmt.Sprintf("%s:cache:%s", constant.CacheParentKey, key)
}

// DefaultPagination replaces absent or non-positive values with defaults, caps the page size
// and caps the page so that its offset cannot overflow.
func DefaultPagination(page, pageSize int) (resultPage, resultPageSize int) {
	resultPage = page
	if resultPage <= 0 {
		resultPage = constant.PaginationDefaultPage
	}

	resultPageSize = pageSize
	if resultPageSize <= 0 {
		resultPageSize = constant.PaginationDefaultPageSize
	}

	if resultPageSize > constant.PaginationMaxPageSize {
		resultPageSize = constant.PaginationMaxPageSize
	}

	// (page-1)*pageSize must fit in an int.
	if maxPage := math.MaxInt / resultPageSize; resultPage > maxPage {
		resultPage = maxPage
	}

	return resultPage, resultPageSize
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns free text into a lower-cased LIKE pattern matching it anywhere.
func ContainsPattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
