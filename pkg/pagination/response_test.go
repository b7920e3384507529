package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	t.Run("empty result", func(t *testing.T) {
		res := Empty[fruit](Request{}.Normalize())

		assert.NotNil(t, res.Data)
		assert.Equal(t, 0, res.TotalPages)

		raw, err := json.Marshal(res)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[],"page":1,"page_size":20,"total_count":0,"total_pages":0}`, string(raw))
	})

	t.Run("navigation in the middle", func(t *testing.T) {
		res := NewResponse([]fruit{{ID: 3}, {ID: 4}}, Params{Page: 2, PageSize: 2}, 5)

		assert.Equal(t, 3, res.TotalPages)
		assert.True(t, res.HasNext())
		assert.True(t, res.HasPrevious())
		assert.Equal(t, 3, res.NextPage())
		assert.Equal(t, 1, res.PreviousPage())
	})

	t.Run("first page", func(t *testing.T) {
		res := NewResponse([]fruit{{ID: 1}}, Params{Page: 1, PageSize: 1}, 1)

		assert.False(t, res.HasNext())
		assert.Equal(t, 1, res.NextPage())
		assert.Equal(t, 1, res.PreviousPage())
	})
}

func TestMap(t *testing.T) {
	res := NewResponse([]fruit{{ID: 1, Name: "Apple"}, {ID: 2, Name: "apricot"}}, Params{Page: 1, PageSize: 20}, 2)

	names := Map(res, func(f fruit) string { return f.Name })

	assert.Equal(t, []string{"Apple", "apricot"}, names.Data)
	assert.Equal(t, res.TotalCount, names.TotalCount)
	assert.Equal(t, res.TotalPages, names.TotalPages)
	assert.Equal(t, res.Page, names.Page)
}
