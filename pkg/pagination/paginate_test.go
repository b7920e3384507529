package pagination

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fruit struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (fruit) TableName() string {
	return "fruits"
}

const (
	countAllSQL = `SELECT COUNT(*) FROM "fruits" WHERE TRUE`
	dataAllSQL  = `SELECT * FROM "fruits" WHERE TRUE LIMIT $1 OFFSET $2`
)

func TestPaginate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: empty table", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(countAllSQL)).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta(dataAllSQL)).
			WithArgs(20, 0).
			WillReturnRows(mock.NewRows([]string{"id", "name"}))

		res, err := Paginate[fruit](ctx, mock, Request{Page: 1, PageSize: 20})

		require.NoError(t, err)
		assert.NotNil(t, res.Data)
		assert.Empty(t, res.Data)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, 20, res.PageSize)
		assert.Equal(t, 0, res.TotalCount)
		assert.Equal(t, 0, res.TotalPages)
		assert.False(t, res.HasNext())
		assert.False(t, res.HasPrevious())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: last partial page", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(countAllSQL)).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(5)))
		mock.ExpectQuery(regexp.QuoteMeta(dataAllSQL)).
			WithArgs(2, 4).
			WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(int64(5), "Elderberry"))

		res, err := Paginate[fruit](ctx, mock, Request{Page: 3, PageSize: 2})

		require.NoError(t, err)
		assert.Equal(t, []fruit{{ID: 5, Name: "Elderberry"}}, res.Data)
		assert.Equal(t, 5, res.TotalCount)
		assert.Equal(t, 3, res.TotalPages)
		assert.False(t, res.HasNext())
		assert.True(t, res.HasPrevious())
		assert.Equal(t, 2, res.PreviousPage())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: beyond the last page", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(countAllSQL)).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(5)))
		mock.ExpectQuery(regexp.QuoteMeta(dataAllSQL)).
			WithArgs(2, 18).
			WillReturnRows(mock.NewRows([]string{"id", "name"}))

		res, err := Paginate[fruit](ctx, mock, Request{Page: 10, PageSize: 2})

		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.Equal(t, 10, res.Page)
		assert.Equal(t, 3, res.TotalPages)
		assert.Equal(t, 3, res.PreviousPage())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: huge page never yields a negative offset", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		lastPage := math.MaxInt / DefaultPageSize

		mock.ExpectQuery(regexp.QuoteMeta(countAllSQL)).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(5)))
		mock.ExpectQuery(regexp.QuoteMeta(dataAllSQL)).
			WithArgs(DefaultPageSize, (lastPage-1)*DefaultPageSize).
			WillReturnRows(mock.NewRows([]string{"id", "name"}))

		res, err := Paginate[fruit](ctx, mock, Request{Page: math.MaxInt / 10, PageSize: DefaultPageSize})

		require.NoError(t, err)
		assert.Empty(t, res.Data)
		assert.Equal(t, lastPage, res.Page)
		assert.Equal(t, 1, res.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: non-positive values fall back to defaults", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(countAllSQL)).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(1)))
		mock.ExpectQuery(regexp.QuoteMeta(dataAllSQL)).
			WithArgs(20, 0).
			WillReturnRows(mock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Apple"))

		res, err := Paginate[fruit](ctx, mock, Request{Page: -4, PageSize: 0})

		require.NoError(t, err)
		assert.Equal(t, 1, res.Page)
		assert.Equal(t, DefaultPageSize, res.PageSize)
		assert.Equal(t, 1, res.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: page size is capped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(countAllSQL)).
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta(dataAllSQL)).
			WithArgs(MaxPageSize, 0).
			WillReturnRows(mock.NewRows([]string{"id", "name"}))

		res, err := Paginate[fruit](ctx, mock, Request{Page: 1, PageSize: 5000})

		require.NoError(t, err)
		assert.Equal(t, MaxPageSize, res.PageSize)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaginateFilter(t *testing.T) {
	ctx := context.Background()

	const (
		countSQL = `SELECT COUNT(*) FROM "fruits" WHERE LOWER(name) LIKE $1`
		dataSQL  = `SELECT * FROM "fruits" WHERE LOWER(name) LIKE $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	)

	filter := Where("LOWER(name) LIKE ? ORDER BY name ASC")

	t.Run("success: case-insensitive prefix filter", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("ap%").
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(2)))
		mock.ExpectQuery(regexp.QuoteMeta(dataSQL)).
			WithArgs("ap%", 20, 0).
			WillReturnRows(mock.NewRows([]string{"id", "name"}).
				AddRow(int64(1), "Apple").
				AddRow(int64(2), "apricot"))

		res, err := PaginateFilter[fruit](ctx, mock, Default(), filter, "ap%")

		require.NoError(t, err)
		assert.Equal(t, []fruit{{ID: 1, Name: "Apple"}, {ID: 2, Name: "apricot"}}, res.Data)
		assert.Equal(t, 2, res.TotalCount)
		assert.Equal(t, 1, res.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: count query fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("relation does not exist")

		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("ap%").
			WillReturnError(dbErr)

		res, err := PaginateFilter[fruit](ctx, mock, Default(), filter, "ap%")

		var qErr *QueryError

		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, "fruits", qErr.Table)
		assert.Equal(t, OpCount, qErr.Op)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, res.Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: data query fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("connection reset")

		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("ap%").
			WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(2)))
		mock.ExpectQuery(regexp.QuoteMeta(dataSQL)).
			WithArgs("ap%", 20, 0).
			WillReturnError(dbErr)

		_, err = PaginateFilter[fruit](ctx, mock, Default(), filter, "ap%")

		var qErr *QueryError

		require.ErrorAs(t, err, &qErr)
		assert.Equal(t, OpSelect, qErr.Op)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panic: bind count mismatch", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		assert.Panics(t, func() {
			_, _ = PaginateFilter[fruit](ctx, mock, Default(), filter)
		})
		assert.Panics(t, func() {
			_, _ = PaginateFilter[fruit](ctx, mock, Default(), filter, "a%", "b%")
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBuildQueries(t *testing.T) {
	t.Run("integer columns and schema qualified tables", func(t *testing.T) {
		q := buildQueries("public.completed_towns_view", Where("user_id = ?::text::bigint ORDER BY completed_at DESC"))

		assert.Equal(t, `SELECT COUNT(*) FROM "public"."completed_towns_view" WHERE user_id = $1::text::bigint`, q.count)
		assert.Equal(t,
			`SELECT * FROM "public"."completed_towns_view" WHERE user_id = $1::text::bigint ORDER BY completed_at DESC LIMIT $2 OFFSET $3`,
			q.data)
	})

	t.Run("order by without predicate", func(t *testing.T) {
		q := buildQueries("towns_view", Where("ORDER BY name"))

		assert.Equal(t, `SELECT COUNT(*) FROM "towns_view" WHERE TRUE`, q.count)
		assert.Equal(t, `SELECT * FROM "towns_view" WHERE TRUE ORDER BY name LIMIT $1 OFFSET $2`, q.data)
	})
}
