package pagination

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytebury/ctrunner/pkg/helper"
	"github.com/jackc/pgx/v5"
)

// Entity is a row type that can be paginated. TableName must be declared on
// the value receiver and may be schema qualified ("public.users_view").
type Entity interface {
	TableName() string
}

// Querier is the subset of pgx used by the engine. *pgxpool.Pool, pgx.Tx
// and pgxmock pools all satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Paginate returns one page of every row of T's table.
func Paginate[T Entity](ctx context.Context, db Querier, req Request) (Response[T], error) {
	return PaginateFilter[T](ctx, db, req, Fragment{})
}

// PaginateFilter runs a COUNT query and a page query for the rows of T's
// table matching filter. binds are bound positionally into both queries and
// must match the fragment's placeholder count.
func PaginateFilter[T Entity](ctx context.Context, db Querier, req Request, filter Fragment, binds ...string) (Response[T], error) {
	if len(binds) != filter.placeholders {
		panic(fmt.Sprintf("pagination: fragment %q has %d placeholders but %d binds were given",
			filter.String(), filter.placeholders, len(binds)))
	}

	var entity T

	table := entity.TableName()
	params := req.Normalize()
	q := buildQueries(table, filter)

	args := make([]any, 0, len(binds)+2)
	for _, b := range binds {
		args = append(args, b)
	}

	var total int64
	if err := db.QueryRow(ctx, q.count, args...).Scan(&total); err != nil {
		return Response[T]{}, &QueryError{Table: table, Op: OpCount, Err: err}
	}

	args = append(args, params.Limit(), params.Offset())

	rows, err := db.Query(ctx, q.data, args...)
	if err != nil {
		return Response[T]{}, &QueryError{Table: table, Op: OpSelect, Err: err}
	}

	data, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return Response[T]{}, &QueryError{Table: table, Op: OpScan, Err: err}
	}

	return NewResponse(data, params, int(total)), nil
}

type queries struct {
	count string
	data  string
}

func buildQueries(table string, filter Fragment) queries {
	from := sanitizeTable(table)
	where := filter.whereClause()

	var data strings.Builder

	data.WriteString("SELECT * FROM ")
	data.WriteString(from)
	data.WriteString(" WHERE ")
	data.WriteString(where)

	if filter.orderBy != "" {
		data.WriteString(" ")
		data.WriteString(filter.orderBy)
	}

	data.WriteString(" LIMIT $")
	data.WriteString(strconv.Itoa(filter.placeholders + 1))
	data.WriteString(" OFFSET $")
	data.WriteString(strconv.Itoa(filter.placeholders + 2))

	return queries{
		count: "SELECT COUNT(*) FROM " + from + " WHERE " + where,
		data:  data.String(),
	}
}

func sanitizeTable(table string) string {
	return pgx.Identifier(strings.Split(table, ".")).Sanitize()
}

// TotalPages is ceil(total / pageSize), zero for an empty result.
func TotalPages(total, pageSize int) int {
	return helper.CalculateTotalPages(total, pageSize)
}
