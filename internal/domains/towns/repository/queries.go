package repository

import (
	"context"
	"strconv"

	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=queries.go -destination=../mock/querier_mock.go -package=mock github.com/bytebury/ctrunner/internal/domains/towns/repository Querier

type Querier interface {
	ListTowns(ctx context.Context, db postgres.DBTX) ([]Town, error)
	GetTownByID(ctx context.Context, db postgres.DBTX, id int64) (Town, error)
	GetTownByName(ctx context.Context, db postgres.DBTX, name string) (Town, error)
	ListCompletedTowns(ctx context.Context, db postgres.DBTX, userID int64) ([]CompletedTown, error)
	CompletedTownsPage(ctx context.Context, db postgres.DBTX, req pagination.Request, userID int64) (pagination.Response[CompletedTown], error)
	MarkCompleted(ctx context.Context, db postgres.DBTX, userID, townID int64) (bool, error)
}

type Queries struct{}

var _ Querier = (*Queries)(nil)

func New() *Queries {
	return &Queries{}
}

const listTowns = `SELECT * FROM towns_view ORDER BY name ASC`

func (q *Queries) ListTowns(ctx context.Context, db postgres.DBTX) ([]Town, error) {
	rows, err := db.Query(ctx, listTowns)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[Town])
}

const getTownByID = `SELECT * FROM towns_view WHERE id = $1`

func (q *Queries) GetTownByID(ctx context.Context, db postgres.DBTX, id int64) (Town, error) {
	rows, err := db.Query(ctx, getTownByID, id)
	if err != nil {
		return Town{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Town])
}

const getTownByName = `SELECT * FROM towns_view WHERE name = LOWER($1) OR LOWER(display_name) = LOWER($1) LIMIT 1`

func (q *Queries) GetTownByName(ctx context.Context, db postgres.DBTX, name string) (Town, error) {
	rows, err := db.Query(ctx, getTownByName, name)
	if err != nil {
		return Town{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Town])
}

const listCompletedTowns = `SELECT * FROM completed_towns_view WHERE user_id = $1 ORDER BY completed_at DESC`

func (q *Queries) ListCompletedTowns(ctx context.Context, db postgres.DBTX, userID int64) ([]CompletedTown, error) {
	rows, err := db.Query(ctx, listCompletedTowns, userID)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[CompletedTown])
}

// CompletedTownsPage pages through a user's completed towns, newest first.
func (q *Queries) CompletedTownsPage(ctx context.Context, db postgres.DBTX, req pagination.Request, userID int64) (pagination.Response[CompletedTown], error) {
	return pagination.PaginateFilter[CompletedTown](ctx, db, req,
		pagination.Where("user_id = ?::text::bigint ORDER BY completed_at DESC"),
		strconv.FormatInt(userID, 10),
	)
}

const markCompleted = `INSERT INTO completed_towns (user_id, town_id) VALUES ($1, $2) ON CONFLICT (user_id, town_id) DO NOTHING`

// MarkCompleted reports false when the town was already completed.
func (q *Queries) MarkCompleted(ctx context.Context, db postgres.DBTX, userID, townID int64) (bool, error) {
	tag, err := db.Exec(ctx, markCompleted, userID, townID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
