package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=queries.go -destination=../mock/querier_mock.go -package=mock github.com/bytebury/ctrunner/internal/domains/races/repository Querier

type Querier interface {
	GetRaceByID(ctx context.Context, db postgres.DBTX, id int64) (RaceView, error)
	FindRace(ctx context.Context, db postgres.DBTX, townID int64, name string, startAt time.Time) (RaceView, error)
	CreateRace(ctx context.Context, db postgres.DBTX, arg CreateRaceParams) (RaceView, error)
	GetOrCreateRace(ctx context.Context, db postgres.DBTX, arg CreateRaceParams) (RaceView, error)
	SaveResult(ctx context.Context, db postgres.DBTX, arg SaveResultParams) error
	SubmitTownSearch(ctx context.Context, db postgres.DBTX, pattern string, townID int64) (pagination.Response[RaceView], error)
	SearchUpcoming(ctx context.Context, db postgres.DBTX, req pagination.Request, pattern string, townID *int64) (pagination.Response[RaceView], error)
}

type Queries struct{}

var _ Querier = (*Queries)(nil)

func New() *Queries {
	return &Queries{}
}

const getRaceByID = `SELECT * FROM races_view WHERE id = $1`

func (q *Queries) GetRaceByID(ctx context.Context, db postgres.DBTX, id int64) (RaceView, error) {
	rows, err := db.Query(ctx, getRaceByID, id)
	if err != nil {
		return RaceView{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[RaceView])
}

const findRace = `SELECT * FROM races_view WHERE town_id = $1 AND name = $2 AND start_at = $3`

func (q *Queries) FindRace(ctx context.Context, db postgres.DBTX, townID int64, name string, startAt time.Time) (RaceView, error) {
	rows, err := db.Query(ctx, findRace, townID, name, startAt)
	if err != nil {
		return RaceView{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[RaceView])
}

const createRace = `INSERT INTO races (town_id, name, miles, start_at, street_address, race_url)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (town_id, name, start_at) DO NOTHING
RETURNING id`

// CreateRace returns postgres.ErrAlreadyExists when the same race is already
// scheduled in the town. The conflict is absorbed so a surrounding
// transaction stays usable.
func (q *Queries) CreateRace(ctx context.Context, db postgres.DBTX, arg CreateRaceParams) (RaceView, error) {
	var id int64

	err := db.QueryRow(ctx, createRace,
		arg.TownID,
		arg.Name,
		arg.Miles,
		arg.StartAt,
		arg.StreetAddress,
		arg.RaceURL,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return RaceView{}, postgres.ErrAlreadyExists
	}

	if err != nil {
		return RaceView{}, err
	}

	return q.GetRaceByID(ctx, db, id)
}

func (q *Queries) GetOrCreateRace(ctx context.Context, db postgres.DBTX, arg CreateRaceParams) (RaceView, error) {
	race, err := q.FindRace(ctx, db, arg.TownID, arg.Name, arg.StartAt)
	if err == nil {
		return race, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return RaceView{}, err
	}

	return q.CreateRace(ctx, db, arg)
}

const saveResult = `INSERT INTO race_results (user_id, race_id, notes)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, race_id) DO UPDATE SET notes = EXCLUDED.notes`

func (q *Queries) SaveResult(ctx context.Context, db postgres.DBTX, arg SaveResultParams) error {
	_, err := db.Exec(ctx, saveResult, arg.UserID, arg.RaceID, arg.Notes)

	return err
}

// SubmitTownSearch lists a town's races matching pattern, latest first, on the default page.
func (q *Queries) SubmitTownSearch(ctx context.Context, db postgres.DBTX, pattern string, townID int64) (pagination.Response[RaceView], error) {
	return pagination.PaginateFilter[RaceView](ctx, db, pagination.Default(),
		pagination.Where("LOWER(name) LIKE ? AND town_id = ?::text::bigint ORDER BY start_at DESC"),
		pattern, strconv.FormatInt(townID, 10),
	)
}

// SearchUpcoming lists races that have not started yet, soonest first.
func (q *Queries) SearchUpcoming(ctx context.Context, db postgres.DBTX, req pagination.Request, pattern string, townID *int64) (pagination.Response[RaceView], error) {
	if townID == nil {
		return pagination.PaginateFilter[RaceView](ctx, db, req,
			pagination.Where("start_at >= NOW() AND LOWER(name) LIKE ? ORDER BY start_at ASC"),
			pattern,
		)
	}

	return pagination.PaginateFilter[RaceView](ctx, db, req,
		pagination.Where("start_at >= NOW() AND LOWER(name) LIKE ? AND town_id = ?::text::bigint ORDER BY start_at ASC"),
		pattern, strconv.FormatInt(*townID, 10),
	)
}
