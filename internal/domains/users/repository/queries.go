package repository

import (
	"context"

	"github.com/bytebury/ctrunner/pkg/pagination"
	"github.com/bytebury/ctrunner/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=queries.go -destination=../mock/querier_mock.go -package=mock github.com/bytebury/ctrunner/internal/domains/users/repository Querier

type Querier interface {
	GetUserByID(ctx context.Context, db postgres.DBTX, id int64) (UserView, error)
	GetUserByRunnerID(ctx context.Context, db postgres.DBTX, runnerID int64) (UserView, error)
	GetUserByEmail(ctx context.Context, db postgres.DBTX, email string) (UserView, error)
	CreateUser(ctx context.Context, db postgres.DBTX, arg CreateUserParams) (UserView, error)
	UpdateUser(ctx context.Context, db postgres.DBTX, arg UpdateUserParams) (UserView, error)
	UpdateRunnerInfo(ctx context.Context, db postgres.DBTX, arg UpdateRunnerInfoParams) error
	SearchMembers(ctx context.Context, db postgres.DBTX, req pagination.Request, pattern string) (pagination.Response[UserView], error)
	SearchAll(ctx context.Context, db postgres.DBTX, req pagination.Request, pattern string) (pagination.Response[UserView], error)
}

type Queries struct{}

var _ Querier = (*Queries)(nil)

func New() *Queries {
	return &Queries{}
}

const getUserByID = `SELECT * FROM users_view WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db postgres.DBTX, id int64) (UserView, error) {
	return queryOne(ctx, db, getUserByID, id)
}

const getUserByRunnerID = `SELECT * FROM users_view WHERE runner_id = $1`

func (q *Queries) GetUserByRunnerID(ctx context.Context, db postgres.DBTX, runnerID int64) (UserView, error) {
	return queryOne(ctx, db, getUserByRunnerID, runnerID)
}

const getUserByEmail = `SELECT * FROM users_view WHERE email = LOWER($1)`

func (q *Queries) GetUserByEmail(ctx context.Context, db postgres.DBTX, email string) (UserView, error) {
	return queryOne(ctx, db, getUserByEmail, email)
}

const createUser = `INSERT INTO users (email, full_name, first_name, last_name, image_url, verified)
VALUES (LOWER($1), LOWER($2), LOWER($3), LOWER($4), $5, $6)
RETURNING id`

func (q *Queries) CreateUser(ctx context.Context, db postgres.DBTX, arg CreateUserParams) (UserView, error) {
	var id int64

	err := db.QueryRow(ctx, createUser,
		arg.Email,
		arg.FullName,
		arg.FirstName,
		arg.LastName,
		arg.ImageURL,
		arg.Verified,
	).Scan(&id)
	if err != nil {
		return UserView{}, err
	}

	return q.GetUserByID(ctx, db, id)
}

const updateUser = `UPDATE users SET role = $1, locked = $2, updated_at = NOW() WHERE id = $3`

func (q *Queries) UpdateUser(ctx context.Context, db postgres.DBTX, arg UpdateUserParams) (UserView, error) {
	tag, err := db.Exec(ctx, updateUser, arg.Role, arg.Locked, arg.ID)
	if err != nil {
		return UserView{}, err
	}

	if tag.RowsAffected() == 0 {
		return UserView{}, pgx.ErrNoRows
	}

	return q.GetUserByID(ctx, db, arg.ID)
}

const updateRunnerInfo = `UPDATE users
SET first_name = $1, last_name = $2, runner_id = $3, hometown_id = $4, full_name = $5, updated_at = NOW()
WHERE id = $6`

func (q *Queries) UpdateRunnerInfo(ctx context.Context, db postgres.DBTX, arg UpdateRunnerInfoParams) error {
	tag, err := db.Exec(ctx, updateRunnerInfo,
		arg.FirstName,
		arg.LastName,
		arg.RunnerID,
		arg.HometownID,
		arg.FirstName+" "+arg.LastName,
		arg.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// SearchMembers pages through members with a runner id whose name or email matches pattern.
func (q *Queries) SearchMembers(ctx context.Context, db postgres.DBTX, req pagination.Request, pattern string) (pagination.Response[UserView], error) {
	return pagination.PaginateFilter[UserView](ctx, db, req,
		pagination.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?) AND runner_id IS NOT NULL ORDER BY full_name ASC"),
		pattern, pattern,
	)
}

// SearchAll is SearchMembers including users who never linked a runner id.
func (q *Queries) SearchAll(ctx context.Context, db postgres.DBTX, req pagination.Request, pattern string) (pagination.Response[UserView], error) {
	return pagination.PaginateFilter[UserView](ctx, db, req,
		pagination.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?) ORDER BY full_name ASC"),
		pattern, pattern,
	)
}

func queryOne(ctx context.Context, db postgres.DBTX, sql string, args ...any) (UserView, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return UserView{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[UserView])
}
