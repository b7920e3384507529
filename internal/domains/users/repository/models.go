package repository

import (
	"time"

	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserView is a row of users_view: the user plus hometown and progress.
type UserView struct {
	ID                  int64       `db:"id"`
	RunnerID            pgtype.Int8 `db:"runner_id"`
	HometownID          pgtype.Int8 `db:"hometown_id"`
	Hometown            pgtype.Text `db:"hometown"`
	HometownCountyID    pgtype.Int8 `db:"hometown_county_id"`
	HometownCounty      pgtype.Text `db:"hometown_county"`
	CompletedTownsCount int64       `db:"completed_towns_count"`
	Email               string      `db:"email"`
	Verified            bool        `db:"verified"`
	FirstName           string      `db:"first_name"`
	LastName            string      `db:"last_name"`
	FullName            string      `db:"full_name"`
	ImageURL            string      `db:"image_url"`
	Role                string      `db:"role"`
	Locked              bool        `db:"locked"`
	CreatedAt           time.Time   `db:"created_at"`
	UpdatedAt           time.Time   `db:"updated_at"`
}

func (UserView) TableName() string {
	return "users_view"
}

func (u UserView) IsAdmin() bool {
	return u.Role == constant.UserRoleAdmin
}

// IsOrphan reports whether the user has not linked a runner id yet.
func (u UserView) IsOrphan() bool {
	return !u.RunnerID.Valid
}

type CreateUserParams struct {
	Email     string
	FullName  string
	FirstName string
	LastName  string
	ImageURL  string
	Verified  bool
}

type UpdateUserParams struct {
	ID     int64
	Role   string
	Locked bool
}

type UpdateRunnerInfoParams struct {
	UserID     int64
	RunnerID   int64
	FirstName  string
	LastName   string
	HometownID int64
}
