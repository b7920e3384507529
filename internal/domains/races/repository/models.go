package repository

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type RaceView struct {
	ID            int64       `db:"id"`
	TownID        int64       `db:"town_id"`
	Name          string      `db:"name"`
	Town          string      `db:"town"`
	County        string      `db:"county"`
	Miles         float64     `db:"miles"`
	StreetAddress pgtype.Text `db:"street_address"`
	RaceURL       pgtype.Text `db:"race_url"`
	StartAt       time.Time   `db:"start_at"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

func (RaceView) TableName() string {
	return "races_view"
}

type CreateRaceParams struct {
	TownID        int64
	Name          string
	Miles         float64
	StartAt       time.Time
	StreetAddress pgtype.Text
	RaceURL       pgtype.Text
}

type SaveResultParams struct {
	UserID int64
	RaceID int64
	Notes  pgtype.Text
}
