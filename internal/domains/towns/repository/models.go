package repository

import "time"

type Town struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	DisplayName string `db:"display_name"`
	CountyID    int64  `db:"county_id"`
	County      string `db:"county"`
}

func (Town) TableName() string {
	return "towns_view"
}

type CompletedTown struct {
	UserID      int64     `db:"user_id"`
	TownID      int64     `db:"town_id"`
	Name        string    `db:"name"`
	DisplayName string    `db:"display_name"`
	County      string    `db:"county"`
	CompletedAt time.Time `db:"completed_at"`
}

func (CompletedTown) TableName() string {
	return "completed_towns_view"
}
