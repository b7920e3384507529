package dto

import (
	"time"

	"github.com/bytebury/ctrunner/internal/domains/races/repository"
	"github.com/bytebury/ctrunner/pkg/helper"
	"github.com/bytebury/ctrunner/pkg/pagination"
)

type RaceResponse struct {
	ID            int64     `json:"id"`
	TownID        int64     `json:"town_id"`
	Name          string    `json:"name"`
	Town          string    `json:"town"`
	County        string    `json:"county"`
	Miles         float64   `json:"miles"`
	StreetAddress string    `json:"street_address,omitempty"`
	RaceURL       string    `json:"race_url,omitempty"`
	StartAt       time.Time `json:"start_at"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (r RaceResponse) FromModel(m repository.RaceView) RaceResponse {
	return RaceResponse{
		ID:            m.ID,
		TownID:        m.TownID,
		Name:          m.Name,
		Town:          m.Town,
		County:        m.County,
		Miles:         m.Miles,
		StreetAddress: helper.TextFromPg(m.StreetAddress),
		RaceURL:       helper.TextFromPg(m.RaceURL),
		StartAt:       m.StartAt,
	}
}

func RacesFromPage(page pagination.Response[repository.RaceView]) pagination.Response[RaceResponse] {
	return pagination.Map(page, func(m repository.RaceView) RaceResponse {
		return RaceResponse{}.FromModel(m)
	})
}
