package dto

import "github.com/bytebury/ctrunner/pkg/gdto"

type SearchRacesRequest struct {
	gdto.PaginationRequest
	RaceName string `query:"race_name" json:"race_name" validate:"max=100"`
	TownID   int64  `query:"town_id" json:"town_id" validate:"omitempty,min=1,max=169"`
}

type SubmitTownSearchRequest struct {
	RaceName string `query:"race_name" json:"race_name" validate:"max=100"`
	TownID   int64  `query:"town_id" json:"town_id" validate:"required,min=1,max=169"`
}

type CreateRaceRequest struct {
	TownID        int64  `json:"town_id" validate:"required,min=1,max=169"`
	Name          string `json:"name" validate:"required,max=100"`
	Distance      string `json:"distance" validate:"required,max=32"`
	StartAt       string `json:"start_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	StreetAddress string `json:"street_address" validate:"omitempty,max=200"`
	RaceURL       string `json:"race_url" validate:"omitempty,url"`
}
