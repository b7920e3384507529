package dto

type SubmitTownRequest struct {
	TownID        int64   `json:"town_id" validate:"required"`
	RaceName      string  `json:"race_name" validate:"required,max=100"`
	RaceDate      string  `json:"race_date" validate:"required,datetime=2006-01-02"`
	Distance      float64 `json:"distance" validate:"required,gt=0"`
	Unit          string  `json:"unit" validate:"omitempty,max=16"`
	StreetAddress string  `json:"street_address" validate:"omitempty,max=200"`
	RaceURL       string  `json:"race_url" validate:"omitempty,url"`
	Notes         string  `json:"notes" validate:"omitempty,max=500"`
}
