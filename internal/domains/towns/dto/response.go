package dto

import (
	"net/url"
	"time"

	"github.com/bytebury/ctrunner/internal/domains/towns/repository"
	"github.com/bytebury/ctrunner/pkg/pagination"
)

type TownResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	CountyID int64  `json:"county_id"`
	County   string `json:"county"`
	// Completed is only set for authenticated callers.
	Completed bool `json:"completed,omitempty"`
}

type CompletedTownResponse struct {
	TownID      int64     `json:"town_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	County      string    `json:"county"`
	CompletedAt time.Time `json:"completed_at"`
}

// SubmitTownResponse is the prefilled society form. The client posts
// Answers to FormURL.
type SubmitTownResponse struct {
	FormURL        string     `json:"form_url"`
	Answers        url.Values `json:"answers"`
	Town           string     `json:"town"`
	Miles          float64    `json:"miles"`
	NewlyCompleted bool       `json:"newly_completed"`
	LastTown       bool       `json:"last_town"`
}

func (t TownResponse) FromModel(m repository.Town) TownResponse {
	return TownResponse{
		ID:       m.ID,
		Name:     m.DisplayName,
		Slug:     m.Name,
		CountyID: m.CountyID,
		County:   m.County,
	}
}

func TownsFromModel(towns []repository.Town) []TownResponse {
	res := make([]TownResponse, 0, len(towns))
	for _, t := range towns {
		res = append(res, TownResponse{}.FromModel(t))
	}

	return res
}

// MarkCompleted returns a copy of towns with Completed set for every town in
// completed.
func MarkCompleted(towns []TownResponse, completed []CompletedTownResponse) []TownResponse {
	done := make(map[int64]struct{}, len(completed))
	for _, c := range completed {
		done[c.TownID] = struct{}{}
	}

	res := make([]TownResponse, len(towns))
	for i, t := range towns {
		_, t.Completed = done[t.ID]
		res[i] = t
	}

	return res
}

func (c CompletedTownResponse) FromModel(m repository.CompletedTown) CompletedTownResponse {
	return CompletedTownResponse{
		TownID:      m.TownID,
		Name:        m.DisplayName,
		Slug:        m.Name,
		County:      m.County,
		CompletedAt: m.CompletedAt,
	}
}

func CompletedFromModel(towns []repository.CompletedTown) []CompletedTownResponse {
	res := make([]CompletedTownResponse, 0, len(towns))
	for _, t := range towns {
		res = append(res, CompletedTownResponse{}.FromModel(t))
	}

	return res
}

func CompletedFromPage(page pagination.Response[repository.CompletedTown]) pagination.Response[CompletedTownResponse] {
	return pagination.Map(page, func(m repository.CompletedTown) CompletedTownResponse {
		return CompletedTownResponse{}.FromModel(m)
	})
}
