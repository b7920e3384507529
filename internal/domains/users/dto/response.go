package dto

import (
	"time"

	"github.com/bytebury/ctrunner/internal/domains/users/repository"
	"github.com/bytebury/ctrunner/pkg/helper"
	"github.com/bytebury/ctrunner/pkg/pagination"
)

type UserResponse struct {
	ID                  int64     `json:"id"`
	RunnerID            *int64    `json:"runner_id"`
	HometownID          *int64    `json:"hometown_id"`
	Hometown            string    `json:"hometown,omitempty"`
	HometownCounty      string    `json:"hometown_county,omitempty"`
	CompletedTownsCount int64     `json:"completed_towns_count"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	FullName            string    `json:"full_name"`
	ImageURL            string    `json:"image_url"`
	CreatedAt           time.Time `json:"created_at"`
}

// UserAdminResponse adds the fields only admins and the user themself may see.
type UserAdminResponse struct {
	UserResponse
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	Role      string    `json:"role"`
	Locked    bool      `json:"locked"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u UserResponse) FromModel(m repository.UserView) UserResponse {
	return UserResponse{
		ID:                  m.ID,
		RunnerID:            helper.Int8FromPg(m.RunnerID),
		HometownID:          helper.Int8FromPg(m.HometownID),
		Hometown:            helper.TextFromPg(m.Hometown),
		HometownCounty:      helper.TextFromPg(m.HometownCounty),
		CompletedTownsCount: m.CompletedTownsCount,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		FullName:            m.FullName,
		ImageURL:            m.ImageURL,
		CreatedAt:           m.CreatedAt,
	}
}

func (u UserAdminResponse) FromModel(m repository.UserView) UserAdminResponse {
	return UserAdminResponse{
		UserResponse: UserResponse{}.FromModel(m),
		Email:        m.Email,
		Verified:     m.Verified,
		Role:         m.Role,
		Locked:       m.Locked,
		UpdatedAt:    m.UpdatedAt,
	}
}

func MembersFromPage(page pagination.Response[repository.UserView]) pagination.Response[UserResponse] {
	return pagination.Map(page, func(m repository.UserView) UserResponse {
		return UserResponse{}.FromModel(m)
	})
}

func UsersFromPage(page pagination.Response[repository.UserView]) pagination.Response[UserAdminResponse] {
	return pagination.Map(page, func(m repository.UserView) UserAdminResponse {
		return UserAdminResponse{}.FromModel(m)
	})
}
