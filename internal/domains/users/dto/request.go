package dto

import "github.com/bytebury/ctrunner/pkg/gdto"

type SearchUsersRequest struct {
	gdto.PaginationRequest
	Search string `query:"search" json:"search" validate:"max=100"`
}

type UpdateRunnerInfoRequest struct {
	RunnerID   int64   `json:"runner_id" validate:"required"`
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name" validate:"required"`
	HometownID int64   `json:"hometown_id" validate:"required"`
	Towns      []int64 `json:"towns"`
}

type UpdateUserRequest struct {
	Role   string `json:"role" validate:"required,oneof=admin user"`
	Locked bool   `json:"locked"`
}
