package gdto

import "github.com/bytebury/ctrunner/pkg/pagination"

// PaginationRequest only parses. Out of range values are normalised by
// pagination.Request.Normalize, not rejected.
type PaginationRequest struct {
	Page     int `json:"page" query:"page"`
	PageSize int `json:"page_size" query:"page_size"`
}

func (p PaginationRequest) ToPagination() pagination.Request {
	return pagination.Request{
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
