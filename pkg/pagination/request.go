package pagination

import (
	"github.com/bytebury/ctrunner/pkg/constant"
	"github.com/bytebury/ctrunner/pkg/helper"
)

const (
	DefaultPageSize = constant.PaginationDefaultPageSize
	MaxPageSize     = constant.PaginationMaxPageSize
)

// Request is the raw paging input as it arrives from a transport. Zero or
// negative values mean the caller did not ask for anything specific.
type Request struct {
	Page     int `query:"page" json:"page"`
	PageSize int `query:"page_size" json:"page_size"`
}

// Params is a normalised Request: Page >= 1 and 1 <= PageSize <= MaxPageSize.
type Params struct {
	Page     int
	PageSize int
}

// Default is the first page with the default page size.
func Default() Request {
	return Request{}
}

func (r Request) Normalize() Params {
	page, pageSize := helper.DefaultPagination(r.Page, r.PageSize)

	return Params{
		Page:     page,
		PageSize: pageSize,
	}
}

func (p Params) Limit() int {
	return p.PageSize
}

func (p Params) Offset() int {
	return helper.CalculateOffset(p.Page, p.PageSize)
}
