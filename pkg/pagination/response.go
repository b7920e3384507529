package pagination

// Response is one page of T together with the totals for the whole result.
type Response[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

func NewResponse[T any](data []T, params Params, total int) Response[T] {
	if data == nil {
		data = []T{}
	}

	return Response[T]{
		Data:       data,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: total,
		TotalPages: TotalPages(total, params.PageSize),
	}
}

// Empty is the response for a result with no rows.
func Empty[T any](params Params) Response[T] {
	return NewResponse[T](nil, params, 0)
}

func (r Response[T]) HasNext() bool {
	return r.Page < r.TotalPages
}

func (r Response[T]) HasPrevious() bool {
	return r.Page > 1
}

// NextPage returns the following page number, or the current one on the last page.
func (r Response[T]) NextPage() int {
	if r.HasNext() {
		return r.Page + 1
	}

	return r.Page
}

// PreviousPage never goes below 1. Beyond the last page it points back at the last one.
func (r Response[T]) PreviousPage() int {
	if !r.HasPrevious() {
		return 1
	}

	if r.TotalPages > 0 && r.Page > r.TotalPages {
		return r.TotalPages
	}

	return r.Page - 1
}

// Map converts every row of r with fn and keeps the paging metadata.
func Map[T, U any](r Response[T], fn func(T) U) Response[U] {
	data := make([]U, 0, len(r.Data))
	for _, item := range r.Data {
		data = append(data, fn(item))
	}

	return Response[U]{
		Data:       data,
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalCount: r.TotalCount,
		TotalPages: r.TotalPages,
	}
}
