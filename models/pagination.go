package models

import "math"

const (
	// DefaultPageSize is used when a request does not specify a page size.
	DefaultPageSize = 10

	// MaxPageSize caps the page size a client can request.
	MaxPageSize = 100

	// MaxPage keeps the row offset of any page within int range.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest is a 1-based page selector.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize clamps the request into a valid range: 1 <= Page <= [MaxPage]
// and 1 <= PageSize <= [MaxPageSize]. A zero or negative page size becomes
// [DefaultPageSize].
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of rows preceding the requested page.
func (p PageRequest) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// PaginationData is one page of a list, embedded as data in an [ApiResponse].
type PaginationData[T any] struct {
	List       []T `json:"list"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationData assembles a page. TotalPages is ceil(total/pageSize);
// a nil list is replaced with an empty one so that it serializes as [].
func NewPaginationData[T any](list []T, total int, req PageRequest) PaginationData[T] {
	req = req.Normalize()
	if list == nil {
		list = []T{}
	}
	if len(list) > req.PageSize {
		list = list[:req.PageSize]
	}

	return PaginationData[T]{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: TotalPages(total, req.PageSize),
	}
}

// TotalPages returns ceil(total/pageSize), or 0 for a non-positive page size.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
