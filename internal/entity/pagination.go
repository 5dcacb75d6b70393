package entity

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination is the envelope returned with every list response. HasMore is a
// heuristic: a full page is assumed to have a successor, so the last page of
// an exact multiple of the page size reports a false positive once.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

func NewPagination(page, pageSize, resultCount int) Pagination {
	return Pagination{
		Page:    page,
		Limit:   pageSize,
		HasMore: resultCount == pageSize,
	}
}

// ValidatePage rejects out-of-range pagination instead of clamping it.
func ValidatePage(page, pageSize int) error {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return ErrInvalidPagination
	}
	return nil
}

func PageOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
