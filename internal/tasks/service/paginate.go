package service

import "errors"

// DefaultPageSize is the number of tasks per page.
const DefaultPageSize = 5

var ErrPageNotFound = errors.New("page not found")

// Page locates one page of a listing.
type Page struct {
	Number     int
	Offset     int
	Limit      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate computes the window for page (1-based) over totalRows rows. An
// empty listing still has one page.
func Paginate(totalRows, page, pageSize int) (Page, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := max((totalRows+pageSize-1)/pageSize, 1)
	if page < 1 || page > totalPages {
		return Page{}, ErrPageNotFound
	}

	return Page{
		Number:     page,
		Offset:     (page - 1) * pageSize,
		Limit:      pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
