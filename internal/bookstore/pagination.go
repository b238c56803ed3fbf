package bookstore

import "github.com/mrlokans/bookshelf/internal/entities"

// Page is one slice of the store's books in insertion order.
type Page struct {
	Records      []entities.Book `json:"records"`
	TotalRecords int             `json:"total_records"`
	TotalPages   int             `json:"total_pages"`
	CurrentPage  int             `json:"current_page"`
	HasNext      bool            `json:"has_next"`
	HasPrevious  bool            `json:"has_previous"`
}

// paginate slices books for the requested page. The page is clamped into
// [1, totalPages], and to 1 when there are no books. A pageSize below 1 is
// treated as 1.
func paginate(books []entities.Book, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(books)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	current := page
	if current > totalPages {
		current = totalPages
	}
	if current < 1 {
		current = 1
	}

	// current <= totalPages keeps start within total; end is capped
	// without adding pageSize so huge sizes cannot overflow.
	start := (current - 1) * pageSize
	if start > total {
		start = total
	}
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}

	records := make([]entities.Book, end-start)
	copy(records, books[start:end])

	return Page{
		Records:      records,
		TotalRecords: total,
		TotalPages:   totalPages,
		CurrentPage:  current,
		HasNext:      current < totalPages,
		HasPrevious:  current > 1,
	}
}
