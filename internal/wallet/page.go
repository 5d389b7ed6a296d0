package wallet

// Page is pagination metadata passed through from the server-side query. It
// never re-slices a record set: the repository already returned one page, and
// slicing again would double-paginate.
type Page struct {
	CurrentPage int   `json:"page"`
	PageSize    int   `json:"limit"`
	TotalItems  int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
}

// NewPage builds pagination metadata for a page/limit window over total rows.
func NewPage(page, limit int, total int64) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Page{
		CurrentPage: page,
		PageSize:    limit,
		TotalItems:  total,
		TotalPages:  totalPages,
	}
}
