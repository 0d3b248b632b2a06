package leaderboard

// Meta describes one page of a paginated list.
type Meta struct {
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Paginate slices a ranked list. page < 1 becomes 1; perPage < 1 falls
// back to the default and is capped at MaxPerPage. A page past the end
// yields an empty slice, not an error.
func Paginate(entries []Entry, page, perPage int) ([]Entry, Meta) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	total := len(entries)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	meta := Meta{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     perPage,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	return entries[start:end], meta
}
