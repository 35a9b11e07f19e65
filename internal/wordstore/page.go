package wordstore

import "vocabtracker/internal/domain"

// Paginate returns the 1-indexed page of view.
// Pages outside [1, PageCount] are empty; a non-positive pageSize falls back to the default.
func Paginate(view []domain.WordEntry, page, pageSize int) []domain.WordEntry {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	// Checked before multiplying so huge pages or sizes cannot overflow
	if page < 1 || page > PageCount(len(view), pageSize) {
		return []domain.WordEntry{}
	}

	start := (page - 1) * pageSize
	end := len(view)
	if pageSize < end-start {
		end = start + pageSize
	}
	return view[start:end:end]
}

// PageCount returns ceil(n / pageSize); zero entries means zero pages
func PageCount(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n-1)/pageSize + 1
}
