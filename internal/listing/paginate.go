package listing

// DefaultPageSize matches the page size used by the admin screens.
const DefaultPageSize = 10

// TotalPages returns the number of pages for a filtered count.
// Never zero: an empty result still renders "Page 1 of 1".
func TotalPages(filteredCount, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (filteredCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices a filtered sequence into one 1-indexed page.
//
// The last page may be shorter than pageSize. A page beyond totalPages
// yields an empty slice: pages are never silently clamped. Callers gate
// navigation via HasPrev/HasNext instead.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := TotalPages(len(items), pageSize)

	if page < 1 || page > totalPages {
		return []T{}, totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		return []T{}, totalPages
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
