package view

// TotalPages is max(1, ceil(count / pageSize)).
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Clamp bounds page to [1, totalPages].
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Slice returns items [(page-1)*pageSize, page*pageSize) clipped to len(items).
// Out-of-range pages yield an empty slice, never a panic.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
