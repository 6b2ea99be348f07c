package storage

// Window returns the [start, end) bounds of page over n items, clamped to
// [0, n]. page and limit must be >= 1. Large values never overflow: a
// page that starts past the end yields start == end == n.
func Window(n, page, limit int) (start, end int) {
	if n <= 0 {
		return 0, 0
	}
	// (page-1)*limit >= n  <=>  page-1 >= ceil(n/limit)
	if page-1 >= (n-1)/limit+1 {
		return n, n
	}
	start = (page - 1) * limit
	end = start + limit
	if end > n || end < start {
		end = n
	}
	return start, end
}

// Paginate returns the page of items selected by Window. The result is a
// fresh slice (never nil) so callers may hand it out without aliasing the
// backing store.
func Paginate[T any](items []T, page, limit int) []T {
	start, end := Window(len(items), page, limit)
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
