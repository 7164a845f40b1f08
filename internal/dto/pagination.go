package dto

const (
	// DefaultLimit is the page size used when none or an invalid one is given
	DefaultLimit = 20
	// MaxLimit caps the page size
	MaxLimit = 100
)

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Page converts limit/offset into a 1-based page number
func Page(limit, offset int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}
