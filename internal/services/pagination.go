package services

const (
	DefaultPageLimit     = 45
	MaxPageLimit         = 60
	DefaultNewLimit      = 10
	DefaultFeaturedLimit = 30
)

// normalizeLimit applies the default when limit is absent or not positive
// and clamps the result to MaxPageLimit.
func normalizeLimit(limit *int, fallback int) int {
	l := fallback
	if limit != nil && *limit > 0 {
		l = *limit
	}
	if l > MaxPageLimit {
		l = MaxPageLimit
	}
	return l
}

func normalizeOffset(offset *int) int {
	if offset == nil || *offset < 0 {
		return 0
	}
	return *offset
}
