package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// FirstSet returns the first candidate that is non-nil and not the zero value, otherwise fallback.
func FirstSet[T comparable](fallback T, candidates ...*T) T {
	var zero T
	for _, c := range candidates {
		if c != nil && *c != zero {
			return *c
		}
	}
	return fallback
}
