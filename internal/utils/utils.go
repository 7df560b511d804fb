package utils

// Ternary returns a when cond holds, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// Plural picks the singular or plural noun for n.
func Plural(n int, singular, plural string) string {
	return Ternary(n == 1, singular, plural)
}
