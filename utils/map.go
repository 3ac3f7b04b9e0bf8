package utils

func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, v := range ts {
		us[i] = f(v)
	}
	return us
}

// Filter keeps the elements for which keep returns true, preserving order.
func Filter[T any](ts []T, keep func(T) bool) []T {
	out := make([]T, 0, len(ts))
	for _, v := range ts {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
