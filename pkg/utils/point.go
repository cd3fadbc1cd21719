package utils

// Point returns a pointer of the given value.
func Point[T any](v T) *T {
	return &v
}
