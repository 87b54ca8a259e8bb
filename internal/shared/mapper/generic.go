// Package mapper holds small generic slice helpers used when converting
// between stored records and API shapes.
package mapper

// MapSlice applies mapFunc to each element. The result is never nil so it
// encodes as an empty JSON array.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// Filter returns the elements for which keep reports true, in order.
// The result is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// Find returns the first element for which match reports true.
func Find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
