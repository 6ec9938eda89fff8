package model

// Page is a generic paginated result slice, one shape shared by every
// search target.
type Page[T any] struct {
	Items      []T
	Page       int
	PerPage    int
	TotalPages int
}
