package results

import "context"

// Filters narrows a results search. Empty fields impose no constraint; set
// fields are combined with AND. Search matches participant id or name,
// case-insensitive substring. Event and Category are exact matches.
type Filters struct {
	Search   string
	Event    string
	Category string
}

// Store is the persistence boundary for competition results.
type Store interface {
	Search(ctx context.Context, f Filters) ([]Result, error)
	Create(ctx context.Context, r NewResult) (int64, error)
	Update(ctx context.Context, id int64, r NewResult) error
	Delete(ctx context.Context, id int64) error
}
