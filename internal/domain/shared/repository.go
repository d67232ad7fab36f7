package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for all repositories
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter Filter) (int64, error)
}

// OwnedRepository is a repository whose rows are scoped to an owning user.
// The owner scope is applied before filtering and counting.
type OwnedRepository[T any] interface {
	Repository[T]
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*T, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filter Filter) ([]T, error)
	CountForUser(ctx context.Context, userID uuid.UUID, filter Filter) (int64, error)
	DeleteForUser(ctx context.Context, userID, id uuid.UUID) error
}

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 10,
		OrderBy:  "created_at",
		OrderDir: "asc",
	}
}

// Normalize clamps the filter into a usable range. A page of zero or less
// would underflow the offset computation, so it is clamped to page 1.
func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
	if f.OrderDir != "desc" {
		f.OrderDir = "asc"
	}
	return f
}

// Offset returns the row offset for the normalized filter
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize
}

// Page represents one window of a filtered, sorted listing together with
// the pagination markers the API exposes.
type Page[T any] struct {
	Previous     *int  `json:"previous"`
	Next         *int  `json:"next"`
	TotalResults int64 `json:"total_results"`
	Results      []T   `json:"results"`
}

// NewPage builds a result page. Previous is nil on page 1; Next is nil once
// the current window reaches the end of the filtered total.
func NewPage[T any](results []T, total int64, filter Filter) Page[T] {
	filter = filter.Normalize()

	var prev, next *int
	if filter.Page > 1 {
		p := filter.Page - 1
		prev = &p
	}
	if int64(filter.Offset()+len(results)) < total {
		n := filter.Page + 1
		next = &n
	}
	return Page[T]{
		Previous:     prev,
		Next:         next,
		TotalResults: total,
		Results:      results,
	}
}
