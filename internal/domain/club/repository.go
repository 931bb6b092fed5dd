package club

import "context"

// ListFilter narrows club listings. Zero values mean "no filter".
type ListFilter struct {
	Name   string
	State  string
	Active *bool
}

// Repository describes club persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Club, bool, error)
	GetByNameAndState(ctx context.Context, name, state string) (Club, bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]Club, int, error)
	Create(ctx context.Context, item Club) (Club, error)
	Update(ctx context.Context, item Club) error
	SetActive(ctx context.Context, id int64, active bool) error
}
