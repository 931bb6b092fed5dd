package stadium

import "context"

// Repository describes stadium persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Stadium, bool, error)
	GetByName(ctx context.Context, name string) (Stadium, bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]Stadium, int, error)
	Create(ctx context.Context, item Stadium) (Stadium, error)
	Update(ctx context.Context, item Stadium) error
}
