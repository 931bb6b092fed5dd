package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	// ListByClub returns every match in which the club participates,
	// whether as the home or the away side.
	ListByClub(ctx context.Context, clubID int64) ([]Match, error)
	ListByStadium(ctx context.Context, stadiumID int64) ([]Match, error)
	List(ctx context.Context, filter Filter, limit, offset int) ([]Match, int, error)
	Create(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, item Match) error
	Delete(ctx context.Context, id int64) error
}
