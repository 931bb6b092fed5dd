package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	qb "github.com/neocamp/partidas-futebol/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, id int64) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club by id query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubRepository) GetByNameAndState(ctx context.Context, name, state string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(
			qb.Expr("LOWER(name) = LOWER(?)", name),
			qb.Eq("state", state),
		).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build get club by name query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("get club by name and state: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *ClubRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM clubs WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("check club exists: %w", err)
	}

	return exists, nil
}

func (r *ClubRepository) List(ctx context.Context, filter club.ListFilter, limit, offset int) ([]club.Club, int, error) {
	conditions := clubListConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(1)").From("clubs").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count clubs query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count clubs: %w", err)
	}

	query, args, err := qb.Select("*").From("clubs").
		Where(conditions...).
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, total, nil
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) (club.Club, error) {
	query, args, err := qb.InsertInto("clubs").
		Columns("name", "state", "founded_on", "active").
		Values(item.Name, item.State, item.FoundedOn, item.Active).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return club.Club{}, fmt.Errorf("build insert club query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return club.Club{}, fmt.Errorf("insert club: %w", err)
	}

	return item, nil
}

func (r *ClubRepository) Update(ctx context.Context, item club.Club) error {
	query, args, err := qb.Update("clubs").
		Set("name", item.Name).
		Set("state", item.State).
		Set("founded_on", item.FoundedOn).
		Set("active", item.Active).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update club query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update club: %w", err)
	}

	return nil
}

func (r *ClubRepository) SetActive(ctx context.Context, id int64, active bool) error {
	query, args, err := qb.Update("clubs").
		Set("active", active).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set club active query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set club active: %w", err)
	}

	return nil
}

func clubListConditions(filter club.ListFilter) []qb.Condition {
	var conditions []qb.Condition
	if filter.Name != "" {
		conditions = append(conditions, qb.ILike("name", "%"+filter.Name+"%"))
	}
	if filter.State != "" {
		conditions = append(conditions, qb.Eq("state", filter.State))
	}
	if filter.Active != nil {
		conditions = append(conditions, qb.Eq("active", *filter.Active))
	}
	return conditions
}
