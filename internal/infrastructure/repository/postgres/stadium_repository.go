package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
	qb "github.com/neocamp/partidas-futebol/internal/platform/querybuilder"
)

type StadiumRepository struct {
	db *sqlx.DB
}

func NewStadiumRepository(db *sqlx.DB) *StadiumRepository {
	return &StadiumRepository{db: db}
}

func (r *StadiumRepository) GetByID(ctx context.Context, id int64) (stadium.Stadium, bool, error) {
	query, args, err := qb.Select("*").From("stadiums").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return stadium.Stadium{}, false, fmt.Errorf("build get stadium by id query: %w", err)
	}

	var row stadiumTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stadium.Stadium{}, false, nil
		}
		return stadium.Stadium{}, false, fmt.Errorf("get stadium by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *StadiumRepository) GetByName(ctx context.Context, name string) (stadium.Stadium, bool, error) {
	query, args, err := qb.Select("*").From("stadiums").
		Where(qb.Expr("LOWER(name) = LOWER(?)", name)).
		ToSQL()
	if err != nil {
		return stadium.Stadium{}, false, fmt.Errorf("build get stadium by name query: %w", err)
	}

	var row stadiumTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stadium.Stadium{}, false, nil
		}
		return stadium.Stadium{}, false, fmt.Errorf("get stadium by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *StadiumRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM stadiums WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("check stadium exists: %w", err)
	}

	return exists, nil
}

func (r *StadiumRepository) List(ctx context.Context, limit, offset int) ([]stadium.Stadium, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(1) FROM stadiums`); err != nil {
		return nil, 0, fmt.Errorf("count stadiums: %w", err)
	}

	query, args, err := qb.Select("*").From("stadiums").
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select stadiums query: %w", err)
	}

	var rows []stadiumTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select stadiums: %w", err)
	}

	out := make([]stadium.Stadium, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, total, nil
}

func (r *StadiumRepository) Create(ctx context.Context, item stadium.Stadium) (stadium.Stadium, error) {
	query, args, err := qb.InsertInto("stadiums").
		Columns("name").
		Values(item.Name).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return stadium.Stadium{}, fmt.Errorf("build insert stadium query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return stadium.Stadium{}, fmt.Errorf("insert stadium: %w", err)
	}

	return item, nil
}

func (r *StadiumRepository) Update(ctx context.Context, item stadium.Stadium) error {
	query, args, err := qb.Update("stadiums").
		Set("name", item.Name).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update stadium query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update stadium: %w", err)
	}

	return nil
}
