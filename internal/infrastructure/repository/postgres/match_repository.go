package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/neocamp/partidas-futebol/internal/domain/match"
	qb "github.com/neocamp/partidas-futebol/internal/platform/querybuilder"
)

// stadiumDayIndex backs the stadium daily uniqueness rule at the database
// level, for deployments running more than one process.
const stadiumDayIndex = "matches_stadium_play_date_key"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByClub(ctx context.Context, clubID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Or(
			qb.Eq("home_club_id", clubID),
			qb.Eq("away_club_id", clubID),
		)).
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by club query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by club: %w", err)
	}

	return toDomainMatches(rows), nil
}

func (r *MatchRepository) ListByStadium(ctx context.Context, stadiumID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("stadium_id", stadiumID)).
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by stadium query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by stadium: %w", err)
	}

	return toDomainMatches(rows), nil
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter, limit, offset int) ([]match.Match, int, error) {
	conditions := matchListConditions(filter)

	countQuery, countArgs, err := qb.Select("COUNT(1)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count matches query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("played_at", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select matches: %w", err)
	}

	return toDomainMatches(rows), total, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertInto("matches").
		Columns("home_club_id", "away_club_id", "home_goals", "away_goals", "stadium_id", "played_at").
		Values(item.HomeClubID, item.AwayClubID, item.HomeGoals, item.AwayGoals, item.StadiumID, item.PlayedAt.UTC()).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		if isUniqueViolation(err, stadiumDayIndex) {
			return match.Match{}, fmt.Errorf("%w: stadium=%d", match.ErrStadiumTaken, item.StadiumID)
		}
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("home_club_id", item.HomeClubID).
		Set("away_club_id", item.AwayClubID).
		Set("home_goals", item.HomeGoals).
		Set("away_goals", item.AwayGoals).
		Set("stadium_id", item.StadiumID).
		Set("played_at", item.PlayedAt.UTC()).
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, stadiumDayIndex) {
			return fmt.Errorf("%w: stadium=%d", match.ErrStadiumTaken, item.StadiumID)
		}
		return fmt.Errorf("update match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

func matchListConditions(filter match.Filter) []qb.Condition {
	var conditions []qb.Condition
	if filter.HomeClubID != nil {
		conditions = append(conditions, qb.Eq("home_club_id", *filter.HomeClubID))
	}
	if filter.AwayClubID != nil {
		conditions = append(conditions, qb.Eq("away_club_id", *filter.AwayClubID))
	}
	if filter.StadiumID != nil {
		conditions = append(conditions, qb.Eq("stadium_id", *filter.StadiumID))
	}
	return conditions
}

func toDomainMatches(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
