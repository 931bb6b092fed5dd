package postgres

import (
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/match"
)

type matchTableModel struct {
	ID         int64     `db:"id"`
	HomeClubID int64     `db:"home_club_id"`
	AwayClubID int64     `db:"away_club_id"`
	HomeGoals  int       `db:"home_goals"`
	AwayGoals  int       `db:"away_goals"`
	StadiumID  int64     `db:"stadium_id"`
	PlayedAt   time.Time `db:"played_at"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		HomeClubID: m.HomeClubID,
		AwayClubID: m.AwayClubID,
		HomeGoals:  m.HomeGoals,
		AwayGoals:  m.AwayGoals,
		StadiumID:  m.StadiumID,
		PlayedAt:   m.PlayedAt.UTC(),
	}
}
