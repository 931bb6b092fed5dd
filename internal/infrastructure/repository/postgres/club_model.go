package postgres

import (
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
)

type clubTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	State     string    `db:"state"`
	FoundedOn time.Time `db:"founded_on"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m clubTableModel) toDomain() club.Club {
	return club.Club{
		ID:        m.ID,
		Name:      m.Name,
		State:     m.State,
		FoundedOn: m.FoundedOn,
		Active:    m.Active,
	}
}
