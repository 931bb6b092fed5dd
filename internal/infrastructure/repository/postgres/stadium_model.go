package postgres

import (
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
)

type stadiumTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m stadiumTableModel) toDomain() stadium.Stadium {
	return stadium.Stadium{ID: m.ID, Name: m.Name}
}
