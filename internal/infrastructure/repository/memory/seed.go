package memory

import (
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
)

const (
	ClubIDCorinthians = int64(1)
	ClubIDVasco       = int64(2)
	ClubIDGremio      = int64(3)
	ClubIDBahia       = int64(4)

	StadiumIDMorumbi  = int64(1)
	StadiumIDMaracana = int64(2)
)

func SeedClubs() []club.Club {
	return []club.Club{
		{ID: ClubIDCorinthians, Name: "Corinthians", State: "SP", FoundedOn: time.Date(1910, 9, 1, 0, 0, 0, 0, time.UTC), Active: true},
		{ID: ClubIDVasco, Name: "Vasco da Gama", State: "RJ", FoundedOn: time.Date(1898, 8, 21, 0, 0, 0, 0, time.UTC), Active: true},
		{ID: ClubIDGremio, Name: "Grêmio", State: "RS", FoundedOn: time.Date(1903, 9, 15, 0, 0, 0, 0, time.UTC), Active: true},
		{ID: ClubIDBahia, Name: "Bahia", State: "BA", FoundedOn: time.Date(1931, 1, 1, 0, 0, 0, 0, time.UTC), Active: true},
	}
}

func SeedStadiums() []stadium.Stadium {
	return []stadium.Stadium{
		{ID: StadiumIDMorumbi, Name: "Morumbi"},
		{ID: StadiumIDMaracana, Name: "Maracanã"},
	}
}
