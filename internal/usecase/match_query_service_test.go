package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/match"
	"github.com/neocamp/partidas-futebol/internal/infrastructure/repository/memory"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

func newMatchQueryService(seed []match.Match) *MatchQueryService {
	return NewMatchQueryService(
		memory.NewClubRepository(memory.SeedClubs()),
		memory.NewStadiumRepository(memory.SeedStadiums()),
		memory.NewMatchRepository(seed),
		logging.NewNop(),
	)
}

func seedMatches() []match.Match {
	base := time.Date(2025, 3, 1, 16, 0, 0, 0, time.UTC)
	return []match.Match{
		{ID: 1, HomeClubID: memory.ClubIDCorinthians, AwayClubID: memory.ClubIDVasco, HomeGoals: 2, AwayGoals: 1, StadiumID: memory.StadiumIDMorumbi, PlayedAt: base},
		{ID: 2, HomeClubID: memory.ClubIDGremio, AwayClubID: memory.ClubIDBahia, HomeGoals: 0, AwayGoals: 0, StadiumID: memory.StadiumIDMaracana, PlayedAt: base.Add(72 * time.Hour)},
		{ID: 3, HomeClubID: memory.ClubIDVasco, AwayClubID: memory.ClubIDGremio, HomeGoals: 1, AwayGoals: 3, StadiumID: memory.StadiumIDMaracana, PlayedAt: base.Add(144 * time.Hour)},
	}
}

func TestMatchQueryService_Get(t *testing.T) {
	service := newMatchQueryService(seedMatches())

	details, err := service.Get(t.Context(), 1)
	if err != nil {
		t.Fatalf("get match failed: %v", err)
	}
	if details.HomeClubName != "Corinthians" || details.AwayClubName != "Vasco da Gama" {
		t.Fatalf("unexpected resolved club names: %q vs %q", details.HomeClubName, details.AwayClubName)
	}
	if details.StadiumName != "Morumbi" {
		t.Fatalf("unexpected resolved stadium name: %q", details.StadiumName)
	}
}

func TestMatchQueryService_Get_NotFound(t *testing.T) {
	service := newMatchQueryService(nil)

	if _, err := service.Get(t.Context(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchQueryService_List(t *testing.T) {
	service := newMatchQueryService(seedMatches())

	t.Run("no filter returns everything in schedule order", func(t *testing.T) {
		page, err := service.List(t.Context(), match.Filter{}, PageRequest{})
		if err != nil {
			t.Fatalf("list matches failed: %v", err)
		}
		if page.TotalItems != 3 {
			t.Fatalf("expected 3 matches, got %d", page.TotalItems)
		}
		for i := 1; i < len(page.Items); i++ {
			if page.Items[i].Match.PlayedAt.Before(page.Items[i-1].Match.PlayedAt) {
				t.Fatalf("expected matches ordered by kickoff time")
			}
		}
	})

	t.Run("stadium filter", func(t *testing.T) {
		stadiumID := memory.StadiumIDMaracana
		page, err := service.List(t.Context(), match.Filter{StadiumID: &stadiumID}, PageRequest{})
		if err != nil {
			t.Fatalf("list matches failed: %v", err)
		}
		if page.TotalItems != 2 {
			t.Fatalf("expected 2 matches at stadium, got %d", page.TotalItems)
		}
	})

	t.Run("filters combine as a conjunction", func(t *testing.T) {
		homeID := memory.ClubIDVasco
		stadiumID := memory.StadiumIDMaracana
		page, err := service.List(t.Context(), match.Filter{HomeClubID: &homeID, StadiumID: &stadiumID}, PageRequest{})
		if err != nil {
			t.Fatalf("list matches failed: %v", err)
		}
		if page.TotalItems != 1 || page.Items[0].Match.ID != 3 {
			t.Fatalf("unexpected filtered matches: %+v", page.Items)
		}
	})

	t.Run("unknown filter reference", func(t *testing.T) {
		homeID := int64(9999)
		if _, err := service.List(t.Context(), match.Filter{HomeClubID: &homeID}, PageRequest{}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := service.List(t.Context(), match.Filter{}, PageRequest{Page: 2, PageSize: 2})
		if err != nil {
			t.Fatalf("list matches failed: %v", err)
		}
		if len(page.Items) != 1 {
			t.Fatalf("expected 1 match on second page, got %d", len(page.Items))
		}
		if page.TotalPages != 2 {
			t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
		}
	})
}
