package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	"github.com/neocamp/partidas-futebol/internal/infrastructure/repository/memory"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

func newClubService() (*ClubService, *memory.ClubRepository) {
	clubRepo := memory.NewClubRepository(memory.SeedClubs())
	return NewClubService(clubRepo, logging.NewNop()), clubRepo
}

func TestClubService_Create(t *testing.T) {
	service, _ := newClubService()

	created, err := service.Create(t.Context(), ClubInput{
		Name:      "  Santos ",
		State:     "sp",
		FoundedOn: time.Date(1912, 4, 14, 0, 0, 0, 0, time.UTC),
		Active:    true,
	})
	if err != nil {
		t.Fatalf("create club failed: %v", err)
	}

	if created.ID == 0 {
		t.Fatalf("expected created club to have an id")
	}
	if created.Name != "Santos" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.State != "SP" {
		t.Fatalf("expected normalized state SP, got %q", created.State)
	}
}

func TestClubService_Create_InvalidInput(t *testing.T) {
	service, _ := newClubService()
	foundedOn := time.Date(1912, 4, 14, 0, 0, 0, 0, time.UTC)

	t.Run("short name", func(t *testing.T) {
		_, err := service.Create(t.Context(), ClubInput{Name: "S", State: "SP", FoundedOn: foundedOn, Active: true})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := service.Create(t.Context(), ClubInput{Name: "Santos", State: "XX", FoundedOn: foundedOn, Active: true})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("future founding date", func(t *testing.T) {
		service.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
		_, err := service.Create(t.Context(), ClubInput{Name: "Santos", State: "SP", FoundedOn: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), Active: true})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestClubService_Create_DuplicateNameInState(t *testing.T) {
	service, _ := newClubService()
	foundedOn := time.Date(1910, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.Create(t.Context(), ClubInput{Name: "corinthians", State: "SP", FoundedOn: foundedOn, Active: true})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate name in state, got %v", err)
	}

	// Same name in another state is a different club.
	if _, err := service.Create(t.Context(), ClubInput{Name: "Corinthians", State: "RJ", FoundedOn: foundedOn, Active: true}); err != nil {
		t.Fatalf("create club in another state failed: %v", err)
	}
}

func TestClubService_Get_NotFound(t *testing.T) {
	service, _ := newClubService()

	if _, err := service.Get(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClubService_Update(t *testing.T) {
	service, clubRepo := newClubService()

	updated, err := service.Update(t.Context(), memory.ClubIDBahia, ClubInput{
		Name:      "Esporte Clube Bahia",
		State:     "BA",
		FoundedOn: time.Date(1931, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	})
	if err != nil {
		t.Fatalf("update club failed: %v", err)
	}
	if updated.Name != "Esporte Clube Bahia" {
		t.Fatalf("unexpected updated name: %q", updated.Name)
	}

	stored, exists, _ := clubRepo.GetByID(t.Context(), memory.ClubIDBahia)
	if !exists || stored.Name != "Esporte Clube Bahia" {
		t.Fatalf("expected repository to hold updated name, got %q", stored.Name)
	}
}

func TestClubService_Update_Reactivates(t *testing.T) {
	service, clubRepo := newClubService()

	if err := service.Deactivate(t.Context(), memory.ClubIDGremio); err != nil {
		t.Fatalf("deactivate club failed: %v", err)
	}

	stored, _, _ := clubRepo.GetByID(t.Context(), memory.ClubIDGremio)
	if stored.Active {
		t.Fatalf("expected club to be inactive after deactivation")
	}

	// A full update can flip the club back on.
	updated, err := service.Update(t.Context(), memory.ClubIDGremio, ClubInput{
		Name:      stored.Name,
		State:     stored.State,
		FoundedOn: stored.FoundedOn,
		Active:    true,
	})
	if err != nil {
		t.Fatalf("update club failed: %v", err)
	}
	if !updated.Active {
		t.Fatalf("expected club to be active again")
	}
}

func TestClubService_Deactivate_NotFound(t *testing.T) {
	service, _ := newClubService()

	if err := service.Deactivate(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClubService_List(t *testing.T) {
	service, _ := newClubService()

	t.Run("no filter returns everything", func(t *testing.T) {
		page, err := service.List(t.Context(), club.ListFilter{}, PageRequest{})
		if err != nil {
			t.Fatalf("list clubs failed: %v", err)
		}
		if page.TotalItems != 4 {
			t.Fatalf("expected 4 clubs, got %d", page.TotalItems)
		}
	})

	t.Run("state filter", func(t *testing.T) {
		page, err := service.List(t.Context(), club.ListFilter{State: "rj"}, PageRequest{})
		if err != nil {
			t.Fatalf("list clubs failed: %v", err)
		}
		if page.TotalItems != 1 || page.Items[0].Name != "Vasco da Gama" {
			t.Fatalf("unexpected RJ clubs: %+v", page.Items)
		}
	})

	t.Run("name filter matches substring", func(t *testing.T) {
		page, err := service.List(t.Context(), club.ListFilter{Name: "gama"}, PageRequest{})
		if err != nil {
			t.Fatalf("list clubs failed: %v", err)
		}
		if page.TotalItems != 1 {
			t.Fatalf("expected 1 club matching %q, got %d", "gama", page.TotalItems)
		}
	})

	t.Run("active filter", func(t *testing.T) {
		if err := service.Deactivate(t.Context(), memory.ClubIDBahia); err != nil {
			t.Fatalf("deactivate club failed: %v", err)
		}

		inactive := false
		page, err := service.List(t.Context(), club.ListFilter{Active: &inactive}, PageRequest{})
		if err != nil {
			t.Fatalf("list clubs failed: %v", err)
		}
		if page.TotalItems != 1 || page.Items[0].ID != memory.ClubIDBahia {
			t.Fatalf("unexpected inactive clubs: %+v", page.Items)
		}
	})

	t.Run("invalid state filter", func(t *testing.T) {
		if _, err := service.List(t.Context(), club.ListFilter{State: "ZZ"}, PageRequest{}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		page, err := service.List(t.Context(), club.ListFilter{}, PageRequest{Page: 2, PageSize: 3})
		if err != nil {
			t.Fatalf("list clubs failed: %v", err)
		}
		if len(page.Items) != 1 {
			t.Fatalf("expected 1 club on second page, got %d", len(page.Items))
		}
		if page.TotalPages != 2 {
			t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
		}
	})
}
