package usecase

import (
	"errors"
	"testing"

	"github.com/neocamp/partidas-futebol/internal/infrastructure/repository/memory"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

func newStadiumService() *StadiumService {
	return NewStadiumService(memory.NewStadiumRepository(memory.SeedStadiums()), logging.NewNop())
}

func TestStadiumService_Create(t *testing.T) {
	service := newStadiumService()

	created, err := service.Create(t.Context(), "  Mineirão ")
	if err != nil {
		t.Fatalf("create stadium failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected created stadium to have an id")
	}
	if created.Name != "Mineirão" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestStadiumService_Create_ShortName(t *testing.T) {
	service := newStadiumService()

	if _, err := service.Create(t.Context(), "Ab"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStadiumService_Create_DuplicateName(t *testing.T) {
	service := newStadiumService()

	if _, err := service.Create(t.Context(), "maracanã"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate name, got %v", err)
	}
}

func TestStadiumService_Get_NotFound(t *testing.T) {
	service := newStadiumService()

	if _, err := service.Get(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStadiumService_Update(t *testing.T) {
	service := newStadiumService()

	updated, err := service.Update(t.Context(), memory.StadiumIDMorumbi, "MorumBIS")
	if err != nil {
		t.Fatalf("update stadium failed: %v", err)
	}
	if updated.Name != "MorumBIS" {
		t.Fatalf("unexpected updated name: %q", updated.Name)
	}

	// Renaming to its own current name is not a conflict.
	if _, err := service.Update(t.Context(), memory.StadiumIDMorumbi, "MorumBIS"); err != nil {
		t.Fatalf("idempotent rename failed: %v", err)
	}

	if _, err := service.Update(t.Context(), memory.StadiumIDMorumbi, "Maracanã"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict when taking another stadium's name, got %v", err)
	}
}

func TestStadiumService_Update_NotFound(t *testing.T) {
	service := newStadiumService()

	if _, err := service.Update(t.Context(), 9999, "Mineirão"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStadiumService_List(t *testing.T) {
	service := newStadiumService()

	page, err := service.List(t.Context(), PageRequest{Page: 1, PageSize: 1})
	if err != nil {
		t.Fatalf("list stadiums failed: %v", err)
	}
	if page.TotalItems != 2 {
		t.Fatalf("expected 2 stadiums, got %d", page.TotalItems)
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 stadium on first page, got %d", len(page.Items))
	}
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}
}
