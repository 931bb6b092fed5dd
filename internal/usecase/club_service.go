package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

// ClubInput carries the writable fields of a club.
type ClubInput struct {
	Name      string
	State     string
	FoundedOn time.Time
	Active    bool
}

type ClubService struct {
	clubRepo club.Repository
	logger   *logging.Logger

	now func() time.Time
}

func NewClubService(clubRepo club.Repository, logger *logging.Logger) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ClubService{
		clubRepo: clubRepo,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ClubService) Create(ctx context.Context, input ClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Create")
	defer span.End()

	item := club.Club{
		Name:      strings.TrimSpace(input.Name),
		State:     club.NormalizeState(input.State),
		FoundedOn: input.FoundedOn,
		Active:    input.Active,
	}
	if err := item.Validate(s.now()); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkNameAvailable(ctx, item.Name, item.State, 0); err != nil {
		return club.Club{}, err
	}

	created, err := s.clubRepo.Create(ctx, item)
	if err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}

	s.logger.InfoContext(ctx, "club created", "club_id", created.ID, "name", created.Name, "state", created.State)
	return created, nil
}

func (s *ClubService) Get(ctx context.Context, id int64) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Get")
	defer span.End()

	item, exists, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club by id: %w", err)
	}
	if !exists {
		return club.Club{}, fmt.Errorf("%w: club=%d", ErrNotFound, id)
	}

	return item, nil
}

func (s *ClubService) Update(ctx context.Context, id int64, input ClubInput) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Update")
	defer span.End()

	existing, err := s.Get(ctx, id)
	if err != nil {
		return club.Club{}, err
	}

	item := club.Club{
		ID:        existing.ID,
		Name:      strings.TrimSpace(input.Name),
		State:     club.NormalizeState(input.State),
		FoundedOn: input.FoundedOn,
		Active:    input.Active,
	}
	if err := item.Validate(s.now()); err != nil {
		return club.Club{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkNameAvailable(ctx, item.Name, item.State, item.ID); err != nil {
		return club.Club{}, err
	}

	if err := s.clubRepo.Update(ctx, item); err != nil {
		return club.Club{}, fmt.Errorf("update club: %w", err)
	}

	return item, nil
}

// Deactivate soft-deletes a club. Its record and match history remain.
func (s *ClubService) Deactivate(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Deactivate")
	defer span.End()

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.clubRepo.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("deactivate club: %w", err)
	}

	s.logger.InfoContext(ctx, "club deactivated", "club_id", id)
	return nil
}

func (s *ClubService) List(ctx context.Context, filter club.ListFilter, page PageRequest) (Page[club.Club], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.List")
	defer span.End()

	if filter.State != "" && !club.IsValidState(filter.State) {
		return Page[club.Club]{}, fmt.Errorf("%w: state %q is not a Brazilian federative unit", ErrInvalidInput, filter.State)
	}
	filter.Name = strings.TrimSpace(filter.Name)
	filter.State = club.NormalizeState(filter.State)

	page = page.normalize()
	limit, offset := page.limitOffset()
	items, total, err := s.clubRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return Page[club.Club]{}, fmt.Errorf("list clubs: %w", err)
	}

	return newPage(items, page, total), nil
}

func (s *ClubService) checkNameAvailable(ctx context.Context, name, state string, selfID int64) error {
	other, exists, err := s.clubRepo.GetByNameAndState(ctx, name, state)
	if err != nil {
		return fmt.Errorf("check club name uniqueness: %w", err)
	}
	if exists && other.ID != selfID {
		return fmt.Errorf("%w: club %q already exists in %s", ErrConflict, name, state)
	}

	return nil
}
