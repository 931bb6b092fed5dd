package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

type StadiumService struct {
	stadiumRepo stadium.Repository
	logger      *logging.Logger
}

func NewStadiumService(stadiumRepo stadium.Repository, logger *logging.Logger) *StadiumService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StadiumService{
		stadiumRepo: stadiumRepo,
		logger:      logger,
	}
}

func (s *StadiumService) Create(ctx context.Context, name string) (stadium.Stadium, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StadiumService.Create")
	defer span.End()

	item := stadium.Stadium{Name: strings.TrimSpace(name)}
	if err := item.Validate(); err != nil {
		return stadium.Stadium{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkNameAvailable(ctx, item.Name, 0); err != nil {
		return stadium.Stadium{}, err
	}

	created, err := s.stadiumRepo.Create(ctx, item)
	if err != nil {
		return stadium.Stadium{}, fmt.Errorf("create stadium: %w", err)
	}

	s.logger.InfoContext(ctx, "stadium created", "stadium_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *StadiumService) Get(ctx context.Context, id int64) (stadium.Stadium, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StadiumService.Get")
	defer span.End()

	item, exists, err := s.stadiumRepo.GetByID(ctx, id)
	if err != nil {
		return stadium.Stadium{}, fmt.Errorf("get stadium by id: %w", err)
	}
	if !exists {
		return stadium.Stadium{}, fmt.Errorf("%w: stadium=%d", ErrNotFound, id)
	}

	return item, nil
}

func (s *StadiumService) Update(ctx context.Context, id int64, name string) (stadium.Stadium, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StadiumService.Update")
	defer span.End()

	existing, err := s.Get(ctx, id)
	if err != nil {
		return stadium.Stadium{}, err
	}

	item := stadium.Stadium{ID: existing.ID, Name: strings.TrimSpace(name)}
	if err := item.Validate(); err != nil {
		return stadium.Stadium{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.checkNameAvailable(ctx, item.Name, item.ID); err != nil {
		return stadium.Stadium{}, err
	}

	if err := s.stadiumRepo.Update(ctx, item); err != nil {
		return stadium.Stadium{}, fmt.Errorf("update stadium: %w", err)
	}

	return item, nil
}

func (s *StadiumService) List(ctx context.Context, page PageRequest) (Page[stadium.Stadium], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StadiumService.List")
	defer span.End()

	page = page.normalize()
	limit, offset := page.limitOffset()
	items, total, err := s.stadiumRepo.List(ctx, limit, offset)
	if err != nil {
		return Page[stadium.Stadium]{}, fmt.Errorf("list stadiums: %w", err)
	}

	return newPage(items, page, total), nil
}

func (s *StadiumService) checkNameAvailable(ctx context.Context, name string, selfID int64) error {
	other, exists, err := s.stadiumRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("check stadium name uniqueness: %w", err)
	}
	if exists && other.ID != selfID {
		return fmt.Errorf("%w: stadium %q already exists", ErrConflict, name)
	}

	return nil
}
