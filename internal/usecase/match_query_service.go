package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	"github.com/neocamp/partidas-futebol/internal/domain/match"
	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

// MatchQueryService serves read-only match lookups and filtered listings.
type MatchQueryService struct {
	clubRepo    club.Repository
	stadiumRepo stadium.Repository
	matchRepo   match.Repository
	logger      *logging.Logger
}

func NewMatchQueryService(
	clubRepo club.Repository,
	stadiumRepo stadium.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *MatchQueryService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchQueryService{
		clubRepo:    clubRepo,
		stadiumRepo: stadiumRepo,
		matchRepo:   matchRepo,
		logger:      logger,
	}
}

func (s *MatchQueryService) Get(ctx context.Context, id int64) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchQueryService.Get")
	defer span.End()

	item, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return MatchDetails{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return MatchDetails{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}

	details, err := s.resolveDetails(ctx, []match.Match{item})
	if err != nil {
		return MatchDetails{}, err
	}

	return details[0], nil
}

// List verifies each provided filter id and returns one page of matches.
// Filters combine as a conjunction; with no filters the page is unfiltered.
func (s *MatchQueryService) List(ctx context.Context, filter match.Filter, page PageRequest) (Page[MatchDetails], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchQueryService.List")
	defer span.End()

	if err := s.checkFilterReferences(ctx, filter); err != nil {
		return Page[MatchDetails]{}, err
	}

	page = page.normalize()
	limit, offset := page.limitOffset()
	items, total, err := s.matchRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return Page[MatchDetails]{}, fmt.Errorf("list matches: %w", err)
	}

	details, err := s.resolveDetails(ctx, items)
	if err != nil {
		return Page[MatchDetails]{}, err
	}

	return newPage(details, page, total), nil
}

// checkFilterReferences runs the existence checks for the non-nil filter
// ids concurrently; the first missing reference wins.
func (s *MatchQueryService) checkFilterReferences(ctx context.Context, filter match.Filter) error {
	checks := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()

	if filter.HomeClubID != nil {
		id := *filter.HomeClubID
		checks.Go(func(ctx context.Context) error {
			return s.checkClubExists(ctx, id, "home club")
		})
	}
	if filter.AwayClubID != nil {
		id := *filter.AwayClubID
		checks.Go(func(ctx context.Context) error {
			return s.checkClubExists(ctx, id, "away club")
		})
	}
	if filter.StadiumID != nil {
		id := *filter.StadiumID
		checks.Go(func(ctx context.Context) error {
			exists, err := s.stadiumRepo.ExistsByID(ctx, id)
			if err != nil {
				return fmt.Errorf("check stadium exists: %w", err)
			}
			if !exists {
				return fmt.Errorf("%w: stadium=%d", ErrNotFound, id)
			}
			return nil
		})
	}

	return checks.Wait()
}

func (s *MatchQueryService) checkClubExists(ctx context.Context, id int64, role string) error {
	exists, err := s.clubRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s exists: %w", role, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s=%d", ErrNotFound, role, id)
	}

	return nil
}

// resolveDetails joins club and stadium names onto matches, fetching each
// referenced entity once.
func (s *MatchQueryService) resolveDetails(ctx context.Context, items []match.Match) ([]MatchDetails, error) {
	clubNames := make(map[int64]string)
	stadiumNames := make(map[int64]string)

	clubName := func(id int64) (string, error) {
		if name, ok := clubNames[id]; ok {
			return name, nil
		}
		item, exists, err := s.clubRepo.GetByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("resolve club name: %w", err)
		}
		if exists {
			clubNames[id] = item.Name
		}
		return clubNames[id], nil
	}

	out := make([]MatchDetails, 0, len(items))
	for _, item := range items {
		homeName, err := clubName(item.HomeClubID)
		if err != nil {
			return nil, err
		}
		awayName, err := clubName(item.AwayClubID)
		if err != nil {
			return nil, err
		}

		stadiumName, ok := stadiumNames[item.StadiumID]
		if !ok {
			venue, exists, err := s.stadiumRepo.GetByID(ctx, item.StadiumID)
			if err != nil {
				return nil, fmt.Errorf("resolve stadium name: %w", err)
			}
			if exists {
				stadiumNames[item.StadiumID] = venue.Name
				stadiumName = venue.Name
			}
		}

		out = append(out, MatchDetails{
			Match:        item,
			HomeClubName: homeName,
			AwayClubName: awayName,
			StadiumName:  stadiumName,
		})
	}

	return out, nil
}
