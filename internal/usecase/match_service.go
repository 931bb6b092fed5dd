package usecase

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
	"github.com/neocamp/partidas-futebol/internal/domain/match"
	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
	"github.com/neocamp/partidas-futebol/internal/platform/logging"
)

// MatchDetails is a match with its references resolved to names.
type MatchDetails struct {
	Match        match.Match
	HomeClubName string
	AwayClubName string
	StadiumName  string
}

// MatchService decides whether a proposed match can be persisted and owns
// every match write. Validation runs in a fixed order and stops at the
// first failure; nothing is written until every rule passes.
type MatchService struct {
	clubRepo    club.Repository
	stadiumRepo stadium.Repository
	matchRepo   match.Repository
	logger      *logging.Logger

	// writeGate serializes history reads and writes for the schedule
	// conflict rules. Two proposals that each pass validation in
	// isolation must not both commit.
	writeGate sync.Mutex
}

func NewMatchService(
	clubRepo club.Repository,
	stadiumRepo stadium.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		clubRepo:    clubRepo,
		stadiumRepo: stadiumRepo,
		matchRepo:   matchRepo,
		logger:      logger,
	}
}

type matchReferences struct {
	home    club.Club
	away    club.Club
	stadium stadium.Stadium
}

func (s *MatchService) Create(ctx context.Context, proposal match.Proposal) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item, refs, err := s.validateProposal(ctx, proposal)
	if err != nil {
		return MatchDetails{}, err
	}

	s.writeGate.Lock()
	defer s.writeGate.Unlock()

	if err := s.checkScheduleConflicts(ctx, item, 0); err != nil {
		return MatchDetails{}, err
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		if crerr.Is(err, match.ErrStadiumTaken) {
			return MatchDetails{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return MatchDetails{}, crerr.Wrap(err, "create match")
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"match_id", created.ID,
		"home_club_id", created.HomeClubID,
		"away_club_id", created.AwayClubID,
		"stadium_id", created.StadiumID,
		"played_at", created.PlayedAt,
	)
	return newMatchDetails(created, refs), nil
}

// Update re-runs the full rule set against the proposal, excluding the
// match being updated from the schedule conflict set.
func (s *MatchService) Update(ctx context.Context, id int64, proposal match.Proposal) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	if _, err := s.getExisting(ctx, id); err != nil {
		return MatchDetails{}, err
	}

	item, refs, err := s.validateProposal(ctx, proposal)
	if err != nil {
		return MatchDetails{}, err
	}
	item.ID = id

	s.writeGate.Lock()
	defer s.writeGate.Unlock()

	if err := s.checkScheduleConflicts(ctx, item, id); err != nil {
		return MatchDetails{}, err
	}

	if err := s.matchRepo.Update(ctx, item); err != nil {
		if crerr.Is(err, match.ErrStadiumTaken) {
			return MatchDetails{}, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return MatchDetails{}, crerr.Wrap(err, "update match")
	}

	return newMatchDetails(item, refs), nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := s.getExisting(ctx, id); err != nil {
		return err
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "match_id", id)
	return nil
}

// validateProposal runs the input rules, resolves references, and runs the
// state rules that need no match history. Schedule conflict rules run
// later, under the write gate.
func (s *MatchService) validateProposal(ctx context.Context, proposal match.Proposal) (match.Match, matchReferences, error) {
	item, err := match.Normalize(proposal)
	if err != nil {
		return match.Match{}, matchReferences{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	refs, err := s.resolveReferences(ctx, item)
	if err != nil {
		return match.Match{}, matchReferences{}, err
	}

	if err := match.CheckFoundingDates(item.PlayedAt, refs.home, refs.away); err != nil {
		return match.Match{}, matchReferences{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err := match.CheckActiveClubs(refs.home, refs.away); err != nil {
		return match.Match{}, matchReferences{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}

	return item, refs, nil
}

func (s *MatchService) resolveReferences(ctx context.Context, item match.Match) (matchReferences, error) {
	home, exists, err := s.clubRepo.GetByID(ctx, item.HomeClubID)
	if err != nil {
		return matchReferences{}, fmt.Errorf("get home club: %w", err)
	}
	if !exists {
		return matchReferences{}, fmt.Errorf("%w: home club=%d", ErrNotFound, item.HomeClubID)
	}

	away, exists, err := s.clubRepo.GetByID(ctx, item.AwayClubID)
	if err != nil {
		return matchReferences{}, fmt.Errorf("get away club: %w", err)
	}
	if !exists {
		return matchReferences{}, fmt.Errorf("%w: away club=%d", ErrNotFound, item.AwayClubID)
	}

	venue, exists, err := s.stadiumRepo.GetByID(ctx, item.StadiumID)
	if err != nil {
		return matchReferences{}, fmt.Errorf("get stadium: %w", err)
	}
	if !exists {
		return matchReferences{}, fmt.Errorf("%w: stadium=%d", ErrNotFound, item.StadiumID)
	}

	return matchReferences{home: home, away: away, stadium: venue}, nil
}

// checkScheduleConflicts enforces the fatigue window for both clubs and
// the stadium daily uniqueness rule. Callers must hold writeGate so the
// history read and the subsequent write are atomic within this process.
func (s *MatchService) checkScheduleConflicts(ctx context.Context, item match.Match, excludeID int64) error {
	for _, clubID := range []int64{item.HomeClubID, item.AwayClubID} {
		history, err := s.matchRepo.ListByClub(ctx, clubID)
		if err != nil {
			return fmt.Errorf("list matches by club: %w", err)
		}
		if err := match.CheckFatigueWindow(clubID, item.PlayedAt, history, excludeID); err != nil {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
	}

	occupancy, err := s.matchRepo.ListByStadium(ctx, item.StadiumID)
	if err != nil {
		return fmt.Errorf("list matches by stadium: %w", err)
	}
	if err := match.CheckStadiumDay(item.StadiumID, item.PlayedAt, occupancy, excludeID); err != nil {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}

	return nil
}

func (s *MatchService) getExisting(ctx context.Context, id int64) (match.Match, error) {
	item, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}

	return item, nil
}

func newMatchDetails(item match.Match, refs matchReferences) MatchDetails {
	return MatchDetails{
		Match:        item,
		HomeClubName: refs.home.Name,
		AwayClubName: refs.away.Name,
		StadiumName:  refs.stadium.Name,
	}
}
