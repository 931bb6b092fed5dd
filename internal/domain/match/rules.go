package match

import (
	"errors"
	"fmt"
	"time"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
)

var (
	ErrMissingFields  = errors.New("all match fields are required")
	ErrSameOpponents  = errors.New("home and away clubs must be different")
	ErrNegativeGoals  = errors.New("goals cannot be negative")
	ErrBeforeFounding = errors.New("match predates the founding of a participating club")
	ErrInactiveClub   = errors.New("club is inactive")
	ErrFatigueWindow  = errors.New("club has another match within the fatigue window")
	ErrStadiumTaken   = errors.New("stadium already hosts a match on that date")
)

// FatigueWindowHours is the minimum whole-hour gap between two matches of
// the same club. A gap of exactly 48 hours is allowed.
const FatigueWindowHours = 48

// Normalize checks the proposal's own fields (completeness, distinct
// opponents, non-negative goals) and materializes it into a Match. The
// timestamp is converted to UTC so the civil-date rules evaluate every
// match in the same calendar regardless of the offset the caller sent.
func Normalize(p Proposal) (Match, error) {
	if p.HomeClubID == nil || p.AwayClubID == nil || p.HomeGoals == nil ||
		p.AwayGoals == nil || p.StadiumID == nil || p.PlayedAt == nil {
		return Match{}, ErrMissingFields
	}
	if *p.HomeClubID == *p.AwayClubID {
		return Match{}, ErrSameOpponents
	}
	if *p.HomeGoals < 0 || *p.AwayGoals < 0 {
		return Match{}, ErrNegativeGoals
	}

	return Match{
		HomeClubID: *p.HomeClubID,
		AwayClubID: *p.AwayClubID,
		HomeGoals:  *p.HomeGoals,
		AwayGoals:  *p.AwayGoals,
		StadiumID:  *p.StadiumID,
		PlayedAt:   p.PlayedAt.UTC(),
	}, nil
}

// CheckFoundingDates rejects a match scheduled before the start of the
// founding day of either club. A match on the founding date itself passes.
func CheckFoundingDates(playedAt time.Time, home, away club.Club) error {
	if playedAt.Before(startOfDay(home.FoundedOn)) {
		return fmt.Errorf("%w: home club %q founded on %s", ErrBeforeFounding, home.Name, home.FoundedOn.Format("2006-01-02"))
	}
	if playedAt.Before(startOfDay(away.FoundedOn)) {
		return fmt.Errorf("%w: away club %q founded on %s", ErrBeforeFounding, away.Name, away.FoundedOn.Format("2006-01-02"))
	}

	return nil
}

// CheckActiveClubs rejects matches involving a soft-deleted club.
func CheckActiveClubs(home, away club.Club) error {
	if !home.Active {
		return fmt.Errorf("%w: home club %q", ErrInactiveClub, home.Name)
	}
	if !away.Active {
		return fmt.Errorf("%w: away club %q", ErrInactiveClub, away.Name)
	}

	return nil
}

// CheckFatigueWindow scans the club's match history for another match less
// than FatigueWindowHours whole hours away from playedAt. The window is
// symmetric and closed at 48: a difference of exactly 48 hours passes.
// excludeID removes the match being updated from the conflict set; pass 0
// on create.
func CheckFatigueWindow(clubID int64, playedAt time.Time, history []Match, excludeID int64) error {
	for _, item := range history {
		if excludeID != 0 && item.ID == excludeID {
			continue
		}
		if wholeHoursBetween(item.PlayedAt, playedAt) < FatigueWindowHours {
			return fmt.Errorf("%w: club %d has match %d at %s", ErrFatigueWindow, clubID, item.ID, item.PlayedAt.Format(time.RFC3339))
		}
	}

	return nil
}

// CheckStadiumDay rejects a second match at the same stadium on the same
// civil date. Time of day is ignored.
func CheckStadiumDay(stadiumID int64, playedAt time.Time, history []Match, excludeID int64) error {
	for _, item := range history {
		if excludeID != 0 && item.ID == excludeID {
			continue
		}
		if sameCivilDate(item.PlayedAt, playedAt) {
			return fmt.Errorf("%w: stadium %d has match %d on %s", ErrStadiumTaken, stadiumID, item.ID, playedAt.Format("2006-01-02"))
		}
	}

	return nil
}

// Civil dates are read in UTC so two timestamps naming the same instant
// with different offsets cannot land on different calendar days.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameCivilDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// wholeHoursBetween truncates toward zero, so 47h59m counts as 47 hours.
func wholeHoursBetween(a, b time.Time) int64 {
	diff := b.Sub(a)
	if diff < 0 {
		diff = -diff
	}
	return int64(diff / time.Hour)
}
