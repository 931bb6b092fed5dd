package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/neocamp/partidas-futebol/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[int64]match.Match
	nextID int64
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	items := make(map[int64]match.Match, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &MatchRepository{items: items, nextID: maxID}
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *MatchRepository) ListByClub(_ context.Context, clubID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.items {
		if item.HomeClubID == clubID || item.AwayClubID == clubID {
			out = append(out, item)
		}
	}
	sortByScheduleThenID(out)
	return out, nil
}

func (r *MatchRepository) ListByStadium(_ context.Context, stadiumID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.items {
		if item.StadiumID == stadiumID {
			out = append(out, item)
		}
	}
	sortByScheduleThenID(out)
	return out, nil
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter, limit, offset int) ([]match.Match, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if filter.HomeClubID != nil && item.HomeClubID != *filter.HomeClubID {
			continue
		}
		if filter.AwayClubID != nil && item.AwayClubID != *filter.AwayClubID {
			continue
		}
		if filter.StadiumID != nil && item.StadiumID != *filter.StadiumID {
			continue
		}
		matched = append(matched, item)
	}
	sortByScheduleThenID(matched)

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func sortByScheduleThenID(items []match.Match) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].PlayedAt.Equal(items[j].PlayedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].PlayedAt.Before(items[j].PlayedAt)
	})
}
