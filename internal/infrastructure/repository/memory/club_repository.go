package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/neocamp/partidas-futebol/internal/domain/club"
)

type ClubRepository struct {
	mu     sync.RWMutex
	items  map[int64]club.Club
	nextID int64
}

func NewClubRepository(seed []club.Club) *ClubRepository {
	items := make(map[int64]club.Club, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &ClubRepository{items: items, nextID: maxID}
}

func (r *ClubRepository) GetByID(_ context.Context, id int64) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *ClubRepository) GetByNameAndState(_ context.Context, name, state string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) && item.State == state {
			return item, true, nil
		}
	}

	return club.Club{}, false, nil
}

func (r *ClubRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

func (r *ClubRepository) List(_ context.Context, filter club.ListFilter, limit, offset int) ([]club.Club, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]club.Club, 0, len(r.items))
	for _, item := range r.items {
		if filter.Name != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.State != "" && item.State != filter.State {
			continue
		}
		if filter.Active != nil && item.Active != *filter.Active {
			continue
		}
		matched = append(matched, item)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *ClubRepository) Create(_ context.Context, item club.Club) (club.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *ClubRepository) Update(_ context.Context, item club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *ClubRepository) SetActive(_ context.Context, id int64, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.Active = active
	r.items[id] = item
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}
