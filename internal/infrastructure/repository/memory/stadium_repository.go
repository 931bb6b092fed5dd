package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/neocamp/partidas-futebol/internal/domain/stadium"
)

type StadiumRepository struct {
	mu     sync.RWMutex
	items  map[int64]stadium.Stadium
	nextID int64
}

func NewStadiumRepository(seed []stadium.Stadium) *StadiumRepository {
	items := make(map[int64]stadium.Stadium, len(seed))
	var maxID int64
	for _, item := range seed {
		items[item.ID] = item
		if item.ID > maxID {
			maxID = item.ID
		}
	}

	return &StadiumRepository{items: items, nextID: maxID}
}

func (r *StadiumRepository) GetByID(_ context.Context, id int64) (stadium.Stadium, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *StadiumRepository) GetByName(_ context.Context, name string) (stadium.Stadium, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}

	return stadium.Stadium{}, false, nil
}

func (r *StadiumRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

func (r *StadiumRepository) List(_ context.Context, limit, offset int) ([]stadium.Stadium, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]stadium.Stadium, 0, len(r.items))
	for _, item := range r.items {
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return paginate(all, limit, offset), len(all), nil
}

func (r *StadiumRepository) Create(_ context.Context, item stadium.Stadium) (stadium.Stadium, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *StadiumRepository) Update(_ context.Context, item stadium.Stadium) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
