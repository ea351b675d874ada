package cached

import (
	"context"
	"sync"
	"time"

	"bird-service/internal/domain/birds"

	"github.com/patrickmn/go-cache"
)

const listKey = "all"

// BirdsRepo es un decorator read-through sobre otro birds.Repository.
// Los birds y el listado viven en caches separados: cualquier string es un id válido.
//
// Save y Delete escriben primero abajo y después invalidan. Una lectura que
// llenaría el cache con un valor leído antes de una escritura se descarta
// (gen cambia con cada escritura).
type BirdsRepo struct {
	next  birds.Repository
	items *cache.Cache
	lists *cache.Cache

	mu  sync.Mutex
	gen uint64
}

func NewBirdsRepo(next birds.Repository, ttl time.Duration) *BirdsRepo {
	return &BirdsRepo{
		next:  next,
		items: cache.New(ttl, 2*ttl),
		lists: cache.New(ttl, 2*ttl),
	}
}

var _ birds.Repository = (*BirdsRepo)(nil)

func (r *BirdsRepo) Save(ctx context.Context, b birds.Bird) error {
	err := r.next.Save(ctx, b)
	r.invalidate(b.ID())
	return err
}

func (r *BirdsRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	if v, ok := r.items.Get(id); ok {
		if b, ok := v.(birds.Bird); ok {
			return b, nil
		}
	}

	gen := r.generation()
	b, err := r.next.GetByID(ctx, id)
	if err != nil {
		return birds.Bird{}, err
	}
	r.fill(gen, func() { r.items.Set(id, b, cache.DefaultExpiration) })
	return b, nil
}

func (r *BirdsRepo) List(ctx context.Context) ([]birds.Bird, error) {
	if v, ok := r.lists.Get(listKey); ok {
		if cached, ok := v.([]birds.Bird); ok {
			out := make([]birds.Bird, len(cached))
			copy(out, cached)
			return out, nil
		}
	}

	gen := r.generation()
	items, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make([]birds.Bird, len(items))
	copy(snapshot, items)
	r.fill(gen, func() { r.lists.Set(listKey, snapshot, cache.DefaultExpiration) })
	return items, nil
}

func (r *BirdsRepo) Delete(ctx context.Context, id string) error {
	err := r.next.Delete(ctx, id)
	r.invalidate(id)
	return err
}

func (r *BirdsRepo) generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// fill solo cachea si no hubo escrituras desde gen.
func (r *BirdsRepo) fill(gen uint64, set func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen == gen {
		set()
	}
}

func (r *BirdsRepo) invalidate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.items.Delete(id)
	r.lists.Delete(listKey)
}
