package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"bird-service/internal/domain/birds"
)

type birdRepo struct {
	mu   sync.RWMutex
	byID map[string]birds.Bird
}

func NewBirdRepo() birds.Repository {
	return &birdRepo{
		byID: make(map[string]birds.Bird),
	}
}

func (r *birdRepo) Save(ctx context.Context, b birds.Bird) error {
	if strings.TrimSpace(b.ID()) == "" {
		return errors.New("bird id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[b.ID()] = b
	return nil
}

func (r *birdRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return birds.Bird{}, birds.ErrNotFound
	}
	return b, nil
}

func (r *birdRepo) List(ctx context.Context) ([]birds.Bird, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]birds.Bird, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}

	// mismo orden que los adapters SQL/Mongo
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID() < out[j].ID()
	})

	return out, nil
}

func (r *birdRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return birds.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
