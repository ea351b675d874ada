package instrumented

import (
	"context"
	"errors"
	"time"

	"bird-service/internal/domain/birds"
)

// Recorder es lo que el decorator necesita de metrics.Metrics.
type Recorder interface {
	RecordStoreOperation(driver, operation, status string, d time.Duration)
}

// BirdsRepo mide cada operación del repo de abajo.
type BirdsRepo struct {
	next     birds.Repository
	driver   string
	recorder Recorder
	now      func() time.Time
}

func NewBirdsRepo(next birds.Repository, driver string, recorder Recorder) *BirdsRepo {
	return &BirdsRepo{
		next:     next,
		driver:   driver,
		recorder: recorder,
		now:      time.Now,
	}
}

var _ birds.Repository = (*BirdsRepo)(nil)

func (r *BirdsRepo) Save(ctx context.Context, b birds.Bird) error {
	start := r.now()
	err := r.next.Save(ctx, b)
	r.observe("save", start, err)
	return err
}

func (r *BirdsRepo) GetByID(ctx context.Context, id string) (birds.Bird, error) {
	start := r.now()
	b, err := r.next.GetByID(ctx, id)
	r.observe("get", start, err)
	return b, err
}

func (r *BirdsRepo) List(ctx context.Context) ([]birds.Bird, error) {
	start := r.now()
	items, err := r.next.List(ctx)
	r.observe("list", start, err)
	return items, err
}

func (r *BirdsRepo) Delete(ctx context.Context, id string) error {
	start := r.now()
	err := r.next.Delete(ctx, id)
	r.observe("delete", start, err)
	return err
}

func (r *BirdsRepo) observe(op string, start time.Time, err error) {
	r.recorder.RecordStoreOperation(r.driver, op, status(err), r.now().Sub(start))
}

func status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, birds.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
