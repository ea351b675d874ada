package birds

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Save guarda el bird. Si no trae id, se le asigna uno nuevo.
// species y size se guardan tal cual (sin trim, sin validar).
func (s *Service) Save(ctx context.Context, b Bird) (Bird, error) {
	if strings.TrimSpace(b.ID()) == "" {
		b.SetID(s.newID())
	}

	if err := s.repo.Save(ctx, b); err != nil {
		return Bird{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Bird, error) {
	if strings.TrimSpace(id) == "" {
		return Bird{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Bird, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// UpdateInput usa punteros para PATCH: nil = no tocar.
type UpdateInput struct {
	Species *string
	Size    *string
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Bird, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Bird{}, err
	}

	if in.Species != nil {
		current.SetSpecies(*in.Species)
	}
	if in.Size != nil {
		current.SetSize(*in.Size)
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return Bird{}, err
	}
	return current, nil
}
