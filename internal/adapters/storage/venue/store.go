package venue

import (
	"context"

	domain "academia/internal/domain/venue"
)

// Store persists Venue state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Venue, error)
	Save(ctx context.Context, value domain.Venue) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Venue, error)
}
