package registration

import (
	"context"

	domain "academia/internal/domain/registration"
)

// Store persists Registration state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Registration, error)
	Save(ctx context.Context, value domain.Registration) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Registration, error)
	Count(ctx context.Context) (int, error)
}
