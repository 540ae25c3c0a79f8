package schedule

import (
	"context"

	domain "academia/internal/domain/schedule"
)

// Store persists Schedule state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Schedule, error)
	Save(ctx context.Context, value domain.Schedule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Schedule, error)
	ListByVenueID(ctx context.Context, venueID string) ([]domain.Schedule, error)
	ListByCategoryID(ctx context.Context, categoryID string) ([]domain.Schedule, error)
}
