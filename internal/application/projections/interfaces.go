package projections

import (
	"context"

	domainCategory "academia/internal/domain/category"
	domainRegistration "academia/internal/domain/registration"
	domainSchedule "academia/internal/domain/schedule"
	domainVenue "academia/internal/domain/venue"
)

// VenueStore interface for venue queries.
type VenueStore interface {
	List(ctx context.Context) ([]domainVenue.Venue, error)
}

// CategoryStore interface for category queries.
type CategoryStore interface {
	List(ctx context.Context) ([]domainCategory.Category, error)
}

// ScheduleStore interface for schedule queries.
type ScheduleStore interface {
	List(ctx context.Context) ([]domainSchedule.Schedule, error)
}

// RegistrationStore interface for registration queries.
type RegistrationStore interface {
	List(ctx context.Context) ([]domainRegistration.Registration, error)
}
