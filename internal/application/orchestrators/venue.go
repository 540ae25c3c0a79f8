package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academia/internal/domain/venue"

	"github.com/google/uuid"
)

// VenueStoreForOrchestrator defines the store interface needed by venue orchestrators.
type VenueStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (venue.Venue, error)
	Save(ctx context.Context, v venue.Venue) error
	Delete(ctx context.Context, id string) error
}

// --- Create Venue ---

// CreateVenueInput carries input for the create venue orchestrator.
type CreateVenueInput struct {
	Name  string
	Place string
}

// CreateVenueDeps holds dependencies for CreateVenue.
type CreateVenueDeps struct {
	VenueStore VenueStoreForOrchestrator
}

// ExecuteCreateVenue creates a new venue.
// PRE: Name must be non-empty
// POST: Venue created with generated ID
func ExecuteCreateVenue(ctx context.Context, input CreateVenueInput, deps CreateVenueDeps) (venue.Venue, error) {
	v := venue.Venue{
		ID:    uuid.New().String(),
		Name:  input.Name,
		Place: input.Place,
	}

	if err := v.Validate(); err != nil {
		return venue.Venue{}, err
	}

	if err := deps.VenueStore.Save(ctx, v); err != nil {
		return venue.Venue{}, err
	}

	slog.Info("venue_event", "event", "venue_created", "venue_id", v.ID, "name", v.Name)
	return v, nil
}

// --- Edit Venue ---

// EditVenueInput carries input for the edit venue orchestrator.
type EditVenueInput struct {
	VenueID string
	Name    string
	Place   string
}

// ExecuteEditVenue overwrites name and place on an existing venue.
// PRE: VenueID must be non-empty; venue must exist
// POST: Venue fields updated
func ExecuteEditVenue(ctx context.Context, input EditVenueInput, deps CreateVenueDeps) (venue.Venue, error) {
	if input.VenueID == "" {
		return venue.Venue{}, errors.New("venue ID is required")
	}

	v, err := deps.VenueStore.GetByID(ctx, input.VenueID)
	if err != nil {
		return venue.Venue{}, err
	}

	v.Name = input.Name
	v.Place = input.Place

	if err := v.Validate(); err != nil {
		return venue.Venue{}, err
	}

	if err := deps.VenueStore.Save(ctx, v); err != nil {
		return venue.Venue{}, err
	}

	slog.Info("venue_event", "event", "venue_updated", "venue_id", v.ID)
	return v, nil
}

// --- Delete Venue ---

// ExecuteDeleteVenue removes a venue; its schedules go with it via the
// foreign-key cascade, while registrations keep the dangling reference and
// render with the placeholder name.
// PRE: VenueID must be non-empty; venue must exist
// POST: Venue and its schedules removed
func ExecuteDeleteVenue(ctx context.Context, venueID string, deps CreateVenueDeps) error {
	if venueID == "" {
		return errors.New("venue ID is required")
	}

	if _, err := deps.VenueStore.GetByID(ctx, venueID); err != nil {
		return err
	}

	if err := deps.VenueStore.Delete(ctx, venueID); err != nil {
		return err
	}

	slog.Info("venue_event", "event", "venue_deleted", "venue_id", venueID)
	return nil
}
