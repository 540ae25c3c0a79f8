package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academia/internal/domain/category"
	"academia/internal/domain/schedule"
	"academia/internal/domain/venue"

	"github.com/google/uuid"
)

// ScheduleStoreForOrchestrator defines the store interface needed by schedule orchestrators.
type ScheduleStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (schedule.Schedule, error)
	Save(ctx context.Context, s schedule.Schedule) error
	Delete(ctx context.Context, id string) error
}

// VenueStoreForSchedule defines the venue lookups needed by schedule orchestrators.
type VenueStoreForSchedule interface {
	GetByID(ctx context.Context, id string) (venue.Venue, error)
}

// CategoryStoreForSchedule defines the category lookups needed by schedule orchestrators.
type CategoryStoreForSchedule interface {
	GetByID(ctx context.Context, id string) (category.Category, error)
}

// SaveScheduleInput carries input for creating or editing a schedule slot.
// An empty ScheduleID means create.
type SaveScheduleInput struct {
	ScheduleID string
	CategoryID string
	VenueID    string
	Weekday    int
	StartTime  string // "HH:MM" or "HH:MM:SS"
	EndTime    string
	IsOptional bool
	Note       string
}

// SaveScheduleDeps holds dependencies for SaveSchedule.
type SaveScheduleDeps struct {
	ScheduleStore ScheduleStoreForOrchestrator
	VenueStore    VenueStoreForSchedule
	CategoryStore CategoryStoreForSchedule
}

var (
	ErrScheduleVenueNotFound    = errors.New("schedule venue does not exist")
	ErrScheduleCategoryNotFound = errors.New("schedule category does not exist")
)

// ExecuteSaveSchedule creates or updates a training slot.
// PRE: VenueID and CategoryID reference existing rows; times are "HH:MM" or "HH:MM:SS"
// POST: Slot persisted with normalized "HH:MM:SS" times
func ExecuteSaveSchedule(ctx context.Context, input SaveScheduleInput, deps SaveScheduleDeps) (schedule.Schedule, error) {
	s := schedule.Schedule{
		ID:         input.ScheduleID,
		CategoryID: input.CategoryID,
		VenueID:    input.VenueID,
		Weekday:    input.Weekday,
		StartTime:  schedule.NormalizeTime(input.StartTime),
		EndTime:    schedule.NormalizeTime(input.EndTime),
		IsOptional: input.IsOptional,
		Note:       input.Note,
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	} else if _, err := deps.ScheduleStore.GetByID(ctx, s.ID); err != nil {
		return schedule.Schedule{}, err
	}

	if err := s.Validate(); err != nil {
		return schedule.Schedule{}, err
	}

	if _, err := deps.VenueStore.GetByID(ctx, s.VenueID); err != nil {
		return schedule.Schedule{}, ErrScheduleVenueNotFound
	}
	if _, err := deps.CategoryStore.GetByID(ctx, s.CategoryID); err != nil {
		return schedule.Schedule{}, ErrScheduleCategoryNotFound
	}

	if err := deps.ScheduleStore.Save(ctx, s); err != nil {
		return schedule.Schedule{}, err
	}

	slog.Info("schedule_event", "event", "schedule_saved", "schedule_id", s.ID,
		"category_id", s.CategoryID, "venue_id", s.VenueID, "weekday", s.Weekday)
	return s, nil
}

// ExecuteDeleteSchedule removes a training slot.
// PRE: ScheduleID must be non-empty; slot must exist
// POST: Slot removed
func ExecuteDeleteSchedule(ctx context.Context, scheduleID string, deps SaveScheduleDeps) error {
	if scheduleID == "" {
		return errors.New("schedule ID is required")
	}

	if _, err := deps.ScheduleStore.GetByID(ctx, scheduleID); err != nil {
		return err
	}

	if err := deps.ScheduleStore.Delete(ctx, scheduleID); err != nil {
		return err
	}

	slog.Info("schedule_event", "event", "schedule_deleted", "schedule_id", scheduleID)
	return nil
}
