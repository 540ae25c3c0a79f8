package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"academia/internal/adapters/storage"
	domain "academia/internal/domain/schedule"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new ScheduleStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const scheduleColumns = "id, category_id, venue_id, weekday, start_time, end_time, is_optional, note"

// GetByID retrieves a Schedule by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Schedule, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE id = ?", id)
	entity, err := scanSchedule(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Schedule{}, fmt.Errorf("schedule not found: %w", err)
	}
	return entity, err
}

// Save persists a Schedule to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Schedule) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO schedule ("+scheduleColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET category_id=excluded.category_id, venue_id=excluded.venue_id, weekday=excluded.weekday, start_time=excluded.start_time, end_time=excluded.end_time, is_optional=excluded.is_optional, note=excluded.note",
		entity.ID, entity.CategoryID, entity.VenueID, entity.Weekday,
		entity.StartTime, entity.EndTime, boolToInt(entity.IsOptional), entity.Note,
	)
	return err
}

// Delete removes a Schedule from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM schedule WHERE id = ?", id)
	return err
}

// List retrieves all Schedules.
// POST: Returns all slots ordered by weekday and start time
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Schedule, error) {
	return s.querySchedules(ctx, "SELECT "+scheduleColumns+" FROM schedule ORDER BY weekday, start_time")
}

// ListByVenueID retrieves Schedules for a specific venue.
// PRE: venueID is non-empty
// POST: Returns slots for the given venue
func (s *SQLiteStore) ListByVenueID(ctx context.Context, venueID string) ([]domain.Schedule, error) {
	return s.querySchedules(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE venue_id = ? ORDER BY weekday, start_time", venueID)
}

// ListByCategoryID retrieves Schedules for a specific category.
// PRE: categoryID is non-empty
// POST: Returns slots for the given category
func (s *SQLiteStore) ListByCategoryID(ctx context.Context, categoryID string) ([]domain.Schedule, error) {
	return s.querySchedules(ctx, "SELECT "+scheduleColumns+" FROM schedule WHERE category_id = ? ORDER BY weekday, start_time", categoryID)
}

func (s *SQLiteStore) querySchedules(ctx context.Context, query string, args ...interface{}) ([]domain.Schedule, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Schedule
	for rows.Next() {
		entity, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}

// scanSchedule extracts a Schedule from a row scanner function.
func scanSchedule(scan func(dest ...interface{}) error) (domain.Schedule, error) {
	var entity domain.Schedule
	var optional int
	err := scan(&entity.ID, &entity.CategoryID, &entity.VenueID, &entity.Weekday,
		&entity.StartTime, &entity.EndTime, &optional, &entity.Note)
	if err != nil {
		return domain.Schedule{}, err
	}
	entity.IsOptional = optional != 0
	return entity, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
