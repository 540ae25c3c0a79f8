package registration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"academia/internal/adapters/storage"
	domain "academia/internal/domain/registration"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new RegistrationStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const registrationColumns = "id, full_name, birth_date, phone, created_at, venue_id, category_id"

// GetByID retrieves a Registration by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Registration, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+registrationColumns+" FROM registration WHERE id = ?", id)
	entity, err := scanRegistration(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Registration{}, fmt.Errorf("registration not found: %w", err)
	}
	return entity, err
}

// Save persists a Registration to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Registration) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO registration ("+registrationColumns+") VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET full_name=excluded.full_name, birth_date=excluded.birth_date, phone=excluded.phone, venue_id=excluded.venue_id, category_id=excluded.category_id",
		entity.ID, entity.FullName, entity.BirthDate, entity.Phone,
		entity.CreatedAt.UTC().Format(time.RFC3339Nano), entity.VenueID, entity.CategoryID,
	)
	return err
}

// Delete removes a Registration from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM registration WHERE id = ?", id)
	return err
}

// List retrieves all Registrations, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Registration, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+registrationColumns+" FROM registration ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Registration
	for rows.Next() {
		entity, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}

// Count returns the total number of registrations.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM registration").Scan(&count)
	return count, err
}

// scanRegistration extracts a Registration from a row scanner function.
func scanRegistration(scan func(dest ...interface{}) error) (domain.Registration, error) {
	var entity domain.Registration
	var createdAt string
	err := scan(&entity.ID, &entity.FullName, &entity.BirthDate, &entity.Phone,
		&createdAt, &entity.VenueID, &entity.CategoryID)
	if err != nil {
		return domain.Registration{}, err
	}
	entity.CreatedAt, _ = parseTime(createdAt)
	return entity, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
