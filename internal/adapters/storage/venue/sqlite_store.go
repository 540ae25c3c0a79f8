package venue

import (
	"context"
	"database/sql"
	"fmt"

	"academia/internal/adapters/storage"
	domain "academia/internal/domain/venue"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new VenueStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Venue by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Venue, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, place FROM venue WHERE id = ?", id)
	var entity domain.Venue
	err := row.Scan(&entity.ID, &entity.Name, &entity.Place)
	if err == sql.ErrNoRows {
		return domain.Venue{}, fmt.Errorf("venue not found: %w", err)
	}
	return entity, err
}

// Save persists a Venue to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Venue) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO venue (id, name, place) VALUES (?, ?, ?) ON CONFLICT(id) DO UPDATE SET name=excluded.name, place=excluded.place",
		entity.ID, entity.Name, entity.Place,
	)
	return err
}

// Delete removes a Venue from the database. The schedule foreign key
// cascades, removing the venue's slots with it.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM venue WHERE id = ?", id)
	return err
}

// List retrieves all Venues.
// POST: Returns all venues ordered by name
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Venue, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, place FROM venue ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Venue
	for rows.Next() {
		var entity domain.Venue
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Place); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}
