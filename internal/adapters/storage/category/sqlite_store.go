package category

import (
	"context"
	"database/sql"
	"fmt"

	"academia/internal/adapters/storage"
	domain "academia/internal/domain/category"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new CategoryStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Category by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Category, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, year_from, year_to, sort_order FROM category WHERE id = ?", id)
	entity, err := scanCategory(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Category{}, fmt.Errorf("category not found: %w", err)
	}
	return entity, err
}

// Save persists a Category to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Category) error {
	var sortOrder interface{}
	if entity.SortOrder != nil {
		sortOrder = *entity.SortOrder
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO category (id, name, year_from, year_to, sort_order) VALUES (?, ?, ?, ?, ?) ON CONFLICT(id) DO UPDATE SET name=excluded.name, year_from=excluded.year_from, year_to=excluded.year_to, sort_order=excluded.sort_order",
		entity.ID, entity.Name, entity.YearFrom, entity.YearTo, sortOrder,
	)
	return err
}

// Delete removes a Category from the database. Schedules and registrations
// keep their dangling category_id.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM category WHERE id = ?", id)
	return err
}

// List retrieves all Categories.
// POST: Returns all categories; callers order them via the domain sort
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, year_from, year_to, sort_order FROM category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Category
	for rows.Next() {
		entity, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}

// scanCategory extracts a Category from a row scanner function.
func scanCategory(scan func(dest ...interface{}) error) (domain.Category, error) {
	var entity domain.Category
	var sortOrder sql.NullInt64
	err := scan(&entity.ID, &entity.Name, &entity.YearFrom, &entity.YearTo, &sortOrder)
	if err != nil {
		return domain.Category{}, err
	}
	if sortOrder.Valid {
		n := int(sortOrder.Int64)
		entity.SortOrder = &n
	}
	return entity, nil
}
