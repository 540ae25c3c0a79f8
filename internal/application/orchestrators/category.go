package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"academia/internal/domain/category"

	"github.com/google/uuid"
)

// CategoryStoreForOrchestrator defines the store interface needed by category orchestrators.
type CategoryStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (category.Category, error)
	Save(ctx context.Context, c category.Category) error
	Delete(ctx context.Context, id string) error
}

// SaveCategoryInput carries input for creating or editing a category.
// An empty CategoryID means create.
type SaveCategoryInput struct {
	CategoryID string
	Name       string
	YearFrom   int
	YearTo     int
	SortOrder  *int
}

// SaveCategoryDeps holds dependencies for SaveCategory.
type SaveCategoryDeps struct {
	CategoryStore CategoryStoreForOrchestrator
}

// ExecuteSaveCategory creates or updates an age category.
// PRE: Name non-empty; YearFrom/YearTo within the accepted year window in
// either order
// POST: Category persisted; reversed bounds are stored as given and
// normalized on read
func ExecuteSaveCategory(ctx context.Context, input SaveCategoryInput, deps SaveCategoryDeps) (category.Category, error) {
	c := category.Category{
		ID:        input.CategoryID,
		Name:      input.Name,
		YearFrom:  input.YearFrom,
		YearTo:    input.YearTo,
		SortOrder: input.SortOrder,
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	} else if _, err := deps.CategoryStore.GetByID(ctx, c.ID); err != nil {
		return category.Category{}, err
	}

	if err := c.Validate(); err != nil {
		return category.Category{}, err
	}

	if err := deps.CategoryStore.Save(ctx, c); err != nil {
		return category.Category{}, err
	}

	slog.Info("category_event", "event", "category_saved", "category_id", c.ID, "name", c.Name)
	return c, nil
}

// ExecuteDeleteCategory removes a category. Schedules and registrations that
// reference it keep the dangling id and show the placeholder name.
// PRE: CategoryID must be non-empty; category must exist
// POST: Category removed
func ExecuteDeleteCategory(ctx context.Context, categoryID string, deps SaveCategoryDeps) error {
	if categoryID == "" {
		return errors.New("category ID is required")
	}

	if _, err := deps.CategoryStore.GetByID(ctx, categoryID); err != nil {
		return err
	}

	if err := deps.CategoryStore.Delete(ctx, categoryID); err != nil {
		return err
	}

	slog.Info("category_event", "event", "category_deleted", "category_id", categoryID)
	return nil
}
