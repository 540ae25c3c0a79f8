package orchestrators

import (
	"context"
	"log/slog"

	"academia/internal/domain/account"
	"academia/internal/domain/category"
	"academia/internal/domain/venue"

	"github.com/google/uuid"
)

// VenueStoreForSeed defines the store interface needed by SeedAcademy.
type VenueStoreForSeed interface {
	Save(ctx context.Context, v venue.Venue) error
	List(ctx context.Context) ([]venue.Venue, error)
}

// CategoryStoreForSeed defines the store interface needed by SeedAcademy.
type CategoryStoreForSeed interface {
	Save(ctx context.Context, c category.Category) error
	List(ctx context.Context) ([]category.Category, error)
}

// AccountStoreForSeed defines the store interface needed by SeedAdminAccount.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// SeedAcademyDeps holds dependencies for SeedAcademy.
type SeedAcademyDeps struct {
	VenueStore    VenueStoreForSeed
	CategoryStore CategoryStoreForSeed
}

// ExecuteSeedAcademy creates the default venues and age categories if none
// exist yet. Safe to run on every startup.
func ExecuteSeedAcademy(ctx context.Context, deps SeedAcademyDeps) error {
	existing, err := deps.VenueStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		venues := []venue.Venue{
			{ID: uuid.New().String(), Name: "Río Blanco", Place: "Río Blanco, Ver. - Estadio 7 de Enero"},
			{ID: uuid.New().String(), Name: "Jalapilla", Place: "Rafael Delgado, Ver. - Unidad Deportiva Jalapilla"},
		}
		for _, v := range venues {
			if err := deps.VenueStore.Save(ctx, v); err != nil {
				return err
			}
		}
		slog.Info("seed_event", "event", "venues_seeded", "count", len(venues))
	}

	cats, err := deps.CategoryStore.List(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		defaults := []struct {
			name     string
			from, to int
		}{
			{"Dientes de Leche", 2020, 2021},
			{"Chupón", 2018, 2019},
			{"Biberón", 2016, 2017},
			{"Pony", 2014, 2015},
			{"Infantil", 2012, 2013},
			{"Intermedia", 2010, 2011},
			{"Juvenil", 2008, 2009},
		}
		for i, d := range defaults {
			order := i + 1
			c := category.Category{
				ID:        uuid.New().String(),
				Name:      d.name,
				YearFrom:  d.from,
				YearTo:    d.to,
				SortOrder: &order,
			}
			if err := deps.CategoryStore.Save(ctx, c); err != nil {
				return err
			}
		}
		slog.Info("seed_event", "event", "categories_seeded", "count", len(defaults))
	}

	return nil
}

// ExecuteSeedAdminAccount ensures an admin login exists for the given email.
// PRE: email and password come from deployment config
// POST: Existing accounts are left untouched
func ExecuteSeedAdminAccount(ctx context.Context, email, password string, store AccountStoreForSeed) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := store.GetByEmail(ctx, email); err == nil {
		return nil // Already seeded
	}

	acct := account.Account{
		ID:    uuid.New().String(),
		Email: email,
		Role:  account.RoleAdmin,
	}
	if err := acct.SetPassword(password); err != nil {
		return err
	}
	if err := acct.Validate(); err != nil {
		return err
	}
	if err := store.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("seed_event", "event", "admin_seeded", "email", email)
	return nil
}
