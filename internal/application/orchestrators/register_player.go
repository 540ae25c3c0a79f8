package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"academia/internal/adapters/email"
	domainCategory "academia/internal/domain/category"
	domainRegistration "academia/internal/domain/registration"
	domainVenue "academia/internal/domain/venue"
)

// RegistrationStore defines the interface for registration persistence.
type RegistrationStore interface {
	Save(ctx context.Context, r domainRegistration.Registration) error
}

// VenueStoreForRegister defines the venue lookups needed by RegisterPlayer.
type VenueStoreForRegister interface {
	GetByID(ctx context.Context, id string) (domainVenue.Venue, error)
}

// CategoryStoreForRegister defines the category lookups needed by RegisterPlayer.
type CategoryStoreForRegister interface {
	GetByID(ctx context.Context, id string) (domainCategory.Category, error)
	List(ctx context.Context) ([]domainCategory.Category, error)
}

// RegisterPlayerInput carries the five required submission fields.
type RegisterPlayerInput struct {
	FullName   string `json:"full_name"`
	BirthDate  string `json:"birth_date"`
	Phone      string `json:"phone"`
	VenueID    string `json:"venue_id"`
	CategoryID string `json:"category_id"`
}

// RegisterPlayerDeps holds dependencies for RegisterPlayer.
type RegisterPlayerDeps struct {
	RegistrationStore RegistrationStore
	VenueStore        VenueStoreForRegister
	CategoryStore     CategoryStoreForRegister

	// EmailSender is optional; when set, staff get a notification per sign-up.
	EmailSender email.Sender
	NotifyTo    []string
	NotifyFrom  string
}

// Validation errors surfaced to the registration form.
var (
	ErrMissingFields     = errors.New("datos incompletos")
	ErrNoCategoryForYear = errors.New("no se encontró categoría para esa fecha")
	ErrPhoneNotTenDigits = errors.New("el teléfono debe tener 10 dígitos")
	ErrUnknownVenue      = errors.New("la sede seleccionada no existe")
)

// ExecuteRegisterPlayer validates and stores one player registration.
// PRE: Input fields are raw form/JSON values; phone may carry formatting
// POST: Registration persisted with a fresh ID and CreatedAt; validation
// failures abort before any store write; store errors are returned verbatim
// INVARIANT: The chosen category must contain the birth year (first match in
// sort order wins)
func ExecuteRegisterPlayer(ctx context.Context, input RegisterPlayerInput, deps RegisterPlayerDeps) (string, error) {
	if input.FullName == "" || input.BirthDate == "" || input.Phone == "" ||
		input.VenueID == "" || input.CategoryID == "" {
		return "", ErrMissingFields
	}

	reg := domainRegistration.Registration{
		ID:         uuid.New().String(),
		FullName:   input.FullName,
		BirthDate:  input.BirthDate,
		Phone:      domainRegistration.NormalizePhone(input.Phone),
		CreatedAt:  time.Now(),
		VenueID:    input.VenueID,
		CategoryID: input.CategoryID,
	}

	if len(reg.Phone) != domainRegistration.PhoneDigits {
		return "", ErrPhoneNotTenDigits
	}
	if err := reg.Validate(); err != nil {
		return "", err
	}

	if _, err := deps.VenueStore.GetByID(ctx, reg.VenueID); err != nil {
		return "", ErrUnknownVenue
	}

	// The submitted category must be the matcher's pick for the birth year;
	// a stale or tampered category id is rejected the same way as no match.
	cats, err := deps.CategoryStore.List(ctx)
	if err != nil {
		return "", err
	}
	domainCategory.SortBySortOrder(cats)
	matched, ok := domainCategory.Match(reg.BirthYear(), cats)
	if !ok || matched.ID != reg.CategoryID {
		return "", ErrNoCategoryForYear
	}

	if err := deps.RegistrationStore.Save(ctx, reg); err != nil {
		return "", err
	}

	slog.Info("registration_event", "event", "player_registered", "id", reg.ID,
		"category", matched.Name, "venue_id", reg.VenueID)

	notifyStaff(ctx, deps, reg, matched)

	return reg.ID, nil
}

// notifyStaff sends a best-effort email; delivery failure never fails the
// registration.
func notifyStaff(ctx context.Context, deps RegisterPlayerDeps, reg domainRegistration.Registration, cat domainCategory.Category) {
	if deps.EmailSender == nil || len(deps.NotifyTo) == 0 {
		return
	}
	req := email.SendRequest{
		To:      deps.NotifyTo,
		From:    deps.NotifyFrom,
		Subject: "Nuevo registro: " + reg.FullName,
		HTML: fmt.Sprintf(
			"<p><strong>%s</strong> se registró en la categoría <strong>%s</strong>.</p><p>Teléfono: %s<br>Fecha de nacimiento: %s</p>",
			reg.FullName, cat.Name, reg.Phone, reg.BirthDate,
		),
	}
	if _, err := deps.EmailSender.Send(ctx, req); err != nil {
		slog.Error("registration_notify_failed", "error", err, "registration_id", reg.ID)
	}
}
