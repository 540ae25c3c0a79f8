package venue

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants.
const (
	MaxNameLength  = 200
	MaxPlaceLength = 300
)

// PlaceholderName is displayed when a schedule or registration references a
// venue that no longer exists.
const PlaceholderName = "Sin sede"

// Domain errors
var (
	ErrEmptyName = errors.New("venue name cannot be empty")
)

// Venue represents a physical training location (e.g. a stadium field).
type Venue struct {
	ID    string
	Name  string
	Place string // optional free-text location, e.g. "Río Blanco, Ver. - Estadio 7 de Enero"
}

// Validate checks if the Venue has valid data.
// PRE: Venue struct is populated
// POST: Returns nil if valid, error otherwise
func (v *Venue) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return ErrEmptyName
	}
	if len(v.Name) > MaxNameLength {
		return fmt.Errorf("venue name cannot exceed %d characters", MaxNameLength)
	}
	if len(v.Place) > MaxPlaceLength {
		return fmt.Errorf("venue place cannot exceed %d characters", MaxPlaceLength)
	}
	return nil
}

// DisplayName returns the venue name, or the placeholder when the venue is
// the zero value (unresolved reference).
func (v *Venue) DisplayName() string {
	if strings.TrimSpace(v.Name) == "" {
		return PlaceholderName
	}
	return v.Name
}
