package venue_test

import (
	"strings"
	"testing"

	"academia/internal/domain/venue"
)

// TestVenueValidation tests validation of Venue.
func TestVenueValidation(t *testing.T) {
	tests := []struct {
		name    string
		venue   venue.Venue
		wantErr bool
	}{
		{
			name:    "valid venue",
			venue:   venue.Venue{ID: "v1", Name: "Río Blanco", Place: "Estadio 7 de Enero"},
			wantErr: false,
		},
		{
			name:    "place is optional",
			venue:   venue.Venue{ID: "v1", Name: "Jalapilla"},
			wantErr: false,
		},
		{
			name:    "empty name",
			venue:   venue.Venue{ID: "v1", Place: "somewhere"},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			venue:   venue.Venue{ID: "v1", Name: "   "},
			wantErr: true,
		},
		{
			name:    "name too long",
			venue:   venue.Venue{ID: "v1", Name: strings.Repeat("x", 201)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.venue.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Venue.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestVenueDisplayName tests the unresolved-reference placeholder.
func TestVenueDisplayName(t *testing.T) {
	v := venue.Venue{}
	if got := v.DisplayName(); got != "Sin sede" {
		t.Errorf("DisplayName() = %q, want %q", got, "Sin sede")
	}
	v.Name = "Río Blanco"
	if got := v.DisplayName(); got != "Río Blanco" {
		t.Errorf("DisplayName() = %q, want %q", got, "Río Blanco")
	}
}
