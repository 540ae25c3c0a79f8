package orchestrators

import (
	"context"
	"errors"
	"testing"

	"academia/internal/domain/venue"
)

type mockVenueStore struct {
	venues  map[string]venue.Venue
	deleted []string
}

func newMockVenueStore() *mockVenueStore {
	return &mockVenueStore{venues: map[string]venue.Venue{}}
}

func (m *mockVenueStore) GetByID(_ context.Context, id string) (venue.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return venue.Venue{}, errors.New("venue not found")
	}
	return v, nil
}

func (m *mockVenueStore) Save(_ context.Context, v venue.Venue) error {
	m.venues[v.ID] = v
	return nil
}

func (m *mockVenueStore) Delete(_ context.Context, id string) error {
	delete(m.venues, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func TestExecuteCreateVenue(t *testing.T) {
	store := newMockVenueStore()
	deps := CreateVenueDeps{VenueStore: store}

	v, err := ExecuteCreateVenue(context.Background(), CreateVenueInput{
		Name:  "Nogales",
		Place: "Nogales, Ver.",
	}, deps)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if v.ID == "" {
		t.Error("expected generated ID")
	}
	if _, ok := store.venues[v.ID]; !ok {
		t.Error("expected venue persisted")
	}
}

func TestExecuteCreateVenue_RequiresName(t *testing.T) {
	deps := CreateVenueDeps{VenueStore: newMockVenueStore()}

	if _, err := ExecuteCreateVenue(context.Background(), CreateVenueInput{Place: "Somewhere"}, deps); err == nil {
		t.Error("expected validation error for empty name")
	}
}

func TestExecuteEditVenue(t *testing.T) {
	store := newMockVenueStore()
	store.venues["v1"] = venue.Venue{ID: "v1", Name: "Río Blanco", Place: "Old place"}
	deps := CreateVenueDeps{VenueStore: store}

	v, err := ExecuteEditVenue(context.Background(), EditVenueInput{
		VenueID: "v1",
		Name:    "Río Blanco",
		Place:   "Río Blanco, Ver. - Estadio 7 de Enero",
	}, deps)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if v.Place != "Río Blanco, Ver. - Estadio 7 de Enero" {
		t.Errorf("expected updated place, got %q", v.Place)
	}
}

func TestExecuteEditVenue_NotFound(t *testing.T) {
	deps := CreateVenueDeps{VenueStore: newMockVenueStore()}

	if _, err := ExecuteEditVenue(context.Background(), EditVenueInput{VenueID: "missing", Name: "X"}, deps); err == nil {
		t.Error("expected error for missing venue")
	}
}

func TestExecuteDeleteVenue(t *testing.T) {
	store := newMockVenueStore()
	store.venues["v1"] = venue.Venue{ID: "v1", Name: "Río Blanco"}
	deps := CreateVenueDeps{VenueStore: store}

	if err := ExecuteDeleteVenue(context.Background(), "v1", deps); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "v1" {
		t.Errorf("expected v1 deleted, got %v", store.deleted)
	}

	if err := ExecuteDeleteVenue(context.Background(), "v1", deps); err == nil {
		t.Error("expected error deleting a venue twice")
	}
}
