package registration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"academia/internal/adapters/storage"
	domain "academia/internal/domain/registration"
)

func openStoreDB(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return NewSQLiteStore(db)
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := openStoreDB(t)
	ctx := context.Background()

	created := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	reg := domain.Registration{
		ID:         "r1",
		FullName:   "Juan Pérez",
		BirthDate:  "2014-06-15",
		Phone:      "2721234567",
		CreatedAt:  created,
		VenueID:    "v1",
		CategoryID: "c1",
	}
	if err := store.Save(ctx, reg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByID(ctx, "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FullName != reg.FullName || got.BirthDate != reg.BirthDate || got.Phone != reg.Phone {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestSQLiteStore_ListNewestFirst(t *testing.T) {
	store := openStoreDB(t)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		reg := domain.Registration{
			ID: id, FullName: "Jugador " + id, BirthDate: "2014-01-01",
			Phone: "2721234567", CreatedAt: base.Add(time.Duration(i) * time.Hour),
			VenueID: "v1", CategoryID: "c1",
		}
		if err := store.Save(ctx, reg); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].ID != "new" || list[2].ID != "old" {
		t.Errorf("expected newest first, got %s..%s", list[0].ID, list[2].ID)
	}

	count, err := store.Count(ctx)
	if err != nil || count != 3 {
		t.Errorf("Count = %d, %v; want 3", count, err)
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := openStoreDB(t)

	if _, err := store.GetByID(context.Background(), "nope"); err == nil {
		t.Error("expected error for missing registration")
	}
}
