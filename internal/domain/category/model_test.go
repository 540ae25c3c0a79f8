package category_test

import (
	"testing"

	"academia/internal/domain/category"
)

func intp(n int) *int { return &n }

// TestCategoryValidation tests validation of Category.
func TestCategoryValidation(t *testing.T) {
	tests := []struct {
		name     string
		category category.Category
		wantErr  bool
	}{
		{
			name: "valid category",
			category: category.Category{
				ID:        "c1",
				Name:      "Infantil",
				YearFrom:  2012,
				YearTo:    2013,
				SortOrder: intp(5),
			},
			wantErr: false,
		},
		{
			name: "valid without sort order",
			category: category.Category{
				ID:       "c1",
				Name:     "Juvenil",
				YearFrom: 2007,
				YearTo:   2009,
			},
			wantErr: false,
		},
		{
			name: "reversed years are still valid",
			category: category.Category{
				ID:       "c1",
				Name:     "Pony",
				YearFrom: 2015,
				YearTo:   2014,
			},
			wantErr: false,
		},
		{
			name:     "empty name",
			category: category.Category{ID: "c1", YearFrom: 2012, YearTo: 2013},
			wantErr:  true,
		},
		{
			name:     "year out of range",
			category: category.Category{ID: "c1", Name: "Pony", YearFrom: 14, YearTo: 2015},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Category.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestCategoryRange tests range normalization with reversed year fields.
func TestCategoryRange(t *testing.T) {
	tests := []struct {
		name           string
		from, to       int
		wantLo, wantHi int
	}{
		{"ordered", 2016, 2018, 2016, 2018},
		{"reversed", 2018, 2016, 2016, 2018},
		{"single year", 2017, 2017, 2017, 2017},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := category.Category{YearFrom: tt.from, YearTo: tt.to}
			lo, hi := c.Range()
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("Range() = (%d, %d), want (%d, %d)", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

// TestMatch tests first-match-wins category lookup.
func TestMatch(t *testing.T) {
	cats := []category.Category{
		{ID: "a", Name: "Chica", YearFrom: 2016, YearTo: 2018, SortOrder: intp(1)},
		{ID: "b", Name: "Grande", YearFrom: 2013, YearTo: 2015, SortOrder: intp(2)},
	}

	t.Run("matches second category", func(t *testing.T) {
		got, ok := category.Match(2014, cats)
		if !ok || got.ID != "b" {
			t.Errorf("Match(2014) = (%q, %v), want (\"b\", true)", got.ID, ok)
		}
	})

	t.Run("reversed range matches identically", func(t *testing.T) {
		reversed := []category.Category{{ID: "r", Name: "R", YearFrom: 2018, YearTo: 2016}}
		got, ok := category.Match(2017, reversed)
		if !ok || got.ID != "r" {
			t.Errorf("Match(2017) = (%q, %v), want (\"r\", true)", got.ID, ok)
		}
	})

	t.Run("overlap resolves to first in order", func(t *testing.T) {
		overlapping := []category.Category{
			{ID: "first", Name: "F", YearFrom: 2010, YearTo: 2015},
			{ID: "second", Name: "S", YearFrom: 2014, YearTo: 2016},
		}
		got, _ := category.Match(2014, overlapping)
		if got.ID != "first" {
			t.Errorf("Match(2014) = %q, want \"first\"", got.ID)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := category.Match(1999, cats); ok {
			t.Error("Match(1999) matched, want no match")
		}
	})

	t.Run("zero year never matches", func(t *testing.T) {
		if _, ok := category.Match(0, cats); ok {
			t.Error("Match(0) matched, want no match")
		}
	})
}

// TestSortBySortOrder tests that missing sort order values sort last.
func TestSortBySortOrder(t *testing.T) {
	cats := []category.Category{
		{ID: "no-order", Name: "X"},
		{ID: "three", Name: "Y", SortOrder: intp(3)},
		{ID: "one", Name: "Z", SortOrder: intp(1)},
	}

	category.SortBySortOrder(cats)

	want := []string{"one", "three", "no-order"}
	for i, id := range want {
		if cats[i].ID != id {
			t.Errorf("cats[%d].ID = %q, want %q", i, cats[i].ID, id)
		}
	}
}

// TestSortKey tests the missing-sort-order fallback.
func TestSortKey(t *testing.T) {
	c := category.Category{}
	if got := c.SortKey(); got != category.MissingSortOrder {
		t.Errorf("SortKey() = %d, want %d", got, category.MissingSortOrder)
	}
	c.SortOrder = intp(2)
	if got := c.SortKey(); got != 2 {
		t.Errorf("SortKey() = %d, want 2", got)
	}
}

// TestDisplayName tests the unresolved-reference placeholder.
func TestDisplayName(t *testing.T) {
	c := category.Category{}
	if got := c.DisplayName(); got != "Sin categoría" {
		t.Errorf("DisplayName() = %q, want %q", got, "Sin categoría")
	}
	c.Name = "Pony"
	if got := c.DisplayName(); got != "Pony" {
		t.Errorf("DisplayName() = %q, want %q", got, "Pony")
	}
}
