package category

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxNameLength bounds user-editable category names.
const MaxNameLength = 200

// PlaceholderName is displayed when a schedule or registration references a
// category that no longer exists.
const PlaceholderName = "Sin categoría"

// MissingSortOrder is the sort key used for categories without an explicit
// sort order, so they always order after configured ones.
const MissingSortOrder = 9999

// Domain errors
var (
	ErrEmptyName   = errors.New("category name cannot be empty")
	ErrInvalidYear = errors.New("birth years must be four-digit calendar years")
)

// Category represents an age cohort defined by an inclusive birth-year range.
// YearFrom and YearTo may be stored in either order; use Range for the
// normalized bounds.
type Category struct {
	ID       string
	Name     string
	YearFrom int
	YearTo   int
	// SortOrder controls display position; nil sorts last.
	SortOrder *int
}

// Validate checks if the Category has valid data.
// PRE: Category struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return fmt.Errorf("category name cannot exceed %d characters", MaxNameLength)
	}
	if !validYear(c.YearFrom) || !validYear(c.YearTo) {
		return ErrInvalidYear
	}
	return nil
}

// Range returns the normalized inclusive birth-year range.
// POST: lo <= hi regardless of the stored field order
func (c *Category) Range() (lo, hi int) {
	if c.YearFrom <= c.YearTo {
		return c.YearFrom, c.YearTo
	}
	return c.YearTo, c.YearFrom
}

// Contains reports whether the birth year falls inside the normalized range.
func (c *Category) Contains(birthYear int) bool {
	lo, hi := c.Range()
	return birthYear >= lo && birthYear <= hi
}

// SortKey returns the effective sort order: the configured value, or
// MissingSortOrder when none is set.
func (c *Category) SortKey() int {
	if c.SortOrder == nil {
		return MissingSortOrder
	}
	return *c.SortOrder
}

// DisplayName returns the category name, or the placeholder for the zero
// value (unresolved reference).
func (c *Category) DisplayName() string {
	if strings.TrimSpace(c.Name) == "" {
		return PlaceholderName
	}
	return c.Name
}

// Match finds the category for a birth year.
// PRE: cats is ordered ascending by sort order (see SortBySortOrder)
// POST: Returns the first category whose range contains the year, or false
// when the year is non-positive or no range contains it. Overlapping ranges
// resolve deterministically to the earliest category in the given order.
func Match(birthYear int, cats []Category) (Category, bool) {
	if birthYear <= 0 {
		return Category{}, false
	}
	for _, c := range cats {
		if c.Contains(birthYear) {
			return c, true
		}
	}
	return Category{}, false
}

// SortBySortOrder orders categories ascending by effective sort order,
// preserving the input order among equal keys.
func SortBySortOrder(cats []Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].SortKey() < cats[j].SortKey()
	})
}

func validYear(y int) bool {
	return y >= 1900 && y <= 2100
}
