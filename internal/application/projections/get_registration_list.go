package projections

import (
	"context"
	"sort"
	"strings"
	"time"

	domainCategory "academia/internal/domain/category"
	domainExport "academia/internal/domain/export"
	domainVenue "academia/internal/domain/venue"
)

// AllFilter is the sentinel select value meaning "no filter applied".
const AllFilter = "Todas"

// GetRegistrationListQuery carries query parameters. Filters operate on the
// resolved display names, matching the admin dashboard selects.
type GetRegistrationListQuery struct {
	Search   string // free-text, case-insensitive
	Venue    string // venue display name or "Todas"
	Category string // category display name or "Todas"
	Now      time.Time
}

// RegistrationRow is one resolved row of the admin list.
type RegistrationRow struct {
	ID           string
	FullName     string
	Age          int // negative means unknown (unparseable birth date)
	Phone        string
	VenueName    string
	CategoryName string
	CreatedAt    time.Time
	Fecha        string // display date, es-MX "dd mmm yyyy"
	IsRecent     bool
}

// GetRegistrationListResult carries the filtered rows plus dashboard KPIs and
// the filter option lists.
type GetRegistrationListResult struct {
	Rows          []RegistrationRow
	Total         int // unfiltered
	Last30Days    int // unfiltered, inclusive 30-day window
	VenueCount    int
	CategoryCount int
	VenueOptions    []string // "Todas" first, then distinct resolved names sorted
	CategoryOptions []string
}

// GetRegistrationListDeps holds dependencies for GetRegistrationList.
type GetRegistrationListDeps struct {
	RegistrationStore RegistrationStore
	VenueStore        VenueStore
	CategoryStore     CategoryStore
}

// QueryGetRegistrationList resolves references, computes derived fields and
// applies the conjunctive filter set.
// PRE: stores are non-nil; query.Now is the evaluation instant (zero means
// time.Now())
// POST: Rows ordered newest first; filters are conjunctive; unresolved venue
// or category references carry placeholder names and still match filters by
// those placeholders
func QueryGetRegistrationList(ctx context.Context, query GetRegistrationListQuery, deps GetRegistrationListDeps) (GetRegistrationListResult, error) {
	registrations, err := deps.RegistrationStore.List(ctx)
	if err != nil {
		return GetRegistrationListResult{}, err
	}
	venues, err := deps.VenueStore.List(ctx)
	if err != nil {
		return GetRegistrationListResult{}, err
	}
	categories, err := deps.CategoryStore.List(ctx)
	if err != nil {
		return GetRegistrationListResult{}, err
	}

	now := query.Now
	if now.IsZero() {
		now = time.Now()
	}

	venueByID := make(map[string]domainVenue.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}
	categoryByID := make(map[string]domainCategory.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	all := make([]RegistrationRow, 0, len(registrations))
	venueNames := make(map[string]bool)
	categoryNames := make(map[string]bool)
	last30 := 0
	for _, r := range registrations {
		v := venueByID[r.VenueID]
		c := categoryByID[r.CategoryID]
		row := RegistrationRow{
			ID:           r.ID,
			FullName:     r.FullName,
			Age:          r.Age(now),
			Phone:        r.Phone,
			VenueName:    v.DisplayName(),
			CategoryName: c.DisplayName(),
			CreatedAt:    r.CreatedAt,
			Fecha:        domainExport.FormatFecha(r.CreatedAt),
			IsRecent:     r.IsRecent(now),
		}
		if row.IsRecent {
			last30++
		}
		venueNames[row.VenueName] = true
		categoryNames[row.CategoryName] = true
		all = append(all, row)
	}

	// Newest first, matching the dashboard's created_at DESC ordering.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	filtered := FilterRegistrations(all, query.Search, query.Venue, query.Category)

	return GetRegistrationListResult{
		Rows:          filtered,
		Total:         len(all),
		Last30Days:    last30,
		VenueCount:    len(venueNames),
		CategoryCount: len(categoryNames),
		VenueOptions:  optionList(venueNames),
		CategoryOptions:  optionList(categoryNames),
	}, nil
}

// FilterRegistrations applies the conjunctive filter set: venue equality
// (sentinel "Todas" skips), category equality (same rule), then a
// case-insensitive substring search over name, phone, venue and category.
func FilterRegistrations(rows []RegistrationRow, search, venueFilter, categoryFilter string) []RegistrationRow {
	filtered := rows

	if venueFilter != "" && venueFilter != AllFilter {
		filtered = keep(filtered, func(r RegistrationRow) bool {
			return r.VenueName == venueFilter
		})
	}
	if categoryFilter != "" && categoryFilter != AllFilter {
		filtered = keep(filtered, func(r RegistrationRow) bool {
			return r.CategoryName == categoryFilter
		})
	}
	if needle := strings.ToLower(strings.TrimSpace(search)); needle != "" {
		filtered = keep(filtered, func(r RegistrationRow) bool {
			return strings.Contains(strings.ToLower(r.FullName), needle) ||
				strings.Contains(strings.ToLower(r.Phone), needle) ||
				strings.Contains(strings.ToLower(r.VenueName), needle) ||
				strings.Contains(strings.ToLower(r.CategoryName), needle)
		})
	}
	return filtered
}

// ExportRows converts filtered rows to the export shape.
func ExportRows(rows []RegistrationRow) []domainExport.Row {
	out := make([]domainExport.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainExport.Row{
			FullName:     r.FullName,
			Age:          r.Age,
			Phone:        r.Phone,
			VenueName:    r.VenueName,
			CategoryName: r.CategoryName,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out
}

func keep(rows []RegistrationRow, pred func(RegistrationRow) bool) []RegistrationRow {
	out := rows[:0:0]
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func optionList(names map[string]bool) []string {
	opts := make([]string, 0, len(names)+1)
	for name := range names {
		opts = append(opts, name)
	}
	sort.Strings(opts)
	return append([]string{AllFilter}, opts...)
}
