package projections

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	domainCategory "academia/internal/domain/category"
	domainSchedule "academia/internal/domain/schedule"
	domainVenue "academia/internal/domain/venue"
)

// DefaultPreferredVenues is the fixed front-of-list venue order for the
// public training board. Venues not named here sort alphabetically after.
var DefaultPreferredVenues = []string{"Río Blanco", "Jalapilla"}

// GetTrainingBoardQuery carries query parameters.
type GetTrainingBoardQuery struct {
	// PreferredVenues overrides DefaultPreferredVenues when non-nil.
	PreferredVenues []string
}

// ScheduleRow is one rendered slot of the board.
type ScheduleRow struct {
	ID           string
	WeekdayLabel string
	StartTime    string // 12-hour display, e.g. "4:00 pm"
	EndTime      string
	IsOptional   bool
	Note         string
}

// VenueGroup holds one venue's slots within a category.
type VenueGroup struct {
	VenueID   string
	VenueName string
	Place     string
	Rows      []ScheduleRow
}

// CategoryGroup holds one category's venues on the board. Categories with no
// schedules have an empty Venues list ("no schedules yet" in the UI).
type CategoryGroup struct {
	CategoryID   string
	CategoryName string
	YearFrom     int
	YearTo       int
	Venues       []VenueGroup
}

// GetTrainingBoardResult carries the query result.
type GetTrainingBoardResult struct {
	Categories []CategoryGroup
}

// GetTrainingBoardDeps holds dependencies for GetTrainingBoard.
type GetTrainingBoardDeps struct {
	VenueStore    VenueStore
	CategoryStore CategoryStore
	ScheduleStore ScheduleStore
}

// QueryGetTrainingBoard builds the public schedule board: schedules grouped
// by category, then by venue, with deterministic ordering throughout.
// PRE: stores are non-nil
// POST: Categories ordered ascending by sort order (missing sorts last);
// venues ordered preferred-first then by Spanish collation; rows ordered by
// (weekday, start time). Unresolved references render placeholder labels.
func QueryGetTrainingBoard(ctx context.Context, query GetTrainingBoardQuery, deps GetTrainingBoardDeps) (GetTrainingBoardResult, error) {
	venues, err := deps.VenueStore.List(ctx)
	if err != nil {
		return GetTrainingBoardResult{}, err
	}
	categories, err := deps.CategoryStore.List(ctx)
	if err != nil {
		return GetTrainingBoardResult{}, err
	}
	schedules, err := deps.ScheduleStore.List(ctx)
	if err != nil {
		return GetTrainingBoardResult{}, err
	}

	preferred := query.PreferredVenues
	if preferred == nil {
		preferred = DefaultPreferredVenues
	}

	groups := AggregateSchedules(schedules, venues, categories, preferred)
	return GetTrainingBoardResult{Categories: groups}, nil
}

// AggregateSchedules is the pure aggregation core behind the board query.
// Same inputs always yield the same output.
func AggregateSchedules(
	schedules []domainSchedule.Schedule,
	venues []domainVenue.Venue,
	categories []domainCategory.Category,
	preferredVenues []string,
) []CategoryGroup {
	venueByID := make(map[string]domainVenue.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}

	// Partition schedules by category. Rows referencing an unknown category
	// are not dropped: they render under a placeholder group at the end.
	byCategory := make(map[string][]domainSchedule.Schedule)
	for _, s := range schedules {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	ordered := make([]domainCategory.Category, len(categories))
	copy(ordered, categories)
	domainCategory.SortBySortOrder(ordered)

	known := make(map[string]bool, len(ordered))
	var groups []CategoryGroup
	for _, cat := range ordered {
		known[cat.ID] = true
		groups = append(groups, CategoryGroup{
			CategoryID:   cat.ID,
			CategoryName: cat.DisplayName(),
			YearFrom:     cat.YearFrom,
			YearTo:       cat.YearTo,
			Venues:       groupByVenue(byCategory[cat.ID], venueByID, preferredVenues),
		})
	}

	// Orphaned schedules (deleted category) surface once, after real groups.
	var orphanIDs []string
	for id := range byCategory {
		if !known[id] {
			orphanIDs = append(orphanIDs, id)
		}
	}
	sort.Strings(orphanIDs)
	for _, id := range orphanIDs {
		groups = append(groups, CategoryGroup{
			CategoryID:   id,
			CategoryName: domainCategory.PlaceholderName,
			Venues:       groupByVenue(byCategory[id], venueByID, preferredVenues),
		})
	}

	return groups
}

// groupByVenue partitions one category's schedules by venue and orders both
// the venue buckets and the rows inside each bucket.
func groupByVenue(rows []domainSchedule.Schedule, venueByID map[string]domainVenue.Venue, preferredVenues []string) []VenueGroup {
	if len(rows) == 0 {
		return nil
	}

	byVenue := make(map[string][]domainSchedule.Schedule)
	for _, s := range rows {
		byVenue[s.VenueID] = append(byVenue[s.VenueID], s)
	}

	groups := make([]VenueGroup, 0, len(byVenue))
	for venueID, slots := range byVenue {
		v := venueByID[venueID] // zero value degrades to "Sin sede"
		sort.SliceStable(slots, func(i, j int) bool {
			if slots[i].Weekday != slots[j].Weekday {
				return slots[i].Weekday < slots[j].Weekday
			}
			return slots[i].StartTime < slots[j].StartTime
		})
		g := VenueGroup{
			VenueID:   venueID,
			VenueName: v.DisplayName(),
			Place:     v.Place,
			Rows:      make([]ScheduleRow, 0, len(slots)),
		}
		for _, s := range slots {
			g.Rows = append(g.Rows, ScheduleRow{
				ID:           s.ID,
				WeekdayLabel: s.WeekdayLabel(),
				StartTime:    domainSchedule.FormatTime(s.StartTime),
				EndTime:      domainSchedule.FormatTime(s.EndTime),
				IsOptional:   s.IsOptional,
				Note:         s.Note,
			})
		}
		groups = append(groups, g)
	}

	sortVenueGroups(groups, preferredVenues)
	return groups
}

// sortVenueGroups hoists preferred venues to the front in list order, then
// orders the rest by Spanish collation of the display name.
func sortVenueGroups(groups []VenueGroup, preferredVenues []string) {
	rank := make(map[string]int, len(preferredVenues))
	for i, name := range preferredVenues {
		rank[name] = i
	}
	collator := collate.New(language.Spanish)
	sort.SliceStable(groups, func(i, j int) bool {
		ri, iPref := rank[groups[i].VenueName]
		rj, jPref := rank[groups[j].VenueName]
		switch {
		case iPref && jPref:
			return ri < rj
		case iPref:
			return true
		case jPref:
			return false
		default:
			return collator.CompareString(groups[i].VenueName, groups[j].VenueName) < 0
		}
	})
}
