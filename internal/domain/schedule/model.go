package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Weekday constants (ISO numbering, Monday=1).
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// weekdayEs maps weekday numbers to their Spanish display labels.
var weekdayEs = map[int]string{
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

// MaxNoteLength bounds the optional free-text note.
const MaxNoteLength = 500

// Domain errors
var (
	ErrEmptyCategoryID = errors.New("category ID cannot be empty")
	ErrEmptyVenueID    = errors.New("venue ID cannot be empty")
	ErrInvalidWeekday  = errors.New("weekday must be in 1..7 (Monday=1)")
	ErrInvalidTime     = errors.New("time must be in HH:MM:SS format")
)

// Schedule represents a recurring weekly training slot linking one Category
// to one Venue. Times are wall-clock strings with no date or timezone.
type Schedule struct {
	ID         string
	CategoryID string
	VenueID    string
	Weekday    int    // 1-7, Monday=1
	StartTime  string // "HH:MM:SS"
	EndTime    string // "HH:MM:SS"
	IsOptional bool   // admin-only flag for optional third days
	Note       string // optional free text
}

// Validate checks if the Schedule has valid data.
// PRE: Schedule struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Schedule) Validate() error {
	if strings.TrimSpace(s.CategoryID) == "" {
		return ErrEmptyCategoryID
	}
	if strings.TrimSpace(s.VenueID) == "" {
		return ErrEmptyVenueID
	}
	if s.Weekday < Monday || s.Weekday > Sunday {
		return ErrInvalidWeekday
	}
	if !validTime(s.StartTime) || !validTime(s.EndTime) {
		return ErrInvalidTime
	}
	if len(s.Note) > MaxNoteLength {
		return fmt.Errorf("schedule note cannot exceed %d characters", MaxNoteLength)
	}
	return nil
}

// WeekdayLabel returns the Spanish label for a weekday number.
// Out-of-range values render as "Día N" instead of failing.
func WeekdayLabel(weekday int) string {
	if label, ok := weekdayEs[weekday]; ok {
		return label
	}
	return fmt.Sprintf("Día %d", weekday)
}

// WeekdayLabel returns the Spanish label for this slot's weekday.
func (s *Schedule) WeekdayLabel() string {
	return WeekdayLabel(s.Weekday)
}

// FormatTime renders a 24-hour "HH:MM:SS" string as 12-hour with a lowercase
// am/pm suffix: "00:30:00" → "12:30 am", "13:05:00" → "1:05 pm",
// "12:00:00" → "12:00 pm". Malformed input is returned unchanged.
func FormatTime(t string) string {
	parts := strings.SplitN(t, ":", 3)
	if len(parts) < 2 {
		return t
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return t
	}
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, parts[1], suffix)
}

// NormalizeTime converts admin form input "HH:MM" to the stored "HH:MM:SS"
// representation. Input already carrying seconds is returned unchanged.
func NormalizeTime(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}

// ShortTime trims a stored "HH:MM:SS" value to "HH:MM" for form inputs.
func ShortTime(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

// validTime accepts fixed-width "HH:MM:SS" wall-clock strings. Lexical
// comparison of valid values equals chronological comparison.
func validTime(t string) bool {
	if len(t) != 8 || t[2] != ':' || t[5] != ':' {
		return false
	}
	h, err := strconv.Atoi(t[0:2])
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(t[3:5])
	if err != nil || m < 0 || m > 59 {
		return false
	}
	sec, err := strconv.Atoi(t[6:8])
	if err != nil || sec < 0 || sec > 59 {
		return false
	}
	return true
}
