package registration

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Max length constants.
const (
	MaxFullNameLength = 200
)

// PhoneDigits is the required length of a normalized phone number.
const PhoneDigits = 10

// RecentWindow is the inclusive window for the "recent sign-up" KPI.
const RecentWindow = 30 * 24 * time.Hour

// Domain errors
var (
	ErrEmptyFullName   = errors.New("full name cannot be empty")
	ErrEmptyBirthDate  = errors.New("birth date cannot be empty")
	ErrInvalidPhone    = errors.New("phone must have exactly 10 digits")
	ErrEmptyVenueID    = errors.New("venue ID cannot be empty")
	ErrEmptyCategoryID = errors.New("category ID cannot be empty")
)

// Registration represents a prospective player's submitted sign-up record.
type Registration struct {
	ID         string
	FullName   string
	BirthDate  string // "YYYY-MM-DD", no time component
	Phone      string // 10 digits after normalization
	CreatedAt  time.Time
	VenueID    string
	CategoryID string
}

// Validate checks if the Registration has valid data.
// PRE: Phone has already been run through NormalizePhone
// POST: Returns nil if valid, error otherwise
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return ErrEmptyFullName
	}
	if len(r.FullName) > MaxFullNameLength {
		return fmt.Errorf("full name cannot exceed %d characters", MaxFullNameLength)
	}
	if strings.TrimSpace(r.BirthDate) == "" {
		return ErrEmptyBirthDate
	}
	if _, err := time.Parse("2006-01-02", r.BirthDate); err != nil {
		return fmt.Errorf("invalid birth date %q: %w", r.BirthDate, err)
	}
	if !isTenDigits(r.Phone) {
		return ErrInvalidPhone
	}
	if strings.TrimSpace(r.VenueID) == "" {
		return ErrEmptyVenueID
	}
	if strings.TrimSpace(r.CategoryID) == "" {
		return ErrEmptyCategoryID
	}
	return nil
}

// BirthYear returns the four-digit birth year, or 0 when the date is absent
// or unparseable. Callers treat 0 as "category pending", not a failure.
func (r *Registration) BirthYear() int {
	t, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return 0
	}
	return t.Year()
}

// Age returns whole years lived as of now, adjusted down by one when now's
// month/day precedes the birth month/day. Returns -1 when the birth date is
// unparseable.
func (r *Registration) Age(now time.Time) int {
	b, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return -1
	}
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return age
}

// IsRecent reports whether the record was created within the inclusive
// 30-day window ending at now. Records from the future are not recent.
func (r *Registration) IsRecent(now time.Time) bool {
	diff := now.Sub(r.CreatedAt)
	return diff >= 0 && diff <= RecentWindow
}

// NormalizePhone strips all non-digit characters, then strips a leading "52"
// country prefix when the digit string is 12 long:
// "+52 272 123 4567" → "2721234567".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 12 && strings.HasPrefix(digits, "52") {
		return digits[2:]
	}
	return digits
}

func isTenDigits(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
