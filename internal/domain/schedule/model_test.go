package schedule_test

import (
	"testing"

	"academia/internal/domain/schedule"
)

// TestScheduleValidation tests validation of Schedule.
func TestScheduleValidation(t *testing.T) {
	valid := schedule.Schedule{
		ID:         "s1",
		CategoryID: "c1",
		VenueID:    "v1",
		Weekday:    schedule.Monday,
		StartTime:  "16:00:00",
		EndTime:    "18:00:00",
	}

	tests := []struct {
		name    string
		mutate  func(s *schedule.Schedule)
		wantErr bool
	}{
		{"valid schedule", func(s *schedule.Schedule) {}, false},
		{"with optional flag and note", func(s *schedule.Schedule) {
			s.IsOptional = true
			s.Note = "Tercer día dependiendo de la categoría"
		}, false},
		{"empty category id", func(s *schedule.Schedule) { s.CategoryID = "" }, true},
		{"empty venue id", func(s *schedule.Schedule) { s.VenueID = "" }, true},
		{"weekday zero", func(s *schedule.Schedule) { s.Weekday = 0 }, true},
		{"weekday eight", func(s *schedule.Schedule) { s.Weekday = 8 }, true},
		{"missing seconds", func(s *schedule.Schedule) { s.StartTime = "16:00" }, true},
		{"hour out of range", func(s *schedule.Schedule) { s.EndTime = "25:00:00" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Schedule.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestWeekdayLabel tests Spanish labels and the out-of-range fallback.
func TestWeekdayLabel(t *testing.T) {
	tests := []struct {
		weekday int
		want    string
	}{
		{1, "Lunes"},
		{3, "Miércoles"},
		{6, "Sábado"},
		{7, "Domingo"},
		{0, "Día 0"},
		{9, "Día 9"},
	}

	for _, tt := range tests {
		if got := schedule.WeekdayLabel(tt.weekday); got != tt.want {
			t.Errorf("WeekdayLabel(%d) = %q, want %q", tt.weekday, got, tt.want)
		}
	}
}

// TestFormatTime tests 24-hour to 12-hour conversion.
func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:30:00", "12:30 am"},
		{"01:05:00", "1:05 am"},
		{"11:59:00", "11:59 am"},
		{"12:00:00", "12:00 pm"},
		{"13:05:00", "1:05 pm"},
		{"23:45:00", "11:45 pm"},
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		if got := schedule.FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestTimeNormalization tests the form input round-trip helpers.
func TestTimeNormalization(t *testing.T) {
	if got := schedule.NormalizeTime("16:00"); got != "16:00:00" {
		t.Errorf("NormalizeTime(\"16:00\") = %q, want \"16:00:00\"", got)
	}
	if got := schedule.NormalizeTime("16:00:00"); got != "16:00:00" {
		t.Errorf("NormalizeTime(\"16:00:00\") = %q, want \"16:00:00\"", got)
	}
	if got := schedule.ShortTime("16:00:00"); got != "16:00" {
		t.Errorf("ShortTime(\"16:00:00\") = %q, want \"16:00\"", got)
	}
}
