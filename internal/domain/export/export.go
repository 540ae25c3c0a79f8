package export

import (
	"strconv"
	"strings"
	"time"
)

// Header is the fixed CSV header row for registration exports.
var Header = []string{"Nombre", "Edad", "Teléfono", "Sede", "Categoría", "Fecha"}

// monthsEs holds the es-MX short month names used in the Fecha column.
var monthsEs = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Row is one registration line of the export, with references already
// resolved to display names by the caller.
type Row struct {
	FullName     string
	Age          int // whole years; negative means unknown
	Phone        string
	VenueName    string
	CategoryName string
	CreatedAt    time.Time
}

// RegistrationsCSV serializes rows to a CSV blob: the fixed header followed
// by one line per row, each field double-quoted with internal quotes doubled.
// PRE: rows carry resolved display names (placeholders for missing refs)
// POST: Returns the complete text blob; producing a download is the caller's
// concern
func RegistrationsCSV(rows []Row) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))

	for _, r := range rows {
		age := ""
		if r.Age >= 0 {
			age = strconv.Itoa(r.Age)
		}
		cells := []string{
			r.FullName,
			age,
			r.Phone,
			r.VenueName,
			r.CategoryName,
			FormatFecha(r.CreatedAt),
		}
		b.WriteByte('\n')
		for i, c := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(c))
		}
	}
	return []byte(b.String())
}

// FormatFecha renders a timestamp as "dd mmm yyyy" with a Spanish month
// abbreviation (e.g. "05 ene 2025"). The zero time renders as "—".
func FormatFecha(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	var b strings.Builder
	day := t.Day()
	if day < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.Itoa(day))
	b.WriteByte(' ')
	b.WriteString(monthsEs[t.Month()-1])
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(t.Year()))
	return b.String()
}

// FileName returns the suggested download name, e.g. "registros_2025-01-05.csv".
func FileName(now time.Time) string {
	return "registros_" + now.Format("2006-01-02") + ".csv"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
