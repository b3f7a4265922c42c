package fitness

import "time"

// DayKeys lists the seven canonical day identifiers in week order.
// They key both the weekly tracker and the weekly metrics entries, so
// the enumeration must never depend on locale-aware calendar APIs.
var DayKeys = []string{"pzt", "sal", "car", "per", "cum", "cmt", "pazar"}

var dayNames = map[string]string{
	"pzt":   "Pazartesi",
	"sal":   "Sali",
	"car":   "Carsamba",
	"per":   "Persembe",
	"cum":   "Cuma",
	"cmt":   "Cumartesi",
	"pazar": "Pazar",
}

// DayName returns the display name for a day key, or the key itself.
func DayName(key string) string {
	if name, ok := dayNames[key]; ok {
		return name
	}
	return key
}

// DayKeyFor maps a time to its canonical day key.
func DayKeyFor(t time.Time) string {
	// time.Weekday: Sunday=0 .. Saturday=6; DayKeys start on Monday.
	idx := (int(t.Weekday()) + 6) % 7
	return DayKeys[idx]
}

// WeekStart returns the Monday of t's week at midnight, computed with
// explicit day-of-week arithmetic.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
