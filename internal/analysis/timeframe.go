package analysis

import "time"

// Range selects the trailing window a query looks back over.
type Range int

const (
	Range1Month Range = iota
	Range3Months
	Range6Months
	Range1Year
	// RangeAll is a bounded 10-year lookback rather than truly
	// unbounded; callers depend on this cap, so keep it.
	RangeAll
)

// CutoffDays returns the trailing-days window for the range.
func (r Range) CutoffDays() int {
	switch r {
	case Range1Month:
		return 30
	case Range3Months:
		return 90
	case Range6Months:
		return 180
	case Range1Year:
		return 365
	default:
		return 3650
	}
}

// Cutoff returns the earliest start time the range admits.
func (r Range) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(r.CutoffDays()) * 24 * time.Hour)
}

// ParseRange maps a config selector name to its Range. Unknown names
// fall back to the three-month default.
func ParseRange(s string) Range {
	switch s {
	case "1month":
		return Range1Month
	case "6month":
		return Range6Months
	case "1year":
		return Range1Year
	case "all":
		return RangeAll
	default:
		return Range3Months
	}
}

// String returns the selector name used in config and display.
func (r Range) String() string {
	switch r {
	case Range1Month:
		return "1month"
	case Range3Months:
		return "3month"
	case Range6Months:
		return "6month"
	case Range1Year:
		return "1year"
	default:
		return "all"
	}
}

const dayKeyLayout = "2006-01-02"

// DayKey returns the local calendar day of t as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD key back into a local time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// MonthKey returns the local calendar month of t as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// WeekStart returns local midnight of the Monday beginning t's week.
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0 ... Sunday = 6
	return d.AddDate(0, 0, -offset)
}

// WeekKey returns the Monday-anchored week-start date of t as YYYY-MM-DD.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(dayKeyLayout)
}

// ISOWeekNumber derives the ISO calendar week of t by shifting the
// date to the nearest Thursday and counting weeks from that
// Thursday's January 1st.
func ISOWeekNumber(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	thursday := d.AddDate(0, 0, 4-weekday)
	return (thursday.YearDay() + 6) / 7
}
