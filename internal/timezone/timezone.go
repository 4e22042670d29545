package timezone

import "time"

const DefaultTimezone = "UTC"

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = DateLayout + " " + TimeLayout
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDateTime reads "YYYY-MM-DD" and "HH:MM" (seconds tolerated) as wall
// time in loc.
func ParseDateTime(loc *time.Location, date, hm string) (time.Time, error) {
	if len(hm) == len("15:04:05") {
		hm = hm[:5]
	}
	return time.ParseInLocation(DateTimeLayout, date+" "+hm, loc)
}

func ParseDate(loc *time.Location, date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// DayBounds returns midnight of t's day and midnight of the next day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
