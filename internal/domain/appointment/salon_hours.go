package appointment

import (
	"fmt"
	"time"
)

// SalonHours is the weekly opening schedule shared by every chair.
type SalonHours struct {
	Open       string // HH:MM
	Close      string // HH:MM
	ClosedDays []int  // time.Weekday values
	Location   *time.Location
}

func (h SalonHours) IsClosedOn(day time.Weekday) bool {
	for _, d := range h.ClosedDays {
		if time.Weekday(d) == day {
			return true
		}
	}
	return false
}

// Window returns opening and closing instants for the calendar day of t.
func (h SalonHours) Window(t time.Time) (time.Time, time.Time, error) {
	t = t.In(h.Location)

	parseHM := func(hm string) (time.Time, error) {
		p, err := time.Parse("15:04", hm)
		if err != nil {
			return time.Time{}, fmt.Errorf("salon hours %q: %w", hm, err)
		}
		return time.Date(t.Year(), t.Month(), t.Day(), p.Hour(), p.Minute(), 0, 0, h.Location), nil
	}

	open, err := parseHM(h.Open)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	closing, err := parseHM(h.Close)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return open, closing, nil
}

// Contains reports whether [start, end] fits inside one opening window.
func (h SalonHours) Contains(start, end time.Time) (bool, error) {
	if h.IsClosedOn(start.In(h.Location).Weekday()) {
		return false, nil
	}

	open, closing, err := h.Window(start)
	if err != nil {
		return false, err
	}

	if start.Before(open) || end.After(closing) {
		return false, nil
	}
	return true, nil
}

// FreeSlots splits the opening window of day into back-to-back slots of the
// given length and drops those overlapping a busy interval.
func (h SalonHours) FreeSlots(day time.Time, length time.Duration, busy []Interval, notBefore time.Time) ([]TimeSlot, error) {
	slots := []TimeSlot{}
	if length <= 0 || h.IsClosedOn(day.In(h.Location).Weekday()) {
		return slots, nil
	}

	open, closing, err := h.Window(day)
	if err != nil {
		return nil, err
	}

	for cur := open; !cur.Add(length).After(closing); cur = cur.Add(length) {
		slotEnd := cur.Add(length)

		if cur.Before(notBefore) {
			continue
		}

		conflict := false
		for _, b := range busy {
			if cur.Before(b.End) && slotEnd.After(b.Start) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: cur.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}

type Interval struct {
	Start time.Time
	End   time.Time
}
