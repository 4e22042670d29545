package appointment

import "time"

type AvailabilityInput struct {
	Date    time.Time
	Service Service
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
