package directory

import (
	"fmt"
	"time"
)

// Defaults applied when a doctor is added without explicit shift values.
const (
	DefaultShiftStart = 9
	DefaultShiftHours = 8
)

// Doctor maps to one entry of doctors.json.
type Doctor struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	ShiftStartHour int    `json:"shift_start_hour"`
	ShiftHours     int    `json:"shift_hours"`
}

// SlotLabels derives the doctor's bookable slots: ShiftHours contiguous
// one-hour intervals labeled "HH:MM-HH:MM", slot i starting at
// ShiftStartHour+i. The hour arithmetic is deliberately unwrapped: a
// shift reaching past midnight labels its slots "24:00-25:00" and
// onward, matching the labels already present in deployed data files.
func (d Doctor) SlotLabels() []string {
	labels := make([]string, 0, d.ShiftHours)
	for i := 0; i < d.ShiftHours; i++ {
		h := d.ShiftStartHour + i
		labels = append(labels, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return labels
}

// Timings renders the shift in 12-hour clock form for roster listings,
// e.g. "09:00 AM - 05:00 PM".
func (d Doctor) Timings() string {
	start := time.Date(2000, 1, 1, d.ShiftStartHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, d.ShiftStartHour+d.ShiftHours, 0, 0, 0, time.UTC)
	return start.Format("03:04 PM") + " - " + end.Format("03:04 PM")
}

func (d Doctor) String() string {
	return fmt.Sprintf("ID: %d, Name: Dr. %s, Specialization: %s, Timings: %s",
		d.ID, d.Name, d.Specialization, d.Timings())
}
