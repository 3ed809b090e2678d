package scheduling

import "github.com/frontdesk/frontdesk/internal/domain/directory"

// WindowDays is the length of the rolling booking window.
const WindowDays = 7

// DateLayout is the fixed calendar-date format used across the
// persisted files and the console ("DD-MM-YYYY").
const DateLayout = "02-01-2006"

// WeekGrid is an occupancy snapshot for one doctor: rows are the
// doctor's slots, columns the seven window dates. It is a hint for
// display and selection only; the ledger re-checks occupancy when a
// booking is committed.
type WeekGrid struct {
	Doctor directory.Doctor
	Dates  []string
	Slots  []string
	Booked [][]bool
}
