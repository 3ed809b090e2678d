package scheduling

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/ledger"
)

// Errors returned by the scheduling engine.
var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrInvalidSelection = errors.New("day or slot selection out of range")
)

// DoctorDirectory is the slice of the doctor roster the engine needs.
type DoctorDirectory interface {
	Get(id int) (directory.Doctor, error)
}

// AppointmentLedger is the slice of the ledger the engine needs. Book
// carries the uniqueness check; Occupancy only feeds the snapshot.
type AppointmentLedger interface {
	Occupancy(doctorID int, dates, slots []string) [][]bool
	Book(patientID string, doctorID int, date, slot, reason string) (int, error)
}

// Service composes the doctor directory and the appointment ledger into
// the week-grid booking flow.
type Service struct {
	directory DoctorDirectory
	ledger    AppointmentLedger
	log       zerolog.Logger
}

func NewService(dir DoctorDirectory, led AppointmentLedger, log zerolog.Logger) *Service {
	return &Service{directory: dir, ledger: led, log: log}
}

// RenderWeek builds the occupancy grid for the seven consecutive dates
// starting at anchor (today when anchor is the zero time). The grid is
// a point-in-time snapshot.
func (s *Service) RenderWeek(doctorID int, anchor time.Time) (WeekGrid, error) {
	doc, err := s.directory.Get(doctorID)
	if err != nil {
		return WeekGrid{}, ErrDoctorNotFound
	}

	if anchor.IsZero() {
		anchor = time.Now()
	}
	dates := make([]string, WindowDays)
	for i := range dates {
		dates[i] = anchor.AddDate(0, 0, i).Format(DateLayout)
	}
	slots := doc.SlotLabels()

	return WeekGrid{
		Doctor: doc,
		Dates:  dates,
		Slots:  slots,
		Booked: s.ledger.Occupancy(doctorID, dates, slots),
	}, nil
}

// SelectCell validates a 1-based (day, slot) selection against the
// grid. Out-of-range indexes fail with ErrInvalidSelection before the
// grid is consulted; a cell already booked in the snapshot fails with
// ledger.ErrSlotTaken so the caller can re-prompt without committing.
func (s *Service) SelectCell(g WeekGrid, day, slot int) (date, label string, err error) {
	if day < 1 || day > len(g.Dates) {
		return "", "", ErrInvalidSelection
	}
	if slot < 1 || slot > len(g.Slots) {
		return "", "", ErrInvalidSelection
	}
	if g.Booked[slot-1][day-1] {
		return "", "", ledger.ErrSlotTaken
	}
	return g.Dates[day-1], g.Slots[slot-1], nil
}

// CommitBooking books the selected cell through the ledger. The grid
// the caller selected from may be stale; the ledger's own uniqueness
// check decides, and a booking that landed in between surfaces as
// ledger.ErrSlotTaken with no partial state.
func (s *Service) CommitBooking(patientID string, doctorID int, date, slot, reason string) (int, error) {
	id, err := s.ledger.Book(patientID, doctorID, date, slot, reason)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("appointment_id", id).Int("doctor_id", doctorID).
		Str("patient_id", patientID).Msg("booking committed")
	return id, nil
}
