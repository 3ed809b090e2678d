package ledger

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrSlotTaken is returned when a booking collides with an existing
// Scheduled appointment on the same doctor, date and slot.
var ErrSlotTaken = errors.New("slot is already booked")

// Service owns the appointment collection and is the sole arbiter of
// booking conflicts: every booking passes through Book's uniqueness
// check, regardless of what an earlier occupancy snapshot showed.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Book creates a Scheduled appointment and returns its id. It fails
// with ErrSlotTaken iff a Scheduled appointment already occupies
// (doctorID, date, slot); Cancelled appointments never block a slot.
func (s *Service) Book(patientID string, doctorID int, date, slot, reason string) (int, error) {
	for _, a := range s.repo.List() {
		if a.DoctorID == doctorID && a.Date == date && a.Time == slot && a.Status == StatusScheduled {
			s.log.Info().Int("doctor_id", doctorID).Str("date", date).Str("slot", slot).
				Msg("booking rejected, slot taken")
			return 0, ErrSlotTaken
		}
	}

	if reason == "" {
		reason = DefaultCondition
	}
	a, err := s.repo.Create(Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		VisitType: VisitType,
		Condition: reason,
		Date:      date,
		Time:      slot,
		Status:    StatusScheduled,
	})
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("appointment_id", a.ID).Int("doctor_id", doctorID).
		Str("date", date).Str("slot", slot).Msg("appointment booked")
	return a.ID, nil
}

// Cancel marks the appointment Cancelled and persists. Cancelling an
// already-cancelled appointment succeeds; there is no double-cancel
// guard.
func (s *Service) Cancel(id int) error {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	a.Status = StatusCancelled
	if err := s.repo.Update(a); err != nil {
		return err
	}
	s.log.Info().Int("appointment_id", id).Msg("appointment cancelled")
	return nil
}

// Delete hard-removes the appointment (administrative purge),
// independent of cancellation.
func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) Get(id int) (Appointment, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() []Appointment {
	return s.repo.List()
}

// ListForPatient returns the patient's appointments in insertion order.
func (s *Service) ListForPatient(patientID string) []Appointment {
	var out []Appointment
	for _, a := range s.repo.List() {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out
}

// Occupancy builds a len(slots)×len(dates) grid for one doctor. A cell
// is true iff a Scheduled appointment matches that date and slot label.
// Appointments outside the window, or with labels that no longer match
// the doctor's shift, are ignored rather than treated as errors.
func (s *Service) Occupancy(doctorID int, dates, slots []string) [][]bool {
	grid := make([][]bool, len(slots))
	for i := range grid {
		grid[i] = make([]bool, len(dates))
	}

	dateIdx := make(map[string]int, len(dates))
	for i, d := range dates {
		dateIdx[d] = i
	}
	slotIdx := make(map[string]int, len(slots))
	for i, sl := range slots {
		slotIdx[sl] = i
	}

	for _, a := range s.repo.List() {
		if a.DoctorID != doctorID || a.Status != StatusScheduled {
			continue
		}
		col, ok := dateIdx[a.Date]
		if !ok {
			continue
		}
		row, ok := slotIdx[a.Time]
		if !ok {
			continue
		}
		grid[row][col] = true
	}
	return grid
}
