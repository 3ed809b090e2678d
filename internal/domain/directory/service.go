package directory

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// conditionMap routes free-text complaints to a specialization. Order
// matters: the first keyword found in the condition wins, so broader
// terms sit after the specific ones they could shadow.
var conditionMap = []struct {
	keyword        string
	specialization string
}{
	{"heart", "Cardiology"},
	{"cardiac", "Cardiology"},
	{"chest pain", "Cardiology"},
	{"fever", "General Physician"},
	{"cold", "General Physician"},
	{"cough", "General Physician"},
	{"flu", "General Physician"},
	{"bone", "Orthopedics"},
	{"fracture", "Orthopedics"},
	{"joint", "Orthopedics"},
	{"back pain", "Orthopedics"},
	{"child", "Pediatrics"},
	{"baby", "Pediatrics"},
	{"skin", "Dermatology"},
	{"rash", "Dermatology"},
	{"acne", "Dermatology"},
	{"ear", "ENT Specialist"},
	{"nose", "ENT Specialist"},
	{"throat", "ENT Specialist"},
	{"sinus", "ENT Specialist"},
	{"headache", "Neurology"},
	{"migraine", "Neurology"},
	{"brain", "Neurology"},
	{"nerve", "Neurology"},
}

const fallbackSpecialization = "General Physician"

// Service owns the doctor roster.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Add assigns the next sequential id and persists the new doctor.
func (s *Service) Add(name, specialization string, shiftStartHour, shiftHours int) (Doctor, error) {
	if shiftStartHour < 0 || shiftStartHour > 23 {
		return Doctor{}, fmt.Errorf("shift start hour must be between 0 and 23, got %d", shiftStartHour)
	}
	if shiftHours < 1 {
		return Doctor{}, fmt.Errorf("shift hours must be positive, got %d", shiftHours)
	}

	d, err := s.repo.Create(Doctor{
		Name:           name,
		Specialization: specialization,
		ShiftStartHour: shiftStartHour,
		ShiftHours:     shiftHours,
	})
	if err != nil {
		return Doctor{}, err
	}
	s.log.Info().Int("doctor_id", d.ID).Str("specialization", d.Specialization).Msg("doctor added")
	return d, nil
}

func (s *Service) Get(id int) (Doctor, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() []Doctor {
	return s.repo.List()
}

// Update overwrites all mutable fields of the doctor.
func (s *Service) Update(id int, name, specialization string, shiftStartHour, shiftHours int) error {
	if shiftStartHour < 0 || shiftStartHour > 23 {
		return fmt.Errorf("shift start hour must be between 0 and 23, got %d", shiftStartHour)
	}
	if shiftHours < 1 {
		return fmt.Errorf("shift hours must be positive, got %d", shiftHours)
	}
	return s.repo.Update(Doctor{
		ID:             id,
		Name:           name,
		Specialization: specialization,
		ShiftStartHour: shiftStartHour,
		ShiftHours:     shiftHours,
	})
}

// Delete removes the doctor record only. Appointments referencing the
// doctor are left in place; the ledger keeps its own history.
func (s *Service) Delete(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.log.Info().Int("doctor_id", id).Msg("doctor deleted")
	return nil
}

// MatchSpecialization resolves a free-text complaint to a
// specialization via the keyword table (falling back to General
// Physician) and returns every doctor whose specialization contains the
// resolved name, case-insensitively.
func (s *Service) MatchSpecialization(condition string) ([]Doctor, string) {
	lower := strings.ToLower(condition)
	matched := ""
	for _, m := range conditionMap {
		if strings.Contains(lower, m.keyword) {
			matched = m.specialization
			break
		}
	}
	if matched == "" {
		matched = fallbackSpecialization
	}

	var doctors []Doctor
	for _, d := range s.repo.List() {
		if strings.Contains(strings.ToLower(d.Specialization), strings.ToLower(matched)) {
			doctors = append(doctors, d)
		}
	}
	return doctors, matched
}
