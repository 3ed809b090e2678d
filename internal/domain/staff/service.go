package staff

import "github.com/rs/zerolog"

// Service owns the hospital staff roster.
type Service struct {
	repo Repository
	log  zerolog.Logger
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Add assigns the next sequential id and persists the new staff member.
func (s *Service) Add(name, role, shiftTimings string) (Staff, error) {
	member, err := s.repo.Create(Staff{Name: name, Role: role, ShiftTimings: shiftTimings})
	if err != nil {
		return Staff{}, err
	}
	s.log.Info().Int("staff_id", member.ID).Str("role", member.Role).Msg("staff member added")
	return member, nil
}

func (s *Service) Get(id int) (Staff, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() []Staff {
	return s.repo.List()
}

// Update overwrites all mutable fields of the staff member.
func (s *Service) Update(id int, name, role, shiftTimings string) error {
	return s.repo.Update(Staff{ID: id, Name: name, Role: role, ShiftTimings: shiftTimings})
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
