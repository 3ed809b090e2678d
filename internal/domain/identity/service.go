package identity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/platform/auth"
	"github.com/frontdesk/frontdesk/internal/platform/store"
)

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const passwordLength = 8

// Credentials is the slice of the credential store the patient service
// needs for registration and login verification.
type Credentials interface {
	Register(username, password, role string) error
	Verify(username, password, role string) bool
}

// Service owns patient records and their login credentials.
type Service struct {
	repo  Repository
	creds Credentials
	log   zerolog.Logger
}

func NewService(repo Repository, creds Credentials, log zerolog.Logger) *Service {
	return &Service{repo: repo, creds: creds, log: log}
}

// Register creates a patient with a fresh P-number and a generated
// password, persists the record, and registers the credential. The
// plaintext password is returned exactly once, to be shown to the
// patient at the desk.
func (s *Service) Register(name, phone, email string) (Patient, string, error) {
	patientID, err := s.unusedPatientID()
	if err != nil {
		return Patient{}, "", err
	}
	password := generatePassword()

	p := Patient{PatientID: patientID, Name: name, Phone: phone, Email: email}
	if err := s.repo.Create(p); err != nil {
		return Patient{}, "", err
	}
	if err := s.creds.Register(patientID, password, auth.RolePatient); err != nil {
		return Patient{}, "", fmt.Errorf("register credential: %w", err)
	}

	s.log.Info().Str("patient_id", patientID).Msg("patient registered")
	return p, password, nil
}

func (s *Service) unusedPatientID() (string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		id := fmt.Sprintf("P%05d", 10000+rand.Intn(90000))
		if _, err := s.repo.GetByID(id); errors.Is(err, store.ErrNotFound) {
			return id, nil
		}
	}
	return "", errors.New("could not allocate an unused patient id")
}

func generatePassword() string {
	b := make([]byte, passwordLength)
	for i := range b {
		b[i] = passwordChars[rand.Intn(len(passwordChars))]
	}
	return string(b)
}

func (s *Service) Get(patientID string) (Patient, error) {
	return s.repo.GetByID(patientID)
}

func (s *Service) List() []Patient {
	return s.repo.List()
}

// Verify checks a patient login against the credential store.
func (s *Service) Verify(patientID, password string) bool {
	return s.creds.Verify(patientID, password, auth.RolePatient)
}
