// Package auth stores login credentials for the front desk and issues
// in-process sessions for the console. Passwords are bcrypt-hashed at
// rest; the users file never holds plaintext.
package auth

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/frontdesk/frontdesk/internal/platform/store"
)

// Roles known to the credential store.
const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

// User maps to one entry of users.json.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// CredentialStore owns users.json. A missing file is seeded with the
// two stock admin accounts so a fresh install is immediately usable.
type CredentialStore struct {
	coll *store.Collection[User]
	log  zerolog.Logger
}

func NewCredentialStore(path string, log zerolog.Logger) (*CredentialStore, error) {
	coll := store.Open[User](path, log, nil)
	seed, err := defaultAdmins()
	if err != nil {
		return nil, err
	}
	if err := coll.SeedIfMissing(seed); err != nil {
		return nil, err
	}
	return &CredentialStore{coll: coll, log: log}, nil
}

func defaultAdmins() ([]User, error) {
	stock := []struct{ username, password string }{
		{"admin1", "admin123"},
		{"admin2", "admin456"},
	}
	users := make([]User, 0, len(stock))
	for _, a := range stock {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash default admin password: %w", err)
		}
		users = append(users, User{Username: a.username, PasswordHash: string(hash), Role: RoleAdmin})
	}
	return users, nil
}

// Register stores a new credential with the password bcrypt-hashed.
func (s *CredentialStore) Register(username, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.coll.Append(User{Username: username, PasswordHash: string(hash), Role: role}); err != nil {
		return err
	}
	s.log.Info().Str("username", username).Str("role", role).Msg("credential registered")
	return nil
}

// Verify reports whether a credential with the given role matches the
// password. Unknown users and wrong roles fail the same way as wrong
// passwords.
func (s *CredentialStore) Verify(username, password, role string) bool {
	for _, u := range s.coll.All() {
		if u.Username != username || u.Role != role {
			continue
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
	}
	return false
}
