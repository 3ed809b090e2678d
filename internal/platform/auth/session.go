package auth

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one authenticated console login. Sessions never
// leave the process and expire with it.
type Session struct {
	Token    string
	Username string
	Role     string
	IssuedAt time.Time
}

// NewSession mints a session for a verified login.
func NewSession(username, role string) Session {
	return Session{
		Token:    uuid.New().String(),
		Username: username,
		Role:     role,
		IssuedAt: time.Now(),
	}
}
