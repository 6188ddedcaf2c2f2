package domain

import (
	"errors"
	"time"
)

const MaxUsernameLen = 36

var (
	ErrUsernameTooLong = errors.New("username too long")
)

// User is the connection-level identity: what the registry knows about
// a live transport session independent of any room.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Language string    `json:"language"`
	Status   string    `json:"status,omitempty"`
	JoinedAt time.Time `json:"joinedAt"`
}

// NewUser is a tiny helper to avoid ad-hoc struct literals in adapters.
// An empty name gets a short placeholder derived from the id, matching
// what clients expect before the first join supplies real user data.
func NewUser(id string, now time.Time) *User {
	name := "User " + shortID(id)
	return &User{ID: id, Name: name, Language: "en", JoinedAt: now}
}

func (u *User) SetName(name string) error {
	if name == "" {
		return nil
	}
	if len(name) > MaxUsernameLen {
		return ErrUsernameTooLong
	}
	u.Name = name
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
