// Package domain defines the authenticated-user record and the ports the
// session store depends on.
package domain

import (
	"context"
	"time"
)

// Session is the record gating access to protected screens. It is
// persisted as a single named record in durable client storage; the
// field names match what the dashboard has always written there.
type Session struct {
	IsAuthenticated bool      `json:"isAuthenticated"`
	Email           string    `json:"email"`
	Token           string    `json:"token"`
	LoginTime       time.Time `json:"loginTime"`
}

// Storage is the durable record holding the serialized session. Read
// returns (nil, nil) when no record exists.
type Storage interface {
	Read() (*Session, error)
	Write(session *Session) error
	Clear() error
}

// AuthGateway talks to the admin authentication endpoints. Login is the
// only unauthenticated call the client ever makes.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	ChangePassword(ctx context.Context, token, oldPassword, newPassword, confirmPassword string) error
}
