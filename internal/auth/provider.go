// Package auth tracks who is signed in and which roles they hold.
package auth

import (
	"context"

	"imersao-completa/internal/entity"
)

type Event string

const (
	EventSignedIn       Event = "SIGNED_IN"
	EventSignedOut      Event = "SIGNED_OUT"
	EventTokenRefreshed Event = "TOKEN_REFRESHED"
)

// StateChange is delivered to listeners on every auth transition. Session
// is nil after sign-out.
type StateChange struct {
	Event   Event
	Session *entity.AuthSession
}

// Provider issues sessions and reports auth transitions.
type Provider interface {
	OnAuthStateChange(listener func(StateChange)) (unsubscribe func())
	GetSession(ctx context.Context) (*entity.AuthSession, error)
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)
	SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error)
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context, email string) error
	RefreshSession(ctx context.Context) (*entity.AuthSession, error)
}

// UserDataLoader fetches the profile and role rows of a signed-in user.
type UserDataLoader interface {
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	GetRoles(ctx context.Context, userID string) ([]entity.Role, error)
}
