package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"imersao-completa/internal/entity"
	"imersao-completa/pkg/logger"
)

type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
	StateRolesLoaded
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateRolesLoaded:
		return "roles-loaded"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session follows the provider's auth transitions and keeps the signed-in
// user's profile and roles. Start subscribes and Close tears down.
type Session struct {
	provider Provider
	loader   UserDataLoader
	logger   *logger.Logger

	mu          sync.RWMutex
	state       State
	current     *entity.AuthSession
	profile     *entity.Profile
	roles       []entity.Role
	loadErr     error
	generation  uint64
	changed     chan struct{}
	unsubscribe func()
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSession(provider Provider, loader UserDataLoader, logger *logger.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		provider: provider,
		loader:   loader,
		logger:   logger,
		state:    StateInitializing,
		changed:  make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start attaches the listener before reading the current session so no
// transition between the two is missed.
func (s *Session) Start(ctx context.Context) error {
	unsubscribe := s.provider.OnAuthStateChange(s.handle)

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	current, err := s.provider.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInitializing {
		// An event already arrived and is newer than this read.
		return nil
	}
	s.apply(current)
	return nil
}

func (s *Session) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.closed = true
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.cancel()
	s.wg.Wait()
}

func (s *Session) handle(change StateChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(change.Session)
}

// apply sets the user synchronously and schedules the profile and role
// fetch. Callers hold s.mu.
func (s *Session) apply(session *entity.AuthSession) {
	s.generation++
	s.loadErr = nil

	if session == nil {
		s.current = nil
		s.profile = nil
		s.roles = nil
		s.state = StateUnauthenticated
		s.notify()
		return
	}

	sameUser := s.current != nil && s.current.User.ID == session.User.ID
	s.current = session
	if !sameUser || s.state != StateRolesLoaded {
		s.profile = nil
		s.roles = nil
		s.state = StateAuthenticated
	}
	s.notify()

	if s.closed {
		return
	}
	gen := s.generation
	userID := session.User.ID
	s.wg.Add(1)
	go s.loadUserData(gen, userID)
}

func (s *Session) loadUserData(gen uint64, userID string) {
	defer s.wg.Done()

	profile, err := s.loader.GetProfile(s.ctx, userID)
	if errors.Is(err, entity.ErrNotFound) {
		profile, err = nil, nil
	}
	var roles []entity.Role
	if err == nil {
		roles, err = s.loader.GetRoles(s.ctx, userID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	if err != nil {
		s.logger.Error("Error fetching user data for %s: %v", userID, err)
		s.loadErr = err
		s.notify()
		return
	}

	s.profile = profile
	s.roles = roles
	s.state = StateRolesLoaded
	s.notify()
}

func (s *Session) notify() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsLoading reports whether the initial session read is still pending.
func (s *Session) IsLoading() bool {
	return s.State() == StateInitializing
}

func (s *Session) Current() *entity.AuthSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Session) User() *entity.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := s.current.User
	return &user
}

func (s *Session) Profile() *entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Session) Roles() []entity.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Role(nil), s.roles...)
}

func (s *Session) IsAdmin() bool {
	return entity.IsAdmin(s.Roles())
}

func (s *Session) IsEditor() bool {
	return entity.IsEditor(s.Roles())
}

// WaitRoles blocks until the session settles: roles loaded, signed out, or
// the role fetch failed.
func (s *Session) WaitRoles(ctx context.Context) error {
	for {
		s.mu.RLock()
		state, loadErr, changed := s.state, s.loadErr, s.changed
		s.mu.RUnlock()

		switch {
		case loadErr != nil:
			return loadErr
		case state == StateRolesLoaded || state == StateUnauthenticated:
			return nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Session) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	return s.provider.SignIn(ctx, email, password)
}

func (s *Session) SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error) {
	return s.provider.SignUp(ctx, email, password, fullName)
}

func (s *Session) SignOut(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}

func (s *Session) ResetPassword(ctx context.Context, email string) error {
	return s.provider.ResetPassword(ctx, email)
}
