package auth

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu        sync.Mutex
	calls     []string
	session   *entity.AuthSession
	listeners map[int]func(StateChange)
	nextID    int
	signInErr error
}

func newFakeProvider(session *entity.AuthSession) *fakeProvider {
	return &fakeProvider{session: session, listeners: make(map[int]func(StateChange))}
}

func (p *fakeProvider) record(call string) {
	p.mu.Lock()
	p.calls = append(p.calls, call)
	p.mu.Unlock()
}

func (p *fakeProvider) OnAuthStateChange(listener func(StateChange)) func() {
	p.record("subscribe")
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = listener
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *fakeProvider) GetSession(ctx context.Context) (*entity.AuthSession, error) {
	p.record("get-session")
	return p.session, nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	s := sessionFor("user-" + email)
	p.emit(EventSignedIn, s)
	return s, nil
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error) {
	return p.SignIn(ctx, email, password)
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.emit(EventSignedOut, nil)
	return nil
}

func (p *fakeProvider) ResetPassword(ctx context.Context, email string) error {
	return errors.New("rate limited")
}

func (p *fakeProvider) RefreshSession(ctx context.Context) (*entity.AuthSession, error) {
	return nil, nil
}

func (p *fakeProvider) emit(event Event, session *entity.AuthSession) {
	p.mu.Lock()
	listeners := make([]func(StateChange), 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()
	for _, l := range listeners {
		l(StateChange{Event: event, Session: session})
	}
}

func (p *fakeProvider) listenerCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.listeners)
}

type fakeLoader struct {
	roles   map[string][]entity.Role
	err     error
	release chan struct{}
}

func (l *fakeLoader) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	return &entity.Profile{ID: userID}, nil
}

func (l *fakeLoader) GetRoles(ctx context.Context, userID string) ([]entity.Role, error) {
	if l.release != nil {
		select {
		case <-l.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.roles[userID], nil
}

func sessionFor(userID string) *entity.AuthSession {
	return &entity.AuthSession{
		AccessToken: "token-" + userID,
		TokenType:   "bearer",
		ExpiresAt:   time.Now().Add(time.Hour),
		User:        entity.AuthUser{ID: userID, Email: userID + "@example.com"},
	}
}

func newTestSession(t *testing.T, p Provider, l UserDataLoader) *Session {
	t.Helper()
	s := NewSession(p, l, logger.NewWithWriters(io.Discard, io.Discard))
	t.Cleanup(s.Close)
	return s
}

func waitCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSession_StartsUnauthenticated(t *testing.T) {
	s := newTestSession(t, newFakeProvider(nil), &fakeLoader{})
	assert.True(t, s.IsLoading())

	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Nil(t, s.User())
	assert.NoError(t, s.WaitRoles(waitCtx(t)))
	assert.False(t, s.IsAdmin())
	assert.False(t, s.IsEditor())
}

func TestSession_SubscribesBeforeReadingSession(t *testing.T) {
	p := newFakeProvider(nil)
	s := newTestSession(t, p, &fakeLoader{})

	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, []string{"subscribe", "get-session"}, p.calls)
}

func TestSession_RolesLoadAfterUserIsSet(t *testing.T) {
	loader := &fakeLoader{
		roles:   map[string][]entity.Role{"user-1": {entity.RoleAdmin}},
		release: make(chan struct{}),
	}
	s := newTestSession(t, newFakeProvider(sessionFor("user-1")), loader)

	require.NoError(t, s.Start(context.Background()))

	assert.Equal(t, StateAuthenticated, s.State())
	assert.Equal(t, "user-1", s.User().ID)
	assert.False(t, s.IsAdmin())

	close(loader.release)
	require.NoError(t, s.WaitRoles(waitCtx(t)))

	assert.Equal(t, StateRolesLoaded, s.State())
	assert.True(t, s.IsAdmin())
	assert.True(t, s.IsEditor())
	assert.Equal(t, "user-1", s.Profile().ID)
}

func TestSession_EditorIsNotAdmin(t *testing.T) {
	loader := &fakeLoader{roles: map[string][]entity.Role{"user-2": {entity.RoleEditor}}}
	s := newTestSession(t, newFakeProvider(sessionFor("user-2")), loader)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.WaitRoles(waitCtx(t)))

	assert.True(t, s.IsEditor())
	assert.False(t, s.IsAdmin())
}

func TestSession_SignOutClearsSynchronously(t *testing.T) {
	p := newFakeProvider(sessionFor("user-1"))
	loader := &fakeLoader{roles: map[string][]entity.Role{"user-1": {entity.RoleEditor}}}
	s := newTestSession(t, p, loader)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.WaitRoles(waitCtx(t)))
	require.True(t, s.IsEditor())

	require.NoError(t, s.SignOut(context.Background()))

	assert.Equal(t, StateUnauthenticated, s.State())
	assert.Nil(t, s.User())
	assert.Nil(t, s.Profile())
	assert.Empty(t, s.Roles())
	assert.False(t, s.IsEditor())
}

func TestSession_StaleFetchIsDiscarded(t *testing.T) {
	p := newFakeProvider(nil)
	loader := &fakeLoader{
		roles:   map[string][]entity.Role{"user-a": {entity.RoleAdmin}},
		release: make(chan struct{}),
	}
	s := newTestSession(t, p, loader)
	require.NoError(t, s.Start(context.Background()))

	_, err := s.SignIn(context.Background(), "a", "secret")
	require.NoError(t, err)
	require.Equal(t, StateAuthenticated, s.State())

	require.NoError(t, s.SignOut(context.Background()))
	close(loader.release)
	require.NoError(t, s.WaitRoles(waitCtx(t)))

	// Give the released fetch time to land.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, StateUnauthenticated, s.State())
	assert.False(t, s.IsAdmin())
}

func TestSession_LoadFailureIsReported(t *testing.T) {
	loader := &fakeLoader{err: errors.New("permission denied for table user_roles")}
	s := newTestSession(t, newFakeProvider(sessionFor("user-1")), loader)

	require.NoError(t, s.Start(context.Background()))

	err := s.WaitRoles(waitCtx(t))
	assert.ErrorContains(t, err, "permission denied")
	assert.Equal(t, StateAuthenticated, s.State())
	assert.Empty(t, s.Roles())
}

func TestSession_PassThroughErrors(t *testing.T) {
	p := newFakeProvider(nil)
	p.signInErr = entity.ErrInvalidCredentials
	s := newTestSession(t, p, &fakeLoader{})
	require.NoError(t, s.Start(context.Background()))

	_, err := s.SignIn(context.Background(), "a@example.com", "wrong")
	assert.Equal(t, entity.ErrInvalidCredentials, err)

	assert.EqualError(t, s.ResetPassword(context.Background(), "a@example.com"), "rate limited")
}

func TestSession_CloseUnsubscribes(t *testing.T) {
	p := newFakeProvider(nil)
	s := NewSession(p, &fakeLoader{}, logger.NewWithWriters(io.Discard, io.Discard))
	require.NoError(t, s.Start(context.Background()))
	require.Equal(t, 1, p.listenerCount())

	s.Close()

	assert.Equal(t, 0, p.listenerCount())
}

func TestSession_WaitRolesHonoursContext(t *testing.T) {
	loader := &fakeLoader{release: make(chan struct{})}
	s := newTestSession(t, newFakeProvider(sessionFor("user-1")), loader)
	require.NoError(t, s.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, s.WaitRoles(ctx), context.DeadlineExceeded)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "roles-loaded", StateRolesLoaded.String())
	assert.Equal(t, "State(9)", State(9).String())
}
