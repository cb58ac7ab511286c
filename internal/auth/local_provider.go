package auth

import (
	"context"
	"sync"
	"time"

	"imersao-completa/internal/entity"
	"imersao-completa/internal/usecase"
)

// LocalProvider runs the auth flows in-process against the user store and
// keeps a single current session.
type LocalProvider struct {
	auth usecase.AuthUseCase
	now  func() time.Time

	// deliver orders each swap together with its fan-out. Listeners must
	// not sign in or out from inside the callback.
	deliver sync.Mutex

	mu        sync.Mutex
	current   *entity.AuthSession
	listeners map[int]func(StateChange)
	nextID    int
}

func NewLocalProvider(auth usecase.AuthUseCase) *LocalProvider {
	return &LocalProvider{
		auth:      auth,
		now:       time.Now,
		listeners: make(map[int]func(StateChange)),
	}
}

func (p *LocalProvider) OnAuthStateChange(listener func(StateChange)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = listener
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// GetSession returns the current session, or nil once it has expired.
func (p *LocalProvider) GetSession(ctx context.Context) (*entity.AuthSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && !p.current.ExpiresAt.After(p.now()) {
		p.current = nil
	}
	return p.current, nil
}

// Restore adopts an access token issued earlier, refreshing it.
func (p *LocalProvider) Restore(ctx context.Context, accessToken string) (*entity.AuthSession, error) {
	session, err := p.auth.Refresh(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	p.set(EventSignedIn, session)
	return session, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	session, err := p.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	p.set(EventSignedIn, session)
	return session, nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, fullName string) (*entity.AuthSession, error) {
	session, err := p.auth.SignUp(ctx, email, password, fullName)
	if err != nil {
		return nil, err
	}
	p.set(EventSignedIn, session)
	return session, nil
}

func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.set(EventSignedOut, nil)
	return nil
}

func (p *LocalProvider) ResetPassword(ctx context.Context, email string) error {
	return p.auth.ResetPassword(ctx, email)
}

func (p *LocalProvider) RefreshSession(ctx context.Context) (*entity.AuthSession, error) {
	p.mu.Lock()
	current := p.current
	p.mu.Unlock()

	if current == nil {
		return nil, entity.ErrUnauthorized
	}

	session, err := p.auth.Refresh(ctx, current.AccessToken)
	if err != nil {
		return nil, err
	}
	p.set(EventTokenRefreshed, session)
	return session, nil
}

// set swaps the current session and notifies listeners outside mu, so a
// listener may still read GetSession. Listeners see changes in swap order.
func (p *LocalProvider) set(event Event, session *entity.AuthSession) {
	p.deliver.Lock()
	defer p.deliver.Unlock()

	p.mu.Lock()
	p.current = session
	listeners := make([]func(StateChange), 0, len(p.listeners))
	for _, l := range p.listeners {
		listeners = append(listeners, l)
	}
	p.mu.Unlock()

	change := StateChange{Event: event, Session: session}
	for _, l := range listeners {
		l(change)
	}
}
