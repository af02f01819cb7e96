package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domuser "example.com/storefront/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type TokenService interface {
	GenerateToken(id *domuser.Identity) (string, error)
	ParseToken(token string) (*domuser.Identity, error)
}

// Provider is the email+password identity provider. It owns the credential
// side of the users collection and publishes the current signed-in identity
// to subscribers, mirroring an auth provider's current-user observable.
type Provider struct {
	users  domuser.Repository
	hasher PasswordHasher
	tokens TokenService

	mu        sync.Mutex
	current   *domuser.Identity
	err       error
	nextSub   int
	listeners map[int]func(*domuser.Identity, error)
}

func NewProvider(users domuser.Repository, hasher PasswordHasher, tokens TokenService) *Provider {
	return &Provider{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		listeners: make(map[int]func(*domuser.Identity, error)),
	}
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*domuser.Identity, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domuser.ErrInvalidCredential
	}

	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		p.publish(nil, domuser.ErrInvalidCredential)
		return nil, "", domuser.ErrInvalidCredential
	}

	if err := p.hasher.Compare(u.PasswordHash, password); err != nil {
		p.publish(nil, domuser.ErrInvalidCredential)
		return nil, "", domuser.ErrInvalidCredential
	}

	id := &domuser.Identity{UID: u.UID, Email: u.Email}
	token, err := p.tokens.GenerateToken(id)
	if err != nil {
		return nil, "", err
	}

	p.publish(id, nil)
	return id, token, nil
}

// SignUp registers a new account and creates its users-collection document
// with the email and creation time, then signs the new identity in.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*domuser.Identity, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", domuser.ErrInvalidCredential
	}

	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	u := &domuser.User{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	id := &domuser.Identity{UID: u.UID, Email: u.Email}
	token, err := p.tokens.GenerateToken(id)
	if err != nil {
		return nil, "", err
	}

	p.publish(id, nil)
	return id, token, nil
}

func (p *Provider) SignOut() {
	p.publish(nil, nil)
}

// Subscribe registers a state listener. The listener fires immediately with
// the current state and again on every sign-in/sign-out. The returned
// function unsubscribes.
func (p *Provider) Subscribe(fn func(*domuser.Identity, error)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.listeners[id] = fn
	current, err := p.current, p.err
	p.mu.Unlock()

	fn(current, err)

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *Provider) CurrentUser() *domuser.Identity {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Provider) publish(id *domuser.Identity, err error) {
	p.mu.Lock()
	p.current = id
	p.err = err
	fns := make([]func(*domuser.Identity, error), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(id, err)
	}
}
