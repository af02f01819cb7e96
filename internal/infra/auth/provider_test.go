package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domuser "example.com/storefront/internal/domain/user"
	"example.com/storefront/internal/infra/security"
)

type memoryUserRepository struct {
	byUID   map[string]*domuser.User
	byEmail map[string]*domuser.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byUID:   make(map[string]*domuser.User),
		byEmail: make(map[string]*domuser.User),
	}
}

func (r *memoryUserRepository) GetByUID(ctx context.Context, uid string) (*domuser.User, error) {
	if u, ok := r.byUID[uid]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

func (r *memoryUserRepository) Create(ctx context.Context, u *domuser.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domuser.ErrEmailAlreadyUsed
	}
	r.byUID[u.UID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryUserRepository) UpdateProfile(ctx context.Context, uid string, displayName, address, phoneNumber string) error {
	u, ok := r.byUID[uid]
	if !ok {
		return domuser.ErrUserNotFound
	}
	u.DisplayName = displayName
	u.Address = address
	u.PhoneNumber = phoneNumber
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, uid string) error {
	u, ok := r.byUID[uid]
	if !ok {
		return domuser.ErrUserNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.byUID, uid)
	return nil
}

func newTestProvider() (*Provider, *memoryUserRepository) {
	repo := newMemoryUserRepository()
	hasher := security.NewBcryptService(4)
	tokens := security.NewJWTService("test-secret", time.Hour)
	return NewProvider(repo, hasher, tokens), repo
}

func TestSignUpCreatesUserDocument(t *testing.T) {
	p, repo := newTestProvider()

	id, token, err := p.SignUp(context.Background(), "Ada@Example.com ", "secret")

	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "ada@example.com", id.Email)

	u, err := repo.GetByUID(context.Background(), id.UID)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", u.Email)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "secret", u.PasswordHash)
	require.False(t, u.CreatedAt.IsZero())
}

func TestSignUpDuplicateEmail(t *testing.T) {
	p, _ := newTestProvider()

	_, _, err := p.SignUp(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	_, _, err = p.SignUp(context.Background(), "a@b.com", "other")
	require.ErrorIs(t, err, domuser.ErrEmailAlreadyUsed)
}

func TestSignInRoundTrip(t *testing.T) {
	p, _ := newTestProvider()

	_, _, err := p.SignUp(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	p.SignOut()
	require.Nil(t, p.CurrentUser())

	id, token, err := p.SignIn(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, id, p.CurrentUser())
}

func TestSignInBadCredentials(t *testing.T) {
	p, _ := newTestProvider()

	_, _, err := p.SignUp(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	_, _, err = p.SignIn(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, domuser.ErrInvalidCredential)

	_, _, err = p.SignIn(context.Background(), "missing@b.com", "secret")
	require.ErrorIs(t, err, domuser.ErrInvalidCredential)
}

func TestSubscribeFiresImmediatelyAndOnChange(t *testing.T) {
	p, _ := newTestProvider()

	var states []*domuser.Identity
	unsubscribe := p.Subscribe(func(id *domuser.Identity, err error) {
		states = append(states, id)
	})

	require.Len(t, states, 1)
	require.Nil(t, states[0], "initial state is signed out")

	_, _, err := p.SignUp(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.NotNil(t, states[1])

	unsubscribe()
	p.SignOut()
	require.Len(t, states, 2, "no callbacks after unsubscribe")
}
