package account

import (
	"context"

	domuser "example.com/storefront/internal/domain/user"
)

// Provider is the external identity provider: sign-in, sign-up, sign-out and
// a current-user observable.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*domuser.Identity, string, error)
	SignUp(ctx context.Context, email, password string) (*domuser.Identity, string, error)
	SignOut()
	Subscribe(fn func(*domuser.Identity, error)) func()
}

type ProfileRepository interface {
	GetByUID(ctx context.Context, uid string) (*domuser.User, error)
	UpdateProfile(ctx context.Context, uid string, displayName, address, phoneNumber string) error
	Delete(ctx context.Context, uid string) error
}

type Service struct {
	provider Provider
	profiles ProfileRepository
}

func NewService(provider Provider, profiles ProfileRepository) *Service {
	return &Service{provider: provider, profiles: profiles}
}

type AuthResult struct {
	Identity *domuser.Identity
	Token    string
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	id, token, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Identity: id, Token: token}, nil
}

func (s *Service) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	id, token, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Identity: id, Token: token}, nil
}

func (s *Service) SignOut() {
	s.provider.SignOut()
}

func (s *Service) GetProfile(ctx context.Context, uid string) (*domuser.Profile, error) {
	u, err := s.profiles.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return u.Profile(), nil
}

func (s *Service) UpdateProfile(ctx context.Context, uid string, displayName, address, phoneNumber string) error {
	return s.profiles.UpdateProfile(ctx, uid, displayName, address, phoneNumber)
}

// DeleteAccount removes the profile document and signs the user out.
func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	if err := s.profiles.Delete(ctx, uid); err != nil {
		return err
	}
	s.provider.SignOut()
	return nil
}
