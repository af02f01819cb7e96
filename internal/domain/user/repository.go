package user

import "context"

type Repository interface {
	GetByUID(ctx context.Context, uid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, uid string, displayName, address, phoneNumber string) error
	Delete(ctx context.Context, uid string) error
}
