package user

import "time"

// Identity is the signed-in principal as reported by the identity provider,
// or nil when nobody is signed in.
type Identity struct {
	UID   string
	Email string
}

// User is the users-collection document keyed by uid. Profile fields start
// empty; sign-up stores only email, password hash and creation time.
type User struct {
	UID          string
	Email        string
	PasswordHash string
	DisplayName  string
	Address      string
	PhoneNumber  string
	CreatedAt    time.Time
}

// Profile is the user-editable slice of the document.
type Profile struct {
	Email       string
	DisplayName string
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
}

func (u *User) Profile() *Profile {
	return &Profile{
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		CreatedAt:   u.CreatedAt,
	}
}
