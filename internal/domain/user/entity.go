package user

import (
	"strings"

	"github.com/google/uuid"
)

// User is the notification recipient view of an account. Accounts are managed by the
// identity service; this module only reads them.
type User struct {
	id    uuid.UUID
	name  string
	email Email
	role  Role
}

func NewUser(id uuid.UUID, name string, email Email, role Role) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:    id,
		name:  strings.TrimSpace(name),
		email: email,
		role:  role,
	}, nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() Email  { return u.email }
func (u *User) Role() Role    { return u.role }
