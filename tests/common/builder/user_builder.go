//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Test Traveler",
		Email: "test@example.com",
		Role:  "user",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.ID, u.Name, email, role)
}

func (u *UserBuilder) BuildInfra() sqlstore.Users {
	now := time.Now()
	return sqlstore.Users{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// BuildActor is the authenticated caller view of the same account.
func (u *UserBuilder) BuildActor() user.Actor {
	return user.NewActor(u.ID, user.Role(u.Role))
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) AsGuide() *UserBuilder {
	u.Role = user.RoleGuide.String()
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin.String()
	return u
}
