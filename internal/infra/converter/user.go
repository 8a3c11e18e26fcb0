package converter

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra/sqlstore"
)

func UserFromRow(row sqlstore.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(row.ID, row.Name, email, role)
}
