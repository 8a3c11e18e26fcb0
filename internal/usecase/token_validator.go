package usecase

import (
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token into the acting user. Tokens are issued by the identity
// service; this module only verifies them.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Mark(err, jwt.ErrInvalidToken)
	}

	return user.NewActor(claims.UserID, role), nil
}
