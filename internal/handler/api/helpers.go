package api

import (
	"net/http"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingActor = errs.New("authenticated actor missing from context")
	errInvalidID    = errs.New("invalid id")
)

func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, errs.Mark(err, errInvalidID), "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
