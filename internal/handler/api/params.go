package api

import (
	"net/http"

	"service-broker/internal/handler/httperr"
	"service-broker/internal/handler/middleware"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.Wrap(errs.ErrUnauthorized, "no authenticated caller")

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// render answers with the mapped response, or 500 if mapping failed.
func render[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, body)
}
