package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/dues-desk/internal/domain"
	"github.com/fsdevblog/dues-desk/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext returns the current user id set by middlewares.AuthRequired, or 0 when the
// context holds none.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// paramID parses the :id path parameter. On failure it aborts with 400 and returns false.
// Non-positive ids are passed on and resolve to not found.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, domain.NewValidationError("invalid %s id", name), gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// abortWithServiceError maps a service error onto a status. notFound is the message shown for
// domain.ErrRecordNotFound.
func abortWithServiceError(c *gin.Context, err error, notFound string) {
	var valErr *domain.ValidationError
	switch {
	case errors.As(err, &valErr):
		abortWithError(c, http.StatusBadRequest, valErr, gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		abortWithError(c, http.StatusNotFound, errors.New(notFound), gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrForeignKey):
		abortWithError(c, http.StatusBadRequest, domain.ErrForeignKey, gin.ErrorTypePublic)
	default:
		abortWithError(c, http.StatusInternalServerError, err, gin.ErrorTypePrivate)
	}
}

// abortWithError records err and sets the status, the body is rendered by middlewares.Errors.
func abortWithError(c *gin.Context, code int, err error, typ gin.ErrorType) {
	c.Status(code)
	c.Abort()
	_ = c.Error(err).SetType(typ)
}

func abortBadRequest(c *gin.Context, msg string) {
	abortWithError(c, http.StatusBadRequest, errors.New(msg), gin.ErrorTypePublic)
}
