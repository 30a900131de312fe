package httperr

import (
	"log/slog"
	"net/http"

	"service-broker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// order matters: the first matching category wins
var statusByCategory = []struct {
	category error
	status   int
}{
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrUnauthorized, http.StatusUnauthorized},
	{errs.ErrNotEligible, http.StatusForbidden},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrAlreadyDecided, http.StatusConflict},
	{errs.ErrAlreadyAssigned, http.StatusConflict},
	{errs.ErrInvalidTransition, http.StatusConflict},
	{errs.ErrQuoteExpired, http.StatusGone},
	{errs.ErrConfiguration, http.StatusInternalServerError},
}

// StatusOf maps an error category to its HTTP status; uncategorised errors are 500.
func StatusOf(err error) int {
	for _, m := range statusByCategory {
		if errs.Is(err, m.category) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// Abort renders a use case error. Client errors carry the error text, server
// errors are logged with a stack excerpt and answered generically.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12),
		)
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}
