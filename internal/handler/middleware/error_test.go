//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"service-broker/internal/domain/quote"
	"service-broker/internal/handler/httperr"
	"service-broker/internal/handler/middleware"
	"service-broker/internal/pkg/errs"
	"service-broker/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()
	r.GET("/recorded", func(c *gin.Context) { _ = c.Error(quote.ErrExpired) })
	r.GET("/internal", func(c *gin.Context) { _ = c.Error(errs.New("pool closed")) })
	r.GET("/aborted", func(c *gin.Context) { httperr.Abort(c, errs.ErrAlreadyAssigned) })
	r.GET("/status-only", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/silent", func(c *gin.Context) {})

	t.Run("recorded domain error is rendered by category", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/recorded", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusGone, "expired")
	})

	t.Run("uncategorised error hides its text", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/internal", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "pool closed")
	})

	t.Run("already rendered response is left alone", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/aborted", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "request already assigned")
	})

	t.Run("bare status is flushed", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/status-only", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("handler that wrote nothing is a server error", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()
	r.GET("/panic", func(c *gin.Context) { panic("nil winner") })
	r.GET("/panic-error", func(c *gin.Context) { panic(errs.New("boom")) })

	for _, path := range []string{"/panic", "/panic-error"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.PerformRequest(t, r, http.MethodGet, path, nil, "")
			httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		})
	}
}
