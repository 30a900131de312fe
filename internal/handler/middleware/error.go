package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"service-broker/internal/handler/httperr"
	"service-broker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes a response for handlers that recorded an error with
// c.Error but returned without rendering it.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
			httperr.Abort(c, last.Err)
			return
		}
		if c.Writer.Status() != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		resp := httperr.Response{Status: http.StatusInternalServerError}
		resp.Error.Message = "Internal server error"
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = errs.New(fmt.Sprint(rec))
			}
			slog.Error("recovered from panic",
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()),
			)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}()
		c.Next()
	}
}
