package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 that carries the request id.
// onPanic, if set, runs after the panic is logged.
func Recovery(log logger.Logger, onPanic func()) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// net/http uses this to abort a response on purpose
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			requestID := c.GetString("request_id")
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.Any("panic", rec),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.String("request_id", requestID),
				logger.String("stack", string(debug.Stack())),
			)
			if onPanic != nil {
				onPanic()
			}

			// an event stream may already have sent its headers
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:     "internal server error",
				RequestID: requestID,
			})
		}()

		c.Next()
	}
}
