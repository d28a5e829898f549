package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery converts panics into the standard 500 envelope. The stack trace
// is included in the body only in development.
func Recovery(log zerolog.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				log.Error().
					Interface("error", r).
					Str("request_id", GetRequestID(c)).
					Bytes("stack", stack).
					Msg("panic recovered")

				body := gin.H{
					"success": false,
					"error":   fmt.Sprintf("%v", r),
				}
				if development {
					body["details"] = string(stack)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
