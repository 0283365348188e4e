package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PanicRecoveryGin logs a recovered panic with the request that triggered it,
// answers 500, and re-panics so the process-level handler still sees it.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := c.Request.Context()

				slog.ErrorContext(ctx, "panic recovered",
					slog.String("event", "app.panic"),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.Any("error", rec),
				)

				c.AbortWithStatus(http.StatusInternalServerError)

				panic(rec)
			}
		}()

		c.Next()
	}
}
