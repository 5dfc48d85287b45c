package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

const healthTimeout = 2 * time.Second

// Health pings every dependency and answers 503 naming the ones that failed.
func (h *Handler) Health(c *ginext.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	failed := make(map[string]string)
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			failed[name] = err.Error()
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, ginext.H{"status": "unavailable", "failed": failed})
		return
	}
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}
