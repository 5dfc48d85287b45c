package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// StreamBookings pushes reconciled booking updates for user_id as server-sent events.
func (h *Handler) StreamBookings(c *ginext.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	updates, unsubscribe := h.bookingFeed.Subscribe(userID)
	defer unsubscribe()

	ping := h.startStream(c)
	defer ping.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case u, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent(string(u.Op), u)
			return true
		case t := <-ping.C:
			c.SSEvent("ping", t.UTC().Format(time.RFC3339))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// StreamUnread pushes unread counter changes for the user in the path.
func (h *Handler) StreamUnread(c *ginext.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	counts := h.unreadFeed.SubscribeUnread(c.Request.Context(), userID)

	ping := h.startStream(c)
	defer ping.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case cnt, open := <-counts:
			if !open {
				return false
			}
			c.SSEvent("unread", dto.ToUnreadResponse(cnt))
			return true
		case t := <-ping.C:
			c.SSEvent("ping", t.UTC().Format(time.RFC3339))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) startStream(c *ginext.Context) *time.Ticker {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	// streams outlive the server write timeout
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	return time.NewTicker(h.keepAlive)
}
