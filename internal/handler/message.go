package handler

import (
	"net/http"
	"strconv"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SendMessage(c *ginext.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.messageService.Send(c.Request.Context(), domain.SendMessageInput{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		VenueID:     req.VenueID,
		BookingID:   req.BookingID,
		Body:        req.Body,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(m))
}

func (h *Handler) GetConversation(c *ginext.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	peerID, ok := queryID(c, "peer_id")
	if !ok {
		return
	}

	limit := 0
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	messages, err := h.messageService.Conversation(c.Request.Context(), userID, peerID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, dto.ToMessageResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkRead(c *ginext.Context) {
	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	counts, err := h.messageService.MarkRead(c.Request.Context(), req.UserID, req.PeerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnreadResponse(counts))
}

func (h *Handler) GetUnread(c *ginext.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	counts, err := h.messageService.Unread(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnreadResponse(counts))
}
