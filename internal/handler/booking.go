package handler

import (
	"context"
	"net/http"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := parseDate(req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		VenueID:    req.VenueID,
		UserID:     req.UserID,
		EventName:  req.EventName,
		EventType:  req.EventType,
		EventDate:  date,
		GuestCount: req.GuestCount,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(view))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}
	actorID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	view, err := h.bookingService.Get(c.Request.Context(), id, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(view))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	f, ok := statusFilter(c)
	if !ok {
		return
	}

	views, err := h.bookingService.ListByGuest(c.Request.Context(), userID, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(views))
}

func (h *Handler) ChangeBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.ChangeBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	changes := domain.FieldChanges{
		EventName:  req.EventName,
		EventType:  req.EventType,
		GuestCount: req.GuestCount,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	}
	if req.EventDate != nil {
		date, err := parseDate(*req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		changes.EventDate = &date
	}

	view, outcome, err := h.bookingService.ProposeChange(c.Request.Context(), id, req.UserID, changes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if outcome != domain.ChangeApplied {
		status = http.StatusAccepted
	}
	c.JSON(status, dto.ChangeResponse{Booking: dto.ToBookingResponse(view), Outcome: string(outcome)})
}

type bookingAction func(ctx context.Context, id, actorID string) (*domain.BookingView, error)

// transition binds the booking id and acting user and runs action.
func (h *Handler) transition(c *ginext.Context, action bookingAction) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := action(c.Request.Context(), id, req.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(view))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Confirm)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Cancel)
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	h.transition(c, h.bookingService.Complete)
}

func (h *Handler) ApproveChange(c *ginext.Context) {
	h.transition(c, h.bookingService.ApproveChange)
}

func (h *Handler) RejectChange(c *ginext.Context) {
	h.transition(c, h.bookingService.RejectChange)
}
