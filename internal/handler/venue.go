package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVenueInput{
		OwnerID:               req.OwnerID,
		Name:                  req.Name,
		Description:           req.Description,
		Address:               req.Address,
		City:                  req.City,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		CapacityMin:           req.CapacityMin,
		CapacityMax:           req.CapacityMax,
		Rate:                  req.Rate,
		Currency:              req.Currency,
		ReservationFeePercent: req.ReservationFeePercent,
		ImageURL:              req.ImageURL,
	}

	venue, err := h.venueService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id, ok := pathID(c, "id", "venue")
	if !ok {
		return
	}

	details, err := h.venueService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueDetailsResponse(details))
}

// ListVenues serves both the public catalogue and the owner dashboard (owner_id).
func (h *Handler) ListVenues(c *ginext.Context) {
	var (
		venues []*domain.Venue
		err    error
	)

	if owner := c.Query("owner_id"); owner != "" {
		if _, err = uuid.Parse(owner); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid owner_id"})
			return
		}
		venues, err = h.venueService.ListByOwner(c.Request.Context(), owner)
	} else {
		f := domain.VenueFilter{City: c.Query("city")}
		if g := c.Query("guests"); g != "" {
			if f.MinGuests, err = strconv.Atoi(g); err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests"})
				return
			}
		}
		venues, err = h.venueService.List(c.Request.Context(), f)
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetVenueBookings(c *ginext.Context) {
	venueID, ok := pathID(c, "id", "venue")
	if !ok {
		return
	}
	actorID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	f, ok := statusFilter(c)
	if !ok {
		return
	}

	views, err := h.bookingService.ListByVenue(c.Request.Context(), venueID, actorID, f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(views))
}

func (h *Handler) CheckAvailability(c *ginext.Context) {
	venueID, ok := pathID(c, "id", "venue")
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	times := domain.FieldChanges{StartTime: req.StartTime, EndTime: req.EndTime}
	if err = times.Normalize(); err != nil {
		h.handleError(c, err)
		return
	}
	if err = domain.ValidateTimeRange(times.StartTime, times.EndTime); err != nil {
		h.handleError(c, err)
		return
	}

	decision, err := h.availabilityService.Check(c.Request.Context(), domain.AvailabilityQuery{
		VenueID:          venueID,
		Date:             date,
		StartTime:        times.StartTime,
		EndTime:          times.EndTime,
		ExcludeBookingID: req.ExcludeBookingID,
		ActorID:          req.UserID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(decision))
}
