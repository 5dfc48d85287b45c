package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/handler/dto"
	"github.com/stpnv0/VenueBooker/internal/realtime"
	"github.com/wb-go/wbf/ginext"
)

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetDetails(ctx context.Context, id string) (*domain.VenueDetails, error)
	List(ctx context.Context, f domain.VenueFilter) ([]*domain.Venue, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Venue, error)
}

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingView, error)
	Get(ctx context.Context, id, actorID string) (*domain.BookingView, error)
	ListByGuest(ctx context.Context, userID string, f domain.BookingFilter) ([]*domain.BookingView, error)
	ListByVenue(ctx context.Context, venueID, actorID string, f domain.BookingFilter) ([]*domain.BookingView, error)
	ProposeChange(ctx context.Context, id, actorID string, changes domain.FieldChanges) (*domain.BookingView, domain.ChangeOutcome, error)
	Confirm(ctx context.Context, id, actorID string) (*domain.BookingView, error)
	Cancel(ctx context.Context, id, actorID string) (*domain.BookingView, error)
	Complete(ctx context.Context, id, actorID string) (*domain.BookingView, error)
	ApproveChange(ctx context.Context, id, actorID string) (*domain.BookingView, error)
	RejectChange(ctx context.Context, id, actorID string) (*domain.BookingView, error)
}

type AvailabilitySvc interface {
	Check(ctx context.Context, q domain.AvailabilityQuery) (domain.AvailabilityDecision, error)
}

type MessageSvc interface {
	Send(ctx context.Context, in domain.SendMessageInput) (*domain.Message, error)
	Conversation(ctx context.Context, userID, peerID string, limit int) ([]*domain.Message, error)
	MarkRead(ctx context.Context, userID, peerID string) (domain.UnreadCounts, error)
	Unread(ctx context.Context, userID string) (domain.UnreadCounts, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// BookingFeed delivers reconciled booking updates for one participant.
type BookingFeed interface {
	Subscribe(userID string) (<-chan realtime.Update, func())
}

// UnreadFeed delivers unread counter changes for one user.
type UnreadFeed interface {
	SubscribeUnread(ctx context.Context, userID string) <-chan domain.UnreadCounts
}

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Services struct {
	Venues       VenueSvc
	Bookings     BookingSvc
	Availability AvailabilitySvc
	Messages     MessageSvc
	Users        UserSvc
	BookingFeed  BookingFeed
	UnreadFeed   UnreadFeed
	Checks       map[string]HealthCheck
}

type Handler struct {
	venueService        VenueSvc
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	messageService      MessageSvc
	userService         UserSvc
	bookingFeed         BookingFeed
	unreadFeed          UnreadFeed
	checks              map[string]HealthCheck

	keepAlive time.Duration
}

func NewHandler(s Services) *Handler {
	return &Handler{
		venueService:        s.Venues,
		bookingService:      s.Bookings,
		availabilityService: s.Availability,
		messageService:      s.Messages,
		userService:         s.Users,
		bookingFeed:         s.BookingFeed,
		unreadFeed:          s.UnreadFeed,
		checks:              s.Checks,
		keepAlive:           25 * time.Second,
	}
}

// pathID reads a uuid path parameter and answers 400 when it is malformed.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

// queryID reads a required uuid query parameter.
func queryID(c *ginext.Context, name string) (string, bool) {
	id := c.Query(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or missing " + name})
		return "", false
	}
	return id, true
}

func statusFilter(c *ginext.Context) (domain.BookingFilter, bool) {
	status := domain.BookingStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid status filter"})
		return domain.BookingFilter{}, false
	}
	return domain.BookingFilter{Status: status}, true
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD")
	}
	return d, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: string(conflict.Reason)})

	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingNotConfirmed),
		errors.Is(err, domain.ErrBookingExpired),
		errors.Is(err, domain.ErrBookingNotEditable),
		errors.Is(err, domain.ErrBookingNotCancellable),
		errors.Is(err, domain.ErrNoPendingChanges),
		errors.Is(err, domain.ErrStaleBooking),
		errors.Is(err, domain.ErrAvailabilityConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAvailabilityUnknown):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: domain.ErrAvailabilityUnknown.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
