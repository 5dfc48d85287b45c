package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const auditActionChangeProposed = "change_proposed"

// ProposeChange edits the protected fields of a booking on behalf of its guest.
// Pending bookings are edited in place; confirmed bookings collect the edit as a
// proposal that waits for the venue owner.
func (s *BookingService) ProposeChange(
	ctx context.Context,
	id, actorID string,
	changes domain.FieldChanges,
) (*domain.BookingView, domain.ChangeOutcome, error) {
	if changes.IsEmpty() {
		return nil, "", fmt.Errorf("%w: nothing to change", domain.ErrValidation)
	}
	if err := changes.Normalize(); err != nil {
		return nil, "", err
	}

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("get booking: %w", err)
	}
	if b.UserID != actorID {
		return nil, "", domain.ErrForbidden
	}

	effective := b.Effective(s.now(), s.settings.ApprovalSLA)
	if effective != domain.BookingStatusPending && effective != domain.BookingStatusConfirmed {
		return nil, "", domain.ErrBookingNotEditable
	}

	venue, err := s.venueRepo.GetByID(ctx, b.VenueID)
	if err != nil {
		return nil, "", fmt.Errorf("get venue: %w", err)
	}

	// The proposal is validated against the booking as it would look once every
	// outstanding proposal is applied.
	merged := *b
	if effective == domain.BookingStatusConfirmed && len(b.PendingChanges) > 0 {
		outstanding, err := b.PendingChanges.Fields()
		if err != nil {
			return nil, "", err
		}
		merged.Apply(outstanding)
	}
	merged.Apply(changes)
	if err = s.validateEdit(&merged, changes, venue); err != nil {
		return nil, "", err
	}

	if effective == domain.BookingStatusPending {
		view, err := s.applyDirect(ctx, b, changes, actorID)
		return view, domain.ChangeApplied, err
	}
	return s.propose(ctx, b, changes.Pending(), actorID)
}

func (s *BookingService) validateEdit(merged *domain.Booking, changes domain.FieldChanges, venue *domain.Venue) error {
	if changes.EventName != nil && strings.TrimSpace(*changes.EventName) == "" {
		return fmt.Errorf("%w: event_name cannot be empty", domain.ErrValidation)
	}
	if changes.GuestCount != nil {
		if *changes.GuestCount <= 0 {
			return fmt.Errorf("%w: guest_count must be positive", domain.ErrValidation)
		}
		if err := checkCapacity(venue, *changes.GuestCount); err != nil {
			return err
		}
	}
	if changes.EventDate != nil && domain.IsPastDate(*changes.EventDate, s.now()) {
		return domain.ErrPastDate
	}
	return domain.ValidateTimeRange(merged.StartTime, merged.EndTime)
}

func (s *BookingService) applyDirect(
	ctx context.Context,
	b *domain.Booking,
	changes domain.FieldChanges,
	actorID string,
) (*domain.BookingView, error) {
	next := *b
	next.Apply(changes)
	next.ClearApproval()
	if err := next.DeriveSchedule(s.settings.Location); err != nil {
		return nil, err
	}

	var warning string
	if changes.Pending().TouchesSchedule() {
		w, err := s.ensureAvailable(ctx, b, next.EventDate, next.StartTime, next.EndTime, actorID)
		if err != nil {
			return nil, err
		}
		warning = w
	}

	if err := s.save(ctx, &next, b.UpdatedAt, transitionEdit, actorID); err != nil {
		return nil, err
	}

	e := domain.NewBookingEvent(domain.EventBookingUpdated, &next, actorID, s.now())
	e.Changes = changes.Pending()
	s.announce(ctx, e, &next, "", nil)

	view := s.view(&next)
	if warning != "" {
		view.Warning = warning
		s.logger.Warn("booking edited without full availability check",
			logger.String("booking_id", next.ID),
		)
	}
	return view, nil
}

func (s *BookingService) propose(
	ctx context.Context,
	b *domain.Booking,
	proposal domain.PendingChanges,
	actorID string,
) (*domain.BookingView, domain.ChangeOutcome, error) {
	next := *b
	next.PendingChanges = b.PendingChanges.Merge(proposal)
	next.NeedsOwnerApproval = true

	outcome := domain.ChangeProposed
	err := s.save(ctx, &next, b.UpdatedAt, transitionPropose, actorID)
	if isPolicyRejection(err) {
		s.logger.Warn("direct change blocked by policy, falling back",
			logger.String("booking_id", b.ID),
		)
		outcome, err = s.recordProposal(ctx, b, proposal, actorID)
		if err == nil {
			s.observer.Observe(&next)
		}
	}
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("booking change proposed",
		logger.String("booking_id", b.ID),
		logger.String("outcome", string(outcome)),
	)

	e := domain.NewBookingEvent(domain.EventChangeProposed, &next, actorID, s.now())
	e.Changes = proposal
	s.announce(ctx, e, &next, next.VenueOwnerID, s.notifier.NotifyChangeProposed)

	return s.view(&next), outcome, nil
}

// recordProposal is used when the booking row itself may not be written by the guest:
// first the change-request procedure, then the audit log plus a best-effort approval flag.
func (s *BookingService) recordProposal(
	ctx context.Context,
	b *domain.Booking,
	proposal domain.PendingChanges,
	actorID string,
) (domain.ChangeOutcome, error) {
	now := s.now().UTC()

	cr := &domain.ChangeRequest{
		ID:          uuid.New().String(),
		BookingID:   b.ID,
		RequestedBy: actorID,
		Changes:     proposal,
		CreatedAt:   now,
	}
	err := s.bookingRepo.SubmitChangeRequest(ctx, cr)
	if err == nil {
		return domain.ChangeRequested, nil
	}
	s.logger.Warn("change request procedure failed",
		logger.String("booking_id", b.ID),
		logger.String("error", err.Error()),
	)

	entry := &domain.AuditEntry{
		ID:        uuid.New().String(),
		BookingID: b.ID,
		ActorID:   actorID,
		Action:    auditActionChangeProposed,
		Payload:   proposal,
		CreatedAt: now,
	}
	if err = s.bookingRepo.AppendAudit(ctx, entry); err != nil {
		return "", fmt.Errorf("record change proposal: %w", err)
	}

	if err = s.bookingRepo.MarkNeedsApproval(ctx, b.ID); err != nil {
		s.logger.Warn("failed to flag booking for approval",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}

	return domain.ChangeAuditRecorded, nil
}

// ApproveChange applies the proposal of a booking that still reads as confirmed. Date or
// time changes are re-checked against the venue calendar first; a conflict leaves the
// booking untouched.
func (s *BookingService) ApproveChange(ctx context.Context, id, actorID string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.VenueOwnerID != actorID {
		return nil, domain.ErrForbidden
	}
	if !b.NeedsOwnerApproval {
		return nil, domain.ErrNoPendingChanges
	}
	if b.Effective(s.now(), s.settings.ApprovalSLA) != domain.BookingStatusConfirmed {
		return nil, domain.ErrBookingNotEditable
	}

	changes, err := b.PendingChanges.Fields()
	if err != nil {
		return nil, err
	}

	next := *b
	next.Apply(changes)

	if b.PendingChanges.TouchesSchedule() {
		if err = domain.ValidateTimeRange(next.StartTime, next.EndTime); err != nil {
			return nil, err
		}
		if _, err = s.ensureAvailable(ctx, b, next.EventDate, next.StartTime, next.EndTime, actorID); err != nil {
			return nil, err
		}
	}

	next.ClearApproval()
	if err = next.DeriveSchedule(s.settings.Location); err != nil {
		return nil, err
	}
	if err = s.save(ctx, &next, b.UpdatedAt, transitionApprove, actorID); err != nil {
		return nil, err
	}

	s.logger.Info("booking change approved",
		logger.String("booking_id", next.ID),
		logger.Int("fields", len(b.PendingChanges)),
	)

	e := domain.NewBookingEvent(domain.EventChangeApproved, &next, actorID, s.now())
	e.Changes = b.PendingChanges
	s.announce(ctx, e, &next, next.UserID, s.decisionNotifier(true))

	return s.view(&next), nil
}

// RejectChange discards the proposal.
func (s *BookingService) RejectChange(ctx context.Context, id, actorID string) (*domain.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.VenueOwnerID != actorID {
		return nil, domain.ErrForbidden
	}
	if !b.NeedsOwnerApproval {
		return nil, domain.ErrNoPendingChanges
	}

	next := *b
	next.ClearApproval()
	if err = s.save(ctx, &next, b.UpdatedAt, transitionReject, actorID); err != nil {
		return nil, err
	}

	e := domain.NewBookingEvent(domain.EventChangeRejected, &next, actorID, s.now())
	e.Changes = b.PendingChanges
	s.announce(ctx, e, &next, next.UserID, s.decisionNotifier(false))

	return s.view(&next), nil
}

func (s *BookingService) decisionNotifier(approved bool) notifyFunc {
	return func(ctx context.Context, user *domain.User, b *domain.Booking, venue *domain.Venue) {
		s.notifier.NotifyChangeDecided(ctx, user, b, venue, approved)
	}
}
