package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	maxMessageLength        = 4000
	defaultConversationSize = 50
	maxConversationSize     = 200
)

type MessageService struct {
	repo     ports.MessageRepo
	userRepo ports.UserRepo
	unread   ports.UnreadStore
	notifier ports.MessageNotifier
	logger   logger.Logger

	async func(func())
}

func NewMessageService(
	repo ports.MessageRepo,
	userRepo ports.UserRepo,
	unread ports.UnreadStore,
	notifier ports.MessageNotifier,
	logger logger.Logger,
) *MessageService {
	return &MessageService{
		repo:     repo,
		userRepo: userRepo,
		unread:   unread,
		notifier: notifier,
		logger:   logger,
		async:    func(f func()) { go f() },
	}
}

func (s *MessageService) Send(ctx context.Context, in domain.SendMessageInput) (*domain.Message, error) {
	body := strings.TrimSpace(in.Body)
	switch {
	case body == "":
		return nil, fmt.Errorf("%w: message body is required", domain.ErrValidation)
	case utf8.RuneCountInString(body) > maxMessageLength:
		return nil, fmt.Errorf("%w: message is longer than %d characters", domain.ErrValidation, maxMessageLength)
	case in.SenderID == in.RecipientID:
		return nil, fmt.Errorf("%w: cannot message yourself", domain.ErrValidation)
	}

	sender, err := s.userRepo.GetByID(ctx, in.SenderID)
	if err != nil {
		return nil, fmt.Errorf("check sender: %w", err)
	}
	recipient, err := s.userRepo.GetByID(ctx, in.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("check recipient: %w", err)
	}

	m := &domain.Message{
		ID:          uuid.New().String(),
		SenderID:    in.SenderID,
		RecipientID: in.RecipientID,
		VenueID:     in.VenueID,
		BookingID:   in.BookingID,
		Body:        body,
		CreatedAt:   time.Now().UTC(),
	}
	if err = s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	_, seeded, err := s.unread.Increment(ctx, in.RecipientID, in.SenderID)
	switch {
	case err != nil:
		s.logger.Warn("failed to bump unread counter",
			logger.String("user_id", in.RecipientID),
			logger.String("error", err.Error()),
		)
	case !seeded:
		// The message is already stored, so seeding picks it up.
		if _, err = s.reseed(ctx, in.RecipientID); err != nil {
			s.logger.Warn("failed to seed unread counter",
				logger.String("user_id", in.RecipientID),
				logger.String("error", err.Error()),
			)
		}
	}

	ctx = context.WithoutCancel(ctx)
	s.async(func() {
		s.notifier.NotifyNewMessage(ctx, recipient, sender, m)
	})

	return m, nil
}

func (s *MessageService) Conversation(ctx context.Context, userID, peerID string, limit int) ([]*domain.Message, error) {
	if limit <= 0 {
		limit = defaultConversationSize
	}
	if limit > maxConversationSize {
		limit = maxConversationSize
	}
	return s.repo.Conversation(ctx, userID, peerID, limit)
}

// MarkRead clears unread messages from peer and returns the counters that remain.
func (s *MessageService) MarkRead(ctx context.Context, userID, peerID string) (domain.UnreadCounts, error) {
	if _, err := s.repo.MarkRead(ctx, userID, peerID); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}

	counts, seeded, err := s.unread.Reset(ctx, userID, peerID)
	if err != nil {
		s.logger.Warn("failed to reset unread counter, recomputing",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return s.reseed(ctx, userID)
	}
	if !seeded {
		return s.reseed(ctx, userID)
	}

	return counts, nil
}

// Unread reads counters from the shared store, seeding it from the database on a miss.
func (s *MessageService) Unread(ctx context.Context, userID string) (domain.UnreadCounts, error) {
	counts, ok, err := s.unread.Counts(ctx, userID)
	if err == nil && ok {
		return counts, nil
	}
	if err != nil {
		s.logger.Warn("unread store unavailable, reading database",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}
	return s.reseed(ctx, userID)
}

func (s *MessageService) reseed(ctx context.Context, userID string) (domain.UnreadCounts, error) {
	counts, err := s.repo.UnreadCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("unread counts: %w", err)
	}

	if err = s.unread.Seed(ctx, userID, counts); err != nil {
		s.logger.Warn("failed to seed unread store",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
	}

	return counts, nil
}
