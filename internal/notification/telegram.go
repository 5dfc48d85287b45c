package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const previewLength = 200

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, owner *domain.User, b *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*New booking request*\n\n"+"Venue: %s\n"+"Event: %s\n"+"%s\n"+"Guests: %d",
		escape(venue.Name), escape(b.EventName), schedule(b), b.GuestCount,
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, guest *domain.User, b *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\n"+"Venue: %s\n"+"Event: %s\n"+"%s",
		escape(venue.Name), escape(b.EventName), schedule(b),
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, recipient *domain.User, b *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Venue: %s\n"+"Event: %s\n"+"%s",
		escape(venue.Name), escape(b.EventName), schedule(b),
	)
	n.send(ctx, recipient.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, guest *domain.User, b *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*Booking request expired*\n\n"+"Venue: %s\n"+"Event: %s\n"+"%s\n"+"The venue did not respond in time. You can send a new request.",
		escape(venue.Name), escape(b.EventName), schedule(b),
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyChangeProposed(ctx context.Context, owner *domain.User, b *domain.Booking, venue *domain.Venue) {
	text := fmt.Sprintf(
		"*Change requested*\n\n"+"Venue: %s\n"+"Event: %s\n"+"Proposed: %s",
		escape(venue.Name), escape(b.EventName), escape(describeChanges(b.PendingChanges)),
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyChangeDecided(ctx context.Context, guest *domain.User, b *domain.Booking, venue *domain.Venue, approved bool) {
	verdict := "rejected"
	if approved {
		verdict = "approved"
	}
	text := fmt.Sprintf(
		"*Change %s*\n\n"+"Venue: %s\n"+"Event: %s\n"+"%s",
		verdict, escape(venue.Name), escape(b.EventName), schedule(b),
	)
	n.send(ctx, guest.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyNewMessage(ctx context.Context, recipient, sender *domain.User, m *domain.Message) {
	body := []rune(m.Body)
	if len(body) > previewLength {
		body = append(body[:previewLength], '…')
	}
	text := fmt.Sprintf("*New message from %s*\n\n%s", escape(sender.Name()), escape(string(body)))
	n.send(ctx, recipient.TelegramChatID, text)
}

func schedule(b *domain.Booking) string {
	date := b.EventDate.Format("02.01.2006")
	if b.StartTime == nil || b.EndTime == nil {
		return "Date: " + date
	}
	return fmt.Sprintf("Date: %s, %s–%s", date, clock(*b.StartTime), clock(*b.EndTime))
}

func clock(v string) string {
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}

func describeChanges(p domain.PendingChanges) string {
	parts := make([]string, 0, len(p))
	for _, f := range domain.ProtectedFields {
		if v, ok := p[f]; ok {
			parts = append(parts, fmt.Sprintf("%s → %v", strings.ReplaceAll(f, "_", " "), v))
		}
	}
	return strings.Join(parts, ", ")
}

var markdown = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escape(s string) string {
	return markdown.Replace(s)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
