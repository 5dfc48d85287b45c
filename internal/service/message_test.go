package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stpnv0/VenueBooker/internal/domain"
	"github.com/stpnv0/VenueBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageEnv struct {
	repo     *mocks.MockMessageRepo
	users    *mocks.MockUserRepo
	unread   *mocks.MockUnreadStore
	notifier *mocks.MockMessageNotifier
	svc      *MessageService
}

func newMessageEnv(t *testing.T) *messageEnv {
	t.Helper()
	env := &messageEnv{
		repo:     mocks.NewMockMessageRepo(t),
		users:    mocks.NewMockUserRepo(t),
		unread:   mocks.NewMockUnreadStore(t),
		notifier: mocks.NewMockMessageNotifier(t),
	}
	env.svc = NewMessageService(env.repo, env.users, env.unread, env.notifier, newTestLogger(t))
	env.svc.async = func(f func()) { f() }
	return env
}

func TestMessageService_Send(t *testing.T) {
	env := newMessageEnv(t)
	guest := &domain.User{ID: "guest"}
	owner := &domain.User{ID: "owner"}

	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(guest, nil)
	env.users.EXPECT().GetByID(mock.Anything, "owner").Return(owner, nil)
	env.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(m *domain.Message) bool {
		return m.Body == "Is parking available?" && m.SenderID == "guest"
	})).Return(nil)
	env.unread.EXPECT().Increment(mock.Anything, "owner", "guest").Return(domain.UnreadCounts{"guest": 1}, true, nil)
	env.notifier.EXPECT().NotifyNewMessage(mock.Anything, owner, guest, mock.Anything).Return()

	m, err := env.svc.Send(context.Background(), domain.SendMessageInput{
		SenderID:    "guest",
		RecipientID: "owner",
		Body:        "  Is parking available? ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Is parking available?", m.Body)
}

func TestMessageService_Send_CounterFailureIsNotFatal(t *testing.T) {
	env := newMessageEnv(t)

	env.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)
	env.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	env.unread.EXPECT().Increment(mock.Anything, "owner", "guest").Return(nil, false, errors.New("redis down"))
	env.notifier.EXPECT().NotifyNewMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := env.svc.Send(context.Background(), domain.SendMessageInput{SenderID: "guest", RecipientID: "owner", Body: "hi"})

	require.NoError(t, err)
}

func TestMessageService_Send_UnseededRecipientIsSeeded(t *testing.T) {
	env := newMessageEnv(t)
	fromDB := domain.UnreadCounts{"guest": 1, "other": 4}

	env.users.EXPECT().GetByID(mock.Anything, mock.Anything).Return(&domain.User{}, nil)
	env.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	env.unread.EXPECT().Increment(mock.Anything, "owner", "guest").Return(nil, false, nil)
	env.repo.EXPECT().UnreadCounts(mock.Anything, "owner").Return(fromDB, nil)
	env.unread.EXPECT().Seed(mock.Anything, "owner", fromDB).Return(nil)
	env.notifier.EXPECT().NotifyNewMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	_, err := env.svc.Send(context.Background(), domain.SendMessageInput{SenderID: "guest", RecipientID: "owner", Body: "hi"})

	require.NoError(t, err)
}

func TestMessageService_Send_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.SendMessageInput
	}{
		{"empty body", domain.SendMessageInput{SenderID: "a", RecipientID: "b", Body: "   "}},
		{"too long", domain.SendMessageInput{SenderID: "a", RecipientID: "b", Body: strings.Repeat("й", maxMessageLength+1)}},
		{"to self", domain.SendMessageInput{SenderID: "a", RecipientID: "a", Body: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newMessageEnv(t)

			_, err := env.svc.Send(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	env := newMessageEnv(t)

	env.users.EXPECT().GetByID(mock.Anything, "guest").Return(&domain.User{ID: "guest"}, nil)
	env.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := env.svc.Send(context.Background(), domain.SendMessageInput{SenderID: "guest", RecipientID: "ghost", Body: "hi"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMessageService_Conversation_Limit(t *testing.T) {
	env := newMessageEnv(t)

	env.repo.EXPECT().Conversation(mock.Anything, "guest", "owner", defaultConversationSize).Return(nil, nil).Once()
	env.repo.EXPECT().Conversation(mock.Anything, "guest", "owner", maxConversationSize).Return(nil, nil).Once()

	_, err := env.svc.Conversation(context.Background(), "guest", "owner", 0)
	require.NoError(t, err)
	_, err = env.svc.Conversation(context.Background(), "guest", "owner", 10000)
	require.NoError(t, err)
}

func TestMessageService_MarkRead(t *testing.T) {
	env := newMessageEnv(t)

	env.repo.EXPECT().MarkRead(mock.Anything, "owner", "guest").Return(3, nil)
	env.unread.EXPECT().Reset(mock.Anything, "owner", "guest").Return(domain.UnreadCounts{"other": 1}, true, nil)

	counts, err := env.svc.MarkRead(context.Background(), "owner", "guest")

	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Total())
}

func TestMessageService_MarkRead_ResetFailureReseeds(t *testing.T) {
	env := newMessageEnv(t)
	fromDB := domain.UnreadCounts{"other": 2}

	env.repo.EXPECT().MarkRead(mock.Anything, "owner", "guest").Return(1, nil)
	env.unread.EXPECT().Reset(mock.Anything, "owner", "guest").Return(nil, false, errors.New("redis down"))
	env.repo.EXPECT().UnreadCounts(mock.Anything, "owner").Return(fromDB, nil)
	env.unread.EXPECT().Seed(mock.Anything, "owner", fromDB).Return(errors.New("redis down"))

	counts, err := env.svc.MarkRead(context.Background(), "owner", "guest")

	require.NoError(t, err)
	assert.Equal(t, fromDB, counts)
}

func TestMessageService_MarkRead_UnseededStoreReseeds(t *testing.T) {
	env := newMessageEnv(t)
	fromDB := domain.UnreadCounts{"other": 2}

	env.repo.EXPECT().MarkRead(mock.Anything, "owner", "guest").Return(2, nil)
	env.unread.EXPECT().Reset(mock.Anything, "owner", "guest").Return(nil, false, nil)
	env.repo.EXPECT().UnreadCounts(mock.Anything, "owner").Return(fromDB, nil)
	env.unread.EXPECT().Seed(mock.Anything, "owner", fromDB).Return(nil)

	counts, err := env.svc.MarkRead(context.Background(), "owner", "guest")

	require.NoError(t, err)
	assert.Equal(t, fromDB, counts, "counts come from the database, not the partial hash")
}

func TestMessageService_Unread(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		env := newMessageEnv(t)
		env.unread.EXPECT().Counts(mock.Anything, "owner").Return(domain.UnreadCounts{"guest": 4}, true, nil)

		counts, err := env.svc.Unread(context.Background(), "owner")

		require.NoError(t, err)
		assert.Equal(t, int64(4), counts.Total())
	})

	t.Run("miss seeds from database", func(t *testing.T) {
		env := newMessageEnv(t)
		fromDB := domain.UnreadCounts{"guest": 2}
		env.unread.EXPECT().Counts(mock.Anything, "owner").Return(nil, false, nil)
		env.repo.EXPECT().UnreadCounts(mock.Anything, "owner").Return(fromDB, nil)
		env.unread.EXPECT().Seed(mock.Anything, "owner", fromDB).Return(nil)

		counts, err := env.svc.Unread(context.Background(), "owner")

		require.NoError(t, err)
		assert.Equal(t, fromDB, counts)
	})

	t.Run("database error", func(t *testing.T) {
		env := newMessageEnv(t)
		env.unread.EXPECT().Counts(mock.Anything, "owner").Return(nil, false, errors.New("redis down"))
		env.repo.EXPECT().UnreadCounts(mock.Anything, "owner").Return(nil, errors.New("db down"))

		_, err := env.svc.Unread(context.Background(), "owner")

		assert.Error(t, err)
	})
}
