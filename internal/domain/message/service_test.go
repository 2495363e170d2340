package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hugohenrick/mensageiro-api/internal/domain/message"
	"github.com/hugohenrick/mensageiro-api/internal/domain/user"
	"github.com/hugohenrick/mensageiro-api/mocks"
)

func TestService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockMessageRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := message.NewService(messageRepo, userRepo)

	t.Run("should persist the message with the canonical conversation key", func(t *testing.T) {
		req := require.New(t)

		var saved *message.Message
		messageRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *message.Message) error {
				saved = m
				return nil
			}).
			Times(1)

		m, err := svc.Send(context.Background(), "u1", "u2", "hi")

		req.NoError(err)
		req.Equal(saved, m)
		req.NotEmpty(m.ID)
		req.Equal(message.ConversationID("u1", "u2"), m.ConversationID)
		req.Equal("u1", m.SenderID)
		req.Equal("u2", m.ReceiverID)
		req.Equal("hi", m.Text)
		req.WithinDuration(time.Now().UTC(), m.CreatedAt, 5*time.Second)
	})

	t.Run("should derive the same conversation regardless of direction", func(t *testing.T) {
		req := require.New(t)

		var keys []string
		messageRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *message.Message) error {
				keys = append(keys, m.ConversationID)
				return nil
			}).
			Times(2)

		_, err := svc.Send(context.Background(), "u1", "u2", "hi")
		req.NoError(err)
		_, err = svc.Send(context.Background(), "u2", "u1", "hello")
		req.NoError(err)

		req.Len(keys, 2)
		req.Equal(keys[0], keys[1])
	})

	t.Run("should fail with empty text and never touch the repository", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Send(context.Background(), "u1", "u2", "")
		req.ErrorIs(err, message.ErrEmptyText)

		_, err = svc.Send(context.Background(), "u1", "u2", "   \t\n")
		req.ErrorIs(err, message.ErrEmptyText)
	})
}

func TestService_EditText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockMessageRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := message.NewService(messageRepo, userRepo)

	stored := &message.Message{
		ID:             "m1",
		ConversationID: message.ConversationID("u1", "u2"),
		SenderID:       "u1",
		ReceiverID:     "u2",
		Text:           "original",
		CreatedAt:      time.Now().UTC(),
	}

	t.Run("should update the text when the requester is the sender", func(t *testing.T) {
		req := require.New(t)

		msg := *stored
		messageRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&msg, nil)
		messageRepo.EXPECT().UpdateText(gomock.Any(), "m1", "edited").Return(nil)

		m, err := svc.EditText(context.Background(), "m1", "u1", "edited")

		req.NoError(err)
		req.Equal("edited", m.Text)
		req.Equal(stored.CreatedAt, m.CreatedAt)
	})

	t.Run("should fail with forbidden when the requester is not the sender", func(t *testing.T) {
		req := require.New(t)

		msg := *stored
		messageRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&msg, nil)
		messageRepo.EXPECT().UpdateText(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.EditText(context.Background(), "m1", "u3", "edited")
		req.ErrorIs(err, message.ErrNotSender)
	})

	t.Run("should fail when the message does not exist", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, message.ErrMessageNotFound)

		_, err := svc.EditText(context.Background(), "missing", "u1", "edited")
		req.ErrorIs(err, message.ErrMessageNotFound)
	})

	t.Run("should fail with empty text before any lookup", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.EditText(context.Background(), "m1", "u1", "  ")
		req.ErrorIs(err, message.ErrEmptyText)
	})
}

func TestService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockMessageRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := message.NewService(messageRepo, userRepo)

	stored := &message.Message{
		ID:         "m1",
		SenderID:   "u1",
		ReceiverID: "u2",
	}

	t.Run("should allow the sender to delete", func(t *testing.T) {
		req := require.New(t)

		msg := *stored
		messageRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&msg, nil)
		messageRepo.EXPECT().Delete(gomock.Any(), "m1").Return(nil)

		req.NoError(svc.Remove(context.Background(), "m1", "u1"))
	})

	t.Run("should allow the receiver to delete", func(t *testing.T) {
		req := require.New(t)

		msg := *stored
		messageRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&msg, nil)
		messageRepo.EXPECT().Delete(gomock.Any(), "m1").Return(nil)

		req.NoError(svc.Remove(context.Background(), "m1", "u2"))
	})

	t.Run("should fail with forbidden for a third party and keep the record", func(t *testing.T) {
		req := require.New(t)

		msg := *stored
		messageRepo.EXPECT().FindByID(gomock.Any(), "m1").Return(&msg, nil)
		messageRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := svc.Remove(context.Background(), "m1", "u3")
		req.ErrorIs(err, message.ErrNotParticipant)
	})

	t.Run("should fail when the message does not exist", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, message.ErrMessageNotFound)

		err := svc.Remove(context.Background(), "missing", "u1")
		req.ErrorIs(err, message.ErrMessageNotFound)
	})
}

func TestService_ListConversations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messageRepo := mocks.NewMockMessageRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := message.NewService(messageRepo, userRepo)

	t.Run("should return one summary per conversation with the latest message", func(t *testing.T) {
		req := require.New(t)

		conversationID := message.ConversationID("u1", "u2")
		latest := &message.Message{
			ID:             "m2",
			ConversationID: conversationID,
			SenderID:       "u2",
			ReceiverID:     "u1",
			Text:           "hello",
			CreatedAt:      time.Now().UTC(),
		}

		messageRepo.EXPECT().DistinctConversations(gomock.Any(), "u1").Return([]string{conversationID}, nil)
		messageRepo.EXPECT().FindLatestInConversation(gomock.Any(), conversationID).Return(latest, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(&user.User{ID: "u2", Name: "Usuário Dois"}, nil)

		summaries, err := svc.ListConversations(context.Background(), "u1")

		req.NoError(err)
		req.Len(summaries, 1)
		req.Equal("u1", summaries[0].UserID)
		req.Equal(conversationID, summaries[0].ConversationID)
		req.Equal("u2", summaries[0].OtherUserID)
		req.Equal("Usuário Dois", summaries[0].OtherUserName)
		req.Equal("hello", summaries[0].LatestMessage)
		req.Equal(latest.CreatedAt, summaries[0].LatestCreatedAt)
	})

	t.Run("should use the receiver as other participant when the user sent last", func(t *testing.T) {
		req := require.New(t)

		conversationID := message.ConversationID("u1", "u2")
		latest := &message.Message{
			ID:             "m3",
			ConversationID: conversationID,
			SenderID:       "u1",
			ReceiverID:     "u2",
			Text:           "are you there?",
			CreatedAt:      time.Now().UTC(),
		}

		messageRepo.EXPECT().DistinctConversations(gomock.Any(), "u1").Return([]string{conversationID}, nil)
		messageRepo.EXPECT().FindLatestInConversation(gomock.Any(), conversationID).Return(latest, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(&user.User{ID: "u2", Name: "Usuário Dois"}, nil)

		summaries, err := svc.ListConversations(context.Background(), "u1")

		req.NoError(err)
		req.Len(summaries, 1)
		req.Equal("u2", summaries[0].OtherUserID)
	})

	t.Run("should return an empty list when the user has no conversations", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().DistinctConversations(gomock.Any(), "u9").Return([]string{}, nil)

		summaries, err := svc.ListConversations(context.Background(), "u9")

		req.NoError(err)
		req.NotNil(summaries)
		req.Empty(summaries)
	})

	t.Run("should surface an internal error when a discovered conversation has no messages", func(t *testing.T) {
		req := require.New(t)

		messageRepo.EXPECT().DistinctConversations(gomock.Any(), "u1").Return([]string{"u1:u2"}, nil)
		messageRepo.EXPECT().FindLatestInConversation(gomock.Any(), "u1:u2").Return(nil, message.ErrMessageNotFound)

		_, err := svc.ListConversations(context.Background(), "u1")
		req.ErrorIs(err, message.ErrConversationInconsistent)
	})

	t.Run("should keep the summary when the other user profile cannot be loaded", func(t *testing.T) {
		req := require.New(t)

		conversationID := message.ConversationID("u1", "u2")
		latest := &message.Message{
			SenderID:   "u2",
			ReceiverID: "u1",
			Text:       "hello",
		}

		messageRepo.EXPECT().DistinctConversations(gomock.Any(), "u1").Return([]string{conversationID}, nil)
		messageRepo.EXPECT().FindLatestInConversation(gomock.Any(), conversationID).Return(latest, nil)
		userRepo.EXPECT().FindByID(gomock.Any(), "u2").Return(nil, context.DeadlineExceeded)

		summaries, err := svc.ListConversations(context.Background(), "u1")

		req.NoError(err)
		req.Len(summaries, 1)
		req.Empty(summaries[0].OtherUserName)
	})
}
