package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/mock"
	"github.com/mlevashov/clientdesk/models"
)

func newTestContactService(t *testing.T) (*contactService, *mock.MockContactRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repository := mock.NewMockContactRepository(ctrl)
	svc := NewContactService(repository, logger.Nop()).(*contactService)
	return svc, repository
}

func TestContactService_SubmitMessage_Success(t *testing.T) {
	svc, repository := newTestContactService(t)
	ctx := context.Background()

	submitted := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return submitted }

	repository.EXPECT().SaveMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, message models.ContactMessage) (models.ContactMessage, error) {
			assert.NotEmpty(t, message.ID, "id is assigned server-side")
			assert.Equal(t, submitted, message.CreatedAt)
			assert.Equal(t, "Bob", message.Name)
			return message, nil
		})

	saved, err := svc.SubmitMessage(ctx, models.ContactMessage{
		ID:    "client-supplied-id-is-ignored",
		Name:  "  Bob ",
		Email: "bob@example.com",
		Body:  "We need a landing page.",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "client-supplied-id-is-ignored", saved.ID)
}

func TestContactService_SubmitMessage_TrimsAllTextFields(t *testing.T) {
	svc, repository := newTestContactService(t)
	ctx := context.Background()

	repository.EXPECT().SaveMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, message models.ContactMessage) (models.ContactMessage, error) {
			assert.Equal(t, "Bob", message.Name)
			assert.Equal(t, "bob@example.com", message.Email)
			assert.Equal(t, "New site", message.Subject)
			assert.Equal(t, "We need a landing page.", message.Body)
			return message, nil
		})

	_, err := svc.SubmitMessage(ctx, models.ContactMessage{
		Name:    " Bob ",
		Email:   "\tbob@example.com ",
		Subject: "  New site\n",
		Body:    " We need a landing page. ",
	})
	require.NoError(t, err)
}

func TestContactService_SubmitMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		message models.ContactMessage
	}{
		{"missing name", models.ContactMessage{Email: "bob@example.com", Body: "hi"}},
		{"missing email", models.ContactMessage{Name: "Bob", Body: "hi"}},
		{"missing body", models.ContactMessage{Name: "Bob", Email: "bob@example.com"}},
		{"whitespace body", models.ContactMessage{Name: "Bob", Email: "bob@example.com", Body: "   "}},
		{"malformed email", models.ContactMessage{Name: "Bob", Email: "not-an-email", Body: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestContactService(t)

			_, err := svc.SubmitMessage(context.Background(), tt.message)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestContactService_SubmitMessage_RepositoryError(t *testing.T) {
	svc, repository := newTestContactService(t)
	ctx := context.Background()

	repository.EXPECT().SaveMessage(ctx, gomock.Any()).Return(models.ContactMessage{}, assert.AnError)

	_, err := svc.SubmitMessage(ctx, models.ContactMessage{
		Name: "Bob", Email: "bob@example.com", Body: "hi",
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestContactService_ListMessages(t *testing.T) {
	svc, repository := newTestContactService(t)
	ctx := context.Background()

	stored := []models.ContactMessage{{ID: "msg-1", Name: "Bob"}}
	repository.EXPECT().ListMessages(ctx).Return(stored, nil)

	messages, err := svc.ListMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, messages)
}

func TestContactService_ListMessages_RepositoryError(t *testing.T) {
	svc, repository := newTestContactService(t)
	ctx := context.Background()

	repository.EXPECT().ListMessages(ctx).Return(nil, assert.AnError)

	_, err := svc.ListMessages(ctx)
	assert.ErrorIs(t, err, assert.AnError)
}
