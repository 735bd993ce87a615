package impl

import (
	"context"
	"testing"

	"valunds/internal/domain/entity"
	"valunds/internal/errors"
	mockSvc "valunds/internal/mocks/service"
	"valunds/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMailDeliveryService(t *testing.T) (usecase.MailDeliveryUsecase, *mockSvc.MockMailRenderer, *mockSvc.MockMailSender) {
	renderer := mockSvc.NewMockMailRenderer(t)
	sender := mockSvc.NewMockMailSender(t)

	return NewMailDeliveryService(MailDeliveryServiceParams{
		Renderer: renderer,
		Sender:   sender,
		Logger:   newDiscardLogger(),
	}), renderer, sender
}

func TestMailDeliveryService_Deliver_Success(t *testing.T) {
	svc, renderer, sender := createTestMailDeliveryService(t)
	ctx := context.Background()
	data := map[string]string{"name": "Astrid", "link": "https://valunds.test/verify-email/abc"}

	renderer.EXPECT().Render(entity.MailVerifyEmail, data).Return("Hello Astrid", nil)
	sender.EXPECT().Send(ctx, "astrid@example.se", "Verify your Valunds account", "Hello Astrid").Return(nil)

	err := svc.Deliver(ctx, &entity.MailMessage{
		Template:  entity.MailVerifyEmail,
		Recipient: "astrid@example.se",
		Data:      data,
	})

	require.NoError(t, err)
}

func TestMailDeliveryService_Deliver_MalformedJobs(t *testing.T) {
	tests := []struct {
		name string
		msg  *entity.MailMessage
	}{
		{name: "nil message", msg: nil},
		{name: "unknown template", msg: &entity.MailMessage{Template: "newsletter", Recipient: "astrid@example.se"}},
		{name: "missing recipient", msg: &entity.MailMessage{Template: entity.MailAccountLocked}},
		{name: "invalid recipient", msg: &entity.MailMessage{Template: entity.MailAccountLocked, Recipient: "not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := createTestMailDeliveryService(t)

			err := svc.Deliver(context.Background(), tt.msg)

			assert.ErrorIs(t, err, usecase.ErrMalformedMail)
		})
	}
}

func TestMailDeliveryService_Deliver_RenderFailureIsMalformed(t *testing.T) {
	svc, renderer, _ := createTestMailDeliveryService(t)

	renderer.EXPECT().Render(entity.MailResetPassword, mock.Anything).Return("", errors.New("missing key link"))

	err := svc.Deliver(context.Background(), &entity.MailMessage{
		Template:  entity.MailResetPassword,
		Recipient: "astrid@example.se",
	})

	assert.ErrorIs(t, err, usecase.ErrMalformedMail)
}

func TestMailDeliveryService_Deliver_SendFailureIsRetryable(t *testing.T) {
	svc, renderer, sender := createTestMailDeliveryService(t)
	ctx := context.Background()

	renderer.EXPECT().Render(entity.MailPasswordChanged, mock.Anything).Return("body", nil)
	sender.EXPECT().Send(ctx, "astrid@example.se", "custom subject", "body").Return(errors.New("421 try again later"))

	err := svc.Deliver(ctx, &entity.MailMessage{
		Template:  entity.MailPasswordChanged,
		Recipient: "astrid@example.se",
		Subject:   "custom subject",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrMalformedMail)
}
