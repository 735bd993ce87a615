package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"valunds/config"
	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/delivery/worker/handler"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"
	"valunds/internal/errors"
	mockUC "valunds/internal/mocks/usecase"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNATSConsumer(t *testing.T, provider string) (*natsConsumer, *mockUC.MockMailDeliveryUsecase) {
	mailUC := mockUC.NewMockMailDeliveryUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &natsConsumer{
		cfg:       &config.PubSubConfig{Provider: provider, NatsSubject: "mail.jobs", NatsQueue: "mailworker"},
		logger:    logger,
		processor: handler.NewMailJobProcessor(handler.MailJobProcessorParams{MailUC: mailUC, Logger: logger}),
	}, mailUC
}

func TestNATSConsumer_HandleDeliversWithHeaderRequestID(t *testing.T) {
	consumer, mailUC := newTestNATSConsumer(t, constants.PubSubProviderNats)
	job := &entity.MailMessage{Template: entity.MailPasswordChanged, Recipient: "astrid@example.se"}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	msg := nats.NewMsg("mail.jobs")
	msg.Data = data
	msg.Header.Set(constants.AttributeRequestID, "req-7")

	mailUC.EXPECT().
		Deliver(mock.Anything, job).
		Run(func(ctx context.Context, _ *entity.MailMessage) {
			assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	consumer.handle(msg)
}

func TestNATSConsumer_HandleSurvivesDeliveryFailure(t *testing.T) {
	consumer, mailUC := newTestNATSConsumer(t, constants.PubSubProviderNats)

	msg := nats.NewMsg("mail.jobs")
	msg.Data = []byte(`{"template":"account_locked","recipient":"astrid@example.se"}`)

	mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	assert.NotPanics(t, func() { consumer.handle(msg) })
}

func TestNATSConsumer_DisabledForOtherProviders(t *testing.T) {
	consumer, _ := newTestNATSConsumer(t, constants.PubSubProviderGoogle)

	require.NoError(t, consumer.Serve(context.Background()))
	consumer.mu.Lock()
	assert.Nil(t, consumer.conn)
	consumer.mu.Unlock()
	assert.NoError(t, consumer.stop(context.Background()))
}

func TestNATSConsumer_StopRacesWithServe(t *testing.T) {
	consumer, _ := newTestNATSConsumer(t, constants.PubSubProviderNats)
	consumer.cfg.NatsURL = "nats://127.0.0.1:1"

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.Error(t, consumer.Serve(context.Background()))
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, consumer.stop(context.Background()))
	}()
	wg.Wait()

	consumer.mu.Lock()
	defer consumer.mu.Unlock()
	assert.Nil(t, consumer.conn)
}
