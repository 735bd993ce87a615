package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"valunds/config"
	deliverycontext "valunds/internal/delivery/context"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/entity"
	"valunds/internal/errors"
	mockUC "valunds/internal/mocks/usecase"
	"valunds/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUC.MockMailDeliveryUsecase) {
	mailUC := mockUC.NewMockMailDeliveryUsecase(t)

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	processor := NewMailJobProcessor(MailJobProcessorParams{MailUC: mailUC, Logger: newDiscardLogger()})

	return NewPushHandler(PushHandlerParams{Config: cfg, Processor: processor, Logger: newDiscardLogger()}), mailUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "message-1"
	msg.Subscription = "projects/local/subscriptions/mail-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedJob(t *testing.T, msg *entity.MailMessage) string {
	t.Helper()

	data, err := json.Marshal(msg)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversJob(t *testing.T) {
	h, mailUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
	job := &entity.MailMessage{Template: entity.MailVerifyEmail, Recipient: "astrid@example.se"}

	mailUC.EXPECT().
		Deliver(mock.Anything, job).
		Run(func(ctx context.Context, _ *entity.MailMessage) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(nil)

	rec := servePush(h, pushBody(t, encodedJob(t, job), map[string]string{constants.AttributeRequestID: "req-42"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_TransientFailureAsksForRedelivery(t *testing.T) {
	h, mailUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("421 service not available"))

	rec := servePush(h, pushBody(t, encodedJob(t, &entity.MailMessage{Template: entity.MailAccountLocked, Recipient: "astrid@example.se"}), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedJobsAreAcknowledged(t *testing.T) {
	t.Run("rejected by delivery", func(t *testing.T) {
		h, mailUC := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		mailUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.Wrap(usecase.ErrMalformedMail, "unknown template"))

		rec := servePush(h, pushBody(t, encodedJob(t, &entity.MailMessage{Template: "newsletter"}), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("payload is not a job", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

		rec := servePush(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_BadEnvelope(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	rec := servePush(h, pushBody(t, "%%% not base64", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
	require.True(t, h.verifyPushAuth)

	var audience string
	h.validateToken = func(_ *http.Request, aud string) error {
		audience = aud

		return errors.New("token expired")
	}

	rec := servePush(h, pushBody(t, "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "http://example.com/push", audience)
}

func TestPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvDevelop)

	assert.False(t, h.verifyPushAuth)
}

func TestExtractRequestID_Precedence(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "from-context")

	assert.Equal(t, "from-attribute", extractRequestID(ctx,
		map[string]string{constants.AttributeRequestID: "from-attribute"},
		&entity.MailMessage{RequestID: "from-job"}))
	assert.Equal(t, "from-job", extractRequestID(ctx, nil, &entity.MailMessage{RequestID: "from-job"}))
	assert.Equal(t, "from-context", extractRequestID(ctx, nil, &entity.MailMessage{}))
	assert.Len(t, extractRequestID(context.Background(), nil, &entity.MailMessage{}), 36)
}
