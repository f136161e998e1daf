package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"landshare/config"
	"landshare/internal/domain/constants"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	mockusecase "landshare/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, audience string) (*PushHandler, *mockusecase.MockReferralUsecase) {
	t.Helper()

	referralUC := mockusecase.NewMockReferralUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{PushAudience: audience}}

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.DiscardHandler),
		ReferralUC: referralUC,
	})

	return h, referralUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/referral-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

var recordedEvent = service.ReferralRecordedEvent{
	RequestID:    "req-trace-1",
	ReferralID:   "ref-1",
	ReferralCode: "REF-9",
	InvestorID:   "user-1",
	InvestmentID: "inv-1",
	Commission:   "250",
	RecordedAt:   time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
}

func TestHandlePush_ReconcilesReferral(t *testing.T) {
	h, referralUC := newPushHandler(t, "")
	referralUC.EXPECT().
		HandleReferralRecorded(mock.Anything, mock.MatchedBy(func(event *service.ReferralRecordedEvent) bool {
			return event.ReferralID == "ref-1" && event.ReferralCode == "REF-9" && event.Commission == "250"
		})).
		Return(nil)

	body := pushBody(t, recordedEvent, map[string]string{
		constants.AttrEventType: constants.EventTypeReferralRecorded,
		constants.AttrRequestID: "req-trace-1",
	})
	rec := servePush(h, body, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown referral is acknowledged", err: domainerrors.ErrReferralNotFound.WithDetails("ref-1"), wantStatus: http.StatusOK},
		{name: "store failure is redelivered", err: errors.New("deadline exceeded"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, referralUC := newPushHandler(t, "")
			referralUC.EXPECT().HandleReferralRecorded(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, recordedEvent, nil), "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_BadPayloads(t *testing.T) {
	h, _ := newPushHandler(t, "")

	t.Run("not json", func(t *testing.T) {
		rec := servePush(h, "{", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not base64", func(t *testing.T) {
		rec := servePush(h, `{"message":{"data":"%%%"}}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("event is not an object", func(t *testing.T) {
		rec := servePush(h, pushBody(t, []int{1, 2}, nil), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing referral id", func(t *testing.T) {
		rec := servePush(h, pushBody(t, service.ReferralRecordedEvent{ReferralCode: "X"}, nil), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlePush_IgnoresOtherEventTypes(t *testing.T) {
	h, _ := newPushHandler(t, "")

	rec := servePush(h, pushBody(t, recordedEvent, map[string]string{constants.AttrEventType: "investment.completed"}), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandlePush_VerifiesPushToken(t *testing.T) {
	const audience = "https://worker.example.com/push"

	h, referralUC := newPushHandler(t, audience)
	h.validate = func(_ context.Context, token, gotAudience string) (*idtoken.Payload, error) {
		assert.Equal(t, audience, gotAudience)

		switch token {
		case "google-token":
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		case "foreign-issuer":
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		case "unverified-email":
			return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}}, nil
		default:
			return nil, errors.New("bad signature")
		}
	}

	body := pushBody(t, recordedEvent, nil)

	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "Bearer forged").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "Bearer foreign-issuer").Code)
	assert.Equal(t, http.StatusUnauthorized, servePush(h, body, "Bearer unverified-email").Code)

	referralUC.EXPECT().HandleReferralRecorded(mock.Anything, mock.Anything).Return(nil).Once()
	assert.Equal(t, http.StatusOK, servePush(h, body, "Bearer google-token").Code)
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newPushHandler(t, "")
	ctx := context.Background()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{constants.AttrRequestID: "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.ReferralRecordedEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, &service.ReferralRecordedEvent{RequestID: "from-event"}))

	assert.NotEmpty(t, h.extractRequestID(ctx, &msg, &service.ReferralRecordedEvent{}))
}
