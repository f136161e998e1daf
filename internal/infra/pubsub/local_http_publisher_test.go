package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"landshare/internal/domain/constants"
	"landshare/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishReferralRecorded(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &service.ReferralRecordedEvent{
		RequestID:    "req-trace",
		ReferralID:   "ref-1",
		ReferralCode: "CODE42",
		InvestorID:   "user-1",
		Commission:   "150",
		RecordedAt:   time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishReferralRecorded(context.Background(), event))

	assert.Equal(t, "req-trace", requestIDHeader)
	assert.Equal(t, constants.EventTypeReferralRecorded, received.Message.Attributes[constants.AttrEventType])
	assert.Equal(t, "ref-1", received.Message.Attributes["referral_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ReferralRecordedEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "CODE42", decoded.ReferralCode)
	assert.Equal(t, "150", decoded.Commission)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishReferralRecorded(context.Background(), &service.ReferralRecordedEvent{ReferralID: "ref-1"})

	assert.Error(t, err)
}
