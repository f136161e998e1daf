package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"landshare/config"
	deliverycontext "landshare/internal/delivery/context"
	"landshare/internal/domain/constants"
	domainerrors "landshare/internal/domain/errors"
	"landshare/internal/domain/service"
	"landshare/internal/errors"
	"landshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed OIDC token against an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes referral events pushed by Pub/Sub and reconciles their referrer.
type PushHandler struct {
	audience   string
	validate   tokenValidator
	logger     *slog.Logger
	referralUC usecase.ReferralUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	ReferralUC usecase.ReferralUsecase
}

// NewPushHandler creates a new Pub/Sub push handler.
// Push tokens are verified whenever a push audience is configured.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	audience := ""
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:   audience,
		validate:   idtoken.Validate,
		logger:     params.Logger,
		referralUC: params.ReferralUC,
	}
}

// HandlePush acknowledges with 2xx once the event is handled or can never be handled,
// and answers 503 for failures worth a Pub/Sub redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPushToken(ctx, c.Request().Header.Get(echo.HeaderAuthorization)); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.Message.Attributes[constants.AttrEventType]; eventType != "" && eventType != constants.EventTypeReferralRecorded {
		h.logger.Info("[Worker] Ignoring unsupported event type",
			slog.String("event_type", eventType),
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusNoContent)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ReferralRecordedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse referral event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if event.ReferralID == "" {
		h.logger.Error("[Worker] Referral event without referral id", slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, deliverycontext.OriginWorker, h.extractRequestID(ctx, &pushMsg, &event))

	reqLogger.Info("[Worker] Processing referral event",
		slog.String("referral_id", event.ReferralID),
		slog.String("investment_id", event.InvestmentID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.referralUC.HandleReferralRecorded(ctx, &event); err != nil {
		// A referral that does not exist will not appear on redelivery
		if errors.Is(err, domainerrors.ErrReferralNotFound) {
			reqLogger.Warn("[Worker] Dropping event for unknown referral",
				slog.String("referral_id", event.ReferralID),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusOK)
		}

		reqLogger.Error("[Worker] Failed to reconcile referral",
			slog.String("referral_id", event.ReferralID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Referral event processed", slog.String("referral_id", event.ReferralID))

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the message attribute, then the event, then the inbound request, then a fresh id.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ReferralRecordedEvent) string {
	if requestID := pushMsg.Message.Attributes[constants.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return deliverycontext.NewRequestID("")
}

// verifyPushToken verifies the OIDC token Google Pub/Sub attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPushToken(ctx context.Context, authHeader string) error {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing bearer token")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validate(ctx, token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
