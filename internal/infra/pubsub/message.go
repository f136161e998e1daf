package pubsub

import (
	"encoding/json"

	"landshare/internal/domain/constants"
	"landshare/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeReferralEvent serializes an event and builds the attributes used for filtering and tracing.
func encodeReferralEvent(event *service.ReferralRecordedEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrEventType: constants.EventTypeReferralRecorded,
		"referral_id":           event.ReferralID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
