// Package constants holds string constants shared between configuration and wiring.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Pub/Sub message attributes
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
)

// Event types
const EventTypeReferralRecorded = "referral.recorded"

// Scan lock names
const LockQueueScan = "admin_queue:scan"
