package service

import "time"

// Metrics records operational counters of the admin core.
type Metrics interface {
	// ObserveApproval records one approval attempt. outcome is "approved", "rejected_precondition" or "failed".
	ObserveApproval(outcome string, consistent bool)

	// ObserveBulk records the item accounting of one bulk operation.
	ObserveBulk(operation string, processed, failed int)

	// ObserveQueueItem records one processed queue item.
	ObserveQueueItem(itemType string, succeeded bool)

	// ObserveHTTPRequest records one served HTTP request.
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}
