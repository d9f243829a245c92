// Package queue defines the court events exchanged over the message broker
// and the background consumer that records them.
package queue

import "time"

// CourtEventsQueue is the durable queue carrying CourtEvent messages.
const CourtEventsQueue = "court.events"

// Court event types.
const (
    CourtSubmitted     = "court.submitted"
    CourtStatusChanged = "court.status_changed"
)

// CourtEvent is published when a member submits a court or an administrator
// changes its status.  It carries enough for downstream consumers to log or
// notify without querying the store.
type CourtEvent struct {
    Type       string    `json:"type"`
    CourtID    string    `json:"court_id"`
    UserEmail  string    `json:"user_email,omitempty"`
    CourtType  string    `json:"court_type,omitempty"`
    Status     string    `json:"status"`
    OccurredAt time.Time `json:"occurred_at"`
}
