// Package service holds outbound integrations used by the HTTP handlers.
// Publishing failures are logged and returned so callers can choose to
// ignore them without interrupting the request.
package service

import (
    "context"
    "encoding/json"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"

    q "github.com/iliyamo/sports-club/internal/queue"
)

// Publisher sends court events to the broker at URL.  Each publish opens its
// own connection, which keeps the publisher stateless and safe for
// concurrent handlers at the cost of a dial per event.
type Publisher struct {
    URL string
}

// NewPublisher returns a Publisher for the given broker URL.
func NewPublisher(url string) *Publisher {
    return &Publisher{URL: url}
}

// defaultDialTimeout bounds the broker dial and handshake when ctx carries
// no deadline of its own.
const defaultDialTimeout = 2 * time.Second

// dialTimeout is the time left before ctx's deadline, or defaultDialTimeout.
func dialTimeout(ctx context.Context) time.Duration {
    if dl, ok := ctx.Deadline(); ok {
        if left := time.Until(dl); left > 0 {
            return left
        }
        return time.Millisecond
    }
    return defaultDialTimeout
}

// PublishCourtEvent publishes ev to the court.events queue as a persistent
// JSON message.  The dial and AMQP handshake are bounded by ctx's deadline.
func (p *Publisher) PublishCourtEvent(ctx context.Context, ev q.CourtEvent) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    conn, err := amqp.DialConfig(p.URL, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(dialTimeout(ctx)),
    })
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: dial failed")
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Warn().Err(err).Msg("rabbitmq: channel open failed")
        return err
    }
    defer func() { _ = ch.Close() }()

    // Idempotent; durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(q.CourtEventsQueue, true, false, false, false, nil); err != nil {
        log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
        return err
    }

    body, err := json.Marshal(ev)
    if err != nil {
        return err
    }
    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Type:         ev.Type,
        Body:         body,
    }
    if err := ch.PublishWithContext(ctx, "", q.CourtEventsQueue, false, false, pub); err != nil {
        log.Warn().Err(err).Str("type", ev.Type).Msg("rabbitmq: publish failed")
        return err
    }
    return nil
}
