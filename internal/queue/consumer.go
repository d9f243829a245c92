package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog/log"
)

// eventLogFile is the file, under the consumer's log directory, that
// receives one line per court event.
const eventLogFile = "court-events.log"

// StartCourtEventConsumer connects to the broker at url, declares the
// court.events queue and appends every message to <logDir>/court-events.log.
// It reconnects with exponential backoff (capped at 30s) and returns only
// when ctx is cancelled.  Messages that cannot be decoded are rejected
// without requeue so a poison message cannot spin the loop.
func StartCourtEventConsumer(ctx context.Context, url, logDir string) error {
    backoff := time.Second
    for {
        if ctx.Err() != nil {
            return ctx.Err()
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Warn().Err(err).Dur("retry_in", backoff).Msg("court-consumer: dial failed")
            if !sleepCtx(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = consumeLoop(ctx, conn, logDir)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Warn().Err(err).Msg("court-consumer: consume loop ended, reconnecting")
        if !sleepCtx(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, logDir string) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Warn().Err(err).Msg("court-consumer: set QoS failed")
    }
    if _, err := ch.QueueDeclare(CourtEventsQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(CourtEventsQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := handleMessage(logDir, d.Body); err != nil {
                log.Error().Err(err).Msg("court-consumer: handle message failed")
                _ = d.Nack(false, false)
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// handleMessage decodes one CourtEvent and appends its log line.
func handleMessage(logDir string, body []byte) error {
    var ev CourtEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.Type == "" || ev.CourtID == "" {
        return errors.New("event missing type or court_id")
    }
    if err := os.MkdirAll(logDir, 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(filepath.Join(logDir, eventLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(formatEvent(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

func formatEvent(ev CourtEvent) string {
    return fmt.Sprintf("[%s] %s | court_id=%s | user=%q | type=%q | status=%s\n",
        ev.OccurredAt.UTC().Format(time.RFC3339), ev.Type, ev.CourtID, ev.UserEmail, ev.CourtType, ev.Status)
}
