// Package event publishes record change notifications to NATS JetStream.
package event

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const publishAckTimeout = 500 * time.Millisecond

// Change describes records of one user that were written in [StartDate, EndDate].
type Change struct {
	UserID    int64     `json:"user_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Count     int       `json:"count"`
	At        time.Time `json:"at"`
}

// MsgID identifies the change on subject, so a re-published change falls into the
// stream's duplicate window instead of being stored twice.
func (c Change) MsgID(subject string) string {
	return strings.Join([]string{
		subject,
		strconv.FormatInt(c.UserID, 10),
		c.StartDate,
		c.EndDate,
		strconv.FormatInt(c.At.UnixNano(), 10),
	}, ":")
}

// Publisher never fails the write that triggered it; failures are only logged.
type Publisher interface {
	Publish(ctx context.Context, subject string, c Change)
}

// NewPublisher returns a JetStream publisher, or a no-op one when js is nil.
func NewPublisher(js nats.JetStreamContext) Publisher {
	if js == nil {
		return Noop{}
	}
	return &JetStream{js: js}
}

type Noop struct{}

func (Noop) Publish(context.Context, string, Change) {}

type JetStream struct {
	js nats.JetStreamContext
}

func (p *JetStream) Publish(ctx context.Context, subject string, c Change) {
	if err := p.publish(ctx, subject, c); err != nil {
		log.Warn().
			Err(err).
			Str("evt.name", "event.publish.failed").
			Str("subject", subject).
			Int64("userId", c.UserID).
			Msg("failed to publish record change event")
	}
}

func (p *JetStream) publish(ctx context.Context, subject string, c Change) error {
	b, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal change")
	}

	pub, err := p.js.PublishAsync(subject, b, nats.MsgId(c.MsgID(subject)))
	if err != nil {
		return err
	}

	select {
	case err := <-pub.Err():
		return err
	case <-pub.Ok():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishAckTimeout):
		return errors.New("timeout waiting for NATS response")
	}
}

// Recorder keeps published changes in memory.
type Recorder struct {
	mu      sync.Mutex
	Changes map[string][]Change
}

func NewRecorder() *Recorder {
	return &Recorder{Changes: make(map[string][]Change)}
}

func (r *Recorder) Publish(_ context.Context, subject string, c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Changes[subject] = append(r.Changes[subject], c)
}

func (r *Recorder) Of(subject string) []Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Change(nil), r.Changes[subject]...)
}
