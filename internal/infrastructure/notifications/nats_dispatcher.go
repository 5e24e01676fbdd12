package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"faepa_workflow/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

var ErrNATSNotConfigured = errors.New("nats url not configured")

// publisher is the subset of *nats.Conn the dispatcher needs.
type publisher interface {
	Publish(subj string, data []byte) error
}

// emailEvent is the payload consumed by the mail relay subscribed to the subject.
type emailEvent struct {
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	FromEmail  string    `json:"from_email,omitempty"`
	FromName   string    `json:"from_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NATSDispatcher publishes every notification as a JSON event on one subject.
type NATSDispatcher struct {
	conn    publisher
	subject string
}

var _ interfaces.INotifier = (*NATSDispatcher)(nil)

func NewNATSDispatcher(conn publisher, subject string) *NATSDispatcher {
	return &NATSDispatcher{conn: conn, subject: subject}
}

// ConnectNATS dials the server with unlimited reconnects.
func ConnectNATS(url string) (*nats.Conn, error) {
	if url == "" {
		return nil, ErrNATSNotConfigured
	}
	nc, err := nats.Connect(url,
		nats.Name("faepa-workflow"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Printf("[notifications][nats] disconnected err=%v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Printf("[notifications][nats] reconnected url=%s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect nats: %w", err)
	}
	return nc, nil
}

func (d *NATSDispatcher) Send(ctx context.Context, msg interfaces.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ev := emailEvent{
		To:         msg.To,
		Subject:    msg.Subject,
		Body:       msg.Body,
		OccurredAt: time.Now().UTC(),
	}
	if msg.From != nil {
		ev.FromEmail = msg.From.Address
		ev.FromName = msg.From.Name
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if err := d.conn.Publish(d.subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", d.subject, err)
	}
	log.Printf("[notifications][nats] published subject=%s to=%s", d.subject, msg.To)
	return nil
}
