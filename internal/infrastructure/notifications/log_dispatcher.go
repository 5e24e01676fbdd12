package notifications

import (
	"context"

	"faepa_workflow/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// LogDispatcher only logs messages. It is used when no NATS server is configured.
type LogDispatcher struct{}

var _ interfaces.INotifier = LogDispatcher{}

func (LogDispatcher) Send(_ context.Context, msg interfaces.Message) error {
	entry := log.WithFields(log.Fields{"to": msg.To, "subject": msg.Subject})
	if msg.From != nil {
		entry = entry.WithField("from", msg.From.Address)
	}
	entry.Info("[notifications][log] message not delivered (dispatcher disabled)")
	return nil
}
