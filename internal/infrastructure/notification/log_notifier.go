package notification

import (
	"context"

	"tender_service/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// LogNotifier writes notifications to the structured log. It stands in for
// the mail relay, which is operated outside this service.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, n interfaces.Notification) error {
	fields := log.Fields{"recipient": n.Recipient}
	for k, v := range n.Body {
		fields["body_"+k] = v
	}
	log.WithFields(fields).Info("[notification] " + n.Subject)
	return nil
}
