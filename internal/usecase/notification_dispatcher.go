package usecase

import (
	"context"

	"tender_service/internal/usecase/interfaces"
)

// Recipients of workflow notifications.
const (
	RecipientTenderCell = "tender-cell"
	RecipientAccounts   = "accounts"
)

// NotificationDispatcher turns committed events into notifications for the
// offices that act on them. Events nobody needs to hear about are ignored.
type NotificationDispatcher struct {
	notifier interfaces.INotifier
}

func NewNotificationDispatcher(notifier interfaces.INotifier) *NotificationDispatcher {
	return &NotificationDispatcher{notifier: notifier}
}

// NotifiedEvents lists the event types Handle acts on.
func NotifiedEvents() []interfaces.EventType {
	return []interfaces.EventType{
		interfaces.EventContractAwarded,
		interfaces.EventNitCancelled,
		interfaces.EventOverpaymentDetected,
	}
}

// Handle is an event bus subscriber.
func (d *NotificationDispatcher) Handle(ctx context.Context, e interfaces.Event) error {
	n, ok := notificationFor(e)
	if !ok {
		return nil
	}
	return d.notifier.Notify(ctx, n)
}

func notificationFor(e interfaces.Event) (interfaces.Notification, bool) {
	switch e.Type {
	case interfaces.EventContractAwarded:
		return interfaces.Notification{
			Recipient: e.Attributes["agency_id"],
			Subject:   "Work order issued",
			Body: map[string]string{
				"work_id":    e.WorkID,
				"award_id":   e.EntityID,
				"percentage": e.Attributes["percentage"],
			},
		}, true
	case interfaces.EventNitCancelled:
		return interfaces.Notification{
			Recipient: RecipientTenderCell,
			Subject:   "NIT cancelled: every work was cancelled",
			Body:      map[string]string{"nit_id": e.NitID, "memo_no": e.Attributes["memo_no"]},
		}, true
	case interfaces.EventOverpaymentDetected:
		return interfaces.Notification{
			Recipient: RecipientAccounts,
			Subject:   "Payments exceed estimated cost",
			Body:      map[string]string{"work_id": e.WorkID, "excess": e.Attributes["excess"]},
		}, true
	}
	return interfaces.Notification{}, false
}
