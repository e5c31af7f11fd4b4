package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/mock_event_publisher_interface.go -package=mock_interfaces

// EventType names a committed workflow change.
type EventType string

const (
	EventNitPublished         EventType = "nit.published"
	EventNitDeleted           EventType = "nit.deleted"
	EventNitCancelled         EventType = "nit.cancelled"
	EventWorkAdded            EventType = "work.added"
	EventBidRegistered        EventType = "bid.registered"
	EventBidWithdrawn         EventType = "bid.withdrawn"
	EventBidEvaluated         EventType = "bid.evaluated"
	EventBidAmountRecorded    EventType = "bid.amount_recorded"
	EventTenderStageAdvanced  EventType = "work.tender_stage_advanced"
	EventWorkCancelled        EventType = "work.cancelled"
	EventWorkRetendered       EventType = "work.retendered"
	EventContractAwarded      EventType = "award.created"
	EventAgreementRecorded    EventType = "agreement.recorded"
	EventDeliveryAcknowledged EventType = "award.delivery_acknowledged"
	EventPaymentRecorded      EventType = "payment.recorded"
	EventOverpaymentDetected  EventType = "payment.overpayment_detected"
	EventWorkStatusChanged    EventType = "work.status_changed"
)

// Event is emitted after a successful commit. It is a notification, not part
// of the transaction: publishing never fails the operation.
type Event struct {
	Type       EventType
	NitID      string
	WorkID     string
	EntityID   string
	OccurredAt time.Time
	Attributes map[string]string
}

type IEventPublisher interface {
	Publish(ctx context.Context, e Event)
}
