package interfaces

import "context"

//go:generate mockgen -source=collaborators_interface.go -destination=mocks/mock_collaborators_interface.go -package=mock_interfaces

// Notification is the payload handed to the outbound mail collaborator.
type Notification struct {
	Recipient string
	Subject   string
	Body      map[string]string
}

// INotifier delivers notifications (email delivery lives outside this service).
type INotifier interface {
	Notify(ctx context.Context, n Notification) error
}
