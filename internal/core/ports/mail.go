package ports

import "context"

// Notification is an outbound email.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers a single notification.
type Mailer interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationDispatcher accepts notifications for asynchronous delivery.
// Enqueue never blocks the calling request beyond queue backpressure and
// delivery failures are logged, not surfaced.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}
