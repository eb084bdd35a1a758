// Package messagequeue defines the message queue port.
package messagequeue

import "context"

// Handler processes a single message from a subject.
type Handler func(subject string, data []byte) error

// Queue is the messaging interface used to hand events to back-office tooling.
type Queue interface {
	Publish(ctx context.Context, subject string, data []byte) error
	Subscribe(ctx context.Context, subject string, handler Handler) (func(), error)
	Close() error
}

// Subjects published by the site service.
const (
	SubjectAppointmentReceived = "appointments.received"
	SubjectSiteUpdated         = "sites.updated"
)
