package audit

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Event struct {
	AdminID  *uuid.UUID
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher decouples audit writes from the request path: events are
// queued and persisted by a background worker, and dropped rather than
// blocking the API when the queue is full.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.AdminID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logrus.WithError(err).Error("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue must never break the API
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}
