package notification

import (
	"log"

	"github.com/slotworks/team-scheduler/internal/models"
)

type Notice struct {
	Recipient string
	Booking   *models.Booking
	Timezone  string
}

// Dispatcher queues booking notifications and sends them off the
// request path, mirroring the audit pipeline: a committed booking is
// never rolled back because an email bounced.
type Dispatcher struct {
	mailer Mailer
	queue  chan Notice
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Notice, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		if err := d.mailer.SendBookingNotification(n.Recipient, n.Booking, n.Timezone); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(n Notice) {
	if d == nil || n.Recipient == "" {
		return
	}

	select {
	case d.queue <- n:
	default:
		log.Println("notification queue full, dropping notice")
	}
}
