package notification

import (
	"fmt"
	"net/smtp"

	"github.com/slotworks/team-scheduler/internal/config"
	"github.com/slotworks/team-scheduler/internal/models"
	"github.com/slotworks/team-scheduler/internal/timezone"
)

// Mailer delivers a booking summary to the contractor. Delivery
// failure never fails the booking.
type Mailer interface {
	SendBookingNotification(recipient string, b *models.Booking, tz string) error
}

type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) SendBookingNotification(recipient string, b *models.Booking, tz string) error {
	loc := timezone.Location(tz)

	body := fmt.Sprintf(
		"You have a new booking:\r\n"+
			"Customer: %s %s\r\n"+
			"Address: %s, %s, %s\r\n"+
			"Start: %s\r\n"+
			"End: %s\r\n"+
			"Description: %s\r\n",
		b.CustomerFirstName, b.CustomerLastName,
		b.Address, b.City, b.State,
		b.StartTime.In(loc).Format("Mon, 02 Jan 2006 15:04"),
		b.EndTime.In(loc).Format("Mon, 02 Jan 2006 15:04"),
		b.Description,
	)

	msg := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + recipient + "\r\n" +
			"Subject: New Booking Notification\r\n" +
			"\r\n" +
			body,
	)

	addr := m.host + ":" + m.port

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{recipient}, msg)
}
