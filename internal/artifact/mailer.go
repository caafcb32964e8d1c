package artifact

import (
	"fmt"
	"net/smtp"
	"time"

	"parking-booking/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends the booking confirmation over plain SMTP. Delivery is
// best-effort: the booking never fails because the mail did not go out.
type Mailer struct {
	config utils.SMTPConfig
	log    *zap.Logger
}

func NewMailer(config utils.SMTPConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		config: config,
		log:    log.With(zap.String("artifact", "mailer")),
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	from := m.config.From
	if from == "" {
		from = m.config.User
	}

	msg := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n\n" +
		body

	auth := smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// BookingConfirmation formats the subject and body for a fresh ticket
func BookingConfirmation(appName string, ticketID int64, reference, vehicleNumber, slotLabel string, checkIn time.Time, checkoutURL string) (subject, body string) {
	if appName == "" {
		appName = "Elite Parking"
	}

	subject = fmt.Sprintf("Your %s token #%d", appName, ticketID)
	body = fmt.Sprintf(
		"Your parking token has been issued.\n\n"+
			"Token Number: %d\n"+
			"Reference: %s\n"+
			"Vehicle Number: %s\n"+
			"Parking Slot: %s\n"+
			"Check-in Time: %s\n\n"+
			"Checkout link: %s\n\n"+
			"Thank you for choosing %s.",
		ticketID, reference, vehicleNumber, slotLabel,
		checkIn.Format("02 Jan 2006 15:04"), checkoutURL, appName,
	)
	return subject, body
}
