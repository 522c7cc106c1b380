package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Notifier delivers a message to an external address. Delivery is
// fire-and-forget from the caller's point of view: errors are reported so
// they can be logged, but callers must not fail their own operation on them.
type Notifier interface {
	Send(to, subject, body string) error
}

// LogNotifier writes notifications to the process log. It is the default
// sink when no SMTP host is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(to, subject, body string) error {
	log.Printf("notification to %s: %s", to, subject)
	return nil
}

// SMTPNotifier delivers notifications over plain SMTP.
type SMTPNotifier struct {
	addr string
	from string
}

func NewSMTPNotifier(host, port, from string) *SMTPNotifier {
	return &SMTPNotifier{
		addr: host + ":" + port,
		from: from,
	}
}

func (n *SMTPNotifier) Send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}
