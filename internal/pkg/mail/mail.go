package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds SMTP settings for outbound notifications.
type Config struct {
	Enable bool
	Host   string
	Port   int
	User   string
	Pass   string
	From   string
}

// Message is a single plain-text email to send.
type Message struct {
	To      []string
	Subject string
	Text    string
}

// Sender sends emails via SMTP.
type Sender struct {
	cfg Config
}

func New(cfg Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email. Returns nil without sending when mail is disabled.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("mail: no recipients")
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Text)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	return smtp.SendMail(addr, auth, from, msg.To, []byte(b.String()))
}

// ContactNotification formats the notification sent to the site owner
// when a visitor submits the contact form.
func ContactNotification(name, email, message string) Message {
	text := fmt.Sprintf("New contact form submission\n\nName: %s\nEmail: %s\n\n%s\n", name, email, message)
	return Message{
		Subject: fmt.Sprintf("[folio] message from %s", name),
		Text:    text,
	}
}
