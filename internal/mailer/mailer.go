package mailer

import (
	"gopkg.in/gomail.v2"
)

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender is best-effort delivery; a failed send is an error for the caller
// to surface, never something to retry here.
type Sender interface {
	Send(m Message) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (m *SMTPMailer) Send(msg Message) error {
	from := msg.From
	if from == "" {
		from = m.from
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}

	return m.dialer.DialAndSend(gm)
}
