package smtpx

import (
	gomail "gopkg.in/gomail.v2"
)

// Message is one outbound email with an HTML body and a plain-text
// alternative for clients that do not render HTML.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

type Sender struct {
	dialer *gomail.Dialer
}

func NewSender(host string, port int, user, pass string) *Sender {
	return &Sender{dialer: gomail.NewDialer(host, port, user, pass)}
}

// Send dials the SMTP server and delivers one message. Each call opens
// its own connection; there is no pooling at this layer.
func (s *Sender) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Text)
	msg.AddAlternative("text/html", m.HTML)
	return s.dialer.DialAndSend(msg)
}
