package notify

import "gopkg.in/gomail.v2"

type Message struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Send(msg Message) error
}

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, username, password string) *SMTPNotifier {
	return &SMTPNotifier{dialer: gomail.NewDialer(host, port, username, password), from: username}
}

func (n *SMTPNotifier) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return n.dialer.DialAndSend(m)
}
