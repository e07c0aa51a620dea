package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendErrorReport(message, source string) error
}

type emailService struct {
	dialer         *gomail.Dialer
	senderEmail    string
	senderName     string
	recipientEmail string
}

func NewEmailService(host string, port int, username, password, senderName, recipientEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:         d,
		senderEmail:    username,
		senderName:     senderName,
		recipientEmail: recipientEmail,
	}
}

func (s *emailService) SendErrorReport(message, source string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.recipientEmail)
	m.SetHeader("Subject", "Notebook client error report")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Client error report</h2>
			<p><b>Time:</b> %s</p>
			<p><b>Source:</b> %s</p>
			<pre style="background: #f5f5f5; padding: 10px; border-radius: 5px;">%s</pre>
		</div>
	`, time.Now().UTC().Format(time.RFC3339), source, message)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
