package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"pewec-api/config"
)

var sendMail = smtp.SendMail

type Mailer struct {
	CFG config.Config
}

func (m *Mailer) from() string {
	if m.CFG.EmailFrom != "" {
		return m.CFG.EmailFrom
	}
	return "noreply@pewec.com"
}

func (m *Mailer) addr() (host, port string) {
	host, port = m.CFG.SMTPHost, m.CFG.SMTPPort
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}
	return host, port
}

// Send delivers one HTML email. The message headers must be formatted
// with \r\n to be a valid email message.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	from := m.from()
	host, port := m.addr()

	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s",
		from,
		to,
		subject,
		htmlBody,
	))

	// Local SMTP (Mailpit bundled with the dev stack) requires no auth.
	var auth smtp.Auth
	if m.CFG.GmailUser != "" {
		auth = smtp.PlainAuth("", m.CFG.GmailUser, m.CFG.GmailPass, host)
	}

	if err := sendMail(host+":"+port, auth, from, []string{to}, message); err != nil {
		log.Printf("Error sending email to %s: %v\n", to, err)
		return err
	}
	return nil
}
