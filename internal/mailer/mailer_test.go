package mailer

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"pewec-api/config"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  []byte
}

func captureSendMail(t *testing.T, sent *[]sentMail, fail bool) {
	t.Helper()
	orig := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		*sent = append(*sent, sentMail{addr: addr, from: from, to: to, msg: msg})
		if fail {
			return errors.New("smtp down")
		}
		return nil
	}
	t.Cleanup(func() { sendMail = orig })
}

func TestMailer_Send_DefaultsAndHeaders(t *testing.T) {
	var sent []sentMail
	captureSendMail(t, &sent, false)

	m := &Mailer{CFG: config.Config{}}
	if err := m.Send("jane@example.com", "Hello", "<p>Hi</p>"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if len(sent) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sent))
	}
	if sent[0].addr != "smtp.gmail.com:587" {
		t.Fatalf("addr=%q", sent[0].addr)
	}
	if sent[0].from != "noreply@pewec.com" {
		t.Fatalf("from=%q", sent[0].from)
	}
	if len(sent[0].to) != 1 || sent[0].to[0] != "jane@example.com" {
		t.Fatalf("to=%v", sent[0].to)
	}

	msg := string(sent[0].msg)
	for _, want := range []string{
		"To: jane@example.com\r\n",
		"Subject: Hello\r\n",
		"Content-Type: text/html",
		"<p>Hi</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestMailer_Send_UsesConfiguredHostPortAndFrom(t *testing.T) {
	var sent []sentMail
	captureSendMail(t, &sent, false)

	m := &Mailer{CFG: config.Config{
		SMTPHost:  "127.0.0.1",
		SMTPPort:  "54325",
		EmailFrom: "enquiries@pewec.com",
	}}
	if err := m.Send("jane@example.com", "Hello", "<p>Hi</p>"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent[0].addr != "127.0.0.1:54325" {
		t.Fatalf("addr=%q", sent[0].addr)
	}
	if sent[0].from != "enquiries@pewec.com" {
		t.Fatalf("from=%q", sent[0].from)
	}
}

func TestMailer_Send_PropagatesSMTPError(t *testing.T) {
	var sent []sentMail
	captureSendMail(t, &sent, true)

	m := &Mailer{CFG: config.Config{}}
	if err := m.Send("jane@example.com", "Hello", "<p>Hi</p>"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTemplates(t *testing.T) {
	desc := "Two year diploma"
	body := CourseEnquiryBody("Jane Doe", "jane@example.com", "Teacher Training", &desc)
	for _, want := range []string{"Jane Doe", "Teacher Training", "Two year diploma", "jane@example.com"} {
		if !strings.Contains(body, want) {
			t.Fatalf("course body missing %q", want)
		}
	}

	body = ContactEnquiryBody("Jane", "Doe", "jane@example.com", "fees")
	if !strings.Contains(body, "Fees &amp; Payment") && !strings.Contains(body, "Fees & Payment") {
		t.Fatalf("contact body missing enquiry type label:\n%s", body)
	}

	msg := "Please call me"
	body = RepNotificationBody("Jane", "Doe", "jane@example.com", "9876543210", "Beautician Course", &msg)
	for _, want := range []string{"Jane Doe", "9876543210", "Beautician Course", "Please call me"} {
		if !strings.Contains(body, want) {
			t.Fatalf("rep body missing %q", want)
		}
	}

	if SubjectRepNotification("Beautician Course") != "New Enquiry: Beautician Course - PEWEC" {
		t.Fatalf("unexpected rep subject")
	}
}
