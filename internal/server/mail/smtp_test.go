package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	msg := buildMessage("noreply@x.com", "a@x.com", "Password Reset Request", "<p>hi</p>")

	for _, want := range []string{
		"From: noreply@x.com\r\n",
		"To: a@x.com\r\n",
		"Subject: Password Reset Request\r\n",
		"Content-Type: text/html",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	headers, body, ok := strings.Cut(msg, "\r\n\r\n")
	if !ok {
		t.Fatalf("message has no header/body separator")
	}
	if strings.Contains(headers, "<p>hi</p>") || !strings.Contains(body, "<p>hi</p>") {
		t.Fatalf("body must follow the blank line")
	}
}

func TestResetEmailBody_ContainsLink(t *testing.T) {
	t.Parallel()

	url := "http://localhost:3000/reset-password/deadbeef"
	body := resetEmailBody(url)

	if strings.Count(body, url) != 2 {
		t.Fatalf("body must embed the URL as both href and text:\n%s", body)
	}
	if !strings.Contains(body, "30 minutes") {
		t.Fatalf("body must mention the expiry window")
	}
}

func TestSendPasswordReset_DialError(t *testing.T) {
	t.Parallel()

	m := NewSMTPMailer("mail.example.com", "465", "u", "p", "noreply@example.com")
	m.dial = func(ctx context.Context, addr string, config *tls.Config) (net.Conn, error) {
		if addr != "mail.example.com:465" {
			t.Fatalf("unexpected addr: %s", addr)
		}
		return nil, errors.New("connection refused")
	}

	err := m.SendPasswordReset(context.Background(), "a@x.com", "http://x/reset-password/t")
	if err == nil || !strings.Contains(err.Error(), "smtp dial error") {
		t.Fatalf("expected wrapped dial error, got %v", err)
	}
}
