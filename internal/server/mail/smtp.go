package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPMailer implements Mailer over SMTP with implicit TLS (the transport the
// original deployment used on port 465).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string

	// dial is a seam for tests.
	dial func(ctx context.Context, addr string, config *tls.Config) (net.Conn, error)
}

// NewSMTPMailer constructs an SMTPMailer. No connection is made until a
// message is sent.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		dial: func(ctx context.Context, addr string, config *tls.Config) (net.Conn, error) {
			d := &tls.Dialer{Config: config}
			return d.DialContext(ctx, "tcp", addr)
		},
	}
}

// SendPasswordReset emails the password-reset link to the given address.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to string, resetURL string) error {
	subject := "Password Reset Request"
	body := resetEmailBody(resetURL)
	return m.send(ctx, to, subject, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	addr := net.JoinHostPort(m.host, m.port)

	conn, err := m.dial(ctx, addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("smtp dial error: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake error: %w", err)
	}
	defer client.Close()

	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth error: %w", err)
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail error: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt error: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data error: %w", err)
	}
	if _, err := w.Write([]byte(buildMessage(m.from, to, subject, htmlBody))); err != nil {
		return fmt.Errorf("smtp write error: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close error: %w", err)
	}

	return client.Quit()
}

// buildMessage assembles a minimal HTML mail with CRLF line endings.
func buildMessage(from, to, subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.String()
}

func resetEmailBody(resetURL string) string {
	return `<h1>Password Reset Request</h1>
<p>Please click the link below to reset your password:</p>
<a href="` + resetURL + `">` + resetURL + `</a>
<p>This link will expire in 30 minutes.</p>
<p>If you didn't request this, please ignore this email.</p>`
}
