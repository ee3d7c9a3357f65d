package impl

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPEmailService dispatches OTP mail over SMTP with STARTTLS (or
// implicit TLS on port 465).
type SMTPEmailService struct {
	cfg SMTPConfig
}

func NewSMTPEmailService(cfg SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{cfg: cfg}
}

func (e *SMTPEmailService) SendOtp(ctx context.Context, to, code, displayName string) error {
	subject := "Email Verification - OTP Code"
	body := fmt.Sprintf(
		"Welcome %s!\r\n\r\nYour OTP verification code is: %s\r\nThis code will expire in 15 minutes.\r\n\r\nIf you didn't request this registration, please ignore this email.\r\n",
		displayName, code)
	message := buildMessage(e.cfg.From, to, subject, body)

	client, err := e.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if e.cfg.Username != "" {
		auth := smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(parseAddress(e.cfg.From)); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	writer, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := writer.Write([]byte(message)); err != nil {
		_ = writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return client.Quit()
}

// dial honors the caller's deadline: the context bounds the TCP dial and
// is propagated to the connection as a read/write deadline.
func (e *SMTPEmailService) dial(ctx context.Context) (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if e.cfg.Port == 465 {
		tlsConn := tls.Client(conn, &tls.Config{ServerName: e.cfg.Host})
		return smtp.NewClient(tlsConn, e.cfg.Host)
	}

	client, err := smtp.NewClient(conn, e.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: e.cfg.Host}); err != nil {
			_ = client.Close()
			return nil, err
		}
	}
	return client, nil
}

func buildMessage(from, to, subject, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}
	return strings.Join(headers, "\r\n")
}

func parseAddress(from string) string {
	start := strings.Index(from, "<")
	end := strings.Index(from, ">")
	if start >= 0 && end > start {
		return strings.TrimSpace(from[start+1 : end])
	}
	return strings.TrimSpace(from)
}

// DevEmailService logs the code instead of sending mail. Used when no SMTP
// host is configured.
type DevEmailService struct {
	Logger *slog.Logger
}

func (e *DevEmailService) SendOtp(ctx context.Context, to, code, displayName string) error {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "otp issued",
		"to", to,
		"display_name", displayName,
		"code", code,
	)
	return nil
}
