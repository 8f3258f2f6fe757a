package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Config SMTP connection settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Client sends plain-text email over SMTP, upgrading to TLS when the server offers STARTTLS
type Client struct {
	cfg Config
	log Logger
}

func NewClient(cfg Config, log Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// Send delivers one message to one recipient
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	parsed, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecipient, to, err)
	}
	// envelope and header carry the bare address, without a display name
	to = parsed.Address

	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	dialer := &net.Dialer{Timeout: c.cfg.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrUnavailable, addr, err)
	}

	deadline := time.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if c.cfg.Timeout > 0 {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrUnavailable, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: c.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("%w: starttls: %v", ErrUnavailable, err)
		}
	}

	if c.cfg.Username != "" {
		auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("%w: auth: %v", ErrRejected, err)
		}
	}

	if err := client.Mail(c.cfg.From); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrRejected, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%w: RCPT TO: %v", ErrRejected, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrRejected, err)
	}
	if _, err := w.Write(buildMessage(c.cfg.From, to, subject, body)); err != nil {
		w.Close()
		return fmt.Errorf("%w: write body: %v", ErrUnavailable, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: end of DATA: %v", ErrRejected, err)
	}

	if err := client.Quit(); err != nil {
		c.log.Warn("Send: QUIT to %s failed after delivery: %v", addr, err)
	}

	c.log.Info("Send: email delivered to=%s subject=%q", to, subject)
	return nil
}

// buildMessage renders RFC 5322 headers and a CRLF-normalized body
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")

	body = strings.ReplaceAll(body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")

	return []byte(b.String())
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
