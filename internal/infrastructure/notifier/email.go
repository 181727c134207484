package notifier

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"flyerplan/internal/config"
	"flyerplan/internal/domain"
	"flyerplan/pkg/errcodes"
)

// EmailSender delivers one plain-text message per invocation through an SMTP
// relay: STARTTLS on the submission port, LOGIN with the sender credentials,
// single recipient, no batching and no retry. Any failure surfaces to the
// caller as EmailDeliveryFailed.
type EmailSender struct {
	host     string
	port     int
	sender   string
	password string
	receiver string
}

func NewEmailSender(cfg config.SMTP) *EmailSender {
	return &EmailSender{
		host:     cfg.Host,
		port:     cfg.Port,
		sender:   cfg.Sender,
		password: cfg.Password,
		receiver: cfg.Receiver,
	}
}

func (s *EmailSender) Send(ctx context.Context, subject, body string) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))

	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "dial smtp relay")
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "smtp handshake")
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); !ok {
		return domain.NewError(errcodes.EmailDeliveryFailed, "relay does not offer STARTTLS")
	}

	if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil { //nolint:exhaustruct
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "starttls")
	}

	auth := smtp.PlainAuth("", s.sender, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "smtp auth")
	}

	if err := client.Mail(s.sender); err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "mail from")
	}

	if err := client.Rcpt(s.receiver); err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "rcpt to")
	}

	w, err := client.Data()
	if err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "smtp data")
	}

	if _, err := w.Write(s.buildMessage(subject, body)); err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "write message")
	}

	if err := w.Close(); err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "finish message")
	}

	if err := client.Quit(); err != nil {
		return domain.WrapError(err, errcodes.EmailDeliveryFailed, "smtp quit")
	}

	return nil
}

func (s *EmailSender) buildMessage(subject, body string) []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "From: %s\r\n", s.sender)
	fmt.Fprintf(&sb, "To: %s\r\n", s.receiver)
	fmt.Fprintf(&sb, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	return []byte(sb.String())
}
