package mail

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/harentsoaR/proconnect-api/internal/config"
)

// Mailer delivers password-reset tokens. Delivery is an external collaborator:
// failures are logged by the caller, never surfaced to the requester.
type Mailer interface {
	SendPasswordReset(to, token string) error
}

// SMTPMailer sends through a configured SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewSMTP(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
	}
}

func (m *SMTPMailer) SendPasswordReset(to, token string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password reset request")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Your reset token is: <b>%s</b></p>"+
			"<p>It expires in one hour. If you did not request this, ignore this email.</p>",
		token,
	))

	d := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return d.DialAndSend(msg)
}

// LogMailer stands in when SMTP is not configured, e.g. local development.
type LogMailer struct {
	Log *zap.Logger
}

func (m *LogMailer) SendPasswordReset(to, token string) error {
	m.Log.Info("password reset token issued (SMTP not configured)",
		zap.String("to", to),
		zap.String("token", token),
	)
	return nil
}
