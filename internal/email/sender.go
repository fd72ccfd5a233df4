package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Gob26/beautycity/internal/config"
	"github.com/Gob26/beautycity/internal/logger"
)

// Sender delivers transactional mail. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to, subject, htmlBody string) error
	SendInvitation(to, salonName, message string) error
	SendApplicationUpdate(to, vacancyTitle, status string) error
}

type smtpSender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) Sender {
	return &smtpSender{cfg: cfg}
}

func (e *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(e.cfg.Email.FromEmail, e.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUser,
		e.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		logger.WithError(err).Error("failed to send email", "to", to, "subject", subject)
		return err
	}
	return nil
}

func (e *smtpSender) SendInvitation(to, salonName, message string) error {
	subject := fmt.Sprintf("Приглашение от салона %s", salonName)
	body := fmt.Sprintf(
		`<p>Салон <b>%s</b> приглашает вас к сотрудничеству.</p><p>%s</p>
<p>Войдите в личный кабинет, чтобы принять или отклонить приглашение.</p>`,
		salonName, message)
	return e.Send(to, subject, body)
}

func (e *smtpSender) SendApplicationUpdate(to, vacancyTitle, status string) error {
	subject := fmt.Sprintf("Ваш отклик на вакансию «%s»", vacancyTitle)
	body := fmt.Sprintf(
		`<p>Статус вашего отклика на вакансию <b>%s</b> изменился: <b>%s</b>.</p>`,
		vacancyTitle, status)
	return e.Send(to, subject, body)
}

// NopSender swallows all mail. Used in tests and when SMTP is not
// configured.
type NopSender struct{}

func (NopSender) Send(to, subject, body string) error { return nil }

func (NopSender) SendInvitation(to, salon, msg string) error { return nil }

func (NopSender) SendApplicationUpdate(to, title, status string) error { return nil }
