package mailer

import (
	"fmt"

	"feedback-forms-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	// Send delivers a plain-text email. Delivery is strictly best-effort:
	// a missing SMTP configuration is a logged skip, not an error.
	Send(toEmail, subject, body string) error
	SendSummary(toEmail, formTitle, description, summaryText string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	configured  bool
	log         logger.ILogger
}

func NewEmailService(host string, port int, email, password, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, email, password),
		senderEmail: email,
		senderName:  senderName,
		configured:  host != "" && email != "",
		log:         log,
	}
}

func (s *emailService) Send(toEmail, subject, body string) error {
	if !s.configured {
		s.log.Info("mailer", "email skipped: SMTP not configured", map[string]interface{}{
			"to":      toEmail,
			"subject": subject,
		})
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Warn("mailer", "failed to send email", map[string]interface{}{
			"to":    toEmail,
			"error": err.Error(),
		})
		return err
	}

	s.log.Info("mailer", "email sent", map[string]interface{}{"to": toEmail})
	return nil
}

func (s *emailService) SendSummary(toEmail, formTitle, description, summaryText string) error {
	subject := fmt.Sprintf("AI Summary: %s", formTitle)
	body := fmt.Sprintf(
		"AI Summary for: %s\n\nDescription: %s\n\n%s\n",
		formTitle, description, summaryText,
	)
	return s.Send(toEmail, subject, body)
}
