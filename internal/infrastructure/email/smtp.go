package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"dormdesk/internal/shared/config"
)

type SMTPEmailService struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendIssueResolvedEmail(to string, issueID uint, hallName, roomNumber string) error {
	subject := fmt.Sprintf("Your repair request #%d has been resolved", issueID)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Repair Request Resolved</h2>
			<p>Good news! Your repair request has been marked as resolved.</p>
			<ul>
				<li>Request: #%d</li>
				<li>Hall: %s</li>
				<li>Room: %s</li>
			</ul>
			<p>If the problem persists, please submit a new request through the maintenance form.</p>
		</body>
		</html>
	`, issueID, hallName, roomNumber)

	plainBody := fmt.Sprintf(`
Repair Request Resolved

Good news! Your repair request has been marked as resolved.

Request: #%d
Hall: %s
Room: %s

If the problem persists, please submit a new request through the maintenance form.
	`, issueID, hallName, roomNumber)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopEmailService swallows notifications when email delivery is disabled.
type NoopEmailService struct{}

func NewNoopEmailService() *NoopEmailService {
	return &NoopEmailService{}
}

func (s *NoopEmailService) SendIssueResolvedEmail(to string, issueID uint, hallName, roomNumber string) error {
	return nil
}
