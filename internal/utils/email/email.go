package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/pftrack/finance-service/internal/config"
	"github.com/pftrack/finance-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendInsightAlert notifies a user about an urgent financial insight
func (s *Sender) SendInsightAlert(to, name string, insight *models.FinancialInsight) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Financial alert: %s", insight.Title)

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"A new alert was generated for your account:\n\n"+
			"%s\n%s\n\n"+
			"Open your dashboard to review the details.\n"+
			"\nBest regards,\nFinance Service",
		name, insight.Title, insight.Description,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
