package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// MailSender is the subset of the SendGrid client used to deliver mail.
type MailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type emailService struct {
	client    MailSender
	fromEmail string
	fromName  string
}

// NewEmailService returns a SendGrid backed EmailService, or one that only logs
// when no API key is configured.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	if apiKey == "" {
		logger.Warn("SendGrid API key not configured, emails will be logged only")
		return noopEmailService{}
	}
	return NewEmailServiceWithClient(sendgrid.NewSendClient(apiKey), fromEmail, fromName)
}

func NewEmailServiceWithClient(client MailSender, fromEmail, fromName string) EmailService {
	return &emailService{client: client, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("SendGrid", "Send", "subject", subject)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("SendGrid", "Send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("SendGrid", "Send", err)
		return err
	}
	logger.ExternalServiceResult("SendGrid", "Send", nil, "status", response.StatusCode)
	return nil
}

func (s *emailService) SendPasswordReset(ctx context.Context, email, name, resetURL string) error {
	subject := "Reset your PTO Share password"
	plain := fmt.Sprintf("Hello %s,\n\nUse the link below to reset your password:\n\n%s\n\nIf you did not request this, you can ignore this email.\n\nThe PTO Share Team", name, resetURL)
	htmlContent := fmt.Sprintf(`<p>Hello %s,</p><p><a href="%s">Reset your password</a></p><p>If you did not request this, you can ignore this email.</p>`,
		html.EscapeString(name), html.EscapeString(resetURL))
	return s.send(ctx, email, name, subject, plain, htmlContent)
}

func (s *emailService) SendDonationReceived(ctx context.Context, email, name, donorName string, hours int32, fulfilled bool) error {
	subject := fmt.Sprintf("%s donated %d PTO hours to you", donorName, hours)
	plain := fmt.Sprintf("Hello %s,\n\n%s donated %d hours to your support request.", name, donorName, hours)
	if fulfilled {
		plain += "\n\nYour request is now fully funded."
	}
	plain += "\n\nThe PTO Share Team"
	htmlContent := "<p>" + strings.ReplaceAll(html.EscapeString(plain), "\n\n", "</p><p>") + "</p>"
	return s.send(ctx, email, name, subject, plain, htmlContent)
}

func (s *emailService) SendRequestDigest(ctx context.Context, email, name string, requests []domain.SupportRequest) error {
	if len(requests) == 0 {
		return nil
	}
	var plain, rows strings.Builder
	fmt.Fprintf(&plain, "Hello %s,\n\nThese colleagues are still looking for PTO support:\n\n", name)
	for _, r := range requests {
		fmt.Fprintf(&plain, "- %s needs %d more hours (%s urgency)\n", r.RequesterName, r.HoursRemaining(), r.Urgency)
		fmt.Fprintf(&rows, "<li>%s needs %d more hours (%s urgency)</li>", html.EscapeString(r.RequesterName), r.HoursRemaining(), r.Urgency)
	}
	plain.WriteString("\nThe PTO Share Team")
	htmlContent := fmt.Sprintf("<p>Hello %s,</p><p>These colleagues are still looking for PTO support:</p><ul>%s</ul>",
		html.EscapeString(name), rows.String())
	return s.send(ctx, email, name, "Colleagues still need PTO support", plain.String(), htmlContent)
}

type noopEmailService struct{}

func (noopEmailService) SendPasswordReset(ctx context.Context, email, name, resetURL string) error {
	logger.Info("Email disabled, password reset not sent", "email", email, "url", resetURL)
	return nil
}

func (noopEmailService) SendDonationReceived(ctx context.Context, email, name, donorName string, hours int32, fulfilled bool) error {
	logger.Debug("Email disabled, donation notice not sent", "email", email, "hours", hours)
	return nil
}

func (noopEmailService) SendRequestDigest(ctx context.Context, email, name string, requests []domain.SupportRequest) error {
	logger.Debug("Email disabled, digest not sent", "email", email, "requests", len(requests))
	return nil
}
