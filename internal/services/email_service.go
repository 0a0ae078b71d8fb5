package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/catalys/platform/internal/config"
	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{config: cfg}
}

// EmailData contains common email template data
type EmailData struct {
	AppName     string
	AppURL      string
	UserName    string
	Subject     string
	Content     template.HTML
	ActionURL   string
	ActionLabel string
}

// BaseEmailTemplate is the base HTML email template
const BaseEmailTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #18181b; color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
        .button { display: inline-block; background: #18181b; color: white; padding: 12px 30px; text-decoration: none; border-radius: 6px; margin: 20px 0; }
        .footer { text-align: center; color: #888; font-size: 12px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.AppName}}</h1>
        </div>
        <div class="content">
            <p>Hi {{.UserName}},</p>
            {{.Content}}
            {{if .ActionURL}}
            <p style="text-align: center;">
                <a href="{{.ActionURL}}" class="button">{{.ActionLabel}}</a>
            </p>
            {{end}}
        </div>
        <div class="footer">
            <p>&copy; {{.AppName}}. All rights reserved.</p>
            <p>This is an automated message. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
`

// sendEmail sends an email using SMTP. Without SMTP configuration the email
// is logged instead so callers never fail on a missing provider.
func (s *EmailService) sendEmail(to, subject, body string) error {
	if s.config.SMTPHost == "" {
		fmt.Printf("\n=== EMAIL ===\nTo: %s\nSubject: %s\nBody: %s\n=============\n", to, subject, body)
		return nil
	}

	from := s.config.FromEmail
	auth := smtp.PlainAuth("", s.config.SMTPUser, s.config.SMTPPassword, s.config.SMTPHost)

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		from, to, subject)

	msg := []byte(headers + body)

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, from, []string{to}, msg)
}

// renderEmail renders an email using the base template
func (s *EmailService) renderEmail(data EmailData) (string, error) {
	data.AppName = s.config.AppName
	data.AppURL = s.config.AppURL

	tmpl, err := template.New("email").Parse(BaseEmailTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// SendVerificationEmail sends an email verification link
func (s *EmailService) SendVerificationEmail(user *models.User) error {
	data := EmailData{
		UserName:    user.Name,
		Subject:     "Verify your email address",
		Content:     template.HTML("<p>Thank you for registering with " + s.config.AppName + ". Please click the button below to verify your email address.</p>"),
		ActionURL:   fmt.Sprintf("%s/verify-email?token=%s", s.config.AppURL, user.VerifyToken),
		ActionLabel: "Verify Email",
	}

	body, err := s.renderEmail(data)
	if err != nil {
		return err
	}

	return s.sendEmail(user.Email, data.Subject, body)
}

// SendPasswordResetEmail sends a password reset link
func (s *EmailService) SendPasswordResetEmail(user *models.User, token string) error {
	data := EmailData{
		UserName:    user.Name,
		Subject:     "Reset your password",
		Content:     template.HTML("<p>You requested a password reset. Click the button below to reset your password. This link will expire in 24 hours.</p>"),
		ActionURL:   fmt.Sprintf("%s/reset-password?token=%s", s.config.AppURL, token),
		ActionLabel: "Reset Password",
	}

	body, err := s.renderEmail(data)
	if err != nil {
		return err
	}

	return s.sendEmail(user.Email, data.Subject, body)
}

// SendOrganizationInviteEmail invites a prospective co-founder to join a
// startup's organization.
func (s *EmailService) SendOrganizationInviteEmail(to, organizationName, inviterName string, invitationID uuid.UUID) error {
	content := fmt.Sprintf(`
		<p><strong>%s</strong> has invited you to join <strong>%s</strong> as a co-founder on %s.</p>
		<p>Click the button below to review the invitation and respond.</p>
	`, inviterName, organizationName, s.config.AppName)

	data := EmailData{
		UserName:    "there",
		Subject:     fmt.Sprintf("You've been invited to join %s", organizationName),
		Content:     template.HTML(content),
		ActionURL:   fmt.Sprintf("%s/accept-invite?id=%s", s.config.AppURL, invitationID),
		ActionLabel: "View Invitation",
	}

	body, err := s.renderEmail(data)
	if err != nil {
		return err
	}

	return s.sendEmail(to, data.Subject, body)
}
