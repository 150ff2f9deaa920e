package email

import (
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jfmartinez/leadpilot/pkg/models"
)

// Service handles operator notification email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendDailyDigest sends the operator a pipeline summary email
func (s *Service) SendDailyDigest(toEmail string, stats *models.StatsResponse, sweep *models.FollowupResponse) error {
	subject := "LeadPilot daily digest"

	var stages strings.Builder
	for stage, count := range stats.ByStage {
		if count == 0 {
			continue
		}
		stages.WriteString(fmt.Sprintf("<li>%s: %d</li>", stage, count))
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your pipeline today</h2>
			<p><strong>%d</strong> active leads, <strong>%d</strong> converted (%.1f%% conversion rate).</p>
			<ul>%s</ul>
			<h3>Follow-up sweep</h3>
			<p>Checked %d leads: %d responded, %d followed up, %d failed.</p>
			<p><a href="%s/leads" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open LeadPilot</a></p>
		</body>
		</html>
	`, stats.Active, stats.Converted, stats.ConversionRate, stages.String(),
		sweep.Considered, sweep.Advanced, sweep.FollowedUp, sweep.Failed, s.baseURL)

	plainText := fmt.Sprintf(`
Your pipeline today:

%d active leads, %d converted (%.1f%% conversion rate).

Follow-up sweep checked %d leads: %d responded, %d followed up, %d failed.

Open LeadPilot: %s/leads
	`, stats.Active, stats.Converted, stats.ConversionRate,
		sweep.Considered, sweep.Advanced, sweep.FollowedUp, sweep.Failed, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, "", subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, "", subject, s.baseURL+"/leads")
}

// SendNewLeadNotification tells the operator a lead arrived from an ad or DM
func (s *Service) SendNewLeadNotification(toEmail, leadName, source string, leadID int) error {
	subject := fmt.Sprintf("New lead: %s (%s)", leadName, source)
	leadURL := fmt.Sprintf("%s/leads/%d", s.baseURL, leadID)

	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>New lead</h2>
			<p><strong>%s</strong> just came in via %s.</p>
			<p><a href="%s" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Lead</a></p>
		</body>
		</html>
	`, leadName, source, leadURL)

	plainText := fmt.Sprintf(`
%s just came in via %s.

View the lead: %s
	`, leadName, source, leadURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, "", subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, "", subject, leadURL)
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs to console in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	return nil
}

// sendViaSendGrid sends email using SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
