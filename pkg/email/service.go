package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
	log         logger.Logger
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will only be logged (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Info("email service initialized with SendGrid")
	} else {
		log.Warn("email service in log-only mode, set SENDGRID_API_KEY to send mail")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     strings.TrimRight(baseURL, "/"),
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
		log:         log,
	}
}

// SendWelcomeEmail greets a newly registered user
func (s *Service) SendWelcomeEmail(toEmail, toName string) error {
	subject := "Welcome to RepCoach"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to RepCoach!</h2>
			<p>Hi %s,</p>
			<p>Record your next customer conversation and RepCoach will turn it into a profile, a stage and next steps.</p>
			<p><a href="%s" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Open RepCoach</a></p>
			<p>Thanks,<br>The RepCoach Team</p>
		</body>
		</html>
	`, html.EscapeString(toName), s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Welcome to RepCoach! Record your next customer conversation and RepCoach will
turn it into a profile, a stage and next steps.

Open RepCoach: %s

Thanks,
The RepCoach Team
	`, toName, s.baseURL)

	return s.SendRawEmail(toEmail, toName, subject, body, plainText)
}

// SendFollowUpDigest reminds a user of the follow-ups due on date.
// Each line is one pending schedule.
func (s *Service) SendFollowUpDigest(toEmail, toName, date string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	subject, body, plainText := renderDigest(toName, date, lines, s.baseURL)
	return s.SendRawEmail(toEmail, toName, subject, body, plainText)
}

func renderDigest(toName, date string, lines []string, baseURL string) (subject, htmlBody, plainText string) {
	subject = fmt.Sprintf("You have %d follow-up(s) on %s", len(lines), date)

	var items, plain strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&items, "<li>%s</li>", html.EscapeString(line))
		fmt.Fprintf(&plain, "- %s\n", line)
	}

	htmlBody = fmt.Sprintf(`
		<html>
		<body>
			<h2>Today's follow-ups</h2>
			<p>Hi %s,</p>
			<p>These follow-ups are due on %s:</p>
			<ul>%s</ul>
			<p><a href="%s/schedules">Open your schedule</a></p>
		</body>
		</html>
	`, html.EscapeString(toName), date, items.String(), baseURL)

	plainText = fmt.Sprintf(`
Hi %s,

These follow-ups are due on %s:

%s
Open your schedule: %s/schedules
	`, toName, date, plain.String(), baseURL)

	return subject, htmlBody, plainText
}

// SendRawEmail sends an email with custom subject and body content.
// Uses SendGrid in production, logs in development.
func (s *Service) SendRawEmail(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody)
	}

	s.log.Info("email not sent (development mode)",
		"subject", subject,
		"to", toEmail,
		"from", s.fromEmail,
	)
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
		s.log.Error("sendgrid error", "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		s.log.Error("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	s.log.Info("email sent", "to", toEmail, "status", response.StatusCode)
	return nil
}
