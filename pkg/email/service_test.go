package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "RepCoach", "https://app.repcoach.io/", "", logger.Discard())
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "from@example.com", svc.fromEmail)
	assert.Equal(t, "RepCoach", svc.fromName)
	assert.Equal(t, "https://app.repcoach.io", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("from@example.com", "RepCoach", "https://app.repcoach.io", "SG.test-key", logger.Discard())
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendWelcomeEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "RepCoach", "https://app.repcoach.io", "", logger.Discard())

	err := svc.SendWelcomeEmail("user@example.com", "Test User")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendFollowUpDigest_ConsoleMode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf, "info", "json")
	svc := NewService("from@example.com", "RepCoach", "https://app.repcoach.io", "", log)

	err := svc.SendFollowUpDigest("user@example.com", "Test User", "2024-03-15", []string{"09:30 call Alice"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "You have 1 follow-up(s) on 2024-03-15")
	assert.Contains(t, buf.String(), "user@example.com")
}

func TestSendFollowUpDigest_NothingDue(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithOutput(&buf, "info", "json")
	svc := NewService("from@example.com", "RepCoach", "https://app.repcoach.io", "", log)
	buf.Reset()

	assert.NoError(t, svc.SendFollowUpDigest("user@example.com", "Test User", "2024-03-15", nil))
	assert.Empty(t, buf.String())
}

func TestRenderDigest(t *testing.T) {
	subject, htmlBody, plain := renderDigest("Li <Lei>", "2024-03-15",
		[]string{"09:30 call Alice (Acme)", "send <quote>"}, "https://app.repcoach.io")

	assert.Equal(t, "You have 2 follow-up(s) on 2024-03-15", subject)
	assert.Contains(t, htmlBody, "Li &lt;Lei&gt;")
	assert.Contains(t, htmlBody, "<li>send &lt;quote&gt;</li>")
	assert.Contains(t, htmlBody, "https://app.repcoach.io/schedules")
	assert.Contains(t, plain, "- 09:30 call Alice (Acme)\n")
	assert.Contains(t, plain, "- send <quote>\n")
}
