package mailservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSendWelcomeEmail(t *testing.T) {
	mockMC := new(MockMessageConsumer)
	mockMailer := new(MockMailer)
	mockLogger := new(MockLogger)

	mockLogger.On("Info", "welcome email sent", mock.Anything).Return()

	ctx, cancel := context.WithCancel(context.Background())

	s := &MailService{
		mb:     mockMC,
		m:      mockMailer,
		logger: mockLogger,
		ctx:    ctx,
		cancel: cancel,
	}

	s.SendWelcomeEmail()

	time.Sleep(1 * time.Second)

	assert.True(t, mockMailer.IsCalled(), "expected an email to be sent")
	assert.Equal(t, "test@example.com", mockMailer.GetEmail())

	mockLogger.AssertExpectations(t)

	t.Cleanup(func() {
		s.Close()
	})
}
