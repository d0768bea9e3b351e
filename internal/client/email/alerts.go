package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// AlertSender notifies an operator about conditions that must not be retried.
type AlertSender interface {
	SendTerminalFailureAlert(ctx context.Context, eventID, eventType, reason, paymentID string) error
}

// AlertClient sends operator alerts through Resend.
type AlertClient struct {
	client      *resend.Client
	logger      *zap.Logger
	fromAddress string
	toAddress   string
}

// NewAlertClient creates an alert mailer. fromAddress and toAddress must be
// verified sender/recipient addresses.
func NewAlertClient(apiKey, fromAddress, toAddress string, logger *zap.Logger) *AlertClient {
	return &AlertClient{
		client:      resend.NewClient(apiKey),
		logger:      logger,
		fromAddress: fromAddress,
		toAddress:   toAddress,
	}
}

var _ AlertSender = (*AlertClient)(nil)

// SendTerminalFailureAlert emails the operator about a webhook event that was
// acknowledged but flagged terminal. Callers treat failures as best-effort.
func (c *AlertClient) SendTerminalFailureAlert(ctx context.Context, eventID, eventType, reason, paymentID string) error {
	params := &resend.SendEmailRequest{
		From:    c.fromAddress,
		To:      []string{c.toAddress},
		Subject: fmt.Sprintf("[attendly] Terminal webhook failure: %s", reason),
		Text: fmt.Sprintf(
			"A webhook event was acknowledged without retry and needs manual investigation.\n\n"+
				"Event ID: %s\nEvent type: %s\nReason: %s\nPayment ID: %s\n",
			eventID, eventType, reason, paymentID),
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		c.logger.Error("Failed to send terminal failure alert",
			zap.String("event_id", eventID),
			zap.String("reason", reason),
			zap.Error(err))
		return fmt.Errorf("failed to send terminal failure alert: %w", err)
	}

	c.logger.Info("Terminal failure alert sent",
		zap.String("event_id", eventID),
		zap.String("email_id", sent.Id))
	return nil
}
