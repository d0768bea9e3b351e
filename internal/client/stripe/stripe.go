package stripe

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// ProcessorClient is the outbound surface of the payment processor used by
// the reconciliation engine. Retrieval calls expand the nested objects the
// handlers need; mutating calls take caller-supplied idempotency keys so a
// retried call has effect at most once.
type ProcessorClient interface {
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
	GetCharge(ctx context.Context, id string) (*stripe.Charge, error)
	ListFeeRefunds(ctx context.Context, applicationFeeID string) ([]*stripe.FeeRefund, error)
	ReverseTransfer(ctx context.Context, params ReverseTransferParams) (*stripe.TransferReversal, error)
	CreateTransfer(ctx context.Context, params CreateTransferParams) (*stripe.Transfer, error)
}

// ReverseTransferParams describes a partial or full transfer reversal.
type ReverseTransferParams struct {
	TransferID     string
	AmountCents    int64
	IdempotencyKey string
}

// CreateTransferParams describes a transfer to a connected account.
type CreateTransferParams struct {
	AmountCents    int64
	Currency       string
	Destination    string
	TransferGroup  string
	IdempotencyKey string
}

// Ensure Client implements ProcessorClient.
var _ ProcessorClient = (*Client)(nil)

// Client wraps the Stripe SDK client for the reconciliation engine.
type Client struct {
	client *stripe.Client
	logger *zap.Logger
}

// NewClient creates a configured Stripe client.
func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		client: stripe.NewClient(apiKey, nil),
		logger: logger,
	}
}

// GetPaymentIntent fetches a payment intent with its latest charge, balance
// transaction and transfer expanded.
func (c *Client) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentRetrieveParams{}
	params.AddExpand("latest_charge")
	params.AddExpand("latest_charge.balance_transaction")
	params.AddExpand("latest_charge.transfer")

	intent, err := c.client.V1PaymentIntents.Retrieve(ctx, id, params)
	if err != nil {
		c.logger.Error("Failed to fetch Stripe payment intent", zap.String("payment_intent_id", id), zap.Error(err))
		return nil, errors.Wrapf(err, "stripe_client.GetPaymentIntent: failed to fetch %s", id)
	}
	return intent, nil
}

// GetCharge fetches a charge with its balance transaction, transfer and
// application fee expanded. The charge carries the authoritative cumulative
// amount_refunded used by refund reconciliation.
func (c *Client) GetCharge(ctx context.Context, id string) (*stripe.Charge, error) {
	params := &stripe.ChargeRetrieveParams{}
	params.AddExpand("balance_transaction")
	params.AddExpand("transfer")
	params.AddExpand("application_fee")

	charge, err := c.client.V1Charges.Retrieve(ctx, id, params)
	if err != nil {
		c.logger.Error("Failed to fetch Stripe charge", zap.String("charge_id", id), zap.Error(err))
		return nil, errors.Wrapf(err, "stripe_client.GetCharge: failed to fetch %s", id)
	}
	return charge, nil
}

// ListFeeRefunds lists all refunds recorded against an application fee.
func (c *Client) ListFeeRefunds(ctx context.Context, applicationFeeID string) ([]*stripe.FeeRefund, error) {
	params := &stripe.FeeRefundListParams{
		ID: stripe.String(applicationFeeID),
	}

	var refunds []*stripe.FeeRefund
	for refund, err := range c.client.V1FeeRefunds.List(ctx, params) {
		if err != nil {
			c.logger.Error("Error iterating Stripe fee refunds list",
				zap.String("application_fee_id", applicationFeeID),
				zap.Error(err))
			return nil, errors.Wrap(err, "stripe_client.ListFeeRefunds: error during iteration")
		}
		if refund == nil {
			continue
		}
		refunds = append(refunds, refund)
	}

	return refunds, nil
}

// ReverseTransfer reverses part or all of a transfer to a connected account.
func (c *Client) ReverseTransfer(ctx context.Context, params ReverseTransferParams) (*stripe.TransferReversal, error) {
	createParams := &stripe.TransferReversalCreateParams{
		ID:     stripe.String(params.TransferID),
		Amount: stripe.Int64(params.AmountCents),
	}
	if params.IdempotencyKey != "" {
		createParams.SetIdempotencyKey(params.IdempotencyKey)
	}

	reversal, err := c.client.V1TransferReversals.Create(ctx, createParams)
	if err != nil {
		c.logger.Error("Failed to create Stripe transfer reversal",
			zap.String("transfer_id", params.TransferID),
			zap.Int64("amount_cents", params.AmountCents),
			zap.Error(err))
		return nil, errors.Wrapf(err, "stripe_client.ReverseTransfer: failed to reverse %s", params.TransferID)
	}
	return reversal, nil
}

// CreateTransfer sends funds to a connected account.
func (c *Client) CreateTransfer(ctx context.Context, params CreateTransferParams) (*stripe.Transfer, error) {
	createParams := &stripe.TransferCreateParams{
		Amount:      stripe.Int64(params.AmountCents),
		Currency:    stripe.String(params.Currency),
		Destination: stripe.String(params.Destination),
	}
	if params.TransferGroup != "" {
		createParams.TransferGroup = stripe.String(params.TransferGroup)
	}
	if params.IdempotencyKey != "" {
		createParams.SetIdempotencyKey(params.IdempotencyKey)
	}

	transfer, err := c.client.V1Transfers.Create(ctx, createParams)
	if err != nil {
		c.logger.Error("Failed to create Stripe transfer",
			zap.String("destination", params.Destination),
			zap.Int64("amount_cents", params.AmountCents),
			zap.Error(err))
		return nil, errors.Wrap(err, "stripe_client.CreateTransfer: failed to create transfer")
	}
	return transfer, nil
}
