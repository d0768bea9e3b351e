package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/attendly/attendly-api/internal/audit"
	awsclient "github.com/attendly/attendly-api/internal/client/aws"
	"github.com/attendly/attendly-api/internal/client/email"
	stripeclient "github.com/attendly/attendly-api/internal/client/stripe"
	"github.com/attendly/attendly-api/internal/db"
	"github.com/attendly/attendly-api/internal/helpers"
	"github.com/attendly/attendly-api/internal/logger"
	"github.com/attendly/attendly-api/internal/services"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Application holds all dependencies for the webhook processor Lambda handler
type Application struct {
	router    *services.WebhookRouter
	alerts    email.AlertSender
	dbQueries *db.Queries
	logger    *zap.Logger
}

// HandleSQSEvent processes payment processor webhook events from the SQS
// queue. Message bodies are raw Stripe event JSON; the receiving endpoint has
// already verified the delivery signature before enqueueing.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Webhook processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	for _, record := range event.Records {
		err := app.processWebhookRecord(ctx, record)
		if err != nil {
			logger.Error("Failed to process webhook record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			// SQS redelivers the failed message; records already processed in
			// this batch are safe to redeliver because processing is
			// idempotent.
			return fmt.Errorf("failed to process message %s: %w", record.MessageId, err)
		}
	}

	logger.Info("Successfully processed all webhook records",
		zap.Int("count", len(event.Records)))
	return nil
}

// processWebhookRecord processes a single SQS record containing one webhook
// event.
func (app *Application) processWebhookRecord(ctx context.Context, record events.SQSMessage) error {
	var webhookEvent services.Event
	if err := json.Unmarshal([]byte(record.Body), &webhookEvent); err != nil {
		return fmt.Errorf("failed to unmarshal webhook event: %w", err)
	}

	logger.Info("Processing webhook event",
		zap.String("message_id", record.MessageId),
		zap.String("event_type", webhookEvent.Type),
		zap.String("event_id", webhookEvent.ID))

	result := app.router.Handle(ctx, webhookEvent)

	if result.Terminal {
		// Ack the message so SQS stops redelivering, and get a human looking
		// at it.
		if app.alerts != nil {
			if err := app.alerts.SendTerminalFailureAlert(ctx,
				result.EventID, webhookEvent.Type, result.Reason, result.PaymentID); err != nil {
				logger.Error("Terminal failure alert could not be sent", zap.Error(err))
			}
		}
		logger.Error("Webhook event failed terminally",
			zap.String("event_id", result.EventID),
			zap.String("reason", result.Reason))
		return nil
	}

	if !result.Success {
		return fmt.Errorf("retryable failure for event %s: %s", webhookEvent.ID, result.Error)
	}

	logger.Info("Successfully processed webhook event",
		zap.String("event_id", webhookEvent.ID),
		zap.String("event_type", webhookEvent.Type),
		zap.String("payment_id", result.PaymentID))
	return nil
}

// LocalHandleRequest handles local testing
func (app *Application) LocalHandleRequest(ctx context.Context) error {
	logger.Info("Webhook processor running in local mode")
	logger.Info("Webhook processor initialized successfully")
	return nil
}

func main() {
	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing webhook processor for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSecretArn := os.Getenv("RDS_SECRET_ARN")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" || dbSecretArn == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment (DB_HOST, DB_NAME, RDS_SECRET_ARN)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret
		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err), zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data", zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
		logger.Info("Constructed DSN from Secrets Manager credentials")
	} else {
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
		if dsn == "" {
			logger.Fatal("DATABASE_URL is required for local development and not found")
		}
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries := db.New(connPool)

	// --- Stripe Client ---
	stripeKey, err := secretsClient.GetSecretString(ctx, "STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY")
	if err != nil || stripeKey == "" {
		logger.Fatal("Failed to get Stripe secret key", zap.Error(err))
	}
	processor := stripeclient.NewClient(stripeKey, logger.Log)

	// --- Operator Alerts ---
	var alerts email.AlertSender
	if resendKey := os.Getenv("RESEND_API_KEY"); resendKey != "" {
		alerts = email.NewAlertClient(
			resendKey,
			os.Getenv("ALERT_EMAIL_FROM"),
			os.Getenv("ALERT_EMAIL_TO"),
			logger.Log,
		)
	} else {
		logger.Warn("RESEND_API_KEY not set, terminal failure alerts disabled")
	}

	auditRecorder := audit.NewRecorder(dbQueries, logger.Log)

	app := &Application{
		router:    services.NewWebhookRouter(dbQueries, processor, auditRecorder, logger.Log),
		alerts:    alerts,
		dbQueries: dbQueries,
		logger:    logger.Log,
	}

	if stage == helpers.StageLocal {
		err := app.LocalHandleRequest(ctx)
		if err != nil {
			logger.Fatal("Error in LocalHandleRequest", zap.Error(err))
		}
	} else {
		lambda.Start(app.HandleSQSEvent)
	}
}
