package main

import (
	"context"
	"log"
	"os"

	awsclient "github.com/attendly/attendly-api/internal/client/aws"
	"github.com/attendly/attendly-api/internal/helpers"
	"github.com/attendly/attendly-api/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

// Application holds all dependencies for the webhook receiver Lambda handler
type Application struct {
	sqsClient     *sqs.Client
	sqsQueueURL   string
	webhookSecret string
}

// HandleAPIGatewayRequest receives processor webhook deliveries, verifies the
// signature and enqueues the raw event for the processor Lambda. The receiver
// does no business logic; a fast 200 here keeps delivery latency low and
// retries cheap.
func (app *Application) HandleAPIGatewayRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Info("Webhook receiver handling API Gateway request",
		zap.String("path", request.Path),
		zap.String("method", request.HTTPMethod))

	signatureHeader := request.Headers["stripe-signature"]
	if signatureHeader == "" {
		signatureHeader = request.Headers["Stripe-Signature"]
	}
	if signatureHeader == "" {
		logger.Error("Missing signature header")
		return jsonResponse(400, `{"error": "missing signature header"}`), nil
	}

	event, err := webhook.ConstructEvent([]byte(request.Body), signatureHeader, app.webhookSecret)
	if err != nil {
		logger.Error("Webhook signature verification failed", zap.Error(err))
		return jsonResponse(400, `{"error": "signature verification failed"}`), nil
	}

	if err := app.queueWebhookEvent(ctx, string(event.Type), event.ID, request.Body); err != nil {
		logger.Error("Failed to queue webhook event",
			zap.String("event_id", event.ID),
			zap.Error(err))
		// Non-2xx makes the processor redeliver later.
		return jsonResponse(500, `{"error": "failed to queue event"}`), nil
	}

	logger.Info("Webhook event queued",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	return jsonResponse(200, `{"status": "received"}`), nil
}

// queueWebhookEvent sends the verified raw event to SQS for processing.
func (app *Application) queueWebhookEvent(ctx context.Context, eventType, eventID, body string) error {
	stringType := "String"
	_, err := app.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &app.sqsQueueURL,
		MessageBody: &body,
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: &eventType,
				DataType:    &stringType,
			},
			"EventID": {
				StringValue: &eventID,
				DataType:    &stringType,
			},
		},
	})
	return err
}

func jsonResponse(statusCode int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// LocalHandleRequest handles local testing
func (app *Application) LocalHandleRequest(ctx context.Context) error {
	logger.Info("Webhook receiver running in local mode")
	logger.Info("Webhook receiver initialized successfully")
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
	logger.Info("Lambda Cold Start: Initializing webhook receiver for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	webhookSecret, err := secretsClient.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")
	if err != nil || webhookSecret == "" {
		logger.Fatal("Failed to get Stripe webhook secret", zap.Error(err))
	}

	// --- Initialize SQS Client (for deployed stages) ---
	var sqsClient *sqs.Client
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")

	if stage != helpers.StageLocal {
		if sqsQueueURL == "" {
			logger.Fatal("SQS_QUEUE_URL environment variable is required for deployed stages")
		}

		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Fatal("Failed to load AWS config", zap.Error(err))
		}
		sqsClient = sqs.NewFromConfig(cfg)
	}

	app := &Application{
		sqsClient:     sqsClient,
		sqsQueueURL:   sqsQueueURL,
		webhookSecret: webhookSecret,
	}

	if stage == helpers.StageLocal {
		err := app.LocalHandleRequest(ctx)
		if err != nil {
			logger.Fatal("Error in LocalHandleRequest", zap.Error(err))
		}
	} else {
		lambda.Start(app.HandleAPIGatewayRequest)
	}
}
