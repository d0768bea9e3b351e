package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/attendly/attendly-api/internal/audit"
	"github.com/attendly/attendly-api/internal/client/email"
	stripeclient "github.com/attendly/attendly-api/internal/client/stripe"
	"github.com/attendly/attendly-api/internal/db"
	"github.com/attendly/attendly-api/internal/logger"
	"github.com/attendly/attendly-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

const maxWebhookBodyBytes = 1 << 16

var (
	dbQueries     *db.Queries
	webhookRouter *services.WebhookRouter
	webhookSecret string
	alertClient   email.AlertSender
)

// InitializeHandlers wires the database pool, the processor client and the
// reconciliation engine from environment configuration.
func InitializeHandlers() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(connPool)

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		logger.Fatal("STRIPE_SECRET_KEY environment variable is required")
	}

	webhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	if webhookSecret == "" {
		logger.Fatal("STRIPE_WEBHOOK_SECRET environment variable is required")
	}

	processor := stripeclient.NewClient(stripeKey, logger.Log)
	auditRecorder := audit.NewRecorder(dbQueries, logger.Log)
	webhookRouter = services.NewWebhookRouter(dbQueries, processor, auditRecorder, logger.Log)

	// Operator alerting is optional; without a key, terminal failures are
	// only visible in logs and the audit trail.
	if resendKey := os.Getenv("RESEND_API_KEY"); resendKey != "" {
		alertClient = email.NewAlertClient(
			resendKey,
			os.Getenv("ALERT_EMAIL_FROM"),
			os.Getenv("ALERT_EMAIL_TO"),
			logger.Log,
		)
	} else {
		logger.Warn("RESEND_API_KEY not set, terminal failure alerts disabled")
	}
}

// InitializeRoutes registers middleware and endpoints on the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/webhooks/stripe", handleStripeWebhook)
	}
}

// handleStripeWebhook verifies the delivery signature, runs the event through
// the reconciliation engine and maps the outcome to an HTTP status. Anything
// other than 2xx makes the processor redeliver, so only retryable failures
// return 500.
func handleStripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		logger.Error("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(body, c.GetHeader("Stripe-Signature"), webhookSecret)
	if err != nil {
		logger.Error("Webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	result := webhookRouter.Handle(c.Request.Context(), services.Event{
		ID:   event.ID,
		Type: string(event.Type),
		Data: services.EventData{Raw: event.Data.Raw},
	})

	switch {
	case result.Terminal:
		// Acknowledge so the processor stops redelivering, then get a human
		// looking at it.
		if alertClient != nil {
			if err := alertClient.SendTerminalFailureAlert(c.Request.Context(),
				result.EventID, string(event.Type), result.Reason, result.PaymentID); err != nil {
				logger.Error("Terminal failure alert could not be sent", zap.Error(err))
			}
		}
		c.JSON(http.StatusOK, result)
	case !result.Success:
		c.JSON(http.StatusInternalServerError, result)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Stripe-Signature"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
