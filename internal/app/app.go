package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"leavebot/internal/approval"
	"leavebot/internal/calendar"
	"leavebot/internal/config"
	"leavebot/internal/events"
	"leavebot/internal/ledger"
	"leavebot/internal/messaging/kafka/producer"
	"leavebot/internal/middleware"
	"leavebot/internal/shared/apperror"
	"leavebot/internal/shared/connection"
	"leavebot/internal/shared/response"
	"leavebot/internal/slack"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// BuildApp wires the collaborators and registers routes.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	ctx := context.Background()

	router.Use(middleware.RequestID())

	sheetsSvc, calendarSvc, err := googleServices(ctx, cfg.GoogleCredentialsFile)
	if err != nil {
		return err
	}
	zap.L().Info("google service clients ready")

	ledgerRepo := ledger.NewSheetsRepository(
		sheetsSvc,
		ledger.SheetRef{SpreadsheetID: cfg.LedgerSpreadsheetID, Sheet: cfg.LedgerSheet},
		ledger.SheetRef{SpreadsheetID: cfg.ResultSpreadsheetID, Sheet: cfg.ResultSheet},
	)
	calendarRepo := calendar.NewGoogleRepository(calendarSvc, cfg.CalendarID)

	chat := slack.NewClient(&http.Client{Timeout: 10 * time.Second}, cfg.SlackBotToken)

	guard := approval.NewAllowAllGuard()
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		guard = approval.NewRedisDecisionGuard(rdb)
	}

	publisher := approval.NewNoopEventPublisher()
	if cfg.KafkaBroker != "" {
		publisher = approval.NewKafkaEventPublisher(
			producer.NewPublisher(cfg.KafkaBroker, events.LeaveDecidedTopic),
		)
		zap.L().Info("kafka publisher ready", zap.String("broker", cfg.KafkaBroker))
	}

	svc := approval.NewService(chat, ledgerRepo, calendarRepo, guard, publisher, approval.ServiceConfig{
		ApproverChannel: cfg.ApproverChannel,
		TimeZone:        cfg.TimeZone,
	})
	handler := approval.NewHandler(svc)
	approval.RegisterRoutes(&router.RouterGroup, handler, cfg.SlackSigningSecret)

	registerFallbackRoutes(router)

	return nil
}

// registerFallbackRoutes adds the routes that exist on every deployment
// regardless of configured collaborators.
func registerFallbackRoutes(router *gin.Engine) {
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	router.NoRoute(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	})
}

func googleServices(ctx context.Context, credentialsFile string) (*sheets.Service, *gcal.Service, error) {
	saKey, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, nil, err
	}

	conf, err := google.JWTConfigFromJSON(saKey,
		sheets.SpreadsheetsScope,
		gcal.CalendarScope,
	)
	if err != nil {
		return nil, nil, err
	}
	client := conf.Client(ctx)

	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, err
	}
	calendarSvc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, err
	}

	return sheetsSvc, calendarSvc, nil
}
