package config

import (
	"fmt"
	"os"
)

// Config is the deployment surface: every external identifier is an
// opaque string supplied through the environment.
type Config struct {
	Port string

	SlackBotToken      string
	SlackSigningSecret string
	ApproverChannel    string

	GoogleCredentialsFile string
	LedgerSpreadsheetID   string
	LedgerSheet           string
	ResultSpreadsheetID   string
	ResultSheet           string
	CalendarID            string
	TimeZone              string

	// Optional collaborators; empty disables the feature.
	RedisAddr   string
	KafkaBroker string
}

func Load() (Config, error) {
	cfg := Config{
		Port:                  getEnv("PORT", "3000"),
		SlackBotToken:         os.Getenv("SLACK_BOT_TOKEN"),
		SlackSigningSecret:    os.Getenv("SLACK_SIGNING_SECRET"),
		ApproverChannel:       os.Getenv("APPROVER_CHANNEL"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS", "credentials/credentials.json"),
		LedgerSpreadsheetID:   os.Getenv("LEAVE_SPREADSHEET"),
		LedgerSheet:           os.Getenv("LEAVE_SHEET"),
		ResultSpreadsheetID:   os.Getenv("LEAVE_RESULT_SPREADSHEET"),
		ResultSheet:           os.Getenv("LEAVE_RESULT_SHEET"),
		CalendarID:            os.Getenv("LEAVE_CALENDAR_ID"),
		TimeZone:              getEnv("TIMEZONE", "Asia/Seoul"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		KafkaBroker:           os.Getenv("KAFKA_BROKER"),
	}

	required := map[string]string{
		"SLACK_BOT_TOKEN":          cfg.SlackBotToken,
		"SLACK_SIGNING_SECRET":     cfg.SlackSigningSecret,
		"APPROVER_CHANNEL":         cfg.ApproverChannel,
		"LEAVE_SPREADSHEET":        cfg.LedgerSpreadsheetID,
		"LEAVE_SHEET":              cfg.LedgerSheet,
		"LEAVE_RESULT_SPREADSHEET": cfg.ResultSpreadsheetID,
		"LEAVE_RESULT_SHEET":       cfg.ResultSheet,
		"LEAVE_CALENDAR_ID":        cfg.CalendarID,
	}
	for name, value := range required {
		if value == "" {
			return Config{}, fmt.Errorf("missing required environment variable %s", name)
		}
	}

	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
