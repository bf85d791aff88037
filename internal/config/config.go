package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		Members
		Ledger
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Members struct {
		BcryptCost int
	}
	Ledger struct {
		RetentionDays   int    // Days to keep loan events (default: 90)
		CleanupSchedule string // Cron format: "0 3 * * *" = daily at 03:00
		CleanupEnabled  bool
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8171)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Member registry defaults
	v.SetDefault("members_bcrypt_cost", 12)

	// Ledger defaults
	v.SetDefault("ledger_retention_days", 90)
	v.SetDefault("ledger_cleanup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("ledger_cleanup_enabled", true)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Members: Members{
			BcryptCost: v.GetInt("MEMBERS_BCRYPT_COST"),
		},
		Ledger: Ledger{
			RetentionDays:   v.GetInt("LEDGER_RETENTION_DAYS"),
			CleanupSchedule: v.GetString("LEDGER_CLEANUP_SCHEDULE"),
			CleanupEnabled:  v.GetBool("LEDGER_CLEANUP_ENABLED"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
	}
}
