package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"bump-planner/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host     string
	Port     int
	LogLevel string
}

type AuthConfig struct {
	JWTSecret        string
	TokenExpiryHours int
}

// PregnancyConfig anchors week arithmetic. StartDate is the first day of the
// last menstrual period; gestational week N starts StartDate + (N-1)*7 days.
type PregnancyConfig struct {
	StartDate time.Time
}

type SyncConfig struct {
	// TasksURL is the task collaborator endpoint. Empty disables task import.
	TasksURL     string
	RunOnStartup bool
}

type JobsConfig struct {
	Enabled       bool
	RedisAddr     string
	RedisPassword string
	ReminderCron  string
	SyncInterval  string
}

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Pregnancy PregnancyConfig
	Sync      SyncConfig
	Jobs      JobsConfig
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (if present) and environment variables, then stores the
// package-level config instance.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", constants.ServerDefaultHost)
	v.SetDefault("server.port", constants.ServerDefaultPort)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_expiry_hours", constants.TokenDefaultExpiryHours)
	v.SetDefault("sync.run_on_startup", true)
	v.SetDefault("jobs.enabled", false)
	v.SetDefault("jobs.redis_addr", "localhost:6379")
	v.SetDefault("jobs.reminder_cron", constants.JobsDefaultReminderCron)
	v.SetDefault("jobs.sync_interval", constants.JobsDefaultSyncInterval)

	cfg := &Config{
		Server: ServerConfig{
			Host:     v.GetString("server.host"),
			Port:     v.GetInt("server.port"),
			LogLevel: v.GetString("server.log_level"),
		},
		Auth: AuthConfig{
			JWTSecret:        v.GetString("auth.jwt_secret"),
			TokenExpiryHours: v.GetInt("auth.token_expiry_hours"),
		},
		Sync: SyncConfig{
			TasksURL:     v.GetString("sync.tasks_url"),
			RunOnStartup: v.GetBool("sync.run_on_startup"),
		},
		Jobs: JobsConfig{
			Enabled:       v.GetBool("jobs.enabled"),
			RedisAddr:     v.GetString("jobs.redis_addr"),
			RedisPassword: v.GetString("jobs.redis_password"),
			ReminderCron:  v.GetString("jobs.reminder_cron"),
			SyncInterval:  v.GetString("jobs.sync_interval"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	if raw := v.GetString("pregnancy.start_date"); raw != "" {
		start, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid PREGNANCY_START_DATE %q: %w", raw, err)
		}
		cfg.Pregnancy.StartDate = start
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded config. Panics if Load has not run.
func Get() *Config {
	cfg, ok := GetSafe()
	if !ok {
		panic("config: Get called before Load")
	}
	return cfg
}

// GetSafe returns the loaded config and whether it is initialized.
func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}
