package config

import (
	"github.com/buildloghq/buildlog-backend/pkg/config"
	"github.com/buildloghq/buildlog-backend/pkg/logger"
	"go.uber.org/zap"
)

// Config holds the full service configuration.
type Config struct {
	Service struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		BaseURL string `yaml:"base_url"`
	} `yaml:"service"`

	Server struct {
		HTTP struct {
			Port    string `yaml:"port"`
			Timeout int    `yaml:"timeout"`
			Debug   bool   `yaml:"debug"`
		} `yaml:"http"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Name            string `yaml:"name"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		SSLMode         string `yaml:"ssl_mode"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	} `yaml:"database"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Auth struct {
		OwnerEmail        string `yaml:"owner_email"`
		OwnerName         string `yaml:"owner_name"`
		OwnerUsername     string `yaml:"owner_username"`
		OwnerPasswordHash string `yaml:"owner_password_hash"`
		JWTSecret         string `yaml:"jwt_secret"`
		TokenExpiryHours  int    `yaml:"token_expiry_hours"`
	} `yaml:"auth"`

	GitHub struct {
		Token           string `yaml:"token"`
		CacheTTLMinutes int    `yaml:"cache_ttl_minutes"`
	} `yaml:"github"`

	RateLimit struct {
		FeedbackPerMinute int64 `yaml:"feedback_per_minute"`
		TasksPerMinute    int64 `yaml:"tasks_per_minute"`
	} `yaml:"rate_limit"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`

	Logger *zap.Logger
}

// Load reads the server configuration and builds the logger.
func Load() (*Config, error) {
	cfg, err := config.Load("server")
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")
	appConfig.Service.BaseURL = cfg.GetString("service.base_url")

	appConfig.Server.HTTP.Port = cfg.GetString("server.port")
	appConfig.Server.HTTP.Timeout = cfg.GetInt("server.timeout")
	appConfig.Server.HTTP.Debug = cfg.GetBool("server.debug")

	appConfig.Database.Host = cfg.GetString("database.host")
	appConfig.Database.Port = cfg.GetInt("database.port")
	appConfig.Database.Name = cfg.GetString("database.name")
	appConfig.Database.User = cfg.GetString("database.user")
	appConfig.Database.Password = cfg.GetString("database.password")
	appConfig.Database.SSLMode = cfg.GetString("database.ssl_mode")
	appConfig.Database.MaxOpenConns = cfg.GetInt("database.max_open_conns")
	appConfig.Database.MaxIdleConns = cfg.GetInt("database.max_idle_conns")
	appConfig.Database.ConnMaxLifetime = cfg.GetInt("database.conn_max_lifetime")

	appConfig.Redis.Enabled = cfg.GetBool("redis.enabled")
	appConfig.Redis.Host = cfg.GetString("redis.host")
	appConfig.Redis.Port = cfg.GetInt("redis.port")
	appConfig.Redis.Password = cfg.GetString("redis.password")
	appConfig.Redis.DB = cfg.GetInt("redis.db")

	appConfig.Auth.OwnerEmail = cfg.GetString("auth.owner_email")
	appConfig.Auth.OwnerName = cfg.GetString("auth.owner_name")
	appConfig.Auth.OwnerUsername = cfg.GetString("auth.owner_username")
	appConfig.Auth.OwnerPasswordHash = cfg.GetString("auth.owner_password_hash")
	appConfig.Auth.JWTSecret = cfg.GetString("auth.jwt_secret")
	appConfig.Auth.TokenExpiryHours = cfg.GetInt("auth.token_expiry_hours")

	appConfig.GitHub.Token = cfg.GetString("github.token")
	appConfig.GitHub.CacheTTLMinutes = cfg.GetInt("github.cache_ttl_minutes")

	appConfig.RateLimit.FeedbackPerMinute = int64(cfg.GetInt("rate_limit.feedback_per_minute"))
	appConfig.RateLimit.TasksPerMinute = int64(cfg.GetInt("rate_limit.tasks_per_minute"))

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")

	loggerConfig := logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		Development: appConfig.Server.HTTP.Debug,
	}

	appConfig.Logger, err = logger.NewZapLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}
