package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/location-loader/internal/domain"
)

const (
	DefaultConfigFile       = ".env"
	DefaultContributorID    = "31b0bc36-6fc3-4040-9590-fb5d579e77df"
	DefaultDescription      = "description"
	DefaultLocationType     = "location_type"
	DefaultStatus           = "approved"
	defaultBodyLimitMB      = 16
	defaultReportTTLSeconds = 86400
	defaultFetchTimeoutSecs = 30
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	Import   ImportConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	BodyLimitMB int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

// ImportConfig - значения по умолчанию для создаваемых записей и параметры загрузки
type ImportConfig struct {
	Description   string
	LocationType  string
	Status        string
	ContributorID uuid.UUID
	ReportTTL     time.Duration
	FetchTimeout  time.Duration
}

// Load читает конфигурацию из файла (если он есть) и переменных окружения.
// Пустой path означает DefaultConfigFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			BodyLimitMB: v.GetInt("API_BODY_LIMIT_MB"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Import: ImportConfig{
			Description:  v.GetString("IMPORT_DEFAULT_DESCRIPTION"),
			LocationType: v.GetString("IMPORT_DEFAULT_LOCATION_TYPE"),
			Status:       v.GetString("IMPORT_DEFAULT_STATUS"),
			ReportTTL:    time.Duration(v.GetInt("IMPORT_REPORT_TTL")) * time.Second,
			FetchTimeout: time.Duration(v.GetInt("IMPORT_FETCH_TIMEOUT")) * time.Second,
		},
	}

	contributor := v.GetString("IMPORT_CONTRIBUTOR_ID")
	if contributor == "" {
		contributor = DefaultContributorID
	}
	id, err := uuid.Parse(contributor)
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_CONTRIBUTOR_ID %q: %w", contributor, err)
	}
	cfg.Import.ContributorID = id

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.BodyLimitMB == 0 {
		cfg.Server.BodyLimitMB = defaultBodyLimitMB
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Import.Description == "" {
		cfg.Import.Description = DefaultDescription
	}
	if cfg.Import.LocationType == "" {
		cfg.Import.LocationType = DefaultLocationType
	}
	if cfg.Import.Status == "" {
		cfg.Import.Status = DefaultStatus
	}
	if cfg.Import.ReportTTL == 0 {
		cfg.Import.ReportTTL = defaultReportTTLSeconds * time.Second
	}
	if cfg.Import.FetchTimeout == 0 {
		cfg.Import.FetchTimeout = defaultFetchTimeoutSecs * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Defaults возвращает постоянные поля записи локации
func (c ImportConfig) Defaults() domain.RecordDefaults {
	return domain.RecordDefaults{
		Description:   c.Description,
		LocationType:  c.LocationType,
		Status:        c.Status,
		ContributorID: c.ContributorID,
		AverageRating: 0.0,
		ReviewCount:   0,
	}
}
