package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// SyncConfig controls the feed reconciliation engine.
type SyncConfig struct {
	// SheetID identifies the published submission spreadsheet.
	SheetID string `mapstructure:"sheet_id"`
	// IntervalMinutes is the scheduled run cadence.
	IntervalMinutes int `mapstructure:"interval_minutes"`
	// RetryDrainLimit bounds how many pending image uploads one run reattempts.
	RetryDrainLimit int `mapstructure:"retry_drain_limit"`
	// FetchTimeoutSeconds bounds the feed fetch and each image download.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`
}

type FeedConfig struct {
	// BaseURL is the spreadsheet export endpoint. The sheet ID is appended
	// per request.
	BaseURL string `mapstructure:"base_url"`
}

type AssetStoreConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
	// MaxImageBytes caps a single image download. Oversized images fail the
	// upload and land in the retry queue.
	MaxImageBytes int64 `mapstructure:"max_image_bytes"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	Enabled      bool   `mapstructure:"enabled"`
}
