package config

import (
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL settings for the optional export history.
// History is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a history database was configured.
func (c DatabaseConfig) Enabled() bool { return c.Host != "" }

// MinIOConfig holds object storage settings for the optional export archive.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether an archive endpoint was configured.
func (c MinIOConfig) Enabled() bool { return c.Endpoint != "" }

// QRConfig controls how QR codes are rendered.
type QRConfig struct {
	MinDimension    int
	QuietZone       int
	DarkColor       string
	LightColor      string
	MaxPayloadBytes int
}

// PathsConfig controls filesystem locations resolved by the command surface.
type PathsConfig struct {
	DownloadsDirName string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Timezone string
	// AllowedOrigins are the browser origins that may call the command API.
	AllowedOrigins []string
	QR             QRConfig
	Paths          PathsConfig
	Database       DatabaseConfig
	MinIO          MinIOConfig
}

// Addr is the listen address for the command API.
func (c *AppConfig) Addr() string {
	return c.AppHost + ":" + c.Port
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		// Loopback only: the webview shell is the sole client.
		AppHost:  getEnv("APP_HOST", "127.0.0.1"),
		Port:     getEnv("PORT", "1420"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		AllowedOrigins: getEnvList("APP_ALLOWED_ORIGINS",
			"http://localhost:1420,http://127.0.0.1:1420,tauri://localhost,http://tauri.localhost"),
		QR: QRConfig{
			MinDimension: getEnvInt("QR_MIN_DIMENSION", 200),
			QuietZone:    getEnvInt("QR_QUIET_ZONE", 4),
			DarkColor:    getEnv("QR_DARK_COLOR", "#000000"),
			LightColor:   getEnv("QR_LIGHT_COLOR", "#ffffff"),
			// 0 leaves the limit to the symbol capacity of the payload's mode.
			MaxPayloadBytes: getEnvInt("QR_MAX_PAYLOAD_BYTES", 0),
		},
		Paths: PathsConfig{
			DownloadsDirName: getEnv("DOWNLOADS_DIR_NAME", "Downloads"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 4),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvList splits a comma separated value, dropping blank entries.
func getEnvList(key, def string) []string {
	var out []string
	for _, v := range strings.Split(getEnv(key, def), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
