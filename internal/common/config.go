package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Ingest   IngestConfig
	Bulletin BulletinConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	SQLitePath       string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds text-extraction configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
	TessdataDir   string
	CacheDir      string
}

// LLMConfig holds summarization configuration
type LLMConfig struct {
	Model        string
	APIKey       string
	BaseURL      string
	Temperature  float32
	MaxTokens    int
	Timeout      time.Duration
	CachePath    string
	CacheMaxSize int
}

// IngestConfig holds gazette intake configuration
type IngestConfig struct {
	GazetteDir     string
	AnnotationsDir string
}

// BulletinConfig holds bulletin output configuration
type BulletinConfig struct {
	OutputDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			SQLitePath:       getEnv("SQLITE_PATH", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng+afr"),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			CacheDir:      getEnv("OCR_CACHE_DIR", "./tmp/ocr"),
		},
		LLM: LLMConfig{
			Model:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:       getEnv("OPENAI_API_KEY", ""),
			BaseURL:      getEnv("OPENAI_BASE_URL", ""),
			Temperature:  getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			MaxTokens:    getEnvAsInt("OPENAI_MAX_TOKENS", 250),
			Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second),
			CachePath:    getEnv("SUMMARY_CACHE_PATH", "./tmp/summary_cache.json"),
			CacheMaxSize: getEnvAsInt("SUMMARY_CACHE_MAX_SIZE", 1000),
		},
		Ingest: IngestConfig{
			GazetteDir:     getEnv("GAZETTE_DIR", "./gazettes"),
			AnnotationsDir: getEnv("ANNOTATIONS_DIR", "./gazettes"),
		},
		Bulletin: BulletinConfig{
			OutputDir: getEnv("BULLETIN_OUTPUT_DIR", "./bulletins"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks that the configuration is usable. Exactly one of DB_URL and
// SQLITE_PATH must be set.
func (c *Config) Validate() error {
	if c.Database.DSN == "" && c.Database.SQLitePath == "" {
		return NewAppError("CONFIG_ERROR", "one of DB_URL or SQLITE_PATH is required", ErrInvalidInput)
	}
	if c.Database.DSN != "" && c.Database.SQLitePath != "" {
		return NewAppError("CONFIG_ERROR", "DB_URL and SQLITE_PATH are mutually exclusive", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
