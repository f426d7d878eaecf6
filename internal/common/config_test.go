package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"DB_URL", "SQLITE_PATH", "GRPC_ADDR", "OCR_DPI", "OPENAI_MODEL", "OPENAI_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := LoadConfig()

	if cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("GRPCAddr = %q, want :8080", cfg.Server.GRPCAddr)
	}
	if cfg.OCR.DPI != 300 {
		t.Errorf("DPI = %d, want 300", cfg.OCR.DPI)
	}
	if cfg.OCR.TesseractLang != "eng+afr" {
		t.Errorf("TesseractLang = %q, want eng+afr", cfg.OCR.TesseractLang)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.LLM.Model)
	}
	if cfg.LLM.MaxTokens != 250 {
		t.Errorf("MaxTokens = %d, want 250", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.LLM.Timeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("OCR_DPI", "150")
	t.Setenv("OCR_MAX_PAGES", "5")
	t.Setenv("OPENAI_TIMEOUT", "90s")
	cfg := LoadConfig()

	if cfg.OCR.DPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.OCR.DPI)
	}
	if cfg.OCR.MaxPages != 5 {
		t.Errorf("MaxPages = %d, want 5", cfg.OCR.MaxPages)
	}
	if cfg.LLM.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.LLM.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{GRPCAddr: ":8080"}}
	if err := cfg.Validate(); err == nil {
		t.Error("no database configured, want error")
	}

	cfg.Database.DSN = "postgres://localhost/gazettes"
	if err := cfg.Validate(); err != nil {
		t.Errorf("postgres only: %v", err)
	}

	cfg.Database.SQLitePath = "./gazettes.db"
	if err := cfg.Validate(); err == nil {
		t.Error("both backends configured, want error")
	}

	cfg.Database.DSN = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("sqlite only: %v", err)
	}

	cfg.Server.GRPCAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing grpc addr, want error")
	}
}
