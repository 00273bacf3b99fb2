package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxFileBytes != 10<<20 {
		t.Errorf("Default maxFileBytes = %d, want %d", cfg.MaxFileBytes, 10<<20)
	}
	if cfg.Workers != 0 {
		t.Errorf("Default workers = %d, want 0 (auto)", cfg.Workers)
	}
	if cfg.NoDotenv {
		t.Error("Default noDotenv should be false")
	}
	if len(cfg.DisabledCategories) != 0 {
		t.Errorf("Default disabledCategories = %v, want empty", cfg.DisabledCategories)
	}
}

func TestMergeEnv(t *testing.T) {
	// Save and restore env
	orig := map[string]string{}
	envKeys := []string{"BIIPCFG_MAX_FILE_BYTES", "BIIPCFG_WORKERS", "BIIPCFG_DISABLED", "BIIPCFG_NO_DOTENV"}
	for _, k := range envKeys {
		orig[k] = os.Getenv(k)
	}
	defer func() {
		for k, v := range orig {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	os.Setenv("BIIPCFG_MAX_FILE_BYTES", "4096")
	os.Setenv("BIIPCFG_WORKERS", "2")
	os.Setenv("BIIPCFG_DISABLED", "phone, uuid")
	os.Setenv("BIIPCFG_NO_DOTENV", "true")

	cfg := Default()
	mergeEnv(&cfg)

	if cfg.MaxFileBytes != 4096 {
		t.Errorf("MaxFileBytes = %d, want 4096", cfg.MaxFileBytes)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
	if len(cfg.DisabledCategories) != 2 || cfg.DisabledCategories[0] != "phone" || cfg.DisabledCategories[1] != "uuid" {
		t.Errorf("DisabledCategories = %v, want [phone uuid]", cfg.DisabledCategories)
	}
	if !cfg.NoDotenv {
		t.Error("NoDotenv = false, want true")
	}
}

func TestMergeFile(t *testing.T) {
	dst := Default()
	src := Config{
		MaxFileBytes:       2048,
		Tokens:             map[string]string{"email": "<redacted-email>"},
		DisabledCategories: []string{"phone"},
	}
	mergeFile(&dst, src)

	if dst.MaxFileBytes != 2048 {
		t.Errorf("MaxFileBytes = %d, want 2048", dst.MaxFileBytes)
	}
	if dst.Tokens["email"] != "<redacted-email>" {
		t.Errorf("Tokens = %v", dst.Tokens)
	}
	if len(dst.DisabledCategories) != 1 {
		t.Errorf("DisabledCategories = %v", dst.DisabledCategories)
	}

	// Zero-value src leaves defaults alone.
	dst2 := Default()
	mergeFile(&dst2, Config{})
	if dst2.MaxFileBytes != Default().MaxFileBytes {
		t.Errorf("zero merge changed maxFileBytes: %d", dst2.MaxFileBytes)
	}
}

func TestMergeOverrides(t *testing.T) {
	cfg := Default()
	mergeOverrides(&cfg, map[string]string{
		"maxFileBytes": "1234",
		"workers":      "8",
		"disabled":     "ipv4,ipv6",
		"noDotenv":     "true",
	})

	if cfg.MaxFileBytes != 1234 {
		t.Errorf("MaxFileBytes = %d, want 1234", cfg.MaxFileBytes)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if len(cfg.DisabledCategories) != 2 {
		t.Errorf("DisabledCategories = %v", cfg.DisabledCategories)
	}
	if !cfg.NoDotenv {
		t.Error("NoDotenv = false, want true")
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "maxFileBytes", "99"); err != nil {
		t.Fatalf("SetField maxFileBytes: %v", err)
	}
	if cfg.MaxFileBytes != 99 {
		t.Errorf("MaxFileBytes = %d, want 99", cfg.MaxFileBytes)
	}

	if err := SetField(&cfg, "workers", "not-a-number"); err == nil {
		t.Error("expected error for non-integer workers")
	}
	if err := SetField(&cfg, "bogusKey", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}
