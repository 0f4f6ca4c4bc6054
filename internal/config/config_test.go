package config

import (
	"os"
	"testing"
)

func TestConfigLoad_Defaults(t *testing.T) {
	_ = os.Setenv("TASK_AUTOMATOR_OPENAI_API_KEY", "test-key")
	defer func() { _ = os.Unsetenv("TASK_AUTOMATOR_OPENAI_API_KEY") }()
	_ = os.Unsetenv("TASK_AUTOMATOR_HTTP_PORT")
	_ = os.Unsetenv("TASK_AUTOMATOR_COMPLETION_PROVIDER")
	_ = os.Unsetenv("TASK_AUTOMATOR_COMPLETION_MODEL")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8000 || cfg.CompletionProvider != "openai" || cfg.CompletionModel != "gpt-4o-mini" {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
		t.Fatalf("unexpected default base URL: %s", cfg.OpenAIBaseURL)
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	_ = os.Setenv("TASK_AUTOMATOR_OPENAI_API_KEY", "test-key")
	_ = os.Setenv("TASK_AUTOMATOR_COMPLETION_MODEL", "test-model")
	defer func() {
		_ = os.Unsetenv("TASK_AUTOMATOR_OPENAI_API_KEY")
		_ = os.Unsetenv("TASK_AUTOMATOR_COMPLETION_MODEL")
	}()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.CompletionModel != "test-model" {
		t.Fatalf("completion model env override failed, got %s", cfg.CompletionModel)
	}
}

func TestResolveDefaults_UnknownProvider(t *testing.T) {
	cfg := NewForTesting()
	cfg.CompletionProvider = "bedrock"
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestResolveDefaults_OpenAIRequiresKey(t *testing.T) {
	cfg := NewForTesting()
	cfg.CompletionProvider = "openai"
	cfg.OpenAIAPIKey = ""
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}

func TestNewForTesting_Valid(t *testing.T) {
	cfg := NewForTesting()
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("testing config should validate: %v", err)
	}
	if !cfg.IsTesting() {
		t.Fatalf("expected testing environment")
	}
}
