package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walltag.yaml")
	content := `embedder: ollama
model: all-minilm
baseURL: http://localhost:11434
output: /var/lib/walltag/embeddings.bin
cache: /var/lib/walltag/prompts.cache
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Embedder != "ollama" || cfg.Model != "all-minilm" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Output != "/var/lib/walltag/embeddings.bin" {
		t.Fatalf("output = %q", cfg.Output)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(context.Background(), filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config")
	}
}

func TestExpandKeyWithSecret_NoSecret(t *testing.T) {
	key, err := ExpandKeyWithSecret(context.Background(), "sk-plain", "")
	if err != nil {
		t.Fatalf("ExpandKeyWithSecret failed: %v", err)
	}
	if key != "sk-plain" {
		t.Fatalf("key = %q, want sk-plain", key)
	}
}
