package generator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/scy/cred/secret"
	"gopkg.in/yaml.v3"
)

// Config defines generation settings loaded from YAML.
type Config struct {
	// Embedder selects the encoder: openai, ollama or static.
	Embedder string `yaml:"embedder"`
	// Model is the embedding model identifier.
	Model string `yaml:"model"`
	// BaseURL overrides the encoder endpoint (ollama).
	BaseURL string `yaml:"baseURL"`
	// APIKey is the encoder credential; it may hold ${...} placeholders
	// expanded from APIKeySecret.
	APIKey string `yaml:"apiKey"`
	// APIKeySecret is a scy secret resource resolving the API key.
	APIKeySecret string `yaml:"apiKeySecret,omitempty"`
	// Output is the destination table URL.
	Output string `yaml:"output"`
	// Cache is the optional prompt embedding cache URL.
	Cache string `yaml:"cache"`
	// Dimension sets the static embedder vector length.
	Dimension int `yaml:"dimension"`
}

// LoadConfig reads a YAML config and resolves its secret references.
func LoadConfig(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.APIKeySecret != "" {
		expanded, err := ExpandKeyWithSecret(ctx, cfg.APIKey, cfg.APIKeySecret)
		if err != nil {
			return nil, fmt.Errorf("resolve apiKeySecret in %s: %w", path, err)
		}
		cfg.APIKey = expanded
	}
	return &cfg, nil
}

// ExpandKeyWithSecret resolves a credential through a scy secret resource.
// With an empty key the whole secret payload is used; otherwise ${...}
// placeholders in the key are expanded.
func ExpandKeyWithSecret(ctx context.Context, key, secretRef string) (string, error) {
	secretRef = strings.TrimSpace(secretRef)
	if secretRef == "" {
		return key, nil
	}
	svc := secret.New()
	sec, err := svc.Lookup(ctx, secret.Resource(secretRef))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return sec.String(), nil
	}
	return sec.Expand(key), nil
}
