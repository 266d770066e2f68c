package mainconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	appconfig "github.com/wolfman30/tas-beauty-lounge/internal/config"
)

// LoadGenerator centralizes Gemini client setup so both binaries share the
// same key and default model. It returns nil without error when no API key is
// configured.
func LoadGenerator(ctx context.Context, cfg *appconfig.Config) (*advisor.GeminiGenerator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mainconfig: config is required")
	}
	key := strings.TrimSpace(cfg.GeminiAPIKey)
	if key == "" {
		return nil, nil
	}
	gen, err := advisor.NewGeminiGenerator(ctx, key, cfg.GeminiConsultModel)
	if err != nil {
		return nil, fmt.Errorf("mainconfig: gemini client: %w", err)
	}
	return gen, nil
}
