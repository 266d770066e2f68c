package bootstrap

import (
	"fmt"

	"github.com/wolfman30/tas-beauty-lounge/internal/advisor"
	appconfig "github.com/wolfman30/tas-beauty-lounge/internal/config"
	"github.com/wolfman30/tas-beauty-lounge/internal/observability/metrics"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// Advisor groups the model-backed widgets.
type Advisor struct {
	Consultant *advisor.Consultant
	Insights   *advisor.InsightsFetcher
}

// BuildAdvisor wires the consultation widget and location insights onto gen.
// A nil generator yields an empty Advisor; the site then renders fallbacks.
func BuildAdvisor(gen advisor.Generator, cfg *appconfig.Config, cache advisor.InsightsCache, m *metrics.SiteMetrics, logger *logging.Logger) (*Advisor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if gen == nil {
		logger.Warn("no gemini api key configured; consultation and area insights disabled")
		return &Advisor{}, nil
	}

	consultant := advisor.NewConsultant(gen, cfg.GeminiConsultModel, cfg.GeminiTimeout, m, logger)
	insights := advisor.NewInsightsFetcher(gen, cache, advisor.InsightsConfig{
		Model:   cfg.GeminiLocationModel,
		Address: cfg.LoungeAddress,
		Timeout: cfg.GeminiTimeout,
		TTL:     cfg.LocationInsightsTTL,
	}, m, logger)
	logger.Info("advisor enabled",
		"consult_model", cfg.GeminiConsultModel,
		"location_model", cfg.GeminiLocationModel,
	)
	return &Advisor{Consultant: consultant, Insights: insights}, nil
}
