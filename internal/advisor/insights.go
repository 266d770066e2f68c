package advisor

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"

	"github.com/wolfman30/tas-beauty-lounge/internal/observability/metrics"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

// Link points at an external page about the location.
type Link struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// LocationInsights is a short description of the area around the lounge.
type LocationInsights struct {
	Text      string    `json:"text"`
	Links     []Link    `json:"links"`
	FetchedAt time.Time `json:"fetched_at"`
}

// InsightsFetcher asks the model about the lounge's neighbourhood and caches the answer.
type InsightsFetcher struct {
	gen     Generator
	model   string
	address string
	timeout time.Duration
	cache   InsightsCache
	ttl     time.Duration
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
	group   singleflight.Group
	now     func() time.Time
}

// InsightsConfig configures an InsightsFetcher.
type InsightsConfig struct {
	Model   string
	Address string
	Timeout time.Duration
	TTL     time.Duration
}

// NewInsightsFetcher creates a fetcher. A nil cache disables caching.
func NewInsightsFetcher(gen Generator, cache InsightsCache, cfg InsightsConfig, m *metrics.SiteMetrics, logger *logging.Logger) *InsightsFetcher {
	if gen == nil {
		panic("advisor: generator required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.Address) == "" {
		cfg.Address = "563 Seventh Road, Midrand"
	}
	return &InsightsFetcher{
		gen:     gen,
		model:   cfg.Model,
		address: cfg.Address,
		timeout: cfg.Timeout,
		cache:   cache,
		ttl:     cfg.TTL,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// LocationPrompt formats the area description request.
func LocationPrompt(address string) string {
	return fmt.Sprintf(`Tell me about the area around %s where TA's Beauty Lounge is located. 
  Mention some nearby landmarks or why it's a great spot for a luxury lounge. 
  Format the response as a short, elegant paragraph.`, address)
}

// MapsLink is the search link shown when the model cites no places.
func MapsLink(address string) Link {
	return Link{
		Title: defaultLinkTitle,
		URI:   "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address),
	}
}

const defaultLinkTitle = "View on Maps"

// groundedLinks maps cited places to links. Sources without a URI are skipped.
func groundedLinks(sources []GroundingSource) []Link {
	links := make([]Link, 0, len(sources))
	for _, src := range sources {
		uri := strings.TrimSpace(src.URI)
		if uri == "" {
			continue
		}
		title := strings.TrimSpace(src.Title)
		if title == "" {
			title = defaultLinkTitle
		}
		links = append(links, Link{Title: title, URI: uri})
	}
	return links
}

// Fetch returns cached insights or issues one model request. Concurrent cold
// callers share a single request, which runs detached from any one caller's
// cancellation; each caller still returns when its own context is done.
func (f *InsightsFetcher) Fetch(ctx context.Context) (*LocationInsights, error) {
	if f.cache != nil {
		cached, err := f.cache.Get(ctx, f.address)
		if err != nil {
			f.logger.Warn("location insights cache read failed", "error", err)
		} else if cached != nil {
			f.metrics.ObserveInsights(metrics.InsightsCached)
			return cached, nil
		}
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := f.group.DoChan(f.address, func() (any, error) {
		return f.fetch(flightCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*LocationInsights), nil
	}
}

// Warm fetches insights in the background so the first page view finds them
// cached. Failures are logged.
func (f *InsightsFetcher) Warm(ctx context.Context) {
	go func() {
		if _, err := f.Fetch(ctx); err != nil {
			f.logger.Warn("location insights warm-up failed", "error", err)
			return
		}
		f.logger.Info("location insights warmed", "address", f.address)
	}()
}

func (f *InsightsFetcher) fetch(ctx context.Context) (*LocationInsights, error) {
	ctx, span := advisorTracer.Start(ctx, "advisor.location_insights")
	defer span.End()
	span.SetAttributes(attribute.String("lounge.address", f.address))
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.gen.Generate(ctx, GenerateRequest{
		Model:          f.model,
		Prompt:         LocationPrompt(f.address),
		GroundWithMaps: true,
	})
	if err != nil {
		span.RecordError(err)
		f.metrics.ObserveInsights(metrics.InsightsError)
		f.logger.Error("gemini location insights failed", "error", err)
		return nil, err
	}
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		f.metrics.ObserveInsights(metrics.InsightsError)
		return nil, ErrEmptyInsights
	}

	links := groundedLinks(resp.Sources)
	if len(links) == 0 {
		links = []Link{MapsLink(f.address)}
	}
	span.SetAttributes(attribute.Int("lounge.insights.links", len(links)))

	insights := &LocationInsights{
		Text:      text,
		Links:     links,
		FetchedAt: f.now().UTC(),
	}
	f.metrics.ObserveInsights(metrics.InsightsFresh)
	if f.cache != nil {
		if err := f.cache.Set(ctx, f.address, insights, f.ttl); err != nil {
			f.logger.Warn("location insights cache write failed", "error", err)
		}
	}
	return insights, nil
}
