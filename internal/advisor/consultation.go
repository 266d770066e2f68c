package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wolfman30/tas-beauty-lounge/internal/observability/metrics"
	"github.com/wolfman30/tas-beauty-lounge/pkg/logging"
)

var advisorTracer = otel.Tracer("lounge.internal.advisor")

// SkinType is a skin profile offered on the consultation form.
type SkinType string

const (
	SkinDry         SkinType = "dry"
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinNormal      SkinType = "normal"
	SkinSensitive   SkinType = "sensitive"
)

// SkinOption is a select option on the form.
type SkinOption struct {
	Value SkinType
	Label string
}

// SkinOptions lists the form choices in display order.
var SkinOptions = []SkinOption{
	{SkinDry, "Dry & Dehydrated"},
	{SkinOily, "Oily & Acne-prone"},
	{SkinCombination, "Combination"},
	{SkinNormal, "Normal / Balanced"},
	{SkinSensitive, "Sensitive & Reactive"},
}

// ParseSkinType validates a form value; empty means normal.
func ParseSkinType(v string) (SkinType, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return SkinNormal, nil
	}
	for _, opt := range SkinOptions {
		if string(opt.Value) == v {
			return opt.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSkinType, v)
}

// Recommendation is one suggested routine or treatment.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
}

// Consultation is the model's structured answer.
type Consultation struct {
	Recommendations []Recommendation `json:"recommendations"`
}

var consultationSchema = &Schema{
	Type: SchemaObject,
	Properties: map[string]*Schema{
		"recommendations": {
			Type: SchemaArray,
			Items: &Schema{
				Type: SchemaObject,
				Properties: map[string]*Schema{
					"title":       {Type: SchemaString},
					"description": {Type: SchemaString},
					"benefit":     {Type: SchemaString},
				},
				Required: []string{"title", "description", "benefit"},
			},
		},
	},
	Required: []string{"recommendations"},
}

// Consultant turns a concern and skin profile into treatment recommendations.
type Consultant struct {
	gen     Generator
	model   string
	timeout time.Duration
	metrics *metrics.SiteMetrics
	logger  *logging.Logger
}

// NewConsultant creates a consultant backed by gen.
func NewConsultant(gen Generator, model string, timeout time.Duration, m *metrics.SiteMetrics, logger *logging.Logger) *Consultant {
	if gen == nil {
		panic("advisor: generator required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Consultant{gen: gen, model: model, timeout: timeout, metrics: m, logger: logger}
}

// ConsultationPrompt formats the single request sent to the model.
func ConsultationPrompt(concern string, skin SkinType) string {
	return fmt.Sprintf(`User has %s skin and is concerned about %s. 
  Recommend 3 beauty routines or treatments available at TA's Beauty Lounge. 
  Keep the tone luxurious and professional.`, skin, concern)
}

// Consult issues one model request. There is no retry; failures are returned as-is.
func (c *Consultant) Consult(ctx context.Context, concern string, skin SkinType) (*Consultation, error) {
	concern = strings.TrimSpace(concern)
	if concern == "" {
		return nil, ErrConcernRequired
	}
	if skin == "" {
		skin = SkinNormal
	}

	ctx, span := advisorTracer.Start(ctx, "advisor.consult")
	defer span.End()
	span.SetAttributes(attribute.String("lounge.skin_type", string(skin)))
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.gen.Generate(ctx, GenerateRequest{
		Model:  c.model,
		Prompt: ConsultationPrompt(concern, skin),
		JSON:   true,
		Schema: consultationSchema,
	})
	elapsed := time.Since(start).Seconds()
	if err != nil {
		span.RecordError(err)
		c.metrics.ObserveConsultation("error", elapsed)
		c.logger.Error("gemini consultation failed", "error", err, "skin_type", skin)
		return nil, err
	}

	result, err := ParseConsultation(resp.Text)
	if err != nil {
		span.RecordError(err)
		c.metrics.ObserveConsultation("parse_error", elapsed)
		c.logger.Error("gemini consultation returned invalid json", "error", err)
		return nil, err
	}
	c.metrics.ObserveConsultation("ok", elapsed)
	c.logger.Info("consultation completed", "skin_type", skin, "recommendations", len(result.Recommendations))
	return result, nil
}

// ParseConsultation decodes the model text. Empty text means no recommendations.
func ParseConsultation(text string) (*Consultation, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		text = `{"recommendations": []}`
	}
	var out Consultation
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("advisor: decode consultation: %w", err)
	}
	if out.Recommendations == nil {
		out.Recommendations = []Recommendation{}
	}
	return &out, nil
}

// stripCodeFence removes a ```json fence some models add despite JSON mode.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = ""
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
