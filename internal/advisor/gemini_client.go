package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/option"
)

var geminiTracer = otel.Tracer("lounge.internal.advisor.gemini")

// GeminiGenerator implements Generator using Google's Gemini API. Requests
// with GroundWithMaps go through the unified genai SDK, which carries the
// Google Maps tool and grounding metadata.
type GeminiGenerator struct {
	client       *genai.Client
	grounded     groundedModels
	defaultModel string
}

// NewGeminiGenerator creates a new Gemini client.
func NewGeminiGenerator(ctx context.Context, apiKey, defaultModel string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("advisor: gemini api key is required")
	}
	if strings.TrimSpace(defaultModel) == "" {
		defaultModel = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("advisor: failed to create gemini client: %w", err)
	}
	grounded, err := newGroundedModels(ctx, apiKey)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &GeminiGenerator{
		client:       client,
		grounded:     grounded,
		defaultModel: defaultModel,
	}, nil
}

// Generate sends one prompt to Gemini and returns the concatenated text parts.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	modelID := strings.TrimSpace(req.Model)
	if modelID == "" {
		modelID = g.defaultModel
	}
	ctx, span := geminiTracer.Start(ctx, "advisor.gemini.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("lounge.model", modelID),
		attribute.Bool("lounge.maps_grounding", req.GroundWithMaps),
	)

	if req.GroundWithMaps {
		resp, err := g.generateGrounded(ctx, modelID, req.Prompt)
		if err != nil {
			span.RecordError(err)
		}
		return resp, err
	}

	model := g.client.GenerativeModel(modelID)
	if req.JSON {
		model.ResponseMIMEType = "application/json"
		if req.Schema != nil {
			model.ResponseSchema = toGenaiSchema(req.Schema)
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		span.RecordError(err)
		return GenerateResponse{}, fmt.Errorf("advisor: gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return GenerateResponse{}, errors.New("advisor: gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}

	return GenerateResponse{
		Text:         strings.TrimSpace(text.String()),
		FinishReason: fmt.Sprint(candidate.FinishReason),
	}, nil
}

// Close releases resources held by the Gemini client.
func (g *GeminiGenerator) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func toGenaiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:     toGenaiType(s.Type),
		Items:    toGenaiSchema(s.Items),
		Required: append([]string(nil), s.Required...),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func toGenaiType(t SchemaType) genai.Type {
	switch t {
	case SchemaObject:
		return genai.TypeObject
	case SchemaArray:
		return genai.TypeArray
	case SchemaString:
		return genai.TypeString
	default:
		return genai.TypeUnspecified
	}
}
