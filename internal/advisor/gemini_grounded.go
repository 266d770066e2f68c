package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mapsgenai "google.golang.org/genai"
)

// groundedModels is the slice of the genai SDK used for Maps-grounded calls.
type groundedModels interface {
	GenerateContent(ctx context.Context, model string, contents []*mapsgenai.Content, config *mapsgenai.GenerateContentConfig) (*mapsgenai.GenerateContentResponse, error)
}

func newGroundedModels(ctx context.Context, apiKey string) (groundedModels, error) {
	client, err := mapsgenai.NewClient(ctx, &mapsgenai.ClientConfig{
		APIKey:  apiKey,
		Backend: mapsgenai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("advisor: failed to create grounded gemini client: %w", err)
	}
	return client.Models, nil
}

func (g *GeminiGenerator) generateGrounded(ctx context.Context, modelID, prompt string) (GenerateResponse, error) {
	if g.grounded == nil {
		return GenerateResponse{}, errors.New("advisor: maps grounding is not configured")
	}
	resp, err := g.grounded.GenerateContent(ctx, modelID, mapsgenai.Text(prompt), &mapsgenai.GenerateContentConfig{
		Tools: []*mapsgenai.Tool{{GoogleMaps: &mapsgenai.GoogleMaps{}}},
	})
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("advisor: gemini grounded completion failed: %w", err)
	}
	return groundedResponse(resp)
}

func groundedResponse(resp *mapsgenai.GenerateContentResponse) (GenerateResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return GenerateResponse{}, errors.New("advisor: gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	var text strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part != nil && !part.Thought {
				text.WriteString(part.Text)
			}
		}
	}

	out := GenerateResponse{
		Text:         strings.TrimSpace(text.String()),
		FinishReason: string(candidate.FinishReason),
	}
	if meta := candidate.GroundingMetadata; meta != nil {
		for _, chunk := range meta.GroundingChunks {
			if chunk == nil || chunk.Maps == nil {
				continue
			}
			out.Sources = append(out.Sources, GroundingSource{
				Title: chunk.Maps.Title,
				URI:   chunk.Maps.URI,
			})
		}
	}
	return out, nil
}
