package advisor

import "context"

// SchemaType names a JSON schema node type understood by the model.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// Schema is a provider-neutral description of a structured response.
type Schema struct {
	Type       SchemaType
	Properties map[string]*Schema
	Items      *Schema
	Required   []string
}

// GenerateRequest is a single-shot prompt.
type GenerateRequest struct {
	Model  string
	Prompt string
	// JSON asks the model for application/json output, shaped by Schema when set.
	JSON   bool
	Schema *Schema
	// GroundWithMaps enables the Google Maps grounding tool.
	GroundWithMaps bool
}

// GroundingSource is a place the model cited for a grounded answer.
type GroundingSource struct {
	Title string
	URI   string
}

// GenerateResponse is the model's text answer.
type GenerateResponse struct {
	Text         string
	FinishReason string
	Sources      []GroundingSource
}

// Generator is a hosted text-generation model.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}
