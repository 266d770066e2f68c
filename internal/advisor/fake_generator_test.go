package advisor

import (
	"context"
	"sync"
)

// fakeGenerator records prompts and replays a canned answer.
type fakeGenerator struct {
	mu       sync.Mutex
	text     string
	sources  []GroundingSource
	err      error
	requests []GenerateRequest
	block    chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return GenerateResponse{}, ctx.Err()
		}
	}
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	if f.err != nil {
		return GenerateResponse{}, f.err
	}
	return GenerateResponse{Text: f.text, Sources: f.sources}, nil
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
