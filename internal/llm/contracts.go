package llm

import "context"

// GenerationResult is one raw response from the text-generation service.
// Truncated is set when the response was cut off by the output-token
// budget, which is the only case the repair heuristic applies to.
type GenerationResult struct {
	Text      string
	Truncated bool
}

// Generator is the interface the extraction coordinator depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string) (GenerationResult, error)
}
