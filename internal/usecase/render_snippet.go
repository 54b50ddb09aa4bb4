package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/shellmate/internal/domain"
	"gopkg.in/yaml.v3"
)

// RenderSnippetInput contains the parameters for rendering the helper
// snippet.
type RenderSnippetInput struct {
	// Format is "shell" (the raw fragment) or "workflow" (a YAML env
	// mapping for pasting into a GitHub Actions workflow).
	Format string
}

// RenderSnippetOutput contains the rendered snippet.
type RenderSnippetOutput struct {
	Text string
}

// RenderSnippet is the use case for generating the POSIX-shell helper
// fragment in the requested format.
type RenderSnippet struct {
	cfg *domain.Config
}

// NewRenderSnippet creates a new RenderSnippet use case.
func NewRenderSnippet(cfg *domain.Config) *RenderSnippet {
	return &RenderSnippet{cfg: cfg}
}

// Execute renders the snippet.
func (uc *RenderSnippet) Execute(_ context.Context, in RenderSnippetInput) (*RenderSnippetOutput, error) {
	snippet := domain.RenderSnippet(uc.cfg)

	switch in.Format {
	case "", domain.SnippetFormatShell:
		return &RenderSnippetOutput{Text: snippet}, nil
	case domain.SnippetFormatWorkflow:
		doc := map[string]map[string]string{
			"env": {uc.cfg.Snippet.VarName: snippet},
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal workflow snippet: %w", err)
		}
		return &RenderSnippetOutput{Text: string(data)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFormat, in.Format)
	}
}
