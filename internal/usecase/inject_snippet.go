package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/shellmate/internal/domain"
)

// InjectSnippetInput contains the parameters for injecting the helper
// snippet into a GitHub Actions environment file.
type InjectSnippetInput struct {
	// EnvFile is the environment file to append to. Empty falls back
	// to $GITHUB_ENV.
	EnvFile string
}

// InjectSnippetOutput contains the result of the injection.
type InjectSnippetOutput struct {
	Path    string // Environment file that was appended to
	VarName string // Variable now carrying the fragment
}

// InjectSnippet is the use case for the environment-variable
// convention: it appends the helper fragment to a GitHub Actions
// environment file so that each later step can eval it.
type InjectSnippet struct {
	cfg    *domain.Config
	logger domain.Logger
}

// NewInjectSnippet creates a new InjectSnippet use case.
func NewInjectSnippet(cfg *domain.Config, logger domain.Logger) *InjectSnippet {
	return &InjectSnippet{cfg: cfg, logger: logger}
}

// Execute appends the snippet entry to the environment file.
func (uc *InjectSnippet) Execute(_ context.Context, in InjectSnippetInput) (*InjectSnippetOutput, error) {
	path := in.EnvFile
	if path == "" {
		path = os.Getenv("GITHUB_ENV")
	}
	if path == "" {
		return nil, domain.ErrEnvFileNotSet
	}

	snippet := domain.RenderSnippet(uc.cfg)
	entry := domain.GitHubEnvEntry(uc.cfg.Snippet.VarName, snippet)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // Env file path is provided by the CI runner
	if err != nil {
		return nil, fmt.Errorf("open environment file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(entry); err != nil {
		return nil, fmt.Errorf("append to environment file: %w", err)
	}

	uc.logger.Info("snippet", fmt.Sprintf("injected %s into %s", uc.cfg.Snippet.VarName, path))
	return &InjectSnippetOutput{Path: path, VarName: uc.cfg.Snippet.VarName}, nil
}
