// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/shellmate/internal/domain"
	"github.com/runoshun/shellmate/internal/infra/config"
	"github.com/runoshun/shellmate/internal/infra/executor"
	"github.com/runoshun/shellmate/internal/infra/logging"
	"github.com/runoshun/shellmate/internal/infra/printer"
	"github.com/runoshun/shellmate/internal/infra/repo"
	"github.com/runoshun/shellmate/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Printer       domain.DiagnosticPrinter
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Writers behind the printer, kept so it can be rebuilt when the
	// CLI overrides the color mode.
	Stdout io.Writer
	Stderr io.Writer

	// Configuration
	Config   *domain.Config
	RepoRoot string // Empty when running outside a git repository

	// Warnings collected during initialization, printed by the CLI.
	Warnings []string
}

// New creates a new Container by detecting the git repository from the given directory.
// Running outside a repository is fine; only repo-local config is skipped then.
func New(dir string) (*Container, error) {
	repoRoot, err := repo.Root(dir)
	if err != nil && !errors.Is(err, domain.ErrNotGitRepository) {
		return nil, err
	}

	var warnings []string
	configLoader := config.NewLoader(repoRoot)
	cfg, err := configLoader.Load()
	if err != nil {
		// The diagnostic helpers must stay usable with a broken config;
		// fall back to defaults and surface the problem once.
		warnings = append(warnings, fmt.Sprintf("using default config: %v", err))
		cfg = domain.NewDefaultConfig()
	}

	logger := logging.New(cfg.Log.Dir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Printer:       printer.New(os.Stdout, os.Stderr, cfg.Output),
		Executor:      executor.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(repoRoot),
		Logger:        logger,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		Config:        cfg,
		RepoRoot:      repoRoot,
		Warnings:      warnings,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, p domain.DiagnosticPrinter, e domain.CommandExecutor, l domain.Logger) *Container {
	return &Container{
		Printer:  p,
		Executor: e,
		Logger:   l,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Config:   cfg,
	}
}

// DisableColor swaps the printer for one that never styles its output.
func (c *Container) DisableColor() {
	out := c.Config.Output
	out.Color = domain.ColorNever
	c.Printer = printer.New(c.Stdout, c.Stderr, out)
}

// Close releases resources held by the container (open log files).
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// PrintMessageUseCase returns a new PrintMessage use case.
func (c *Container) PrintMessageUseCase() *usecase.PrintMessage {
	return usecase.NewPrintMessage(c.Printer)
}

// EmitDiagnosticUseCase returns a new EmitDiagnostic use case.
func (c *Container) EmitDiagnosticUseCase() *usecase.EmitDiagnostic {
	return usecase.NewEmitDiagnostic(c.Printer, c.Logger)
}

// RunCommandUseCase returns a new RunCommand use case.
// stdout and stderr receive the child's streams.
func (c *Container) RunCommandUseCase(stdout, stderr io.Writer) *usecase.RunCommand {
	return usecase.NewRunCommand(c.Executor, c.Printer, c.Logger, stdout, stderr)
}

// RenderSnippetUseCase returns a new RenderSnippet use case.
func (c *Container) RenderSnippetUseCase() *usecase.RenderSnippet {
	return usecase.NewRenderSnippet(c.Config)
}

// InjectSnippetUseCase returns a new InjectSnippet use case.
func (c *Container) InjectSnippetUseCase() *usecase.InjectSnippet {
	return usecase.NewInjectSnippet(c.Config, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}
