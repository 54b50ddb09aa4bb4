package usecase

import (
	"context"

	"github.com/runoshun/shellmate/internal/domain"
)

// ShowConfigInput selects which configuration layer to show. With
// neither flag set the merged result of all layers is shown.
type ShowConfigInput struct {
	Global bool // Only the global config file
	Repo   bool // Only the repository-local config file
}

// ShowConfigOutput contains the selected configuration as TOML.
type ShowConfigOutput struct {
	TOML string
}

// ShowConfig is the use case for printing the effective merged
// configuration, or a single layer of it.
type ShowConfig struct {
	loader  domain.ConfigLoader
	manager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader, manager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{loader: loader, manager: manager}
}

// Execute loads the requested config layer and renders it. Asking for
// a single layer fails when its file does not exist; the merged view
// falls back to defaults instead.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	var (
		cfg *domain.Config
		err error
	)
	switch {
	case in.Global:
		cfg, err = uc.loader.LoadGlobal()
	case in.Repo:
		cfg, err = uc.loader.LoadRepo()
	default:
		cfg, err = uc.loader.Load()
	}
	if err != nil {
		return nil, err
	}
	rendered, err := uc.manager.Render(cfg)
	if err != nil {
		return nil, err
	}
	return &ShowConfigOutput{TOML: rendered}, nil
}
