package usecase

import (
	"context"

	"github.com/runoshun/shellmate/internal/domain"
)

// InitConfigInput contains the parameters for initializing a config file.
type InitConfigInput struct {
	Global bool // Write the global config instead of the repo-local one
}

// InitConfigOutput contains the result of the initialization.
type InitConfigOutput struct {
	Path string // Path to the written config file
}

// InitConfig is the use case for writing the commented config template.
type InitConfig struct {
	manager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager) *InitConfig {
	return &InitConfig{manager: manager}
}

// Execute writes the template. Fails if the target already exists.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	path, err := uc.manager.Init(in.Global)
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
