package domain

import "errors"

// Domain errors.
var (
	ErrEmptyCommand     = errors.New("command cannot be empty")
	ErrConfigExists     = errors.New("config file already exists")
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrEnvFileNotSet    = errors.New("environment file not specified and GITHUB_ENV is not set")
	ErrInvalidColorMode = errors.New("invalid color mode (expected auto, always or never)")
	ErrInvalidFormat    = errors.New("invalid snippet format (expected shell or workflow)")
)
