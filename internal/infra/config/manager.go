package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/shellmate/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	repoRoot      string // Path to repository root; empty when outside a repository
	globalConfDir string // Path to global config directory (e.g., ~/.config/shellmate)
}

// NewManager creates a new Manager.
func NewManager(repoRoot string) *Manager {
	return &Manager{
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(repoRoot, globalConfDir string) *Manager {
	return &Manager{
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// Init writes the commented config template and returns the written path.
// With global=false the file goes to the repository root, which requires
// running inside a repository.
func (m *Manager) Init(global bool) (string, error) {
	path, err := m.targetPath(global)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // Config file is not sensitive
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}

// Render returns the configuration serialized as TOML.
func (m *Manager) Render(cfg *domain.Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}

// targetPath resolves where Init writes.
func (m *Manager) targetPath(global bool) (string, error) {
	if global {
		if m.globalConfDir == "" {
			return "", fmt.Errorf("global config directory could not be determined")
		}
		return filepath.Join(m.globalConfDir, domain.GlobalConfigFileName), nil
	}
	if m.repoRoot == "" {
		return "", domain.ErrNotGitRepository
	}
	return filepath.Join(m.repoRoot, domain.RepoConfigFileName), nil
}
