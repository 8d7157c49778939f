package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Settings holds everything the server needs at startup.
type Settings struct {
	ListenAddr            string `json:"listenAddr"`
	DatabasePath          string `json:"databasePath"`
	CatalogBaseURL        string `json:"catalogBaseUrl"`
	CatalogTimeoutSeconds int    `json:"catalogTimeoutSeconds"`
	LogFilePath           string `json:"logFilePath"`
}

// DefaultSettings returns the configuration used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		ListenAddr:            ":3000",
		DatabasePath:          "data/playlists.db",
		CatalogBaseURL:        "",
		CatalogTimeoutSeconds: 15,
		LogFilePath:           "",
	}
}

// Manager loads and persists the JSON settings file.
type Manager struct {
	path string
	mu   sync.Mutex
}

func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the settings file, falling back to defaults when it is missing.
func (m *Manager) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings file, creating its directory when needed.
func (m *Manager) Save(settings Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Dir(m.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
