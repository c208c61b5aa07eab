package config

import (
	"errors"
	"os"
	"path/filepath"
	"pilates-vision-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// Preferences are the console's display settings. They are loaded once at
// startup and handed to the console instead of living in global state.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{Language: constvars.LanguageEnglish, Theme: constvars.ThemeLight}
}

// LoadPreferences reads path, returning the defaults when the file does not
// exist yet. Unknown values fall back to their defaults.
func LoadPreferences(path string) (Preferences, error) {
	preferences := DefaultPreferences()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return preferences, nil
	}
	if err != nil {
		return preferences, err
	}

	err = json.Unmarshal(data, &preferences)
	if err != nil {
		return DefaultPreferences(), err
	}
	return preferences.normalized(), nil
}

func SavePreferences(path string, preferences Preferences) error {
	data, err := json.MarshalIndent(preferences.normalized(), "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if dir != "." {
		err = os.MkdirAll(dir, 0o755)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (p Preferences) normalized() Preferences {
	defaults := DefaultPreferences()
	if p.Language != constvars.LanguageEnglish && p.Language != constvars.LanguagePortuguese {
		p.Language = defaults.Language
	}
	if p.Theme != constvars.ThemeLight && p.Theme != constvars.ThemeDark {
		p.Theme = defaults.Theme
	}
	return p
}
