package config

import (
	"fyne.io/fyne/v2"

	"github.com/termoapp/termo-desk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL          = "server_url"
	KeyRequestTimeout     = "request_timeout_seconds"
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultServerURL          = "http://localhost:5000"
	DefaultRequestTimeout     = 120
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
)

// Request timeout bounds in seconds
const (
	MinRequestTimeout = 10
	MaxRequestTimeout = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured server address
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the server address
func (s *Settings) SetServerURL(url string) {
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetRequestTimeout returns the submission timeout in seconds
func (s *Settings) GetRequestTimeout() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeout sets the submission timeout in seconds, clamped to the
// allowed bounds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetDownloadDirectory returns where generated documents are saved
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets where generated documents are saved
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal saved documents in the
// file manager after a successful submission
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal saved documents on success
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
	}
}
