package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment, e.g. JOBPDF_OUTPUT_DIR
const EnvPrefix = "JOBPDF"

// Rendering engines
const (
	RendererWkhtmltopdf = "wkhtmltopdf"
	RendererChrome      = "chrome"
)

// Settings keys
const (
	KeyOutputDir       = "output_dir"
	KeyRenderer        = "renderer"
	KeyWkhtmltopdfPath = "wkhtmltopdf_path"
	KeyChromePath      = "chrome_path"
	KeyRenderTimeout   = "render_timeout"
	KeyTitleTimeout    = "title_timeout"
	KeyLanguage        = "language"
)

// Default values
const (
	DefaultOutputDir       = "output"
	DefaultRenderer        = RendererWkhtmltopdf
	DefaultWkhtmltopdfPath = "wkhtmltopdf"
	DefaultRenderTimeout   = 2 * time.Minute
	DefaultTitleTimeout    = 15 * time.Second
	DefaultLanguage        = "system"
)

// Limits
const (
	MinRenderTimeout = 5 * time.Second
	MaxRenderTimeout = 30 * time.Minute
	MinTitleTimeout  = 1 * time.Second
	MaxTitleTimeout  = 2 * time.Minute
)

// Settings manages application configuration. Values come from built-in
// defaults overridden by JOBPDF_* environment variables; nothing is persisted.
type Settings struct {
	v *viper.Viper
}

// NewSettings creates a new settings manager reading the process environment
func NewSettings() *Settings {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyRenderer, DefaultRenderer)
	v.SetDefault(KeyWkhtmltopdfPath, DefaultWkhtmltopdfPath)
	v.SetDefault(KeyChromePath, "")
	v.SetDefault(KeyRenderTimeout, DefaultRenderTimeout)
	v.SetDefault(KeyTitleTimeout, DefaultTitleTimeout)
	v.SetDefault(KeyLanguage, DefaultLanguage)

	return &Settings{v: v}
}

// GetOutputDirectory returns the directory holding the month/year buckets
func (s *Settings) GetOutputDirectory() string {
	dir := strings.TrimSpace(s.v.GetString(KeyOutputDir))
	if dir == "" {
		return DefaultOutputDir
	}
	return dir
}

// GetRenderer returns the configured rendering engine, falling back to wkhtmltopdf
// for unknown names
func (s *Settings) GetRenderer() string {
	name := strings.ToLower(strings.TrimSpace(s.v.GetString(KeyRenderer)))
	for _, option := range s.GetRendererOptions() {
		if name == option {
			return name
		}
	}
	return DefaultRenderer
}

// GetRendererOptions returns available rendering engines
func (s *Settings) GetRendererOptions() []string {
	return []string{RendererWkhtmltopdf, RendererChrome}
}

// GetWkhtmltopdfPath returns the wkhtmltopdf command name or path
func (s *Settings) GetWkhtmltopdfPath() string {
	path := strings.TrimSpace(s.v.GetString(KeyWkhtmltopdfPath))
	if path == "" {
		return DefaultWkhtmltopdfPath
	}
	return path
}

// GetChromePath returns the Chrome executable path, empty for PATH lookup
func (s *Settings) GetChromePath() string {
	return strings.TrimSpace(s.v.GetString(KeyChromePath))
}

// GetRenderTimeout returns the bound for one render, clamped to [MinRenderTimeout, MaxRenderTimeout]
func (s *Settings) GetRenderTimeout() time.Duration {
	return clampDuration(s.v.GetDuration(KeyRenderTimeout), DefaultRenderTimeout, MinRenderTimeout, MaxRenderTimeout)
}

// SetRenderTimeout sets the render bound for this run
func (s *Settings) SetRenderTimeout(timeout time.Duration) {
	s.v.Set(KeyRenderTimeout, timeout)
}

// GetTitleTimeout returns the bound for fetching a page title
func (s *Settings) GetTitleTimeout() time.Duration {
	return clampDuration(s.v.GetDuration(KeyTitleTimeout), DefaultTitleTimeout, MinTitleTimeout, MaxTitleTimeout)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := strings.TrimSpace(s.v.GetString(KeyLanguage))
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language for this run
func (s *Settings) SetLanguage(lang string) {
	s.v.Set(KeyLanguage, lang)
}

// clampDuration replaces unset or unparsable values with def and clamps the rest
func clampDuration(d, def, min, max time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}
