// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the config file read when --config is not given.
	DefaultConfigPath = "config/config.json"
	// DefaultRasterizer converts the HTML table into a PNG snapshot.
	DefaultRasterizer = "cutycapt"
	// defaultOutDirName is created below the working directory when outDir is unset.
	defaultOutDirName = "graphics"
)

// Config represents the merged application configuration.
type Config struct {
	InputDir   string           `json:"inputDir" mapstructure:"inputDir"`
	OutDir     string           `json:"outDir" mapstructure:"outDir"`
	LogFile    string           `json:"logFile,omitempty" mapstructure:"logFile"`
	LogLevel   string           `json:"logLevel" mapstructure:"logLevel"`
	LogFormat  string           `json:"logFormat" mapstructure:"logFormat"`
	NaNLiteral string           `json:"nanLiteral" mapstructure:"nanLiteral"`
	XLSX       bool             `json:"xlsx" mapstructure:"xlsx"`
	SkipCharts bool             `json:"skipCharts" mapstructure:"skipCharts"`
	Rasterizer RasterizerConfig `json:"rasterizer" mapstructure:"rasterizer"`
	Chart      ChartConfig      `json:"chart" mapstructure:"chart"`
	Highlight  HighlightConfig  `json:"highlight" mapstructure:"highlight"`
	ConfigPath string           `json:"-" mapstructure:"-"`
}

// RasterizerConfig selects the external HTML-to-PNG command.
type RasterizerConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Command string `json:"command" mapstructure:"command"`
}

// ChartConfig holds chart canvas sizes in inches.
type ChartConfig struct {
	Width       float64 `json:"width" mapstructure:"width"`
	Height      float64 `json:"height" mapstructure:"height"`
	CurveWidth  float64 `json:"curveWidth" mapstructure:"curveWidth"`
	CurveHeight float64 `json:"curveHeight" mapstructure:"curveHeight"`
}

// HighlightConfig holds the CSS colors for the best and runner-up cells.
type HighlightConfig struct {
	Primary   string `json:"primary" mapstructure:"primary"`
	Secondary string `json:"secondary" mapstructure:"secondary"`
}

// SetDefaults registers every default on v. Paths are resolved against cwd.
func SetDefaults(v *viper.Viper, cwd string) {
	v.SetDefault("inputDir", cwd)
	v.SetDefault("outDir", filepath.Join(cwd, defaultOutDirName))
	v.SetDefault("logFile", "")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("nanLiteral", "nan")
	v.SetDefault("xlsx", false)
	v.SetDefault("skipCharts", false)
	v.SetDefault("rasterizer.enabled", true)
	v.SetDefault("rasterizer.command", DefaultRasterizer)
	v.SetDefault("chart.width", 16.0)
	v.SetDefault("chart.height", 8.0)
	v.SetDefault("chart.curveWidth", 30.0)
	v.SetDefault("chart.curveHeight", 8.0)
	v.SetDefault("highlight.primary", "#2e7d32")
	v.SetDefault("highlight.secondary", "#c62828")
}

// Load merges defaults, the optional JSON config file at path and whatever
// flags are already bound to v. A missing file at DefaultConfigPath is not an
// error; a missing file anywhere else is.
func Load(v *viper.Viper, path string) (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, eris.Wrap(err, "appconfig: working directory")
	}
	SetDefaults(v, cwd)

	loaded := ""
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := Validate(data); err != nil {
				return Config{}, eris.Wrapf(err, "appconfig: %s", path)
			}
			v.SetConfigType("json")
			if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
				return Config{}, eris.Wrapf(err, "appconfig: read %s", path)
			}
			loaded = path
		case errors.Is(err, os.ErrNotExist) && path == DefaultConfigPath:
		case errors.Is(err, os.ErrNotExist):
			return Config{}, eris.Errorf("appconfig: no configuration file found at %q", path)
		default:
			return Config{}, eris.Wrapf(err, "appconfig: read %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "appconfig: unmarshal")
	}
	cfg.ConfigPath = loaded
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// cssColor matches hex and named colors, the only values html/template keeps
// verbatim inside <style>.
var cssColor = regexp.MustCompile(`^(#([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})|[A-Za-z]+)$`)

func (c Config) check() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return eris.New("appconfig: inputDir must not be empty")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return eris.New("appconfig: outDir must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return eris.Errorf("appconfig: unsupported logFormat %q", c.LogFormat)
	}
	for key, value := range map[string]string{
		"highlight.primary":   c.Highlight.Primary,
		"highlight.secondary": c.Highlight.Secondary,
	} {
		if !cssColor.MatchString(value) {
			return eris.Errorf("appconfig: %s must be a hex or named color, got %q", key, value)
		}
	}
	if c.Rasterizer.Enabled && strings.TrimSpace(c.Rasterizer.Command) == "" {
		return eris.New("appconfig: rasterizer.command is required when rasterizer is enabled")
	}
	return nil
}
