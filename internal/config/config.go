// Package config loads the tool configuration once at startup.
// Values come from defaults, an optional YAML file and environment variables
// (a .env file in the working directory is loaded first), in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"invoice-manifest/internal/domain"
)

// Output formats of the validation report.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// Config holds all configuration for invoicectl.
type Config struct {
	Paths    PathsConfig          `yaml:"paths"`
	Sequence domain.SequenceRange `yaml:"sequence"`
	Report   ReportConfig         `yaml:"report"`
	Analyze  AnalyzeConfig        `yaml:"analyze"`
	Log      LogConfig            `yaml:"log"`
}

// PathsConfig holds the locations of the pipeline files.
type PathsConfig struct {
	ManifestFile         string `yaml:"manifest_file"`
	InvoicesFolder       string `yaml:"invoices_folder"`
	DocumentManifestFile string `yaml:"document_manifest_file"`
	ExtractionFile       string `yaml:"extraction_file"`
}

// ReportConfig controls how validation reports are presented.
type ReportConfig struct {
	Format       string `yaml:"format"`
	DisplayLimit int    `yaml:"display_limit"` // 0 shows every diagnostic
	NoColor      bool   `yaml:"no_color"`
}

// AnalyzeConfig holds document field-extraction settings.
type AnalyzeConfig struct {
	ModelID    string `yaml:"model_id"`
	ResultsDir string `yaml:"results_dir"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// DefaultConfig returns a configuration with the pipeline's usual layout.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			ManifestFile:         "invoices/manifest_invoices.json",
			InvoicesFolder:       "invoices",
			DocumentManifestFile: "invoices/manifest_pdfs.json",
			ExtractionFile:       "invoices/extraction_invoices.jsonl",
		},
		Sequence: domain.DefaultSequenceRange(),
		Report: ReportConfig{
			Format:       FormatConsole,
			DisplayLimit: 10,
		},
		Analyze: AnalyzeConfig{
			ModelID:    "prebuilt-invoice",
			ResultsDir: "invoices/analyze_results",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load builds the configuration. path is an optional YAML file; an empty path skips it.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.ConfigError(fmt.Sprintf("read config file %s", path), err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, domain.ConfigError(fmt.Sprintf("parse config file %s", path), err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, domain.ConfigError("validate config", err)
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Report.Format {
	case FormatConsole, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid report format: %s", c.Report.Format)
	}
	if c.Report.DisplayLimit < 0 {
		return fmt.Errorf("display_limit must not be negative")
	}
	if c.Sequence.Prefix == "" {
		return fmt.Errorf("sequence prefix is required")
	}
	if c.Sequence.Width < 0 {
		return fmt.Errorf("sequence width must not be negative")
	}
	if c.Paths.ManifestFile == "" {
		return fmt.Errorf("manifest_file is required")
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) error {
	setString(&cfg.Paths.ManifestFile, "MANIFEST_FILE")
	setString(&cfg.Paths.InvoicesFolder, "INVOICES_FOLDER")
	setString(&cfg.Paths.DocumentManifestFile, "DOCUMENT_MANIFEST_FILE")
	setString(&cfg.Paths.ExtractionFile, "EXTRACTION_FILE")
	setString(&cfg.Analyze.ModelID, "ANALYZE_MODEL_ID")
	setString(&cfg.Analyze.ResultsDir, "ANALYZE_RESULTS_DIR")
	setString(&cfg.Sequence.Prefix, "INVOICE_ID_PREFIX")
	setString(&cfg.Report.Format, "REPORT_FORMAT")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")

	ints := []struct {
		key string
		dst *int
	}{
		{"INVOICE_SEQ_START", &cfg.Sequence.Start},
		{"INVOICE_SEQ_END", &cfg.Sequence.End},
		{"INVOICE_SEQ_WIDTH", &cfg.Sequence.Width},
		{"REPORT_DISPLAY_LIMIT", &cfg.Report.DisplayLimit},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.ConfigError(fmt.Sprintf("invalid %s %q", e.key, v), err)
		}
		*e.dst = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
