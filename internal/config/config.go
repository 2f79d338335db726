// =============================================================================
// Label IDoc Converter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file and applies the
// defaults for every setting that is not given.
//
// PRECEDENCE (highest first):
//   1. Command line flags (applied by the cmd package)
//   2. The configuration file
//   3. Built-in defaults
//
// A missing configuration file at the default location is not an error:
// the built-in defaults are used. A file named explicitly with --config must
// exist.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/label-idoc-converter/internal/idoc"
	"github.com/ginjaninja78/label-idoc-converter/internal/validation"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = "idoc.yaml"

// Setting values.
const (
	LineEndingCRLF = "crlf"
	LineEndingLF   = "lf"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	// ErrInvalidControlNumber is returned for a control number that is not
	// exactly 7 characters.
	ErrInvalidControlNumber = errors.New("control number must be exactly 7 characters")

	// ErrInvalidDelimiter is returned for a delimiter that is not a single
	// character.
	ErrInvalidDelimiter = errors.New("delimiter must be a single character")

	// ErrInvalidLogLevel is returned for a log level slog does not know.
	ErrInvalidLogLevel = errors.New(`log_level must be "debug", "info", "warn" or "error"`)
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// GraphicsPath is the directory prefix of every graphic asset written
	// into a characteristic segment.
	// Default: T:\MEDICAL\NA\RTP\TEAM CENTER\TEMPLATES\GRAPHICS\
	GraphicsPath string `yaml:"graphics_path"`

	// ControlNumber is the 7-character control number written into every
	// segment.
	// Default: "1234567"
	ControlNumber string `yaml:"control_number"`

	// OutputSuffix replaces the input file extension to name the output.
	// Default: "_IDOC.txt"
	OutputSuffix string `yaml:"output_suffix"`

	// LineEnding terminates every segment: "crlf" or "lf".
	// Default: "crlf"
	LineEnding string `yaml:"line_ending"`

	// ExtendedFields enables the secondary, non-standard field set.
	// Default: false
	ExtendedFields bool `yaml:"extended_fields"`

	// WarningLog writes each document's issues to <output>.warnings.txt.
	// Default: false
	WarningLog bool `yaml:"warning_log"`

	// =========================================================================
	// INPUT SETTINGS
	// =========================================================================

	// Delimiter separates the cells of a row. Accepts a single character,
	// "\t" or "tab".
	// Default: tab
	Delimiter string `yaml:"delimiter"`

	// =========================================================================
	// VALIDATION SETTINGS
	// =========================================================================

	// GTINCompanyPrefixes are the registered GS1 company prefixes.
	// Default: 0801902, 4026704
	GTINCompanyPrefixes []string `yaml:"gtin_company_prefixes"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log handler: "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of files converted at once.
	// Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//   - explicit: Whether the path was named by the user. When false, a
//     missing file yields the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses, completes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.GraphicsPath == "" {
		cfg.GraphicsPath = idoc.DefaultGraphicsPath
	}
	if cfg.ControlNumber == "" {
		cfg.ControlNumber = idoc.DefaultControlNumber
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = "_IDOC.txt"
	}
	if cfg.LineEnding == "" {
		cfg.LineEnding = LineEndingCRLF
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = `\t`
	}
	if len(cfg.GTINCompanyPrefixes) == 0 {
		cfg.GTINCompanyPrefixes = append([]string(nil), validation.DefaultCompanyPrefixes...)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration after flags have been applied.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.ControlNumber) != 7 {
		return fmt.Errorf("%w: %q", ErrInvalidControlNumber, c.ControlNumber)
	}
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	switch c.LineEnding {
	case LineEndingCRLF, LineEndingLF:
	default:
		return fmt.Errorf("line_ending must be %q or %q, got %q", LineEndingCRLF, LineEndingLF, c.LineEnding)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log_format must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}
	for _, prefix := range c.GTINCompanyPrefixes {
		if len(prefix) != 7 || strings.Trim(prefix, "0123456789") != "" {
			return fmt.Errorf("gtin company prefix must be 7 digits, got %q", prefix)
		}
	}
	return nil
}

// DelimiterRune returns the cell delimiter.
func (c *Config) DelimiterRune() (rune, error) {
	switch strings.ToLower(c.Delimiter) {
	case `\t`, "tab", "\t":
		return '\t', nil
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r, nil
}

// EOL returns the line terminator selected by LineEnding.
func (c *Config) EOL() string {
	if c.LineEnding == LineEndingLF {
		return idoc.LF
	}
	return idoc.CRLF
}

// NormalizedGraphicsPath returns GraphicsPath with a trailing separator.
func (c *Config) NormalizedGraphicsPath() string {
	p := c.GraphicsPath
	if p == "" || strings.HasSuffix(p, `\`) || strings.HasSuffix(p, "/") {
		return p
	}
	if strings.Contains(p, "/") && !strings.Contains(p, `\`) {
		return p + "/"
	}
	return p + `\`
}
