package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds everything the conversion needs. It replaces hard-coded file
// names so that callers can override any part of it.
type Config struct {
	InputName     string        `yaml:"inputName"`
	InputPath     string        `yaml:"inputPath"`  // Skips the directory search when set
	SearchDirs    []string      `yaml:"searchDirs"` // Empty means locator defaults
	OutputPath    string        `yaml:"outputPath"`
	Table         string        `yaml:"table"`
	Columns       []string      `yaml:"columns"`
	Delimiter     string        `yaml:"delimiter"` // Empty means by file extension
	RowPolicy     RowPolicy     `yaml:"rowPolicy"`
	NumericPolicy NumericPolicy `yaml:"numericPolicy"`
}

// FieldCount is the number of positional fields in every ticket row.
const FieldCount = 13

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Default returns the configuration used when no file or flag overrides it.
func Default() *Config {
	columns := make([]string, len(DefaultColumns))
	copy(columns, DefaultColumns)

	return &Config{
		InputName:     DefaultInputName,
		OutputPath:    DefaultOutputPath,
		Table:         DefaultTable,
		Columns:       columns,
		RowPolicy:     RowPolicySkip,
		NumericPolicy: NumericPolicyStrict,
	}
}

// LoadConfig reads a YAML file and overlays it on Default().
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.InputName == "" && c.InputPath == "" {
		return fmt.Errorf("config error: inputName or inputPath is required")
	}
	if strings.ContainsRune(c.InputName, os.PathSeparator) {
		return fmt.Errorf("config error: inputName %q must be a bare filename, use inputPath for paths", c.InputName)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("config error: outputPath is required")
	}

	if !tableNamePattern.MatchString(c.Table) {
		return fmt.Errorf("config error: invalid table name %q", c.Table)
	}

	if len(c.Columns) != FieldCount {
		return fmt.Errorf("config error: expected %d columns, got %d", FieldCount, len(c.Columns))
	}
	for i, col := range c.Columns {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("config error: column %d has empty name", i)
		}
	}

	if c.Delimiter != "" {
		if utf8.RuneCountInString(c.Delimiter) != 1 {
			return fmt.Errorf("config error: delimiter %q must be a single character", c.Delimiter)
		}
		if r, _ := utf8.DecodeRuneInString(c.Delimiter); r == '"' || r == '\r' || r == '\n' {
			return fmt.Errorf("config error: delimiter %q is not allowed", c.Delimiter)
		}
	}

	if _, ok := ValidRowPolicies[string(c.RowPolicy)]; !ok {
		return fmt.Errorf("config error: unknown row policy %q", c.RowPolicy)
	}
	if _, ok := ValidNumericPolicies[string(c.NumericPolicy)]; !ok {
		return fmt.Errorf("config error: unknown numeric policy %q", c.NumericPolicy)
	}

	return nil
}

// DelimiterFor returns the field separator to use for the given input path.
// An explicit Delimiter wins; otherwise .tsv files use tabs and everything
// else uses commas.
func (c *Config) DelimiterFor(path string) rune {
	if c.Delimiter != "" {
		r, _ := utf8.DecodeRuneInString(c.Delimiter)
		return r
	}
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}
