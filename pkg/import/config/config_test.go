package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "empty file keeps defaults",
			yaml: ``,
		},
		{
			name: "overrides",
			yaml: `
inputPath: /data/export.csv
outputPath: out.sql
table: public.chamados
rowPolicy: fail
numericPolicy: quote
`,
		},
		{
			name: "tab delimiter",
			yaml: `delimiter: "\t"`,
		},
		{
			name:    "unknown row policy",
			yaml:    `rowPolicy: ignore`,
			wantErr: true,
			errMsg:  "unknown row policy",
		},
		{
			name:    "unknown numeric policy",
			yaml:    `numericPolicy: loose`,
			wantErr: true,
			errMsg:  "unknown numeric policy",
		},
		{
			name:    "too few columns",
			yaml:    "columns: [a, b, c]",
			wantErr: true,
			errMsg:  "expected 13 columns",
		},
		{
			name:    "bad table name",
			yaml:    `table: "chamados; DROP TABLE x"`,
			wantErr: true,
			errMsg:  "invalid table name",
		},
		{
			name:    "multi character delimiter",
			yaml:    `delimiter: ";;"`,
			wantErr: true,
			errMsg:  "single character",
		},
		{
			name:    "quote delimiter",
			yaml:    `delimiter: '"'`,
			wantErr: true,
			errMsg:  "not allowed",
		},
		{
			name:    "invalid yaml",
			yaml:    "table: [",
			wantErr: true,
			errMsg:  "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			cfg, err := LoadConfig(configPath)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg == nil {
				t.Fatal("expected config, got nil")
			}
		})
	}
}

func TestLoadConfig_Overlay(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "outputPath: custom.sql\nrowPolicy: pad\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.OutputPath != "custom.sql" {
		t.Errorf("expected outputPath custom.sql, got %q", cfg.OutputPath)
	}
	if cfg.RowPolicy != RowPolicyPad {
		t.Errorf("expected row policy pad, got %q", cfg.RowPolicy)
	}
	if cfg.Table != DefaultTable {
		t.Errorf("expected default table %q, got %q", DefaultTable, cfg.Table)
	}
	if cfg.InputName != DefaultInputName {
		t.Errorf("expected default input name %q, got %q", DefaultInputName, cfg.InputName)
	}
	if len(cfg.Columns) != FieldCount {
		t.Errorf("expected %d default columns, got %d", FieldCount, len(cfg.Columns))
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDefault_ColumnsAreCopied(t *testing.T) {
	cfg := Default()
	cfg.Columns[0] = "changed"

	if DefaultColumns[0] != "ID do Chamado" {
		t.Errorf("mutating a Default() config changed DefaultColumns: %q", DefaultColumns[0])
	}
}

func TestValidate_InputName(t *testing.T) {
	cfg := Default()
	cfg.InputName = filepath.Join("dir", "file.csv")
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for inputName containing a path separator")
	}

	cfg = Default()
	cfg.InputName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when neither inputName nor inputPath is set")
	}

	cfg.InputPath = "/tmp/export.csv"
	if err := cfg.Validate(); err != nil {
		t.Errorf("inputPath alone should validate: %v", err)
	}
}

func TestConfig_DelimiterFor(t *testing.T) {
	tests := []struct {
		delimiter string
		path      string
		want      rune
	}{
		{"", "export.csv", ','},
		{"", "export.tsv", '\t'},
		{"", "EXPORT.TSV", '\t'},
		{"", "export.txt", ','},
		{";", "export.csv", ';'},
		{";", "export.tsv", ';'},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Delimiter = tt.delimiter
		if got := cfg.DelimiterFor(tt.path); got != tt.want {
			t.Errorf("DelimiterFor(%q) with delimiter %q = %q, want %q", tt.path, tt.delimiter, got, tt.want)
		}
	}
}
