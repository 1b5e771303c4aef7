package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("output_delimiter: \"|\"\nkeep_partial: true\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.OutputDelimiter != "|" {
		t.Errorf("OutputDelimiter = %q, want %q", c.OutputDelimiter, "|")
	}
	if !c.KeepPartial {
		t.Error("KeepPartial = false, want true")
	}
}

func TestLoadFromFile_EmptyKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("{}\n"), 0644)

	c := Config{OutputDelimiter: ",", KeepPartial: true}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.OutputDelimiter != "," || !c.KeepPartial {
		t.Errorf("defaults clobbered: %+v", c)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_Delimiter(t *testing.T) {
	c := Config{OutputDelimiter: "||"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for multi-character delimiter")
	}

	c = Config{OutputDelimiter: "|"}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if c.Delimiter() != '|' {
		t.Errorf("Delimiter() = %q, want '|'", c.Delimiter())
	}

	c = Config{}
	if c.Delimiter() != ',' {
		t.Errorf("default Delimiter() = %q, want ','", c.Delimiter())
	}
}

func TestValidate_LogFormat(t *testing.T) {
	c := Config{LogFormat: "xml"}
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
	for _, f := range []string{"", "text", "json"} {
		c := Config{LogFormat: f}
		if err := c.Validate(); err != nil {
			t.Errorf("Validate(%q): %v", f, err)
		}
	}
}
