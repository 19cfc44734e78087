package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("data_dir: /data\nlisten: \":9000\"\nlog_format: json\nmax_upload_mb: 10\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.DataDir != "/data" || c.ListenAddr != ":9000" || c.LogFormat != "json" || c.MaxUploadMB != 10 {
		t.Errorf("unexpected config: %+v", c)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("data_dir: /file\nlog_format: json\n"), 0644)

	c := Config{DataDir: "/flag"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.DataDir != "/flag" {
		t.Errorf("DataDir = %q, flag value should win", c.DataDir)
	}
	if c.LogFormat != "json" {
		t.Errorf("LogFormat = %q, unset field should merge", c.LogFormat)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_Defaults(t *testing.T) {
	c := Config{DataDir: t.TempDir()}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text default", c.LogFormat)
	}
	if c.MaxUploadMB != DefaultMaxUploadMB {
		t.Errorf("MaxUploadMB = %d, want %d", c.MaxUploadMB, DefaultMaxUploadMB)
	}
}

func TestValidate_MissingDataDir(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing data dir")
	}
	c = Config{DataDir: "/does/not/exist"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for inaccessible data dir")
	}
}

func TestValidate_BadLogFormat(t *testing.T) {
	c := Config{DataDir: t.TempDir(), LogFormat: "xml"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for bad log format")
	}
}

func TestValidateServe_ListenDefault(t *testing.T) {
	c := Config{DataDir: t.TempDir()}
	if err := c.ValidateServe(); err != nil {
		t.Fatalf("ValidateServe: %v", err)
	}
	if c.ListenAddr != DefaultListenAddr {
		t.Errorf("ListenAddr = %q, want %q", c.ListenAddr, DefaultListenAddr)
	}
}
