package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.TempPrefix != "_E4_" || cfg.Output.Indent != "\t" {
		t.Fatalf("unexpected defaults: %+v", cfg.Output)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".matlangc.yaml")
	contents := "output:\n  indent: \"    \"\n  tempPrefix: \"_tmp_\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Indent != "    " {
		t.Fatalf("Indent = %q, want four spaces", cfg.Output.Indent)
	}
	if cfg.Output.TempPrefix != "_tmp_" {
		t.Fatalf("TempPrefix = %q, want _tmp_", cfg.Output.TempPrefix)
	}
}
