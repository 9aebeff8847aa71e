// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/voterlookup/lib/voterstore"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "voter-lookup.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Endpoint != voterstore.DefaultEndpoint {
		t.Errorf("expected endpoint=%s, got %s", voterstore.DefaultEndpoint, cfg.Endpoint)
	}
	if cfg.RequestTimeout() != 180*time.Second {
		t.Errorf("expected timeout=180s, got %s", cfg.RequestTimeout())
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected log_level=warn, got %s", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestResolve_NoFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Endpoint != voterstore.DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", cfg.Endpoint)
	}
}

func TestResolve_EnvironmentVariable(t *testing.T) {
	configPath := writeConfig(t, "timeout: 30s\n")
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("expected timeout=30s from env-named file, got %s", cfg.RequestTimeout())
	}
}

func TestResolve_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv(EnvironmentVariable, writeConfig(t, "timeout: 30s\n"))
	flagPath := writeConfig(t, "timeout: 5s\n")

	cfg, err := Resolve(flagPath)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Errorf("expected timeout=5s from flag-named file, got %s", cfg.RequestTimeout())
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("HOME", "/home/ward")
	configPath := writeConfig(t, `
endpoint: http://localhost:8080/api/voters?limit=all
timeout: 2m
file: ${HOME}/voters.json
log_output: ${LOG_DIR:-/tmp}/voter-lookup.jsonl
log_level: debug
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Endpoint != "http://localhost:8080/api/voters?limit=all" {
		t.Errorf("expected local endpoint, got %s", cfg.Endpoint)
	}
	if cfg.RequestTimeout() != 2*time.Minute {
		t.Errorf("expected timeout=2m, got %s", cfg.RequestTimeout())
	}
	if cfg.File != "/home/ward/voters.json" {
		t.Errorf("expected expanded file path, got %s", cfg.File)
	}
	if cfg.LogOutput != "/tmp/voter-lookup.jsonl" {
		t.Errorf("expected default-expanded log path, got %s", cfg.LogOutput)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level=debug, got %s", cfg.LogLevel)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "log_level: info\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Endpoint != voterstore.DefaultEndpoint {
		t.Errorf("unset endpoint should keep the default, got %s", cfg.Endpoint)
	}
	if cfg.Timeout != "3m0s" {
		t.Errorf("unset timeout should keep the default, got %s", cfg.Timeout)
	}
}

func TestLoadFile_EmptyDocument(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("empty file should load as defaults: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "endpont: https://example.com\n", "endpont"},
		{"bad yaml", "endpoint: [unclosed\n", "parsing config"},
		{"bad timeout", "timeout: soon\n", "timeout"},
		{"zero timeout", "timeout: 0s\n", "timeout must be positive"},
		{"bad level", "log_level: loud\n", "log_level"},
		{"ftp endpoint", "endpoint: ftp://example.com/voters\n", "http or https"},
		{"relative endpoint", "endpoint: /api/voters\n", "http or https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidate_FileSkipsEndpoint(t *testing.T) {
	cfg := Default()
	cfg.Endpoint = ""
	cfg.File = "/data/voters.json"
	if err := cfg.Validate(); err != nil {
		t.Errorf("endpoint should not be required with file set: %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := &Config{Endpoint: "nope://", Timeout: "-1s", LogLevel: "loud"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{"endpoint", "timeout", "log_level"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected %q in joined error %q", fragment, err.Error())
		}
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/voters.json",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/voters.json",
		},
		{
			input:    "${MISSING_VOTER_VAR:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
