// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/voterlookup/lib/cli"
	"github.com/bureau-foundation/voterlookup/lib/config"
)

const rollJSON = `{"success": true, "data": [
	{"_id": "1", "name": "Ramesh", "LASTNAME_EN": "Patil", "voterIdCard": "ABC123", "mobileNumber": "9800000001"},
	{"_id": "2", "name": "Suresh", "LASTNAME_EN": "Patil", "voterIdCard": "ABC456"},
	{"_id": "3", "name": "Sunita", "LASTNAME_EN": "Jadhav"}
]}`

func rollServer(t *testing.T, requests *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if requests != nil {
			*requests++
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(rollJSON))
	}))
	t.Cleanup(server.Close)
	return server
}

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := runArgs(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.HasPrefix(stdout, "voter-lookup ") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestHelpFlag(t *testing.T) {
	for _, flag := range []string{"-h", "--help"} {
		_, stderr, err := runArgs(t, flag)
		if err != nil {
			t.Fatalf("%s: %v", flag, err)
		}
		for _, want := range []string{"Usage:", "--query", "--url", "--file"} {
			if !strings.Contains(stderr, want) {
				t.Errorf("%s output should mention %q", flag, want)
			}
		}
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"unexpected argument", []string{"patil"}},
		{"zero timeout", []string{"--timeout", "0s", "--query", "x"}},
		{"unparseable timeout", []string{"--timeout", "soon", "--query", "x"}},
		{"non-http endpoint", []string{"--url", "ftp://example.com/roll", "--query", "x"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := runArgs(t, test.args...)
			var toolErr *cli.ToolError
			if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryValidation {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if code := cli.ExitCode(err); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
		})
	}
}

func TestQueryPrintsMatches(t *testing.T) {
	requests := 0
	server := rollServer(t, &requests)

	stdout, _, err := runArgs(t, "--url", server.URL, "--query", "patil")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
	for _, want := range []string{"कुल मतदार: 3", "2 परिणाम सापडले", "Ramesh", "Suresh", "ABC456"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "Sunita") {
		t.Error("non-matching records should not be printed")
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Error("output to a non-terminal should carry no ANSI escapes")
	}
}

func TestEmptyQueryPrintsSummary(t *testing.T) {
	server := rollServer(t, nil)
	stdout, _, err := runArgs(t, "--url", server.URL, "--query", "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(stdout) != "कुल मतदार: 3" {
		t.Errorf("output = %q, want the summary only", stdout)
	}
}

func TestQueryWithoutMatchesExitsOne(t *testing.T) {
	server := rollServer(t, nil)
	stdout, _, err := runArgs(t, "--url", server.URL, "--query", "zzz")
	if !strings.Contains(stdout, "कोणतेही परिणाम सापडले नाही") {
		t.Errorf("output should show the no-results text:\n%s", stdout)
	}
	if code := cli.ExitCode(err); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !cli.Silent(err) {
		t.Error("no-match exit should not print an extra error")
	}
}

func TestQueryLoadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	stdout, _, err := runArgs(t, "--url", server.URL, "--query", "patil")
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryTransient {
		t.Fatalf("expected a transient error, got %v", err)
	}
	if toolErr.Hint == "" {
		t.Error("load failure should carry a hint")
	}
	if cli.ExitCode(err) != 1 || cli.Silent(err) {
		t.Error("load failure should exit 1 and be printed")
	}
	if stdout != "" {
		t.Errorf("nothing should be printed on failure, got %q", stdout)
	}
}

func TestQueryFromFile(t *testing.T) {
	path := writeFile(t, "roll.jsonc", `// saved copy
[
	{"name": "Ramesh", "voterIdCard": "ABC123"},
	{"name": "Sunita", "mobileNumber": "9800000003"}, // trailing comma
]`)

	stdout, _, err := runArgs(t, "--file", path, "--query", "9800")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, "1 परिणाम सापडले") || !strings.Contains(stdout, "Sunita") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestQueryMissingFile(t *testing.T) {
	_, _, err := runArgs(t, "--file", filepath.Join(t.TempDir(), "absent.json"), "--query", "x")
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryNotFound {
		t.Fatalf("expected a not-found error, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("error chain should keep os.ErrNotExist")
	}
}

func TestConfigFile(t *testing.T) {
	server := rollServer(t, nil)
	configPath := writeFile(t, "voter-lookup.yaml", "endpoint: "+server.URL+"\ntimeout: 5s\n")

	stdout, _, err := runArgs(t, "--config", configPath, "--query", "jadhav")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, "Sunita") {
		t.Errorf("config endpoint should be used:\n%s", stdout)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	server := rollServer(t, nil)
	configPath := writeFile(t, "voter-lookup.yaml", "endpoint: "+server.URL+"\n")

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvironmentVariable, configPath)
	if err := run([]string{"--query", "ramesh"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout.String(), "ABC123") {
		t.Errorf("environment config should be used:\n%s", stdout.String())
	}
}

func TestFlagOverridesConfigFile(t *testing.T) {
	server := rollServer(t, nil)
	configPath := writeFile(t, "voter-lookup.yaml", "endpoint: http://127.0.0.1:1/unreachable\n")

	stdout, _, err := runArgs(t, "--config", configPath, "--url", server.URL, "--query", "suresh")
	if err != nil {
		t.Fatalf("--url should override the config endpoint: %v", err)
	}
	if !strings.Contains(stdout, "ABC456") {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestConfigErrors(t *testing.T) {
	unknownKey := writeFile(t, "bad.yaml", "endpoint: http://example.com\ncolour: red\n")
	_, _, err := runArgs(t, "--config", unknownKey, "--query", "x")
	if cli.ExitCode(err) != 2 {
		t.Errorf("unknown config key should be a usage error, got %v", err)
	}

	_, _, err = runArgs(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryNotFound {
		t.Errorf("missing config should be not-found, got %v", err)
	}
}

func TestQueryLogOutput(t *testing.T) {
	server := rollServer(t, nil)
	logPath := filepath.Join(t.TempDir(), "voter-lookup.log")

	if _, _, err := runArgs(t, "--url", server.URL, "--query", "patil", "--log-output", logPath); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var entry map[string]any
	line, _, _ := strings.Cut(string(data), "\n")
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log file should hold JSON records: %v\n%s", err, data)
	}
	if entry["msg"] != "voter dataset loaded" || entry["records"] != float64(3) {
		t.Errorf("unexpected log record %v", entry)
	}
}

func TestFanoutHandler(t *testing.T) {
	var warnOutput, debugOutput bytes.Buffer
	warnHandler := slog.NewTextHandler(&warnOutput, &slog.HandlerOptions{Level: slog.LevelWarn})
	debugHandler := slog.NewTextHandler(&debugOutput, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := fanoutHandler{warnHandler, debugHandler}

	if !handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("fanout should be enabled when any handler is")
	}

	logger := slog.New(handler).With("component", "store").WithGroup("load")
	logger.Debug("request sent")
	logger.Warn("slow response", "elapsed", time.Second)

	if strings.Contains(warnOutput.String(), "request sent") {
		t.Error("warn handler should not receive debug records")
	}
	if !strings.Contains(warnOutput.String(), "component=store") ||
		!strings.Contains(warnOutput.String(), "load.elapsed=1s") {
		t.Errorf("derived attrs and groups should reach every handler:\n%s", warnOutput.String())
	}
	if strings.Count(debugOutput.String(), "\n") != 2 {
		t.Errorf("debug handler should receive both records:\n%s", debugOutput.String())
	}
}
