// Package helpers provides shared utilities for integration tests.
package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/breakaway-dev/rinkctl/internal/cli"
	"github.com/breakaway-dev/rinkctl/internal/config"
)

// CLIHelper drives full rinkctl command invocations for integration tests.
type CLIHelper struct {
	t *testing.T
}

// NewCLIHelper creates a CLI test helper bound to the given test.
func NewCLIHelper(t *testing.T) *CLIHelper {
	t.Helper()
	return &CLIHelper{t: t}
}

// Execute runs a rinkctl command and returns its combined output.
func (h *CLIHelper) Execute(args ...string) (string, error) {
	h.t.Helper()

	var buf bytes.Buffer
	root := cli.NewRootCmd("integration-test")
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// CreateTempDir creates a temp directory removed when the test ends.
func (h *CLIHelper) CreateTempDir() string {
	h.t.Helper()
	return h.t.TempDir()
}

// CreateTempFile writes content to a file under dir and returns its path.
func (h *CLIHelper) CreateTempFile(dir, name, content string) string {
	h.t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		h.t.Fatalf("writing temp file %s: %v", path, err)
	}
	return path
}

// Join joins path elements, shorthand for filepath.Join in test tables.
func (h *CLIHelper) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// WithEnv runs fn with the given environment variables applied. The previous
// values are restored and the cached global config is dropped afterwards, so
// each call sees a fresh configuration load.
func (h *CLIHelper) WithEnv(env map[string]string, fn func()) {
	h.t.Helper()

	restore := make(map[string]*string, len(env))
	for key, value := range env {
		if prev, ok := os.LookupEnv(key); ok {
			restore[key] = &prev
		} else {
			restore[key] = nil
		}
		if err := os.Setenv(key, value); err != nil {
			h.t.Fatalf("setting env %s: %v", key, err)
		}
	}
	config.ResetGlobalConfigForTest()

	defer func() {
		for key, prev := range restore {
			if prev == nil {
				_ = os.Unsetenv(key)
			} else {
				_ = os.Setenv(key, *prev)
			}
		}
		config.ResetGlobalConfigForTest()
	}()

	fn()
}

// StartBackend serves handler on a local listener until the test ends.
func (h *CLIHelper) StartBackend(handler http.Handler) *httptest.Server {
	h.t.Helper()
	server := httptest.NewServer(handler)
	h.t.Cleanup(server.Close)
	return server
}

// DecodeJSON unmarshals a command's JSON output into out.
func (h *CLIHelper) DecodeJSON(output string, out any) {
	h.t.Helper()
	if err := json.Unmarshal([]byte(output), out); err != nil {
		h.t.Fatalf("decoding JSON output: %v\noutput:\n%s", err, output)
	}
}
