package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mdwlog "github.com/msto63/pcbuild/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"invalid", mdwlog.LevelInfo},
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(LoggerConfig{
		ServiceName: "pcbuild",
		Level:       "debug",
		Format:      "json",
		Output:      &buf,
	})

	logger.Debug("part added", "category", "processor", "count", 1)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "part added" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["category"] != "processor" {
		t.Errorf("category = %v", entry["category"])
	}
	if entry["logger"] != "pcbuild" {
		t.Errorf("logger = %v", entry["logger"])
	}
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(LoggerConfig{Level: "warn", Format: "text", Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("debug and info must be filtered at warn: %q", buf.String())
	}

	logger.Warn("shown", "key", "value")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("unexpected text output: %q", buf.String())
	}
}

func TestLogger_NamedAndWith(t *testing.T) {
	var buf bytes.Buffer
	root := NewFromConfig(LoggerConfig{ServiceName: "pcbuild", Level: "info", Format: "text", Output: &buf})

	child := root.Named("build").With("build_id", "abc")
	if child.Name() != "pcbuild.build" {
		t.Errorf("Name() = %q", child.Name())
	}

	child.Info("kit applied")
	out := buf.String()
	if !strings.Contains(out, "{pcbuild.build}") || !strings.Contains(out, "build_id=abc") {
		t.Errorf("unexpected output: %q", out)
	}

	buf.Reset()
	root.Info("root entry")
	if strings.Contains(buf.String(), "build_id") {
		t.Error("With must not modify the parent logger")
	}
}

func TestLogger_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(LoggerConfig{ServiceName: "test", Level: "error", Output: &buf})
	result := logger.WithLevel(mdwlog.LevelDebug)

	if result.name != "test" {
		t.Errorf("name should be preserved: got %v", result.name)
	}
	logger.Debug("still hidden")
	if buf.Len() != 0 {
		t.Errorf("WithLevel must not change the parent logger: %q", buf.String())
	}
	result.Debug("now visible")
	if buf.Len() == 0 {
		t.Error("WithLevel(LevelDebug) should enable debug output")
	}
}

func TestLogger_Nop(t *testing.T) {
	nop := Nop()
	nop.Error("dropped", "key", "value")
	if nop.IsLevelEnabled(mdwlog.LevelError) {
		t.Error("Nop must not enable any level")
	}
}

func TestLogger_OddKeyValues(t *testing.T) {
	logger := Nop()

	// Should not panic with odd number of key-values
	logger.Info("message", "key1", "value1", "orphan")
}

func TestToFields(t *testing.T) {
	fields := toFields()
	if fields != nil {
		t.Error("toFields() with no args should return nil")
	}

	fields = toFields("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	fields = toFields(123, "value")
	if len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := Nop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", "iteration", i)
	}
}
