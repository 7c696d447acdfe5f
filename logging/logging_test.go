package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := ParseLevel(c.in); got != c.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
		debug   bool
	}{
		{"production_json", Config{Level: "info"}, false, false},
		{"development_console", Config{Level: "debug", Format: "console", Development: true}, false, true},
		{"bad_format", Config{Format: "xml"}, true, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.cfg.OutputPaths = []string{"stdout"}
			log, err := New(c.cfg)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := log.Core().Enabled(zapcore.DebugLevel); got != c.debug {
				t.Fatalf("debug enabled = %v, want %v", got, c.debug)
			}
		})
	}
}
