package brush

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/akmonengine/brush/geom"
	"github.com/go-gl/mathgl/mgl64"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestLogger_DegenerateWarning(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	tests := []struct {
		name   string
		config Config
		warn   bool
	}{
		{"quiet", DefaultConfig(), false},
		{"verbose", Config{MaxWorldCoord: DefaultMaxWorldCoord, LogDegenerate: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			b := NewBrush(tt.config)
			b.AddFace(geom.Plane{Normal: mgl64.Vec3{0, 0, 1}, Dist: 8})
			b.EvaluateBRep()

			if got := strings.Contains(buf.String(), "brush: degenerate"); got != tt.warn {
				t.Errorf("warning logged = %v, want %v: %q", got, tt.warn, buf.String())
			}
		})
	}
}

func TestLogger_RebuildStatistics(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	b := createCube(t, 8)
	b.EvaluateBRep()

	out := buf.String()
	if !strings.Contains(out, "brush: rebuilt B-Rep") || !strings.Contains(out, "vertices=8") || !strings.Contains(out, "edges=12") {
		t.Errorf("unexpected log output %q", out)
	}
	if strings.Contains(out, "level=ERROR") {
		t.Errorf("cube should satisfy Euler: %q", out)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		valid  bool
	}{
		{"default", DefaultConfig(), true},
		{"zero", Config{}, false},
		{"negative", Config{MaxWorldCoord: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, valid %v", err, tt.valid)
			}
		})
	}

	if NewBrush(Config{}).Config().MaxWorldCoord != DefaultMaxWorldCoord {
		t.Error("NewBrush should fall back to the default world size")
	}
}
