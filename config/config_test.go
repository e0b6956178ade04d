package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mandel "mandelview"
	"mandelview/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mandelview.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  height: 720
frame:
  budget: 8ms
remote:
  enabled: true
`)
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := config.Default()
	want.Window.Width = 1280
	want.Window.Height = 720
	want.Frame.Budget = config.Duration(8 * time.Millisecond)
	want.Remote.Enabled = true

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "zero window",
			content: "window:\n  width: 0\n",
			wantErr: "window size",
		},
		{
			name:    "bad budget",
			content: "frame:\n  budget: fast\n",
			wantErr: "parse duration",
		},
		{
			name:    "unknown landmark",
			content: "view:\n  landmark: atlantis\n",
			wantErr: "unknown landmark",
		},
		{
			name:    "bad domain",
			content: "view:\n  real_domain: -1\n",
			wantErr: "real_domain",
		},
		{
			name:    "iterations out of range",
			content: "view:\n  real_domain: 4\n  iterations: 9999999\n",
			wantErr: "iterations",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestParamsExplicitView(t *testing.T) {
	c := config.Default()
	c.View.Re = -0.7465
	c.View.Im = 0.0965
	c.View.RealDomain = 0.003
	c.View.Iterations = 1024

	got := c.Params(640, 480)
	want := mandel.Params{
		Center:     complex(-0.7465, 0.0965),
		Width:      640,
		Height:     480,
		RealDomain: 0.003,
		Iterations: 1024,
	}
	if got != want {
		t.Errorf("Params = %+v, want %+v", got, want)
	}
}

func TestParamsLandmarkView(t *testing.T) {
	c := config.Default()
	c.View.Landmark = "seahorse-valley"

	if got, want := c.Params(640, 480), mandel.SeahorseValley.View(640, 480); got != want {
		t.Errorf("Params = %+v, want %+v", got, want)
	}
}
