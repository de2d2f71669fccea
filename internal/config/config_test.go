package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseOverridesDefaults(t *testing.T) {
	doc := []byte(`{
		"gesture": {
			"nearTolerance": 6,
			"doubleClickMs": 400,
			"enableLongPress": false
		},
		"selection": {"debounceMs": 250},
		"menu": {"providers": ["osmose", "keepright"]}
	}`)

	c, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	if c.Gesture.NearTolerance != 6 {
		t.Errorf("NearTolerance = %v", c.Gesture.NearTolerance)
	}
	if c.Gesture.FarTolerance != 12 {
		t.Errorf("FarTolerance = %v, want the untouched default", c.Gesture.FarTolerance)
	}
	if c.Gesture.DoubleClickWindow != 400*time.Millisecond {
		t.Errorf("DoubleClickWindow = %v", c.Gesture.DoubleClickWindow)
	}
	if c.Gesture.EnableLongPress {
		t.Error("EnableLongPress not overridden")
	}
	if c.Selection.DebounceWindow != 250*time.Millisecond {
		t.Errorf("DebounceWindow = %v", c.Selection.DebounceWindow)
	}
	if len(c.Providers) != 2 || c.Providers[1] != "keepright" {
		t.Errorf("Providers = %v", c.Providers)
	}
}

func TestParseEmptyDocumentIsDefault(t *testing.T) {
	c, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	d := Default()
	if c.Gesture != d.Gesture || c.Selection != d.Selection {
		t.Error("empty document changed the defaults")
	}
	if len(c.Providers) != 1 || c.Providers[0] != "osmose" {
		t.Errorf("Providers = %v", c.Providers)
	}
}

func TestParseInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero near tolerance", `{"gesture": {"nearTolerance": 0}}`},
		{"far below near", `{"gesture": {"farTolerance": 2}}`},
		{"zero double-click window", `{"gesture": {"doubleClickMs": 0}}`},
		{"negative long-press delay", `{"gesture": {"longPressMs": -1}}`},
		{"zero debounce", `{"selection": {"debounceMs": 0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if c.Gesture != Default().Gesture {
		t.Error("missing file did not yield the defaults")
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rapid.json")

	c := Default()
	c.Gesture.FarTolerance = 20
	c.Selection.EnableZoomGuard = false
	c.Providers = []string{"keepright"}
	if err := c.Write(path); err != nil {
		t.Fatalf("Write = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if got.Gesture.FarTolerance != 20 {
		t.Errorf("FarTolerance = %v", got.Gesture.FarTolerance)
	}
	if got.Selection.EnableZoomGuard {
		t.Error("EnableZoomGuard survived the round trip as true")
	}
	if len(got.Providers) != 1 || got.Providers[0] != "keepright" {
		t.Errorf("Providers = %v", got.Providers)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits do not bind root")
	}
	path := filepath.Join(t.TempDir(), "rapid.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o000); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("unreadable file loaded without error")
	}
}
