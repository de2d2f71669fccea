package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nyampire/Rapid/internal/gesture"
	"github.com/nyampire/Rapid/internal/selection"
)

// ErrInvalid indicates a configuration value outside its legal range.
var ErrInvalid = errors.New("config: invalid value")

// Config bundles the tunable parts of the gesture engine.
type Config struct {
	// Gesture holds the classifier thresholds and feature toggles.
	Gesture gesture.Config

	// Selection holds the dispatcher configuration.
	Selection selection.Config

	// Providers names the QA providers with a dedicated menu.
	Providers []string
}

// Default returns the engine defaults for the running platform.
func Default() Config {
	return Config{
		Gesture:   gesture.DefaultConfig(),
		Selection: selection.DefaultConfig(),
		Providers: []string{"osmose"},
	}
}

// Load reads a JSON configuration file. A missing file yields the
// defaults; a present file overrides only the keys it sets.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a JSON document over the defaults and validates the
// result.
func Parse(data []byte) (Config, error) {
	c := Default()

	if v := gjson.GetBytes(data, "gesture.nearTolerance"); v.Exists() {
		c.Gesture.NearTolerance = v.Float()
	}
	if v := gjson.GetBytes(data, "gesture.farTolerance"); v.Exists() {
		c.Gesture.FarTolerance = v.Float()
	}
	if v := gjson.GetBytes(data, "gesture.doubleClickMs"); v.Exists() {
		c.Gesture.DoubleClickWindow = time.Duration(v.Int()) * time.Millisecond
	}
	if v := gjson.GetBytes(data, "gesture.longPressMs"); v.Exists() {
		c.Gesture.LongPressDelay = time.Duration(v.Int()) * time.Millisecond
	}
	if v := gjson.GetBytes(data, "gesture.enableLongPress"); v.Exists() {
		c.Gesture.EnableLongPress = v.Bool()
	}
	if v := gjson.GetBytes(data, "gesture.enableContextMenu"); v.Exists() {
		c.Gesture.EnableContextMenu = v.Bool()
	}
	if v := gjson.GetBytes(data, "selection.debounceMs"); v.Exists() {
		c.Selection.DebounceWindow = time.Duration(v.Int()) * time.Millisecond
	}
	if v := gjson.GetBytes(data, "selection.enableZoomGuard"); v.Exists() {
		c.Selection.EnableZoomGuard = v.Bool()
	}
	if v := gjson.GetBytes(data, "menu.providers"); v.Exists() {
		c.Providers = c.Providers[:0]
		for _, p := range v.Array() {
			c.Providers = append(c.Providers, p.String())
		}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the legal ranges.
func (c Config) Validate() error {
	if c.Gesture.NearTolerance <= 0 {
		return fmt.Errorf("%w: gesture.nearTolerance %v", ErrInvalid, c.Gesture.NearTolerance)
	}
	if c.Gesture.FarTolerance < c.Gesture.NearTolerance {
		return fmt.Errorf("%w: gesture.farTolerance %v below nearTolerance", ErrInvalid, c.Gesture.FarTolerance)
	}
	if c.Gesture.DoubleClickWindow <= 0 {
		return fmt.Errorf("%w: gesture.doubleClickMs %v", ErrInvalid, c.Gesture.DoubleClickWindow)
	}
	if c.Gesture.LongPressDelay <= 0 {
		return fmt.Errorf("%w: gesture.longPressMs %v", ErrInvalid, c.Gesture.LongPressDelay)
	}
	if c.Selection.DebounceWindow <= 0 {
		return fmt.Errorf("%w: selection.debounceMs %v", ErrInvalid, c.Selection.DebounceWindow)
	}
	return nil
}

// Marshal encodes the configuration as a JSON document.
func (c Config) Marshal() ([]byte, error) {
	doc := []byte("{}")
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}

	set("gesture.nearTolerance", c.Gesture.NearTolerance)
	set("gesture.farTolerance", c.Gesture.FarTolerance)
	set("gesture.doubleClickMs", c.Gesture.DoubleClickWindow.Milliseconds())
	set("gesture.longPressMs", c.Gesture.LongPressDelay.Milliseconds())
	set("gesture.enableLongPress", c.Gesture.EnableLongPress)
	set("gesture.enableContextMenu", c.Gesture.EnableContextMenu)
	set("selection.debounceMs", c.Selection.DebounceWindow.Milliseconds())
	set("selection.enableZoomGuard", c.Selection.EnableZoomGuard)
	set("menu.providers", c.Providers)

	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return doc, nil
}

// Write saves the configuration to path.
func (c Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
