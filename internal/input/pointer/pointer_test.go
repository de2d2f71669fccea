package pointer

import (
	"testing"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
)

func TestButtonRoles(t *testing.T) {
	if !ButtonLeft.IsPrimary() || ButtonLeft.IsSecondary() {
		t.Error("left button roles wrong")
	}
	if !ButtonRight.IsSecondary() || ButtonRight.IsPrimary() {
		t.Error("right button roles wrong")
	}
	if ButtonNone.IsPrimary() || ButtonMiddle.IsPrimary() {
		t.Error("non-left buttons report primary")
	}
}

func TestKindIsTouch(t *testing.T) {
	if !KindTouch.IsTouch() {
		t.Error("touch not recognized")
	}
	if KindMouse.IsTouch() || KindPen.IsTouch() {
		t.Error("mouse or pen recognized as touch")
	}
}

func TestWithTarget(t *testing.T) {
	orig := &Event{
		ID:     7,
		Screen: geo.Point{X: 1, Y: 2},
		Target: &feature.Target{Kind: feature.KindNode, ID: "n1"},
	}
	swapped := orig.WithTarget(nil)

	if swapped == orig {
		t.Fatal("WithTarget returned the same event")
	}
	if swapped.Target != nil {
		t.Error("target not replaced")
	}
	if swapped.ID != 7 || !swapped.Screen.Equal(orig.Screen) {
		t.Error("copy dropped fields")
	}
	if orig.Target == nil {
		t.Error("original mutated")
	}
}
