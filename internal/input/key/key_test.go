package key

import "testing"

func TestModifierOperations(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)

	if !m.HasCtrl() || !m.HasShift() {
		t.Error("With did not set the modifiers")
	}
	if m.HasAlt() || m.HasMeta() {
		t.Error("unrelated modifiers set")
	}
	if m.Without(ModCtrl).HasCtrl() {
		t.Error("Without did not clear Ctrl")
	}
	if !ModNone.IsEmpty() || m.IsEmpty() {
		t.Error("IsEmpty wrong")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModMeta | ModShift, "Ctrl+Alt+Meta+Shift"},
	}
	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("String(%b) = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestDisablesSnap(t *testing.T) {
	tests := []struct {
		name  string
		mods  Modifier
		apple bool
		want  bool
	}{
		{"none", ModNone, false, false},
		{"shift only", ModShift, false, false},
		{"alt", ModAlt, false, true},
		{"alt on apple", ModAlt, true, true},
		{"meta", ModMeta, false, true},
		{"meta on apple", ModMeta, true, true},
		{"ctrl", ModCtrl, false, true},
		{"ctrl on apple reserved for system menu", ModCtrl, true, false},
		{"ctrl+shift on apple", ModCtrl | ModShift, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mods.DisablesSnap(tt.apple); got != tt.want {
				t.Errorf("DisablesSnap(%v) = %v, want %v", tt.apple, got, tt.want)
			}
		})
	}
}

func TestEventIsSpace(t *testing.T) {
	if !(Event{Key: KeySpace}).IsSpace() {
		t.Error("dedicated space key not recognized")
	}
	if !(Event{Key: KeyRune, Rune: ' '}).IsSpace() {
		t.Error("space rune not recognized")
	}
	if (Event{Key: KeyRune, Rune: 'x'}).IsSpace() {
		t.Error("rune x recognized as space")
	}
}

func TestEventIsEscape(t *testing.T) {
	if !(Event{Key: KeyEscape}).IsEscape() {
		t.Error("plain Escape not recognized")
	}
	if (Event{Key: KeyEscape, Modifiers: ModShift}).IsEscape() {
		t.Error("modified Escape recognized")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Key: KeySpace}, "Space"},
		{Event{Key: KeyEscape, Modifiers: ModCtrl}, "Ctrl+Esc"},
		{Event{Key: KeyRune, Rune: 'a', Modifiers: ModShift}, "Shift+a"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
