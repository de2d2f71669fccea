package selection

import (
	"runtime"
	"sync"
	"time"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/gesture"
	"github.com/nyampire/Rapid/internal/input/key"
	"github.com/nyampire/Rapid/internal/input/pointer"
	"github.com/nyampire/Rapid/internal/mode"
)

// ModeHost enters editing modes and reports the current one.
// *mode.Manager satisfies it.
type ModeHost interface {
	Enter(name string, p mode.Payload) error
	CurrentName() string
	SelectedIDs() []string
}

// ZoomGuard toggles the host's built-in double-click-zoom gesture.
type ZoomGuard interface {
	DisableDoubleClickZoom()
	EnableDoubleClickZoom()
}

// PhotoSelector selects a photo by layer and photo identifier. Photo
// selection never alters the main editing selection.
type PhotoSelector interface {
	SelectPhoto(layer, photoID string)
}

// MenuState reports whether the edit menu is open; a Shift-click
// deselect is suppressed while it is.
type MenuState interface {
	EditMenuOpen() bool
}

// Inserter receives accepted double-clicks after the selection
// transition, to perform the vertex insertion.
type Inserter interface {
	Insert(ev *pointer.Event)
}

// Config configures the selection dispatcher.
type Config struct {
	// DebounceWindow is how long the host's double-click-zoom stays
	// disabled after a click on a real target.
	DebounceWindow time.Duration

	// EnableZoomGuard enables the zoom-suppression debounce.
	EnableZoomGuard bool

	// Apple selects the Apple modifier convention: Ctrl+click is the
	// system context menu there, so Ctrl does not disable snap.
	Apple bool
}

// DefaultConfig returns the standard dispatcher configuration for the
// running platform.
func DefaultConfig() Config {
	return Config{
		DebounceWindow:  500 * time.Millisecond,
		EnableZoomGuard: true,
		Apple:           runtime.GOOS == "darwin",
	}
}

// Dispatcher maps accepted clicks and double-clicks, together with
// whatever was under the pointer, onto selection and mode
// transitions. It implements gesture.SelectionSink.
type Dispatcher struct {
	mu  sync.Mutex
	cfg Config
	sch gesture.Scheduler

	modes  ModeHost
	mods   key.StateFunc
	zoom   ZoomGuard
	photos PhotoSelector
	menus  MenuState
	ins    Inserter

	// debounce is the pending zoom re-enable task; debounceGen
	// invalidates callbacks from superseded windows.
	debounce     gesture.Timer
	debounceGen  uint64
	zoomDisabled bool
}

// NewDispatcher creates a selection dispatcher. modes and mods are
// required; the other collaborators may be nil.
func NewDispatcher(cfg Config, sch gesture.Scheduler, modes ModeHost, mods key.StateFunc) *Dispatcher {
	if sch == nil {
		sch = gesture.SystemScheduler()
	}
	if mods == nil {
		mods = func() key.Modifier { return key.ModNone }
	}
	return &Dispatcher{
		cfg:   cfg,
		sch:   sch,
		modes: modes,
		mods:  mods,
	}
}

// SetZoomGuard wires the host's double-click-zoom toggle.
func (d *Dispatcher) SetZoomGuard(z ZoomGuard) { d.zoom = z }

// SetPhotoSelector wires the photo collaborator.
func (d *Dispatcher) SetPhotoSelector(p PhotoSelector) { d.photos = p }

// SetMenuState wires the edit-menu open query.
func (d *Dispatcher) SetMenuState(m MenuState) { d.menus = m }

// SetInserter wires the double-click vertex inserter.
func (d *Dispatcher) SetInserter(i Inserter) { d.ins = i }

// Click implements gesture.SelectionSink.
func (d *Dispatcher) Click(ev *pointer.Event) {
	d.dispatch(ev, d.mods())
}

// DoubleClick implements gesture.SelectionSink. The selection
// transition runs first, then the vertex insertion.
func (d *Dispatcher) DoubleClick(ev *pointer.Event) {
	mods := d.mods()
	d.dispatch(ev, mods)

	// A snap-disabling modifier made this double-click count as
	// hitting nothing; it must not edit geometry either.
	if d.ins != nil && !mods.DisablesSnap(d.cfg.Apple) {
		d.ins.Insert(ev)
	}
}

// EnsureSelected implements gesture.SelectionSink: make the event's
// target selected if it is not already, without toggling.
func (d *Dispatcher) EnsureSelected(ev *pointer.Event) {
	target := d.effectiveTarget(ev, d.mods())
	if target == nil {
		return
	}

	switch target.Kind {
	case feature.KindNode, feature.KindSegment:
		if contains(d.modes.SelectedIDs(), target.ID) {
			return
		}
		d.enterOSM([]string{target.ID})

	case feature.KindForeign, feature.KindQA, feature.KindDetection:
		d.enterGeneric(target)
	}
}

// Reset implements gesture.SelectionSink: cancel the pending debounce
// and restore the host's zoom gesture.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	if d.debounce != nil {
		d.debounce.Stop()
		d.debounce = nil
	}
	d.debounceGen++
	restore := d.zoomDisabled
	d.zoomDisabled = false
	zoom := d.zoom
	d.mu.Unlock()

	if restore && zoom != nil {
		zoom.EnableDoubleClickZoom()
	}
}

// dispatch applies the selection rules for one accepted gesture. The
// modifiers are sampled once per gesture; the shift and snap decisions
// must not disagree when the keyboard state changes mid-dispatch.
func (d *Dispatcher) dispatch(ev *pointer.Event, mods key.Modifier) {
	multiselect := mods.HasShift()

	target := d.effectiveTarget(ev, mods)
	if target != nil {
		d.armZoomGuard()
	}

	if target == nil {
		d.clickedNothing(multiselect)
		return
	}

	switch target.Kind {
	case feature.KindForeign, feature.KindQA, feature.KindDetection:
		d.enterGeneric(target)

	case feature.KindNode, feature.KindSegment:
		d.clickedEntity(target, multiselect)

	case feature.KindPhoto:
		if d.photos != nil {
			d.photos.SelectPhoto(target.Layer, target.PhotoID)
		}
	}
}

// effectiveTarget resolves the event's target after the snap-disable
// and midpoint-redirect rules. A held snap-disabling modifier makes
// the click count as having hit nothing.
func (d *Dispatcher) effectiveTarget(ev *pointer.Event, mods key.Modifier) *feature.Target {
	if ev == nil {
		return nil
	}
	if mods.DisablesSnap(d.cfg.Apple) {
		return nil
	}
	return ev.Target.Resolve()
}

// armZoomGuard disables the host's double-click-zoom and schedules
// its re-enable after the debounce window, restarting the window on
// every qualifying click.
func (d *Dispatcher) armZoomGuard() {
	if !d.cfg.EnableZoomGuard || d.zoom == nil {
		return
	}

	d.mu.Lock()
	if d.debounce != nil {
		d.debounce.Stop()
	}
	disable := !d.zoomDisabled
	d.zoomDisabled = true
	d.debounceGen++
	gen := d.debounceGen
	d.debounce = d.sch.AfterFunc(d.cfg.DebounceWindow, func() {
		d.releaseZoomGuard(gen)
	})
	zoom := d.zoom
	d.mu.Unlock()

	if disable && zoom != nil {
		zoom.DisableDoubleClickZoom()
	}
}

// releaseZoomGuard runs when the debounce window elapses. A stale
// callback whose Stop raced the re-arm no longer owns the window and
// must not touch it.
func (d *Dispatcher) releaseZoomGuard(gen uint64) {
	d.mu.Lock()
	if gen != d.debounceGen {
		d.mu.Unlock()
		return
	}
	d.debounce = nil
	restore := d.zoomDisabled
	d.zoomDisabled = false
	zoom := d.zoom
	d.mu.Unlock()

	if restore && zoom != nil {
		zoom.EnableDoubleClickZoom()
	}
}

// clickedNothing handles a click that hit no target: return to browse
// unless a multi-selection is in progress.
func (d *Dispatcher) clickedNothing(multiselect bool) {
	if d.modes.CurrentName() == mode.Browse {
		return
	}
	if multiselect || len(d.modes.SelectedIDs()) > 1 {
		return
	}
	d.enterBrowse()
}

// clickedEntity handles a click on an editable graph entity.
func (d *Dispatcher) clickedEntity(target *feature.Target, multiselect bool) {
	ids := d.modes.SelectedIDs()

	if !multiselect {
		// Re-issued even when already the sole selection.
		d.enterOSM([]string{target.ID})
		return
	}

	if contains(ids, target.ID) {
		// Toggling a selected entity out would destabilize an open
		// edit menu; suppress the deselect while one is showing.
		if d.menus != nil && d.menus.EditMenuOpen() {
			return
		}
		d.enterOSM(remove(ids, target.ID))
		return
	}

	d.enterOSM(append(append([]string(nil), ids...), target.ID))
}

func (d *Dispatcher) enterBrowse() {
	d.modes.Enter(mode.Browse, mode.Payload{}) //nolint:errcheck // failed transitions manifest as nothing happened
}

func (d *Dispatcher) enterOSM(ids []string) {
	d.modes.Enter(mode.SelectOSM, mode.Payload{SelectedIDs: ids}) //nolint:errcheck // failed transitions manifest as nothing happened
}

func (d *Dispatcher) enterGeneric(target *feature.Target) {
	p := mode.Payload{
		SelectedIDs: []string{target.ID},
		Targets:     map[string]*feature.Target{target.ID: target},
	}
	d.modes.Enter(mode.Select, p) //nolint:errcheck // failed transitions manifest as nothing happened
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
