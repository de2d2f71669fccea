package gesture

import (
	"sync"

	"github.com/nyampire/Rapid/internal/input/key"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

// Classifier is the central gesture state machine. It owns the
// currently-down, last-up, last-move, last-space, and last-click
// slots and applies the distance and timing rules that turn raw
// pointer and keyboard events into accepted gestures.
//
// At most one pointer is tracked as down at a time; a second
// simultaneous pointerdown is ignored until the first is released or
// cancelled. One Classifier instance serves one editing session:
// created disabled, Enable() arms it, Disable() synchronously clears
// every slot and stops every pending timer.
type Classifier struct {
	mu   sync.Mutex
	cfg  Config
	sch  Scheduler
	norm *Normalizer

	sel    SelectionSink
	menus  MenuSink
	ui     UIState
	browse func()

	enabled bool

	// Tracked slots. Each is overwritten by the next event of its
	// kind; down is cleared on every up or cancel for its identity.
	down      *pointer.Event
	lastUp    *pointer.Event
	lastMove  *pointer.Event
	lastSpace *pointer.Event
	lastClick *pointer.Event

	// longPress is the pending long-press timer, touch only.
	longPress Timer

	// spaceHeld is the space-bar click suppression: no further
	// space clicks until keyup or a far-enough move.
	spaceHeld bool
}

// New creates a classifier. It starts disabled.
func New(cfg Config, sch Scheduler, norm *Normalizer, c Collaborators) *Classifier {
	if sch == nil {
		sch = SystemScheduler()
	}
	return &Classifier{
		cfg:    cfg,
		sch:    sch,
		norm:   norm,
		sel:    c.Selection,
		menus:  c.Menus,
		ui:     c.UI,
		browse: c.Browse,
	}
}

// Enable clears all tracked state and starts classifying events.
// It is idempotent.
func (c *Classifier) Enable() {
	c.mu.Lock()
	c.resetLocked()
	c.enabled = true
	c.mu.Unlock()

	c.apply(effects{closeMenus: true, resetSelection: true})
}

// Disable stops classifying, clears all tracked state, and cancels
// every pending timer so no stale callback can observe or mutate a
// disabled instance. It is idempotent.
func (c *Classifier) Disable() {
	c.mu.Lock()
	c.resetLocked()
	c.enabled = false
	c.mu.Unlock()

	c.apply(effects{closeMenus: true, resetSelection: true})
}

// Enabled reports whether the classifier is active.
func (c *Classifier) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// resetLocked clears every slot and stops the long-press timer.
func (c *Classifier) resetLocked() {
	if c.longPress != nil {
		c.longPress.Stop()
		c.longPress = nil
	}
	c.down = nil
	c.lastUp = nil
	c.lastMove = nil
	c.lastSpace = nil
	c.lastClick = nil
	c.spaceHeld = false
}

// cancelLongPressLocked stops a pending long-press timer. It reports
// whether a timer was actually pending, which obliges a menu reset.
func (c *Classifier) cancelLongPressLocked() bool {
	if c.longPress == nil {
		return false
	}
	pending := c.longPress.Stop()
	c.longPress = nil
	return pending
}

// PointerDown begins a gesture cycle. A second pointer going down
// while one is tracked is ignored.
func (c *Classifier) PointerDown(raw RawPointer) {
	c.mu.Lock()
	if !c.enabled || c.down != nil {
		c.mu.Unlock()
		return
	}

	ev := c.norm.Normalize(raw)
	ev.Cancelled = false
	c.down = ev
	c.lastClick = nil
	c.cancelLongPressLocked()

	if ev.Kind.IsTouch() && c.cfg.EnableLongPress {
		down := ev
		c.longPress = c.sch.AfterFunc(c.cfg.LongPressDelay, func() {
			c.fireLongPress(down)
		})
	}
	c.mu.Unlock()

	// A new interaction closes any menu left open by the last one.
	c.apply(effects{closeMenus: true})
}

// PointerMove updates the move slot, lifts space-bar suppression once
// the pointer travels far enough, and turns the tracked down into a
// drag when it reaches the near tolerance.
func (c *Classifier) PointerMove(raw RawPointer) {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return
	}

	ev := c.norm.Normalize(raw)
	c.lastMove = ev

	if c.spaceHeld && c.lastSpace != nil &&
		ev.Screen.Distance(c.lastSpace.Screen) > c.cfg.FarTolerance {
		c.spaceHeld = false
	}

	var fx effects
	if c.down != nil && ev.ID == c.down.ID && !c.down.Cancelled &&
		ev.Screen.Distance(c.down.Screen) >= c.cfg.NearTolerance {
		// A drag, never a click. The flag stays set until the down
		// record is discarded.
		c.down.Cancelled = true
		fx.closeMenus = c.cancelLongPressLocked()
	}
	c.mu.Unlock()

	c.apply(fx)
}

// PointerUp ends a gesture cycle. The down slot is cleared
// unconditionally; whether a gesture is emitted depends on the
// distance and timing rules.
func (c *Classifier) PointerUp(raw RawPointer) {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return
	}

	ev := c.norm.Normalize(raw)
	if c.down == nil || ev.ID != c.down.ID {
		c.mu.Unlock()
		return
	}

	down := c.down
	c.down = nil

	var fx effects
	fx.closeMenus = c.cancelLongPressLocked()

	// Every matched up overwrites the slot, a drag's included: the
	// next up must not pair with a record from before the drag.
	prevUp := c.lastUp
	c.lastUp = ev

	if down.Cancelled {
		c.mu.Unlock()
		c.apply(fx)
		return
	}

	if c.isDoubleClickLocked(ev, prevUp) {
		c.lastClick = ev
		fx.double = ev
	} else if c.isClickLocked(ev, down) {
		c.lastClick = ev
		if ev.Button.IsSecondary() {
			fx.ensure = ev
			fx.menu = ev
			fx.menuTrigger = TriggerPointer
		} else {
			fx.click = ev
		}
	}
	c.mu.Unlock()

	c.apply(fx)
}

// isDoubleClickLocked applies the double-click rules: primary button,
// a previous up on the same identified target, within the near
// tolerance and the double-click window.
func (c *Classifier) isDoubleClickLocked(ev, prevUp *pointer.Event) bool {
	if !ev.Button.IsPrimary() {
		return false
	}
	if prevUp == nil || prevUp.Target == nil || prevUp.Target.ID == "" {
		return false
	}
	if ev.Target == nil || ev.Target.ID != prevUp.Target.ID {
		return false
	}
	if ev.Screen.Distance(prevUp.Screen) >= c.cfg.NearTolerance {
		return false
	}
	return ev.Time.Sub(prevUp.Time) < c.cfg.DoubleClickWindow
}

// isClickLocked applies the single-click rules: within the near
// tolerance, or within the far tolerance and the time window.
func (c *Classifier) isClickLocked(ev, down *pointer.Event) bool {
	dist := ev.Screen.Distance(down.Screen)
	if dist < c.cfg.NearTolerance {
		return true
	}
	return dist < c.cfg.FarTolerance &&
		ev.Time.Sub(down.Time) < c.cfg.DoubleClickWindow
}

// PointerCancel discards the tracked down with no gesture. Later
// moves or ups referencing the old identity are ignored.
func (c *Classifier) PointerCancel(raw RawPointer) {
	c.mu.Lock()
	if !c.enabled || c.down == nil || raw.ID != c.down.ID {
		c.mu.Unlock()
		return
	}

	c.down = nil
	fx := effects{closeMenus: c.cancelLongPressLocked()}
	c.mu.Unlock()

	c.apply(fx)
}

// KeyDown handles a key press. Any key cancels a pending long-press;
// Escape, the menu key, and the space bar carry further meaning.
func (c *Classifier) KeyDown(ev key.Event) {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return
	}

	var fx effects
	// The user is no longer just holding a touch.
	fx.closeMenus = c.cancelLongPressLocked()

	switch {
	case ev.IsEscape():
		if c.ui == nil || !c.ui.ComboboxOpen() {
			fx.browse = true
		}

	case ev.IsContextMenu():
		if c.cfg.EnableContextMenu && c.lastClick != nil {
			fx.menu = c.lastClick
			fx.menuTrigger = TriggerKeyboard
		}

	case ev.IsSpace():
		if !c.spaceHeld && c.lastMove != nil &&
			(c.ui == nil || !c.ui.TextFieldFocused()) {
			click := *c.lastMove
			click.Button = pointer.ButtonLeft
			click.Cancelled = false
			if !ev.Timestamp.IsZero() {
				click.Time = ev.Timestamp
			}
			synth := &click
			c.lastSpace = synth
			c.lastClick = synth
			c.spaceHeld = true
			fx.click = synth
		}
	}
	c.mu.Unlock()

	c.apply(fx)
}

// KeyUp lifts space-bar suppression when the space key is released.
func (c *Classifier) KeyUp(ev key.Event) {
	c.mu.Lock()
	if c.enabled && ev.IsSpace() && c.spaceHeld {
		c.spaceHeld = false
	}
	c.mu.Unlock()
}

// fireLongPress runs when the long-press timer elapses. The down
// record must still be the tracked one and uncancelled; a stale or
// disabled instance short-circuits.
func (c *Classifier) fireLongPress(down *pointer.Event) {
	c.mu.Lock()
	if !c.enabled || c.down != down || down.Cancelled {
		c.mu.Unlock()
		return
	}

	c.longPress = nil
	// The eventual pointerup for this down yields nothing further.
	down.Cancelled = true
	c.lastClick = down

	fx := effects{click: down}
	if c.cfg.EnableContextMenu {
		fx.menu = down
		fx.menuTrigger = TriggerLongPress
	}
	c.mu.Unlock()

	c.apply(fx)
}

// apply delivers a transition's effects to the sinks. It runs without
// the classifier lock so sinks may inspect the classifier freely.
func (c *Classifier) apply(fx effects) {
	if fx.closeMenus && c.menus != nil {
		c.menus.CloseAll()
	}
	if fx.resetSelection && c.sel != nil {
		c.sel.Reset()
	}
	if fx.browse && c.browse != nil {
		c.browse()
	}
	if fx.ensure != nil && c.sel != nil {
		c.sel.EnsureSelected(fx.ensure)
	}
	if fx.click != nil && c.sel != nil {
		c.sel.Click(fx.click)
	}
	if fx.double != nil && c.sel != nil {
		c.sel.DoubleClick(fx.double)
	}
	if fx.menu != nil && c.menus != nil {
		c.menus.Toggle(fx.menu, fx.menuTrigger)
	}
}

// LastDown returns the tracked down record, or nil.
func (c *Classifier) LastDown() *pointer.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.down
}

// LastUp returns the most recent up record, or nil.
func (c *Classifier) LastUp() *pointer.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUp
}

// LastMove returns the most recent move record, or nil.
func (c *Classifier) LastMove() *pointer.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastMove
}

// LastSpace returns the most recent space-triggered click, or nil.
func (c *Classifier) LastSpace() *pointer.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSpace
}

// LastClick returns the most recently accepted gesture, or nil.
// Rejected and cancelled gestures never appear here.
func (c *Classifier) LastClick() *pointer.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastClick
}

// SpaceSuppressed reports whether space-bar click suppression is
// active.
func (c *Classifier) SpaceSuppressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spaceHeld
}
