package menu

import (
	"sync"

	"github.com/nyampire/Rapid/internal/feature"
	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/gesture"
	"github.com/nyampire/Rapid/internal/input/key"
	"github.com/nyampire/Rapid/internal/input/pointer"
)

// EditMenu is the generic edit menu, anchored at a map coordinate.
type EditMenu interface {
	Open(anchor geo.Point)
	Close()
}

// ProviderMenu is a QA provider's dedicated menu, anchored at a
// screen coordinate and parameterized by how it was triggered.
type ProviderMenu interface {
	Open(anchor geo.Point, trigger gesture.Trigger)
	Close()
}

// Dispatcher toggles the correct menu for an accepted click,
// long-press, or menu-key gesture. It tracks the generic edit menu
// and the provider menu with independent open flags and implements
// gesture.MenuSink.
type Dispatcher struct {
	mu sync.Mutex

	mods  key.StateFunc
	apple bool

	edit     EditMenu
	provider ProviderMenu

	// providers names the QA providers that have a dedicated menu.
	providers map[string]bool

	editOpen     bool
	providerOpen bool
}

// NewDispatcher creates a menu dispatcher. The "osmose" provider is
// registered by default.
func NewDispatcher(mods key.StateFunc, apple bool, edit EditMenu, provider ProviderMenu) *Dispatcher {
	if mods == nil {
		mods = func() key.Modifier { return key.ModNone }
	}
	return &Dispatcher{
		mods:      mods,
		apple:     apple,
		edit:      edit,
		provider:  provider,
		providers: map[string]bool{"osmose": true},
	}
}

// RegisterProvider marks a QA provider as having a dedicated menu.
func (d *Dispatcher) RegisterProvider(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.providers[name] = true
}

// Toggle implements gesture.MenuSink. A QA item from a registered
// provider toggles that provider's menu at the screen coordinate;
// everything else toggles the generic edit menu at the map
// coordinate.
func (d *Dispatcher) Toggle(ev *pointer.Event, trigger gesture.Trigger) {
	if ev == nil {
		return
	}

	target := ev.Target
	if d.mods().DisablesSnap(d.apple) {
		target = nil
	}

	if target != nil && target.Kind == feature.KindQA && d.hasProvider(target.Provider) {
		d.toggleProvider(ev.Screen, trigger)
		return
	}
	d.toggleEdit(ev.Map)
}

// CloseAll implements gesture.MenuSink: both menus closed, both
// flags reset.
func (d *Dispatcher) CloseAll() {
	d.mu.Lock()
	closeEdit := d.editOpen
	closeProvider := d.providerOpen
	d.editOpen = false
	d.providerOpen = false
	edit, provider := d.edit, d.provider
	d.mu.Unlock()

	if closeEdit && edit != nil {
		edit.Close()
	}
	if closeProvider && provider != nil {
		provider.Close()
	}
}

// EditMenuOpen reports whether the generic edit menu is open.
func (d *Dispatcher) EditMenuOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.editOpen
}

// ProviderMenuOpen reports whether the provider menu is open.
func (d *Dispatcher) ProviderMenuOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.providerOpen
}

func (d *Dispatcher) hasProvider(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.providers[name]
}

func (d *Dispatcher) toggleProvider(anchor geo.Point, trigger gesture.Trigger) {
	d.mu.Lock()
	open := !d.providerOpen
	d.providerOpen = open
	provider := d.provider
	d.mu.Unlock()

	if provider == nil {
		return
	}
	if open {
		provider.Open(anchor, trigger)
	} else {
		provider.Close()
	}
}

func (d *Dispatcher) toggleEdit(anchor geo.Point) {
	d.mu.Lock()
	open := !d.editOpen
	d.editOpen = open
	edit := d.edit
	d.mu.Unlock()

	if edit == nil {
		return
	}
	if open {
		edit.Open(anchor)
	} else {
		edit.Close()
	}
}
