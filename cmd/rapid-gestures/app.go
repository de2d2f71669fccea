package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nyampire/Rapid/internal/config"
	"github.com/nyampire/Rapid/internal/edit"
	"github.com/nyampire/Rapid/internal/geo"
	"github.com/nyampire/Rapid/internal/gesture"
	"github.com/nyampire/Rapid/internal/hook"
	"github.com/nyampire/Rapid/internal/input/key"
	"github.com/nyampire/Rapid/internal/input/pointer"
	"github.com/nyampire/Rapid/internal/menu"
	"github.com/nyampire/Rapid/internal/mode"
	"github.com/nyampire/Rapid/internal/selection"
)

// mousePointerID is the pointer identity for the single terminal
// mouse.
const mousePointerID = 1

// App drives the gesture engine from a tcell terminal: mouse events
// become pointer events, key events become key events, and the
// resulting mode, selection, and menu state is rendered each frame.
type App struct {
	screen tcell.Screen
	scene  *scene

	classifier *gesture.Classifier
	modes      *mode.Manager
	history    *edit.MemoryHistory
	menus      *menu.Dispatcher
	hooks      *hook.Registry
	lua        *hook.LuaHost

	mu sync.Mutex
	// mods mirrors the modifiers on the most recent tcell event,
	// standing in for a live keyboard-state query.
	mods    key.Modifier
	buttons tcell.ButtonMask

	lastGesture string
	zoomOff     bool
	photo       string
	editAnchor  geo.Point
	provAnchor  geo.Point
}

// NewApp wires the full engine over a fresh demo scene.
func NewApp(cfg config.Config, script string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}

	a := &App{
		screen: screen,
		scene:  newScene(),
		modes:  mode.NewManager(),
		hooks:  hook.NewRegistry(),
	}
	a.modes.Register(mode.BrowseMode{})
	a.modes.Register(mode.SelectMode{})
	a.modes.Register(mode.SelectOSMMode{})

	a.history = edit.NewMemoryHistory(a.scene.graph)
	inserter := edit.NewInserter(geo.SegmentChooser{}, a.history)

	mods := key.StateFunc(a.currentMods)

	a.menus = menu.NewDispatcher(mods, cfg.Selection.Apple, editMenu{a}, providerMenu{a})
	for _, p := range cfg.Providers {
		a.menus.RegisterProvider(p)
	}

	sel := selection.NewDispatcher(cfg.Selection, nil, a.modes, mods)
	sel.SetZoomGuard(zoomGuard{a})
	sel.SetPhotoSelector(photoSelector{a})
	sel.SetMenuState(a.menus)
	sel.SetInserter(inserter)

	a.hooks.Register(a.recordGesture)
	if script != "" {
		src, err := os.ReadFile(script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		a.lua = hook.NewLuaHost()
		if err := a.lua.LoadScript(string(src)); err != nil {
			a.lua.Close()
			return nil, err
		}
		a.hooks.Register(a.lua.Hook())
	}

	norm := gesture.NewNormalizer(
		gesture.ProjectionFunc(func(screen geo.Point) geo.Point { return screen }),
		gesture.HitTesterFunc(a.scene.hitTest),
	)
	a.classifier = gesture.New(cfg.Gesture, nil, norm, gesture.Collaborators{
		Selection: hook.NewSelectionTap(a.hooks, sel),
		Menus:     hook.NewMenuTap(a.hooks, a.menus),
		UI:        terminalUI{},
		Browse: func() {
			_ = a.modes.Enter(mode.Browse, mode.Payload{})
		},
	})
	return a, nil
}

// Run initializes the terminal and processes events until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer a.screen.Fini()
	if a.lua != nil {
		defer a.lua.Close()
	}

	a.screen.EnableMouse(tcell.MouseMotionEvents)
	if err := a.modes.Enter(mode.Browse, mode.Payload{}); err != nil {
		return err
	}
	a.classifier.Enable()

	for {
		a.render()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			return nil
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	a.setMods(convertMods(ev.Modifiers()))

	switch {
	case ev.Key() == tcell.KeyCtrlC,
		ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return true

	case ev.Key() == tcell.KeyEscape:
		a.classifier.KeyDown(key.NewEvent(key.KeyEscape, 0, convertMods(ev.Modifiers())))

	case ev.Key() == tcell.KeyF2:
		// F2 stands in for the dedicated menu key.
		a.classifier.KeyDown(key.NewEvent(key.KeyContextMenu, 0, convertMods(ev.Modifiers())))

	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		spaceEv := key.NewEvent(key.KeySpace, ' ', convertMods(ev.Modifiers()))
		a.classifier.KeyDown(spaceEv)
		// Terminals report no key releases; lift the space
		// immediately so repeats keep clicking.
		a.classifier.KeyUp(spaceEv)

	default:
		a.classifier.KeyDown(key.NewEvent(key.KeyOther, ev.Rune(), convertMods(ev.Modifiers())))
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	a.setMods(convertMods(ev.Modifiers()))

	x, y := ev.Position()
	now := time.Now()
	raw := func(b pointer.Button) gesture.RawPointer {
		return gesture.RawPointer{
			ID:     mousePointerID,
			Screen: geo.Point{X: float64(x), Y: float64(y)},
			Time:   now,
			Button: b,
			Kind:   pointer.KindMouse,
		}
	}

	a.mu.Lock()
	prev := a.buttons
	a.buttons = ev.Buttons()
	a.mu.Unlock()

	pressed := ev.Buttons() &^ prev
	released := prev &^ ev.Buttons()

	switch {
	case pressed&tcell.Button1 != 0:
		a.classifier.PointerDown(raw(pointer.ButtonLeft))
	case pressed&tcell.Button2 != 0:
		a.classifier.PointerDown(raw(pointer.ButtonRight))
	case released&tcell.Button1 != 0:
		a.classifier.PointerUp(raw(pointer.ButtonLeft))
	case released&tcell.Button2 != 0:
		a.classifier.PointerUp(raw(pointer.ButtonRight))
	default:
		a.classifier.PointerMove(raw(pointer.ButtonNone))
	}
}

func (a *App) recordGesture(ev hook.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	desc := ev.Gesture
	if ev.Trigger != "" {
		desc += " (" + ev.Trigger + ")"
	}
	if ev.TargetKind != "" {
		desc += " on " + ev.TargetKind + " " + ev.TargetID
	}
	a.lastGesture = desc
}

func (a *App) currentMods() key.Modifier {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mods
}

func (a *App) setMods(m key.Modifier) {
	a.mu.Lock()
	a.mods = m
	a.mu.Unlock()
}

// convertMods converts tcell modifiers.
func convertMods(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}

// terminalUI is the UIState of a plain terminal: no text fields, no
// comboboxes.
type terminalUI struct{}

func (terminalUI) TextFieldFocused() bool { return false }
func (terminalUI) ComboboxOpen() bool     { return false }

// zoomGuard records the zoom toggle for the status line.
type zoomGuard struct{ a *App }

func (z zoomGuard) DisableDoubleClickZoom() {
	z.a.mu.Lock()
	z.a.zoomOff = true
	z.a.mu.Unlock()
}

func (z zoomGuard) EnableDoubleClickZoom() {
	z.a.mu.Lock()
	z.a.zoomOff = false
	z.a.mu.Unlock()
}

// photoSelector records the selected photo for the status line.
type photoSelector struct{ a *App }

func (p photoSelector) SelectPhoto(layer, photoID string) {
	p.a.mu.Lock()
	p.a.photo = layer + "/" + photoID
	p.a.mu.Unlock()
}

// editMenu and providerMenu record their anchors; the open flags live
// in the menu dispatcher.
type editMenu struct{ a *App }

func (m editMenu) Open(anchor geo.Point) {
	m.a.mu.Lock()
	m.a.editAnchor = anchor
	m.a.mu.Unlock()
}

func (m editMenu) Close() {}

type providerMenu struct{ a *App }

func (m providerMenu) Open(anchor geo.Point, trigger gesture.Trigger) {
	m.a.mu.Lock()
	m.a.provAnchor = anchor
	m.a.mu.Unlock()
}

func (m providerMenu) Close() {}
