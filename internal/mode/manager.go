package mode

import (
	"fmt"
	"sync"
)

// ChangeCallback is notified after every completed Enter, including
// re-entries of the current mode.
type ChangeCallback func(from, to string, p Payload)

// Manager registers modes and coordinates transitions between them.
type Manager struct {
	mu sync.RWMutex

	// modes holds all registered modes by name.
	modes map[string]Mode

	// current is the active mode, nil before the first Enter.
	current Mode

	// payload is the payload the current mode was entered with.
	payload Payload

	// callbacks are notified on every transition.
	callbacks []ChangeCallback
}

// NewManager creates an empty mode manager.
func NewManager() *Manager {
	return &Manager{modes: make(map[string]Mode)}
}

// Register adds a mode. A mode with the same name is replaced.
func (m *Manager) Register(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[mode.Name()] = mode
}

// OnChange registers a transition callback.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// Current returns the active mode, or nil.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CurrentName returns the active mode's name, or "".
func (m *Manager) CurrentName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// CurrentPayload returns the payload the active mode was entered
// with.
func (m *Manager) CurrentPayload() Payload {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payload
}

// SelectedIDs returns the selection list of the current payload. It
// is empty outside the native selection mode.
func (m *Manager) SelectedIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payload.SelectedIDs
}

// Enter transitions to the named mode with the given payload. The
// transition is re-issued even when the mode is already current.
func (m *Manager) Enter(name string, p Payload) error {
	m.mu.Lock()

	next, ok := m.modes[name]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("mode: unknown mode: %s", name)
	}

	from := ""
	if m.current != nil {
		from = m.current.Name()
		if err := m.current.Exit(); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("mode: exit %s: %w", from, err)
		}
	}

	if err := next.Enter(p); err != nil {
		m.current = nil
		m.payload = Payload{}
		m.mu.Unlock()
		return fmt.Errorf("mode: enter %s: %w", name, err)
	}

	m.current = next
	m.payload = p
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	// Notify outside the lock.
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, name, p)
		}
	}
	return nil
}
