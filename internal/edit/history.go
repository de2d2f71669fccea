package edit

import (
	"sync"

	"github.com/google/uuid"
)

// Action is a single graph mutation performed inside a transaction.
// Apply reports whether the mutation took effect.
type Action interface {
	Apply(g Graph) bool
}

// History is the edit-transaction API the inserter drives: perform
// actions, then commit them as one transaction carrying an
// annotation and the selection to preserve.
type History interface {
	Perform(a Action)
	Commit(annotation string, selectedIDs []string)
}

// Change is one committed transaction.
type Change struct {
	// ID uniquely identifies the transaction.
	ID string

	// Annotation is the human-readable description.
	Annotation string

	// SelectedIDs is the selection preserved across the edit.
	SelectedIDs []string
}

// MemoryHistory applies actions to a Graph immediately and records
// committed transactions. It serves hosts without a native history,
// and tests.
type MemoryHistory struct {
	mu      sync.Mutex
	graph   Graph
	pending int
	changes []Change
}

// NewMemoryHistory creates a history over the given graph.
func NewMemoryHistory(g Graph) *MemoryHistory {
	return &MemoryHistory{graph: g}
}

// Perform implements History.
func (h *MemoryHistory) Perform(a Action) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if a.Apply(h.graph) {
		h.pending++
	}
}

// Commit implements History. A commit with no performed actions is a
// no-op.
func (h *MemoryHistory) Commit(annotation string, selectedIDs []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pending == 0 {
		return
	}
	h.pending = 0
	h.changes = append(h.changes, Change{
		ID:          uuid.NewString(),
		Annotation:  annotation,
		SelectedIDs: append([]string(nil), selectedIDs...),
	})
}

// Changes returns the committed transactions in order.
func (h *MemoryHistory) Changes() []Change {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Change(nil), h.changes...)
}
