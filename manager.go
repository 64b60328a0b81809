package starmotion

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// LayerManager owns a flat arena of layers plus the active layer id.
// Layers are kept in creation order, which is also composite order
// (back to front).
type LayerManager struct {
	layers   []*Layer
	activeID uuid.UUID
	created  int // total layers ever created, for default names

	src      *Pixmap
	gen      *Generator
	clock    clockwork.Clock
	debounce time.Duration
}

// NewLayerManager creates a manager with one empty layer, which is
// active. At least one layer exists at all times.
func NewLayerManager(src *Pixmap, gen *Generator, clock clockwork.Clock, debounce time.Duration) *LayerManager {
	m := &LayerManager{
		src:      src,
		gen:      gen,
		clock:    clock,
		debounce: debounce,
	}
	first := m.AddLayer()
	m.activeID = first.ID
	return m
}

// AddLayer appends a new empty layer and returns it. The new layer
// becomes active.
func (m *LayerManager) AddLayer() *Layer {
	m.created++
	l := newLayer(fmt.Sprintf("Layer %d", m.created), m.src, m.gen, m.clock, m.debounce)
	m.layers = append(m.layers, l)
	m.activeID = l.ID
	return l
}

// DeleteLayer removes a layer. Deleting the last remaining layer is an
// InputError and leaves the arena unchanged. If the active layer is
// deleted, the previous layer in creation order becomes active.
func (m *LayerManager) DeleteLayer(id uuid.UUID) error {
	if len(m.layers) == 1 {
		return &InputError{Op: "delete layer", Reason: "the last remaining layer cannot be deleted"}
	}
	i := m.indexOf(id)
	if i < 0 {
		return &InputError{Op: "delete layer", Reason: "no such layer"}
	}
	m.layers = append(m.layers[:i], m.layers[i+1:]...)
	if m.activeID == id {
		if i > 0 {
			i--
		}
		m.activeID = m.layers[i].ID
	}
	return nil
}

// SetActive makes a layer the editing target. Activating a locked
// layer is an InputError with no state change.
func (m *LayerManager) SetActive(id uuid.UUID) error {
	l := m.Layer(id)
	if l == nil {
		return &InputError{Op: "set active layer", Reason: "no such layer"}
	}
	if l.Locked {
		return &InputError{Op: "set active layer", Reason: "layer is locked"}
	}
	m.activeID = id
	return nil
}

// ToggleVisibility flips a layer's visibility.
func (m *LayerManager) ToggleVisibility(id uuid.UUID) error {
	l := m.Layer(id)
	if l == nil {
		return &InputError{Op: "toggle visibility", Reason: "no such layer"}
	}
	l.Visible = !l.Visible
	return nil
}

// ToggleLock flips a layer's lock. Locking the active layer leaves it
// active; it only blocks future SetActive calls.
func (m *LayerManager) ToggleLock(id uuid.UUID) error {
	l := m.Layer(id)
	if l == nil {
		return &InputError{Op: "toggle lock", Reason: "no such layer"}
	}
	l.Locked = !l.Locked
	return nil
}

// Active returns the active layer.
func (m *LayerManager) Active() *Layer {
	return m.Layer(m.activeID)
}

// Layer returns the layer with the given id, or nil.
func (m *LayerManager) Layer(id uuid.UUID) *Layer {
	i := m.indexOf(id)
	if i < 0 {
		return nil
	}
	return m.layers[i]
}

// Layers returns all layers in creation (composite) order. The slice
// is shared; callers must not mutate it.
func (m *LayerManager) Layers() []*Layer { return m.layers }

// Count returns the number of layers.
func (m *LayerManager) Count() int { return len(m.layers) }

func (m *LayerManager) indexOf(id uuid.UUID) int {
	for i, l := range m.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}
