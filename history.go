package starmotion

// ActionKind discriminates the history action variants.
type ActionKind int

// History action kinds.
const (
	ActionMotion ActionKind = iota
	ActionRange
	ActionErase
)

// Action is one recorded stroke in a layer's history log.
type Action struct {
	Kind ActionKind

	// Trail is set for ActionMotion.
	Trail MotionTrail

	// Points and Radius are set for ActionRange and ActionErase.
	Points []Point
	Radius float64
}

// applyTo replays the action against a field.
func (a Action) applyTo(f *Field) {
	switch a.Kind {
	case ActionMotion:
		f.AddVectors(a.Trail.Vectors())
	case ActionRange:
		f.AddMask(a.Points, a.Radius, +1)
	case ActionErase:
		f.AddMask(a.Points, a.Radius, -1)
	}
}

// HistoryLog is an append-only per-layer action log with an index.
// Undo and redo move the index; the owning layer then rebuilds its
// field by full replay of actions [0..index]. Replay rather than
// inverse application is deliberate: erase strokes are not cleanly
// invertible against arbitrary overlapping range strokes, so replay
// guarantees correctness at O(index) cost per undo/redo.
type HistoryLog struct {
	entries []Action
	index   int // last applied entry, -1 when nothing applied
}

// NewHistoryLog creates an empty log.
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{index: -1}
}

// Append truncates any entries after the current index (discarding the
// redo tail), appends the action, and advances the index to the new
// last entry.
func (h *HistoryLog) Append(a Action) {
	h.entries = append(h.entries[:h.index+1], a)
	h.index = len(h.entries) - 1
}

// Undo steps the index back one entry. Returns a HistoryError notice
// when there is nothing to undo.
func (h *HistoryLog) Undo() error {
	if !h.CanUndo() {
		return &HistoryError{Op: "undo"}
	}
	h.index--
	return nil
}

// Redo steps the index forward one entry. Returns a HistoryError
// notice when there is nothing to redo.
func (h *HistoryLog) Redo() error {
	if !h.CanRedo() {
		return &HistoryError{Op: "redo"}
	}
	h.index++
	return nil
}

// CanUndo reports whether an entry is available to undo.
func (h *HistoryLog) CanUndo() bool { return h.index >= 0 }

// CanRedo reports whether an entry is available to redo.
func (h *HistoryLog) CanRedo() bool { return h.index < len(h.entries)-1 }

// Len returns the number of entries in the log.
func (h *HistoryLog) Len() int { return len(h.entries) }

// Index returns the index of the last applied entry, -1 when none.
func (h *HistoryLog) Index() int { return h.index }

// Applied iterates the applied prefix [0..index] in order.
func (h *HistoryLog) Applied(fn func(Action)) {
	for i := 0; i <= h.index; i++ {
		fn(h.entries[i])
	}
}
