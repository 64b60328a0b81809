package starmotion

import "fmt"

// InputError reports a rejected user operation, such as deleting the
// last remaining layer or activating a locked layer. The engine state
// is unchanged; the caller may retry a different action.
type InputError struct {
	Op     string // operation that was rejected
	Reason string // why it was rejected
}

func (e *InputError) Error() string {
	return fmt.Sprintf("starmotion: %s: %s", e.Op, e.Reason)
}

// HistoryError reports an undo or redo at a log boundary. It is a
// notice, not a failure: no state was changed.
type HistoryError struct {
	Op string // "undo" or "redo"
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("starmotion: nothing to %s", e.Op)
}

// RegenerationError reports a failed keyframe regeneration. The
// previous cache (or stale marker) is left intact; no partial keyframe
// list is ever published.
type RegenerationError struct {
	Phase int // keyframe index whose warp failed, -1 if not phase-specific
	Err   error
}

func (e *RegenerationError) Error() string {
	if e.Phase >= 0 {
		return fmt.Sprintf("starmotion: keyframe regeneration failed at phase %d: %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("starmotion: keyframe regeneration failed: %v", e.Err)
}

func (e *RegenerationError) Unwrap() error { return e.Err }

// ExportError reports an aborted export. No partial artifact is
// produced.
type ExportError struct {
	Stage string // "regenerate", "encode", "finish"
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("starmotion: export failed during %s: %v", e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
