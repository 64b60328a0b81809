package encoder

import (
	"context"
	"errors"
	"fmt"
	"image"
)

// Memory is an in-process encoder that collects frames instead of
// producing a real container. Tests use it to observe exactly what the
// export pipeline feeds the encoder and to inject failures.
type Memory struct {
	// FailAfter, when positive, fails the session on the Nth
	// WriteFrame call.
	FailAfter int

	// FailClose fails the final Close call.
	FailClose bool

	// Sessions holds every session Begin has produced, in order.
	Sessions []*MemorySession
}

// Begin opens a collecting session.
func (m *Memory) Begin(_ context.Context, opts Options) (Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &MemorySession{
		opts:      opts,
		failAfter: m.FailAfter,
		failClose: m.FailClose,
	}
	m.Sessions = append(m.Sessions, s)
	return s, nil
}

// MemorySession records written frames.
type MemorySession struct {
	opts      Options
	failAfter int
	failClose bool

	Frames  []*image.RGBA
	Aborted bool
	Closed  bool
}

// WriteFrame records one frame, or fails if the injected failure point
// has been reached.
func (s *MemorySession) WriteFrame(img *image.RGBA) error {
	if s.failAfter > 0 && len(s.Frames)+1 >= s.failAfter {
		return fmt.Errorf("encoder: injected failure at frame %d", len(s.Frames))
	}
	s.Frames = append(s.Frames, img)
	return nil
}

// Close marks the session finished and returns a placeholder blob.
func (s *MemorySession) Close() ([]byte, error) {
	if s.failClose {
		return nil, errors.New("encoder: injected close failure")
	}
	s.Closed = true
	return []byte("blob"), nil
}

// Abort marks the session discarded.
func (s *MemorySession) Abort() {
	s.Aborted = true
}
