package encoder

import (
	"context"
	"image"
	"testing"
	"time"
)

func TestOptionsValidate(t *testing.T) {
	valid := Options{Format: "webm", FrameRate: 30, Width: 640, Height: 480}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}

	cases := []struct {
		name string
		opts Options
	}{
		{"format", Options{Format: "avi", FrameRate: 30, Width: 640, Height: 480}},
		{"rate zero", Options{Format: "mp4", FrameRate: 0, Width: 640, Height: 480}},
		{"rate high", Options{Format: "mp4", FrameRate: 240, Width: 640, Height: 480}},
		{"width", Options{Format: "gif", FrameRate: 30, Width: 0, Height: 480}},
		{"height", Options{Format: "gif", FrameRate: 30, Width: 640, Height: -1}},
	}
	for _, tc := range cases {
		if err := tc.opts.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := Filename(at, Options{Format: "mp4"})
	if got != "motion-animation-20250314-092653.mp4" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestMemoryCollectsFrames(t *testing.T) {
	m := &Memory{}
	s, err := m.Begin(context.Background(), Options{Format: "webm", FrameRate: 30, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
			t.Fatalf("write frame %d failed: %v", i, err)
		}
	}
	blob, err := s.Close()
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if len(blob) == 0 {
		t.Error("expected a non-empty blob")
	}
	if len(m.Sessions) != 1 || len(m.Sessions[0].Frames) != 3 {
		t.Errorf("expected one session with 3 frames, got %+v", m.Sessions)
	}
}

func TestMemoryInjectedFailures(t *testing.T) {
	m := &Memory{FailAfter: 2}
	s, err := m.Begin(context.Background(), Options{Format: "webm", FrameRate: 30, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("first frame should succeed: %v", err)
	}
	if err := s.WriteFrame(image.NewRGBA(image.Rect(0, 0, 4, 4))); err == nil {
		t.Fatal("second frame should fail")
	}

	m = &Memory{FailClose: true}
	s, err = m.Begin(context.Background(), Options{Format: "webm", FrameRate: 30, Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if _, err := s.Close(); err == nil {
		t.Fatal("close should fail")
	}
}

func TestMemoryRejectsInvalidOptions(t *testing.T) {
	m := &Memory{}
	if _, err := m.Begin(context.Background(), Options{Format: "avi", FrameRate: 30, Width: 4, Height: 4}); err == nil {
		t.Fatal("expected invalid options to be rejected")
	}
}
