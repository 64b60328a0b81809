package starmotion

import "testing"

func TestNewInfluenceMask(t *testing.T) {
	m := NewInfluenceMask(100, 80)
	if m.Width() != 100 || m.Height() != 80 {
		t.Errorf("expected 100x80, got %dx%d", m.Width(), m.Height())
	}
	if m.At(50, 40) != 0 {
		t.Errorf("expected 0, got %v", m.At(50, 40))
	}
}

func TestInfluenceMaskStamp(t *testing.T) {
	m := NewInfluenceMask(100, 100)
	m.Stamp(Pt(50, 50), 20, +1)

	if got := m.At(50, 50); got != 1 {
		t.Errorf("center weight: expected 1, got %v", got)
	}
	if got := m.At(50, 75); got != 0 {
		t.Errorf("outside radius: expected 0, got %v", got)
	}
}

func TestInfluenceMaskOutOfBounds(t *testing.T) {
	m := NewInfluenceMask(100, 100)
	m.Stamp(Pt(50, 50), 20, +1)

	if m.At(-1, 50) != 0 {
		t.Error("expected 0 for out of bounds (negative x)")
	}
	if m.At(100, 50) != 0 {
		t.Error("expected 0 for out of bounds (x >= width)")
	}

	// Stamping near the edge must not panic or write out of range.
	m.Stamp(Pt(0, 0), 30, +1)
	m.Stamp(Pt(99, 99), 30, +1)
	if m.At(0, 0) != 1 {
		t.Errorf("corner stamp: expected 1, got %v", m.At(0, 0))
	}
}

func TestInfluenceMaskClampedRange(t *testing.T) {
	m := NewInfluenceMask(100, 100)

	// Heavy overlap in both signs must stay within [0,1] everywhere.
	for i := 0; i < 10; i++ {
		m.Stamp(Pt(50, 50), 25, +1)
	}
	for i := 0; i < 20; i++ {
		m.Stamp(Pt(52, 50), 25, -1)
	}
	for i := 0; i < 5; i++ {
		m.Stamp(Pt(48, 50), 25, +1)
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			v := m.At(x, y)
			if v < 0 || v > 1 {
				t.Fatalf("weight out of range at (%d,%d): %v", x, y, v)
			}
		}
	}
}

// Clamping per stamp, not at read, means erase cannot bank negative
// weight: a later range stroke recovers visible effect immediately.
func TestInfluenceMaskEraseDoesNotGoNegative(t *testing.T) {
	m := NewInfluenceMask(100, 100)
	for i := 0; i < 10; i++ {
		m.Stamp(Pt(50, 50), 20, -1)
	}
	m.Stamp(Pt(50, 50), 20, +1)

	if got := m.At(50, 50); got != 1 {
		t.Errorf("expected full recovery to 1, got %v", got)
	}
}

func TestInfluenceMaskEraseCancelsRange(t *testing.T) {
	m := NewInfluenceMask(200, 100)
	path := []Point{Pt(40, 50), Pt(80, 50), Pt(120, 50), Pt(160, 50)}

	m.StampPath(path, 20, +1)
	m.StampPath(path, 20, -1)

	for _, p := range path {
		if got := m.At(int(p.X), int(p.Y)); got != 0 {
			t.Errorf("weight along erased path at %v: expected 0, got %v", p, got)
		}
	}
	// No effect outside the stroke's radius.
	if got := m.At(40, 80); got != 0 {
		t.Errorf("outside radius: expected 0, got %v", got)
	}
}

func TestInfluenceMaskStampPathContinuity(t *testing.T) {
	m := NewInfluenceMask(200, 100)
	// Two points far apart relative to the radius: interpolated stamps
	// must leave no gap between them.
	m.StampPath([]Point{Pt(40, 50), Pt(160, 50)}, 10, +1)

	for x := 40; x <= 160; x++ {
		if m.At(x, 50) <= 0 {
			t.Fatalf("gap in stroke coverage at x=%d", x)
		}
	}
}

func TestInfluenceMaskSinglePointPath(t *testing.T) {
	m := NewInfluenceMask(100, 100)
	m.StampPath([]Point{Pt(50, 50)}, 15, +1)

	if got := m.At(50, 50); got != 1 {
		t.Errorf("single point path should stamp once: expected 1, got %v", got)
	}
}

func TestInfluenceMaskClear(t *testing.T) {
	m := NewInfluenceMask(100, 100)
	m.Stamp(Pt(50, 50), 20, +1)
	m.Clear()

	if m.At(50, 50) != 0 {
		t.Errorf("expected 0 after clear, got %v", m.At(50, 50))
	}
}

func TestInfluenceMaskClone(t *testing.T) {
	m := NewInfluenceMask(100, 100)
	m.Stamp(Pt(50, 50), 20, +1)

	clone := m.Clone()
	m.Clear()

	if clone.At(50, 50) != 1 {
		t.Errorf("clone should not be affected, expected 1, got %v", clone.At(50, 50))
	}
}
