package starmotion

import "testing"

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(100, 50)
	if pm.Width() != 100 || pm.Height() != 50 {
		t.Errorf("expected 100x50, got %dx%d", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 100*50*4 {
		t.Errorf("expected %d bytes, got %d", 100*50*4, len(pm.Data()))
	}
}

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetRGBA(5, 5, 10, 20, 30, 255)

	r, g, b, a := pm.RGBA(5, 5)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("expected (10,20,30,255), got (%d,%d,%d,%d)", r, g, b, a)
	}

	// Out of bounds reads return transparent black, writes are ignored.
	if r, _, _, _ := pm.RGBA(-1, 5); r != 0 {
		t.Error("expected 0 for out of bounds read")
	}
	pm.SetRGBA(10, 10, 255, 255, 255, 255) // must not panic
}

func TestPixmapSampleExactAndInterpolated(t *testing.T) {
	pm := NewPixmap(4, 1)
	pm.SetRGBA(0, 0, 0, 0, 0, 255)
	pm.SetRGBA(1, 0, 100, 0, 0, 255)
	pm.SetRGBA(2, 0, 200, 0, 0, 255)
	pm.SetRGBA(3, 0, 200, 0, 0, 255)

	if r, _, _, _ := pm.Sample(1, 0); r != 100 {
		t.Errorf("integer sample: expected 100, got %d", r)
	}
	if r, _, _, _ := pm.Sample(1.5, 0); r != 150 {
		t.Errorf("midpoint sample: expected 150, got %d", r)
	}
	// Samples beyond the border clamp to the edge pixel.
	if r, _, _, _ := pm.Sample(10, 0); r != 200 {
		t.Errorf("clamped sample: expected 200, got %d", r)
	}
	if r, _, _, _ := pm.Sample(-3, 0); r != 0 {
		t.Errorf("clamped sample: expected 0, got %d", r)
	}
}

func TestPixmapClone(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetRGBA(3, 3, 50, 60, 70, 255)

	clone := pm.Clone()
	pm.SetRGBA(3, 3, 0, 0, 0, 0)

	r, _, _, _ := clone.RGBA(3, 3)
	if r != 50 {
		t.Errorf("clone should not be affected, expected 50, got %d", r)
	}
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := testSource(16, 12)
	back := FromImage(pm.ToImage())

	if back.Width() != 16 || back.Height() != 12 {
		t.Fatalf("expected 16x12, got %dx%d", back.Width(), back.Height())
	}
	for i, v := range pm.Data() {
		if back.Data()[i] != v {
			t.Fatalf("byte %d differs after round trip", i)
		}
	}
}

func TestFitPixmap(t *testing.T) {
	pm := testSource(40, 40)

	same := FitPixmap(pm, 40, 40)
	if same != pm {
		t.Error("matching dimensions should return the source unchanged")
	}

	scaled := FitPixmap(pm, 20, 10)
	if scaled.Width() != 20 || scaled.Height() != 10 {
		t.Errorf("expected 20x10, got %dx%d", scaled.Width(), scaled.Height())
	}
}
