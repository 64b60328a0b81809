package starmotion

import "testing"

func TestRecorderMotionKeepsEverySample(t *testing.T) {
	eng, _ := testEngine(t, 100, 100)
	layer := eng.Active()

	// Tightly spaced samples: the motion tool must not thin them.
	eng.PointerDown(ToolMotion, Pt(10, 10))
	for i := 1; i <= 20; i++ {
		eng.PointerMove(Pt(10+float64(i)*0.5, 10))
	}
	eng.PointerUp()

	trails := layer.Trails()
	if len(trails) != 1 {
		t.Fatalf("expected 1 trail, got %d", len(trails))
	}
	if got := len(trails[0].Points); got != 21 {
		t.Errorf("expected 21 trail points, got %d", got)
	}
	if got := len(layer.Field().Vectors()); got != 20 {
		t.Errorf("expected 20 vectors, got %d", got)
	}
}

func TestRecorderMotionStrengthCaptured(t *testing.T) {
	eng, _ := testEngine(t, 100, 100)
	layer := eng.Active()

	s := layer.Settings()
	s.MotionStrength = 50
	layer.SetSettings(s)

	drawTrail(eng, Pt(10, 10), Pt(40, 10))

	vs := layer.Field().Vectors()
	if len(vs) != 1 {
		t.Fatalf("expected 1 vector, got %d", len(vs))
	}
	if vs[0].Strength != 0.5 {
		t.Errorf("expected strength 0.5, got %v", vs[0].Strength)
	}
}

func TestRecorderRangeThinsSamples(t *testing.T) {
	eng, _ := testEngine(t, 300, 100)
	layer := eng.Active()

	s := layer.Settings()
	s.BrushSize = 30 // accept threshold = 10px
	layer.SetSettings(s)

	eng.PointerDown(ToolRange, Pt(10, 50))
	for i := 1; i <= 50; i++ {
		eng.PointerMove(Pt(10+float64(i)*2, 50)) // 2px apart
	}
	eng.PointerUp()

	layer.History().Applied(func(a Action) {
		if a.Kind != ActionRange {
			t.Fatalf("expected range action, got kind %d", a.Kind)
		}
		// 100px of travel at a 10px acceptance distance: the down
		// point plus one accepted point per 10px.
		if got := len(a.Points); got != 11 {
			t.Errorf("expected 11 thinned points, got %d", got)
		}
		if a.Radius != 15 {
			t.Errorf("expected radius 15 for brush size 30, got %v", a.Radius)
		}
	})
}

func TestRecorderSinglePointStrokeIsValidAction(t *testing.T) {
	eng, _ := testEngine(t, 100, 100)
	layer := eng.Active()

	// A range click without drag stamps once.
	eng.PointerDown(ToolRange, Pt(50, 50))
	eng.PointerUp()

	if layer.History().Len() != 1 {
		t.Fatalf("expected 1 history entry, got %d", layer.History().Len())
	}
	if layer.Field().Mask().At(50, 50) != 1 {
		t.Errorf("expected stamped mask at click point, got %v", layer.Field().Mask().At(50, 50))
	}

	// A motion click contributes no vectors but still occupies a
	// history slot.
	eng.PointerDown(ToolMotion, Pt(30, 30))
	eng.PointerUp()

	if layer.History().Len() != 2 {
		t.Fatalf("expected 2 history entries, got %d", layer.History().Len())
	}
	if len(layer.Field().Vectors()) != 0 {
		t.Errorf("expected no vectors from a motion click, got %d", len(layer.Field().Vectors()))
	}
}

func TestRecorderStrokeMarksCacheStale(t *testing.T) {
	eng, _ := testEngine(t, 100, 100)
	layer := eng.Active()

	if err := layer.sched.Require(); err != nil {
		t.Fatalf("regeneration failed: %v", err)
	}
	if layer.CacheStale() {
		t.Fatal("cache should be fresh after Require")
	}

	drawRange(eng, Pt(50, 50))

	if !layer.CacheStale() {
		t.Error("completing a stroke must mark the keyframe cache stale")
	}
}

func TestRecorderMoveWithoutBegin(t *testing.T) {
	eng, _ := testEngine(t, 100, 100)

	// Orphan move/up events must be ignored.
	eng.PointerMove(Pt(10, 10))
	eng.PointerUp()

	if eng.Active().History().Len() != 0 {
		t.Errorf("expected empty history, got %d entries", eng.Active().History().Len())
	}
}
