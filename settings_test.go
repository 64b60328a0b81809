package starmotion

import "testing"

func TestSettingsClamp(t *testing.T) {
	s := Settings{
		DisplacementAmount: 500,
		MotionBlur:         -10,
		KeyframeAmount:     1000,
		BrushSize:          3,
		MotionStrength:     0,
		AnimationSpeed:     999,
	}
	s.Clamp()

	if s.DisplacementAmount != 200 {
		t.Errorf("displacement: expected 200, got %v", s.DisplacementAmount)
	}
	if s.MotionBlur != 0 {
		t.Errorf("blur: expected 0, got %v", s.MotionBlur)
	}
	if s.KeyframeAmount != 60 {
		t.Errorf("keyframes: expected 60, got %d", s.KeyframeAmount)
	}
	if s.BrushSize != 10 {
		t.Errorf("brush: expected 10, got %v", s.BrushSize)
	}
	if s.MotionStrength != 1 {
		t.Errorf("strength: expected 1, got %v", s.MotionStrength)
	}
	if s.AnimationSpeed != 200 {
		t.Errorf("speed: expected 200, got %v", s.AnimationSpeed)
	}

	low := Settings{KeyframeAmount: 0}
	low.Clamp()
	if low.KeyframeAmount != 2 {
		t.Errorf("keyframes lower bound: expected 2, got %d", low.KeyframeAmount)
	}
}

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	clamped := s
	clamped.Clamp()
	if s != clamped {
		t.Errorf("defaults must already be within range: %+v vs %+v", s, clamped)
	}
}
