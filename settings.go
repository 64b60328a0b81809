package starmotion

// Settings holds the per-layer animation parameters. All values are
// clamped to their documented ranges by Clamp; the engine clamps on
// every assignment so out-of-range values never reach the generator.
type Settings struct {
	// DisplacementAmount is the maximum warp displacement in pixels,
	// range 0-200.
	DisplacementAmount float64

	// MotionBlur blends neighboring-phase warps into each keyframe,
	// range 0-100 where 0 disables blur.
	MotionBlur float64

	// CoreBrightening boosts local luminance maxima inside masked
	// regions to simulate brightened point-source cores.
	CoreBrightening bool

	// ReverseDirection negates the displacement direction and the
	// playback phase advance.
	ReverseDirection bool

	// KeyframeAmount is the number of precomputed warped frames per
	// loop, range 2-60.
	KeyframeAmount int

	// BrushSize is the range/erase brush diameter in pixels, range
	// 10-100.
	BrushSize float64

	// MotionStrength scales new motion vectors, range 1-100 percent.
	MotionStrength float64

	// AnimationSpeed scales the playback phase advance, range 10-200
	// percent.
	AnimationSpeed float64
}

// DefaultSettings returns the settings a new layer starts with.
func DefaultSettings() Settings {
	return Settings{
		DisplacementAmount: 40,
		MotionBlur:         0,
		CoreBrightening:    false,
		ReverseDirection:   false,
		KeyframeAmount:     15,
		BrushSize:          40,
		MotionStrength:     50,
		AnimationSpeed:     100,
	}
}

// Clamp normalizes all fields to their valid ranges.
func (s *Settings) Clamp() {
	s.DisplacementAmount = clampFloat(s.DisplacementAmount, 0, 200)
	s.MotionBlur = clampFloat(s.MotionBlur, 0, 100)
	if s.KeyframeAmount < 2 {
		s.KeyframeAmount = 2
	}
	if s.KeyframeAmount > 60 {
		s.KeyframeAmount = 60
	}
	s.BrushSize = clampFloat(s.BrushSize, 10, 100)
	s.MotionStrength = clampFloat(s.MotionStrength, 1, 100)
	s.AnimationSpeed = clampFloat(s.AnimationSpeed, 10, 200)
}
