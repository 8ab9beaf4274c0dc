package graphics

// HeadlessBackend steps the console without opening a window. Useful
// for tests, benchmarks and environments without a display.
type HeadlessBackend struct {
	opts Options
}

// NewHeadlessBackend creates a headless backend.
func NewHeadlessBackend(opts Options) *HeadlessBackend {
	return &HeadlessBackend{opts: opts}
}

// Run steps the configured number of frames and returns. With no frame
// limit set, a single frame is stepped.
func (b *HeadlessBackend) Run(console Console) error {
	frames := b.opts.Frames
	if frames <= 0 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		console.StepFrame()
	}
	return nil
}

// IsHeadless returns true.
func (b *HeadlessBackend) IsHeadless() bool { return true }

// Name returns the backend name.
func (b *HeadlessBackend) Name() string { return "Headless" }
