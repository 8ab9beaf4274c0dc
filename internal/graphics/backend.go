// Package graphics presents the emulator's render targets, either in an
// Ebitengine window or headless.
package graphics

import (
	"fmt"
	"image"
)

// Console is the surface a backend drives and draws from. Rendering is
// pull-based: the backend steps a frame, then fetches the images it
// wants to show.
type Console interface {
	// StepFrame advances emulation by one full frame. It reports
	// whether an NMI was requested during the frame.
	StepFrame() bool

	// Canvas returns the 256x240 main render target.
	Canvas() *image.RGBA

	// PatternTable renders one of the two 128x128 pattern tables with
	// the colors of the given palette.
	PatternTable(index int, paletteID uint8) *image.RGBA

	// Palette renders the 4x1 swatch of a palette id 0-7.
	Palette(id uint8) *image.RGBA
}

// Backend runs the emulation loop and presents frames.
type Backend interface {
	// Run drives the console until the backend is done or fails.
	Run(console Console) error

	// IsHeadless returns true if the backend opens no window.
	IsHeadless() bool

	// Name returns the backend name for identification.
	Name() string
}

// Options contains configuration shared by all backends.
type Options struct {
	WindowTitle string
	Scale       int
	Fullscreen  bool
	VSync       bool
	Filter      string // "nearest", "linear"

	// Initial visibility of the debug panes in the windowed viewer.
	ShowPatternTables bool
	ShowPalettes      bool

	// Frames limits how many frames a headless run steps before
	// returning. Window backends ignore it.
	Frames int
}

// CreateBackend creates a backend by name.
func CreateBackend(name string, opts Options) (Backend, error) {
	switch name {
	case "ebitengine", "":
		return NewEbitengineBackend(opts), nil
	case "headless":
		return NewHeadlessBackend(opts), nil
	default:
		return nil, fmt.Errorf("unknown graphics backend %q", name)
	}
}
