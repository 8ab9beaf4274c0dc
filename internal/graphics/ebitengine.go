package graphics

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Fixed viewer layout in logical pixels: the canvas on the left, the
// two pattern tables stacked on the right and the palette swatches
// below the canvas. Ebitengine scales the whole layout to the window.
const (
	viewerWidth  = 400
	viewerHeight = 272

	canvasWidth  = 256
	canvasHeight = 240

	patternTableSize = 128
	patternTableX    = 268
	patternTable0Y   = 4
	patternTable1Y   = 140

	paletteCount  = 8
	paletteY      = 246
	paletteScale  = 7
	paletteStride = 32
)

// EbitengineBackend presents the console in an Ebitengine window.
type EbitengineBackend struct {
	opts Options
}

// NewEbitengineBackend creates an Ebitengine windowed backend.
func NewEbitengineBackend(opts Options) *EbitengineBackend {
	return &EbitengineBackend{opts: opts}
}

// Run opens the window and drives the console until the user quits.
func (b *EbitengineBackend) Run(console Console) error {
	scale := b.opts.Scale
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowTitle(b.opts.WindowTitle)
	ebiten.SetWindowSize(viewerWidth*scale, viewerHeight*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(b.opts.VSync)
	ebiten.SetScreenFilterEnabled(b.opts.Filter == "linear")
	if b.opts.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return ebiten.RunGame(newViewer(console, b.opts))
}

// IsHeadless returns false.
func (b *EbitengineBackend) IsHeadless() bool { return false }

// Name returns the backend name.
func (b *EbitengineBackend) Name() string { return "Ebitengine" }

// viewer implements ebiten.Game. It steps one console frame per update
// tick and redraws the render targets from PPU memory.
type viewer struct {
	console Console

	canvas        *ebiten.Image
	patternTables [2]*ebiten.Image
	palettes      [paletteCount]*ebiten.Image

	selectedPalette   uint8
	showPatternTables bool
	showPalettes      bool
}

func newViewer(console Console, opts Options) *viewer {
	v := &viewer{
		console: console,
		canvas:  ebiten.NewImage(canvasWidth, canvasHeight),
		patternTables: [2]*ebiten.Image{
			ebiten.NewImage(patternTableSize, patternTableSize),
			ebiten.NewImage(patternTableSize, patternTableSize),
		},
		showPatternTables: opts.ShowPatternTables,
		showPalettes:      opts.ShowPalettes,
	}
	for i := range v.palettes {
		v.palettes[i] = ebiten.NewImage(4, 1)
	}
	return v
}

// Update implements ebiten.Game.
func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.selectedPalette = (v.selectedPalette + 1) % paletteCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		visible := v.showPatternTables || v.showPalettes
		v.showPatternTables = !visible
		v.showPalettes = !visible
	}

	v.console.StepFrame()

	v.canvas.WritePixels(v.console.Canvas().Pix)
	if v.showPatternTables {
		for i := range v.patternTables {
			v.patternTables[i].WritePixels(v.console.PatternTable(i, v.selectedPalette).Pix)
		}
	}
	if v.showPalettes {
		for i := range v.palettes {
			v.palettes[i].WritePixels(v.console.Palette(uint8(i)).Pix)
		}
	}

	return nil
}

// Draw implements ebiten.Game.
func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{A: 0xFF})

	screen.DrawImage(v.canvas, nil)

	if v.showPatternTables {
		for i, pt := range v.patternTables {
			op := &ebiten.DrawImageOptions{}
			y := patternTable0Y
			if i == 1 {
				y = patternTable1Y
			}
			op.GeoM.Translate(patternTableX, float64(y))
			screen.DrawImage(pt, op)
		}
	}

	if v.showPalettes {
		for i, pal := range v.palettes {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(paletteScale, paletteScale)
			op.GeoM.Translate(float64(2+i*paletteStride), paletteY)
			screen.DrawImage(pal, op)
		}
		ebitenutil.DebugPrintAt(screen, "P: palette", 260, paletteY)
	}
}

// Layout implements ebiten.Game.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewerWidth, viewerHeight
}
