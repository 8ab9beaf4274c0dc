package app

import (
	"fmt"
	"image"

	"github.com/retroenv/retrogolib/log"

	"nescore/internal/bus"
	"nescore/internal/cartridge"
	"nescore/internal/ppu"
)

// Emulator wires the console components together and drives them frame
// by frame.
type Emulator struct {
	logger *log.Logger

	ppu  *ppu.PPU
	bus  *bus.Bus
	cart *cartridge.Cartridge

	frames       uint64
	nmiRequested bool
}

// NewEmulator creates an emulator with no cartridge inserted.
func NewEmulator(logger *log.Logger) *Emulator {
	p := ppu.New()
	return &Emulator{
		logger: logger,
		ppu:    p,
		bus:    bus.New(p),
	}
}

// LoadROM loads an iNES file and inserts it into the console.
func (e *Emulator) LoadROM(path string) error {
	cart, err := cartridge.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	e.insert(cart)

	header := cart.Header()
	e.logger.Info("Loaded ROM",
		log.String("file", path),
		log.Uint8("mapper", header.MapperID()),
		log.Uint8("prg_chunks", header.PRGChunks),
		log.Uint8("chr_chunks", header.CHRChunks),
		log.Stringer("mirroring", cart.Mirror()))

	return nil
}

// InsertCartridge inserts an already loaded cartridge.
func (e *Emulator) InsertCartridge(cart *cartridge.Cartridge) {
	e.insert(cart)
}

func (e *Emulator) insert(cart *cartridge.Cartridge) {
	e.cart = cart
	e.bus.InsertCartridge(cart)
	e.ppu.Reset()
	e.frames = 0
	e.nmiRequested = false
}

// StepFrame clocks the PPU until a full frame has elapsed. It reports
// whether the PPU requested an NMI during the frame.
func (e *Emulator) StepFrame() bool {
	for !e.ppu.FrameReady() {
		e.ppu.Clock()
	}
	e.ppu.ClearFrameReady()
	e.frames++

	e.nmiRequested = e.ppu.NMIPending()
	e.ppu.ClearNMI()

	if e.nmiRequested {
		e.logger.Debug("VBlank NMI",
			log.Int("frame", int(e.frames)))
	}
	return e.nmiRequested
}

// Frames returns the number of frames stepped since the last cartridge
// insert.
func (e *Emulator) Frames() uint64 { return e.frames }

// Bus returns the CPU-visible memory bus.
func (e *Emulator) Bus() *bus.Bus { return e.bus }

// PPU returns the picture processor.
func (e *Emulator) PPU() *ppu.PPU { return e.ppu }

// Canvas returns the 256x240 main render target.
func (e *Emulator) Canvas() *image.RGBA { return e.ppu.Canvas() }

// PatternTable renders one of the two pattern tables with the colors of
// the given palette.
func (e *Emulator) PatternTable(index int, paletteID uint8) *image.RGBA {
	return e.ppu.GetPatternTable(index, paletteID)
}

// Palette renders the 4x1 swatch of a palette id 0-7.
func (e *Emulator) Palette(id uint8) *image.RGBA {
	return e.ppu.GetPalette(id)
}
