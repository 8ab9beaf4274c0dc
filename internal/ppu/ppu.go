// Package ppu implements the picture processor: the CPU-visible register
// interface, the cycle/scanline timing state machine and on-demand
// framebuffer rendering.
package ppu

import (
	"image"
	"image/color"
	"image/draw"
)

// Memory is the PPU-side address space (pattern tables, nametables,
// palette RAM). It is provided by the bus once a cartridge is inserted.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Timing constants for NTSC: 341 cycles per scanline, 262 scanlines per
// frame. Vertical blank starts on scanline 241 and ends on the last,
// pre-render scanline.
const (
	lastCycle      = 340
	lastScanline   = 261
	vblankScanline = 241

	paletteSpace = 0x3F00
)

// Canvas and auxiliary render target dimensions in pixels.
const (
	CanvasWidth  = 256
	CanvasHeight = 240

	PatternTableSize = 128
	PaletteCount     = 8
)

// PPU models the 2C02 picture processor. It is created once per emulated
// session; Reset reinitializes the register file only, preserving the
// render targets.
type PPU struct {
	Regs Registers

	cycle      uint16 // 0-340
	scanline   uint16 // 0-261
	frameReady bool
	nmi        bool

	canvas        *image.RGBA
	patternTables [2]*image.RGBA
	palettes      [PaletteCount]*image.RGBA

	// addrLatchSet tracks which half of the 16-bit VRAM address the
	// next 0x2006 write targets. dataBuffer delays 0x2007 reads by one
	// access, as the hardware does for non-palette memory.
	addrLatchSet bool
	dataBuffer   uint8

	mem Memory
}

// New creates a PPU with all render targets cleared to the first
// hardware palette color.
func New() *PPU {
	clear := SystemPalette[0]
	p := &PPU{
		canvas: newFilled(CanvasWidth, CanvasHeight, clear),
		patternTables: [2]*image.RGBA{
			newFilled(PatternTableSize, PatternTableSize, clear),
			newFilled(PatternTableSize, PatternTableSize, clear),
		},
	}
	for i := range p.palettes {
		p.palettes[i] = newFilled(4, 1, clear)
	}
	return p
}

func newFilled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// SetMemory attaches the PPU-side address space.
func (p *PPU) SetMemory(mem Memory) {
	p.mem = mem
}

// Reset reinitializes the register file. Timing counters, latches and
// render targets are left as they are.
func (p *PPU) Reset() {
	p.Regs = Registers{}
}

// Clock advances the (cycle, scanline) pair by one step and applies the
// side effects tied to exact cycle boundaries: vertical blank begins at
// (241, 1) together with an NMI request if enabled, and ends at (261, 1).
func (p *PPU) Clock() {
	if p.cycle == lastCycle {
		p.cycle = 0
		if p.scanline == lastScanline {
			p.scanline = 0
			p.frameReady = true
		} else {
			p.scanline++
		}
	} else {
		p.cycle++
	}

	if p.scanline == vblankScanline && p.cycle == 1 {
		p.setStatus(StatusVerticalBlank, true)
		if p.Regs.Ctrl.Has(CtrlEnableNMI) {
			p.nmi = true
		}
	} else if p.scanline == lastScanline && p.cycle == 1 {
		p.setStatus(StatusVerticalBlank, false)
	}
}

// Cycle returns the current cycle within the scanline.
func (p *PPU) Cycle() uint16 { return p.cycle }

// Scanline returns the current scanline.
func (p *PPU) Scanline() uint16 { return p.scanline }

// FrameReady reports whether a full frame has elapsed since the flag was
// last cleared.
func (p *PPU) FrameReady() bool { return p.frameReady }

// ClearFrameReady rearms the frame-ready flag.
func (p *PPU) ClearFrameReady() { p.frameReady = false }

// NMIPending reports whether the PPU has requested a non-maskable
// interrupt since the flag was last cleared.
func (p *PPU) NMIPending() bool { return p.nmi }

// ClearNMI acknowledges the NMI request.
func (p *PPU) ClearNMI() { p.nmi = false }

// ReadRegister reads one of the eight registers at 0x2000-0x2007. Only
// some registers are readable; the rest return 0.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case 0x2002:
		// Reading the status register clears the vertical blank flag
		// and resets the address latch to expect a high byte next.
		status := uint8(p.Regs.Status)
		p.setStatus(StatusVerticalBlank, false)
		p.addrLatchSet = false
		return status

	case 0x2004:
		// OAM data is deliberately unimplemented.
		return 0

	case 0x2007:
		// Reads are delayed by one access through the data buffer,
		// except for palette space which the hardware returns
		// immediately.
		data := p.dataBuffer
		p.dataBuffer = p.readMem(p.Regs.Addr)
		if p.Regs.Addr >= paletteSpace {
			return p.dataBuffer
		}
		return data

	default:
		return 0
	}
}

// WriteRegister writes one of the eight registers at 0x2000-0x2007.
// Writes to unimplemented or read-only registers are dropped.
func (p *PPU) WriteRegister(addr uint16, value uint8) {
	switch addr {
	case 0x2000:
		p.Regs.Ctrl = Control(value)

	case 0x2001:
		p.Regs.Mask = Mask(value)

	case 0x2003, 0x2004, 0x2005:
		// OAM address/data and scroll are deliberately unimplemented;
		// writes are accepted and discarded.

	case 0x2006:
		// The 16-bit VRAM address is loaded through the 8-bit bus in
		// two writes, high byte first. Each write toggles the latch.
		if !p.addrLatchSet {
			p.Regs.Addr = p.Regs.Addr&0x00FF | uint16(value)<<8
		} else {
			p.Regs.Addr = p.Regs.Addr&0xFF00 | uint16(value)
		}
		p.addrLatchSet = !p.addrLatchSet

	case 0x2007:
		p.writeMem(p.Regs.Addr, value)
		if p.Regs.Ctrl.Has(CtrlIncrementMode) {
			p.Regs.Addr += 32
		} else {
			p.Regs.Addr++
		}
	}
}

func (p *PPU) setStatus(flag Status, on bool) {
	if on {
		p.Regs.Status |= flag
	} else {
		p.Regs.Status &^= flag
	}
}

func (p *PPU) readMem(addr uint16) uint8 {
	if p.mem == nil {
		return 0
	}
	return p.mem.Read(addr)
}

func (p *PPU) writeMem(addr uint16, value uint8) {
	if p.mem != nil {
		p.mem.Write(addr, value)
	}
}
