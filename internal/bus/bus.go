// Package bus implements the CPU-visible memory bus and the PPU-side
// memory space shared between the register interface and rendering.
package bus

import (
	"nescore/internal/cartridge"
	"nescore/internal/ppu"
)

// Address windows as wired on the console.
const (
	ramSize     = 0x0800
	ramPhysMask = 0x07FF
	ramEnd      = 0x1FFF

	ppuStart   = 0x2000
	ppuEnd     = 0x3FFF
	ppuRegMask = 0x0007

	cartStart = 0x4020
)

// Bus routes CPU-visible reads and writes to RAM, the cartridge or the
// PPU register window. RAM is 2 KiB mirrored four times across
// 0x0000-0x1FFF; the eight PPU registers mirror every 8 bytes across
// 0x2000-0x3FFF.
type Bus struct {
	ram  [ramSize]uint8
	cart *cartridge.Cartridge
	ppu  *ppu.PPU
}

// New creates a bus wired to the given PPU. No cartridge is attached
// until InsertCartridge.
func New(p *ppu.PPU) *Bus {
	return &Bus{ppu: p}
}

// InsertCartridge attaches a cartridge and connects the PPU-side memory
// space to its CHR banks and mirroring mode.
func (b *Bus) InsertCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
	b.ppu.SetMemory(NewPPUBus(cart))
}

// Read reads a byte. Decoding follows the physical wiring: the cartridge
// window is consulted first, but the RAM and PPU range checks are not
// else-branches of it. An address inside the RAM range is serviced by
// RAM even if a cartridge were to claim it. Reads outside every window
// return 0x00.
func (b *Bus) Read(addr uint16) uint8 {
	if b.cart != nil && addr >= cartStart {
		if value, ok := b.cart.Read(addr); ok {
			return value
		}
	}
	if addr <= ramEnd {
		return b.ram[addr&ramPhysMask]
	}
	if addr >= ppuStart && addr <= ppuEnd {
		return b.ppu.ReadRegister(ppuStart | addr&ppuRegMask)
	}
	return 0x00
}

// Write writes a byte, with the same layered decoding as Read. Writes
// outside every window are dropped.
func (b *Bus) Write(addr uint16, value uint8) {
	if b.cart != nil && addr >= cartStart {
		b.cart.Write(addr, value)
	}
	if addr <= ramEnd {
		b.ram[addr&ramPhysMask] = value
	}
	if addr >= ppuStart && addr <= ppuEnd {
		b.ppu.WriteRegister(ppuStart|addr&ppuRegMask, value)
	}
}

// ReadWord reads a 16-bit little-endian word as two byte reads, low
// byte first.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a 16-bit little-endian word as two byte writes, low
// byte first.
func (b *Bus) WriteWord(addr uint16, value uint16) {
	b.Write(addr, uint8(value))
	b.Write(addr+1, uint8(value>>8))
}
