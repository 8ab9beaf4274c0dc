package bus

import "nescore/internal/cartridge"

// PPUBus is the PPU-side 14-bit memory space: pattern tables served by
// the cartridge's CHR banks, 2 KiB of nametable VRAM mirrored according
// to the cartridge, and 32 bytes of palette RAM.
type PPUBus struct {
	cart       *cartridge.Cartridge
	vram       [0x800]uint8
	paletteRAM [32]uint8
}

// NewPPUBus creates the PPU-side memory space for a cartridge.
func NewPPUBus(cart *cartridge.Cartridge) *PPUBus {
	return &PPUBus{cart: cart}
}

// Read reads a byte from PPU space. Addresses are masked to 14 bits.
func (pb *PPUBus) Read(addr uint16) uint8 {
	addr &= 0x3FFF

	switch {
	case addr < 0x2000:
		// Pattern tables, served through the mapper. Unclaimed reads
		// float to 0.
		value, _ := pb.cart.ReadPPU(addr)
		return value

	case addr < 0x3F00:
		// Nametables; 0x3000-0x3EFF mirrors 0x2000-0x2EFF.
		return pb.vram[pb.nametableIndex(addr)]

	default:
		return pb.paletteRAM[paletteIndex(addr)]
	}
}

// Write writes a byte to PPU space. Addresses are masked to 14 bits.
func (pb *PPUBus) Write(addr uint16, value uint8) {
	addr &= 0x3FFF

	switch {
	case addr < 0x2000:
		// Claimed only by CHR RAM boards; ROM writes are dropped.
		pb.cart.WritePPU(addr, value)

	case addr < 0x3F00:
		pb.vram[pb.nametableIndex(addr)] = value

	default:
		pb.paletteRAM[paletteIndex(addr)] = value
	}
}

// ReadWord reads a 16-bit little-endian word from PPU space.
func (pb *PPUBus) ReadWord(addr uint16) uint16 {
	lo := pb.Read(addr)
	hi := pb.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a 16-bit little-endian word to PPU space.
func (pb *PPUBus) WriteWord(addr uint16, value uint16) {
	pb.Write(addr, uint8(value))
	pb.Write(addr+1, uint8(value>>8))
}

// nametableIndex folds a nametable address into the 2 KiB VRAM according
// to the cartridge's mirroring mode.
func (pb *PPUBus) nametableIndex(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr >> 10 & 3
	offset := addr & 0x3FF

	switch pb.cart.Mirror() {
	case cartridge.MirrorVertical:
		// 0x2000/0x2800 share the first kilobyte, 0x2400/0x2C00 the
		// second.
		if table == 1 || table == 3 {
			return 0x400 + offset
		}
		return offset

	default: // horizontal
		// 0x2000/0x2400 share the first kilobyte, 0x2800/0x2C00 the
		// second.
		if table >= 2 {
			return 0x400 + offset
		}
		return offset
	}
}

// paletteIndex folds a palette address into the 32-byte palette RAM.
// The background color entries at 0x10/0x14/0x18/0x1C alias their
// counterparts in the first half.
func paletteIndex(addr uint16) uint16 {
	index := (addr - 0x3F00) & 0x1F
	if index == 0x10 || index == 0x14 || index == 0x18 || index == 0x1C {
		index &= 0x0F
	}
	return index
}
