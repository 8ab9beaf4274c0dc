package cartridge

// Mapper000 implements NROM, the simplest board: no bank switching.
// PRG is one 16 KiB bank mirrored across 0x8000-0xFFFF, or one 32 KiB
// bank mapped directly. CHR is a single fixed 8 KiB bank, writable only
// when the board carries CHR RAM instead of ROM.
type Mapper000 struct {
	prgBanks uint8
	chrRAM   bool
}

// NewMapper000 creates an NROM mapper for the given chunk counts.
func NewMapper000(prgChunks, chrChunks uint8) *Mapper000 {
	return &Mapper000{
		prgBanks: prgChunks,
		chrRAM:   chrChunks == 0,
	}
}

// MapRead claims 0x8000-0xFFFF. With a single 16 KiB bank the upper half
// mirrors the lower one.
func (m *Mapper000) MapRead(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	mask := uint16(0x7FFF)
	if m.prgBanks == 1 {
		mask = 0x3FFF
	}
	return uint32(addr & mask), true
}

// MapWrite never claims: NROM PRG is ROM.
func (m *Mapper000) MapWrite(addr uint16) (uint32, bool) {
	return 0, false
}

// MapReadPPU claims the fixed CHR bank at 0x0000-0x1FFF.
func (m *Mapper000) MapReadPPU(addr uint16) (uint32, bool) {
	if addr < 0x2000 {
		return uint32(addr), true
	}
	return 0, false
}

// MapWritePPU claims the CHR bank only on CHR RAM boards.
func (m *Mapper000) MapWritePPU(addr uint16) (uint32, bool) {
	if addr < 0x2000 && m.chrRAM {
		return uint32(addr), true
	}
	return 0, false
}
