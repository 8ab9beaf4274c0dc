package bus

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"nescore/internal/cartridge"
	"nescore/internal/ppu"
)

// testCartridge loads a minimal NROM cartridge with a marker byte at the
// start of PRG. chrChunks 0 selects CHR RAM.
func testCartridge(t *testing.T, chrChunks uint8) *cartridge.Cartridge {
	t.Helper()

	rom := make([]byte, 16)
	copy(rom, "NES\x1a")
	rom[4] = 1
	rom[5] = chrChunks
	rom = append(rom, make([]byte, 16384+int(chrChunks)*8192)...)
	rom[16] = 0x42 // first PRG byte

	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	assert.NoError(t, err)
	return cart
}

func newTestBus(t *testing.T) *Bus {
	t.Helper()

	b := New(ppu.New())
	b.InsertCartridge(testCartridge(t, 0))
	return b
}

func TestBusRAMMirroring(t *testing.T) {
	b := newTestBus(t)

	b.Write(0x0002, 0xAB)

	// 2 KiB of RAM appears four times across the 8 KiB window.
	assert.Equal(t, uint8(0xAB), b.Read(0x0002))
	assert.Equal(t, uint8(0xAB), b.Read(0x0802))
	assert.Equal(t, uint8(0xAB), b.Read(0x1002))
	assert.Equal(t, uint8(0xAB), b.Read(0x1802))

	// Writing through a mirror lands in the same cell.
	b.Write(0x1FFF, 0xCD)
	assert.Equal(t, uint8(0xCD), b.Read(0x07FF))
}

func TestBusWordAccess(t *testing.T) {
	b := newTestBus(t)

	b.WriteWord(0x0100, 0x1234)
	assert.Equal(t, uint8(0x34), b.Read(0x0100))
	assert.Equal(t, uint8(0x12), b.Read(0x0101))
	assert.Equal(t, uint16(0x1234), b.ReadWord(0x0100))
}

func TestBusCartridgeRead(t *testing.T) {
	b := newTestBus(t)

	assert.Equal(t, uint8(0x42), b.Read(0x8000))
	// Single PRG bank mirrors into the upper window.
	assert.Equal(t, uint8(0x42), b.Read(0xC000))
}

func TestBusCartridgeROMWriteIgnored(t *testing.T) {
	b := newTestBus(t)

	b.Write(0x8000, 0x99)
	assert.Equal(t, uint8(0x42), b.Read(0x8000))
}

func TestBusUnmappedRange(t *testing.T) {
	b := newTestBus(t)

	// Inside the cartridge window but unclaimed by NROM.
	assert.Equal(t, uint8(0x00), b.Read(0x5000))
	b.Write(0x5000, 0xFF)
	assert.Equal(t, uint8(0x00), b.Read(0x5000))
}

func TestBusWithoutCartridge(t *testing.T) {
	b := New(ppu.New())

	assert.Equal(t, uint8(0x00), b.Read(0x8000))
	b.Write(0x0000, 0x11)
	assert.Equal(t, uint8(0x11), b.Read(0x0000))
}

func TestBusPPURegisterMirroring(t *testing.T) {
	b := newTestBus(t)

	// Load the VRAM address through a mirror of 0x2006 and write a byte
	// through a mirror of 0x2007.
	b.Write(0x3FF6, 0x21)
	b.Write(0x3FF6, 0x55)
	b.Write(0x200F, 0x7E)

	// Read it back through 0x2006/0x2007; the first read returns the
	// stale buffer.
	b.Write(0x2006, 0x21)
	b.Write(0x2006, 0x55)
	b.Read(0x2007)
	assert.Equal(t, uint8(0x7E), b.Read(0x2007))
}

func TestBusPPUStatusRead(t *testing.T) {
	p := ppu.New()
	b := New(p)
	b.InsertCartridge(testCartridge(t, 0))

	// Clock to the start of vertical blank.
	for !(p.Scanline() == 241 && p.Cycle() == 1) {
		p.Clock()
	}

	status := ppu.Status(b.Read(0x3FFA)) // mirror of 0x2002
	assert.True(t, status.Has(ppu.StatusVerticalBlank))

	// The read cleared the flag.
	status = ppu.Status(b.Read(0x2002))
	assert.False(t, status.Has(ppu.StatusVerticalBlank))
}
