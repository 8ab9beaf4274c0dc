// Package cartridge implements ROM container loading and address
// translation for NES cartridges.
package cartridge

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// MirrorMode is the nametable mirroring wired on the cartridge board.
type MirrorMode uint8

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
)

func (m MirrorMode) String() string {
	if m == MirrorVertical {
		return "vertical"
	}
	return "horizontal"
}

const (
	prgChunkSize = 16384
	chrChunkSize = 8192
	trainerSize  = 512
)

// rawHeader mirrors the 16-byte container header on disk.
type rawHeader struct {
	Magic      [4]uint8 // not validated, skipped
	PRGChunks  uint8    // PRG ROM size in 16 KiB units
	CHRChunks  uint8    // CHR ROM size in 8 KiB units
	Flags1     uint8
	Flags2     uint8
	PRGRAMSize uint8
	TV1        uint8
	TV2        uint8
	Reserved   [5]uint8
}

// Header holds the parsed ROM container header. Immutable once parsed.
type Header struct {
	PRGChunks  uint8
	CHRChunks  uint8
	Flags1     uint8
	Flags2     uint8
	PRGRAMSize uint8
	TV1        uint8
	TV2        uint8
}

// HasTrainer reports whether a 512 byte trainer block precedes PRG data.
func (h Header) HasTrainer() bool {
	return h.Flags1&(1<<2) != 0
}

// MapperID combines the high nibbles of the two flag bytes: Flags2 holds
// the high nibble of the id, Flags1 the low nibble.
func (h Header) MapperID() uint8 {
	return h.Flags2&0xF0 | h.Flags1>>4
}

// Mirror returns the nametable mirroring encoded in Flags1 bit 0.
func (h Header) Mirror() MirrorMode {
	if h.Flags1&0x01 != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

// Cartridge owns the PRG/CHR ROM bytes and the mapper translating
// logical bus addresses into offsets within them.
type Cartridge struct {
	header Header
	prgROM []uint8
	chrROM []uint8
	mapper Mapper
	mirror MirrorMode
}

// LoadFromFile loads a cartridge from a ROM container file.
func LoadFromFile(path string) (*Cartridge, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ROM: %w", err)
	}
	defer file.Close()

	cart, err := LoadFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %q: %w", path, err)
	}
	return cart, nil
}

// LoadFromReader parses a ROM container from a byte source positioned at
// offset 0. On any error no cartridge is returned.
func LoadFromReader(r io.Reader) (*Cartridge, error) {
	var raw rawHeader
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	header := Header{
		PRGChunks:  raw.PRGChunks,
		CHRChunks:  raw.CHRChunks,
		Flags1:     raw.Flags1,
		Flags2:     raw.Flags2,
		PRGRAMSize: raw.PRGRAMSize,
		TV1:        raw.TV1,
		TV2:        raw.TV2,
	}

	// The trainer block is skipped, never retained.
	if header.HasTrainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("skipping trainer: %w", err)
		}
	}

	prgROM := make([]uint8, int(header.PRGChunks)*prgChunkSize)
	if _, err := io.ReadFull(r, prgROM); err != nil {
		return nil, fmt.Errorf("reading PRG ROM: %w", err)
	}

	// Zero CHR chunks means the board carries 8 KiB of CHR RAM instead
	// of ROM; the mapper decides writability from the same header fact.
	chrROM := make([]uint8, int(header.CHRChunks)*chrChunkSize)
	if header.CHRChunks == 0 {
		chrROM = make([]uint8, chrChunkSize)
	} else if _, err := io.ReadFull(r, chrROM); err != nil {
		return nil, fmt.Errorf("reading CHR ROM: %w", err)
	}

	mapper, err := newMapper(header)
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		header: header,
		prgROM: prgROM,
		chrROM: chrROM,
		mapper: mapper,
		mirror: header.Mirror(),
	}, nil
}

// NewDummy builds a minimal valid cartridge (one PRG chunk, one CHR
// chunk, mapper 0) for components that need a cartridge-shaped
// placeholder without a file.
func NewDummy(mirror MirrorMode) *Cartridge {
	return &Cartridge{
		prgROM: make([]uint8, prgChunkSize),
		chrROM: make([]uint8, chrChunkSize),
		mapper: NewMapper000(1, 1),
		mirror: mirror,
	}
}

// Read reads from CPU-visible PRG space. The second return value reports
// whether the mapper claimed the address.
func (c *Cartridge) Read(addr uint16) (uint8, bool) {
	if offset, ok := c.mapper.MapRead(addr); ok {
		return c.prgROM[offset], true
	}
	return 0, false
}

// Write writes to CPU-visible PRG space, reporting whether the mapper
// claimed the address.
func (c *Cartridge) Write(addr uint16, value uint8) bool {
	if offset, ok := c.mapper.MapWrite(addr); ok {
		c.prgROM[offset] = value
		return true
	}
	return false
}

// ReadPPU reads from PPU-visible CHR space.
func (c *Cartridge) ReadPPU(addr uint16) (uint8, bool) {
	if offset, ok := c.mapper.MapReadPPU(addr); ok {
		return c.chrROM[offset], true
	}
	return 0, false
}

// WritePPU writes to PPU-visible CHR space, reporting whether the mapper
// claimed the address. Claims only CHR RAM boards.
func (c *Cartridge) WritePPU(addr uint16, value uint8) bool {
	if offset, ok := c.mapper.MapWritePPU(addr); ok {
		c.chrROM[offset] = value
		return true
	}
	return false
}

// Mirror returns the cartridge's nametable mirroring mode.
func (c *Cartridge) Mirror() MirrorMode {
	return c.mirror
}

// Header returns the parsed container header.
func (c *Cartridge) Header() Header {
	return c.header
}
