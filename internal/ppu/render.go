package ppu

import (
	"image"
	"image/color"
)

// Rendering is pull-based: the pattern table and palette images are
// recomputed from current PPU memory when requested, not maintained
// incrementally while clocking.

// colorAt resolves one palette entry to a hardware color. Palette RAM
// starts at 0x3F00, four entries per palette; stored indices are 6 bits.
func (p *PPU) colorAt(paletteID, pixel uint8) color.RGBA {
	addr := paletteSpace + uint16(paletteID)<<2 + uint16(pixel)
	return SystemPalette[p.readMem(addr)&0x3F]
}

// Canvas returns the 256x240 main render target.
func (p *PPU) Canvas() *image.RGBA {
	return p.canvas
}

// GetPalette refreshes the 4x1 swatch for a palette id 0-7 from palette
// RAM and returns it.
func (p *PPU) GetPalette(id uint8) *image.RGBA {
	swatch := p.palettes[id]
	for pixel := 0; pixel < 4; pixel++ {
		swatch.SetRGBA(pixel, 0, p.colorAt(id, uint8(pixel)))
	}
	return swatch
}

// GetPatternTable rebuilds one of the two 128x128 pattern table images
// (16x16 tiles of 8x8 pixels) using the colors of the given palette.
//
// Each tile row is stored as two bitplanes eight bytes apart; one bit
// from each plane forms the 2-bit color index, with the low plane
// contributing bit 0. Bits are consumed least significant first, which
// is the rightmost pixel column.
func (p *PPU) GetPatternTable(index int, paletteID uint8) *image.RGBA {
	img := p.patternTables[index]
	base := uint16(index) * 0x1000

	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			// 256 bytes per tile row, 16 bytes per tile.
			tileOffset := uint16(tileY)*256 + uint16(tileX)*16

			for row := 0; row < 8; row++ {
				lsb := p.readMem(base + tileOffset + uint16(row))
				msb := p.readMem(base + tileOffset + uint16(row) + 8)

				for col := 0; col < 8; col++ {
					pixel := lsb&0x01 | (msb&0x01)<<1
					img.SetRGBA(tileX*8+(7-col), tileY*8+row, p.colorAt(paletteID, pixel))
					lsb >>= 1
					msb >>= 1
				}
			}
		}
	}

	return img
}
