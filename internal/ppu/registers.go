package ppu

// Control is the control register at 0x2000. Every byte value encodes a
// valid flag combination, so writes replace it wholesale.
type Control uint8

const (
	CtrlNametableX Control = 1 << iota
	CtrlNametableY
	CtrlIncrementMode
	CtrlPatternSprite
	CtrlPatternBackground
	CtrlSpriteSize
	CtrlSlaveMode
	CtrlEnableNMI
)

// Has reports whether all bits of flag are set.
func (c Control) Has(flag Control) bool { return c&flag == flag }

// Mask is the rendering mask register at 0x2001.
type Mask uint8

const (
	MaskGrayscale Mask = 1 << iota
	MaskRenderBackgroundLeft
	MaskRenderSpritesLeft
	MaskRenderBackground
	MaskRenderSprites
	MaskEnhanceRed
	MaskEnhanceGreen
	MaskEnhanceBlue
)

// Has reports whether all bits of flag are set.
func (m Mask) Has(flag Mask) bool { return m&flag == flag }

// Status is the status register at 0x2002. Only the top three bits are
// used by the hardware.
type Status uint8

const (
	StatusSpriteOverflow Status = 1 << (iota + 5)
	StatusSpriteZeroHit
	StatusVerticalBlank
)

// Has reports whether all bits of flag are set.
func (s Status) Has(flag Status) bool { return s&flag == flag }

// Registers holds the CPU-visible register file. The address latch and
// the one-cycle data read buffer live on the PPU itself; they are
// internal state, not registers.
type Registers struct {
	Ctrl    Control // 0x2000
	Mask    Mask    // 0x2001
	Status  Status  // 0x2002
	OAMAddr uint8   // 0x2003
	OAMData uint8   // 0x2004
	Scroll  uint8   // 0x2005
	Addr    uint16  // 0x2006, loaded high byte first across two writes
	Data    uint8   // 0x2007
	DMA     uint8   // 0x4014
}
