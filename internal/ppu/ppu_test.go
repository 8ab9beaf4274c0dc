package ppu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// testMemory is a flat 16 KiB PPU address space without any mirroring,
// enough to observe what the register interface reads and writes.
type testMemory struct {
	data [0x4000]uint8
}

func (m *testMemory) Read(addr uint16) uint8         { return m.data[addr&0x3FFF] }
func (m *testMemory) Write(addr uint16, value uint8) { m.data[addr&0x3FFF] = value }

func newTestPPU() (*PPU, *testMemory) {
	p := New()
	mem := &testMemory{}
	p.SetMemory(mem)
	return p, mem
}

func clockTo(p *PPU, scanline, cycle uint16) {
	for !(p.Scanline() == scanline && p.Cycle() == cycle) {
		p.Clock()
	}
}

func TestClockAdvancesThroughScanline(t *testing.T) {
	p, _ := newTestPPU()

	assert.Equal(t, uint16(0), p.Cycle())
	assert.Equal(t, uint16(0), p.Scanline())

	for i := 0; i < 341; i++ {
		p.Clock()
	}

	assert.Equal(t, uint16(0), p.Cycle())
	assert.Equal(t, uint16(1), p.Scanline())
}

func TestFrameWrapSetsFrameReady(t *testing.T) {
	p, _ := newTestPPU()

	for i := 0; i < 341*262; i++ {
		p.Clock()
	}

	assert.Equal(t, uint16(0), p.Cycle())
	assert.Equal(t, uint16(0), p.Scanline())
	assert.True(t, p.FrameReady())

	p.ClearFrameReady()
	assert.False(t, p.FrameReady())
}

func TestVerticalBlankTiming(t *testing.T) {
	p, _ := newTestPPU()

	clockTo(p, 241, 0)
	assert.False(t, p.Regs.Status.Has(StatusVerticalBlank))

	p.Clock() // (241, 1)
	assert.True(t, p.Regs.Status.Has(StatusVerticalBlank))

	clockTo(p, 261, 1)
	assert.False(t, p.Regs.Status.Has(StatusVerticalBlank))
}

func TestNMIRequiresControlFlag(t *testing.T) {
	p, _ := newTestPPU()

	clockTo(p, 241, 1)
	assert.False(t, p.NMIPending())
}

func TestNMIOnVerticalBlank(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0x2000, uint8(CtrlEnableNMI))
	clockTo(p, 241, 1)
	assert.True(t, p.NMIPending())

	p.ClearNMI()
	assert.False(t, p.NMIPending())
}

func TestStatusReadClearsVerticalBlank(t *testing.T) {
	p, _ := newTestPPU()

	clockTo(p, 241, 1)

	status := Status(p.ReadRegister(0x2002))
	assert.True(t, status.Has(StatusVerticalBlank))
	assert.False(t, p.Regs.Status.Has(StatusVerticalBlank))
}

func TestStatusReadLeavesOtherFlags(t *testing.T) {
	p, _ := newTestPPU()

	p.Regs.Status = StatusVerticalBlank | StatusSpriteZeroHit | StatusSpriteOverflow

	status := Status(p.ReadRegister(0x2002))
	assert.True(t, status.Has(StatusVerticalBlank))
	assert.True(t, p.Regs.Status.Has(StatusSpriteZeroHit))
	assert.True(t, p.Regs.Status.Has(StatusSpriteOverflow))
	assert.False(t, p.Regs.Status.Has(StatusVerticalBlank))
}

func TestFlagIndependence(t *testing.T) {
	p, _ := newTestPPU()

	p.Regs.Ctrl = CtrlEnableNMI | CtrlIncrementMode
	p.Regs.Status = StatusSpriteZeroHit

	// Toggling one status flag leaves the rest of both registers alone.
	p.Regs.Status |= StatusVerticalBlank
	assert.True(t, p.Regs.Status.Has(StatusSpriteZeroHit))
	assert.False(t, p.Regs.Status.Has(StatusSpriteOverflow))
	assert.Equal(t, CtrlEnableNMI|CtrlIncrementMode, p.Regs.Ctrl)

	p.Regs.Status &^= StatusVerticalBlank
	assert.True(t, p.Regs.Status.Has(StatusSpriteZeroHit))
	assert.Equal(t, CtrlEnableNMI|CtrlIncrementMode, p.Regs.Ctrl)
}

func TestAddrRegisterLoadsHighByteFirst(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0x2006, 0x12)
	assert.Equal(t, uint16(0x1200), p.Regs.Addr)

	p.WriteRegister(0x2006, 0x34)
	assert.Equal(t, uint16(0x1234), p.Regs.Addr)

	// The latch toggles back, the third write replaces the high byte.
	p.WriteRegister(0x2006, 0x56)
	assert.Equal(t, uint16(0x5634), p.Regs.Addr)
}

func TestStatusReadResetsAddrLatch(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0x2006, 0x12)
	p.ReadRegister(0x2002)

	// After the latch reset the next write is a high byte again.
	p.WriteRegister(0x2006, 0x34)
	assert.Equal(t, uint16(0x3400), p.Regs.Addr)
}

func TestDataReadIsBuffered(t *testing.T) {
	p, mem := newTestPPU()
	mem.data[0x2155] = 0x7E

	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x55)

	// The first read returns the stale buffer, the second the value.
	assert.Equal(t, uint8(0x00), p.ReadRegister(0x2007))
	assert.Equal(t, uint8(0x7E), p.ReadRegister(0x2007))
}

func TestDataReadPaletteBypassesBuffer(t *testing.T) {
	p, mem := newTestPPU()
	mem.data[0x3F00] = 0x2C
	mem.data[0x3F01] = 0x15

	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x00)
	assert.Equal(t, uint8(0x2C), p.ReadRegister(0x2007))

	// The boundary itself bypasses, not only addresses above it.
	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x01)
	assert.Equal(t, uint8(0x15), p.ReadRegister(0x2007))
}

func TestDataWriteIncrementsAddr(t *testing.T) {
	p, mem := newTestPPU()

	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0xAA)
	p.WriteRegister(0x2007, 0xBB)

	assert.Equal(t, uint8(0xAA), mem.data[0x2000])
	assert.Equal(t, uint8(0xBB), mem.data[0x2001])
	assert.Equal(t, uint16(0x2002), p.Regs.Addr)
}

func TestDataWriteIncrementMode(t *testing.T) {
	p, mem := newTestPPU()

	p.WriteRegister(0x2000, uint8(CtrlIncrementMode))
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0xAA)
	p.WriteRegister(0x2007, 0xBB)

	assert.Equal(t, uint8(0xAA), mem.data[0x2000])
	assert.Equal(t, uint8(0xBB), mem.data[0x2020])
	assert.Equal(t, uint16(0x2040), p.Regs.Addr)
}

func TestControlAndMaskWrites(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0x2000, 0xFF)
	assert.Equal(t, Control(0xFF), p.Regs.Ctrl)

	p.WriteRegister(0x2001, 0x1E)
	assert.Equal(t, Mask(0x1E), p.Regs.Mask)
	assert.True(t, p.Regs.Mask.Has(MaskRenderBackground))
	assert.False(t, p.Regs.Mask.Has(MaskGrayscale))
}

func TestUnimplementedRegisters(t *testing.T) {
	p, _ := newTestPPU()

	// OAM and scroll writes are accepted and discarded.
	p.WriteRegister(0x2003, 0x11)
	p.WriteRegister(0x2004, 0x22)
	p.WriteRegister(0x2005, 0x33)
	assert.Equal(t, uint8(0), p.Regs.OAMAddr)
	assert.Equal(t, uint8(0), p.Regs.OAMData)
	assert.Equal(t, uint8(0), p.Regs.Scroll)

	assert.Equal(t, uint8(0), p.ReadRegister(0x2004))
	assert.Equal(t, uint8(0), p.ReadRegister(0x2000))
	assert.Equal(t, uint8(0), p.ReadRegister(0x2001))
}

func TestResetClearsRegistersOnly(t *testing.T) {
	p, _ := newTestPPU()

	p.WriteRegister(0x2000, 0xFF)
	clockTo(p, 10, 20)

	p.Reset()
	assert.Equal(t, Registers{}, p.Regs)
	assert.Equal(t, uint16(10), p.Scanline())
	assert.Equal(t, uint16(20), p.Cycle())
}

func TestReadWithoutMemory(t *testing.T) {
	p := New()

	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0xAA) // dropped
	assert.Equal(t, uint8(0), p.ReadRegister(0x2007))
}
