package cartridge

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMapper000SingleBankMirrorsPRG(t *testing.T) {
	m := NewMapper000(1, 1)

	offset, ok := m.MapRead(0x8000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0000), offset)

	// The upper 16 KiB window maps to the same bank.
	offset, ok = m.MapRead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0000), offset)

	offset, ok = m.MapRead(0xFFFF)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x3FFF), offset)
}

func TestMapper000DoubleBankMapsDirectly(t *testing.T) {
	m := NewMapper000(2, 1)

	offset, ok := m.MapRead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x4000), offset)

	offset, ok = m.MapRead(0xFFFF)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x7FFF), offset)
}

func TestMapper000BelowWindow(t *testing.T) {
	m := NewMapper000(1, 1)

	_, ok := m.MapRead(0x7FFF)
	assert.False(t, ok)
	_, ok = m.MapRead(0x0000)
	assert.False(t, ok)
}

func TestMapper000PRGIsReadOnly(t *testing.T) {
	m := NewMapper000(2, 1)

	_, ok := m.MapWrite(0x8000)
	assert.False(t, ok)
	_, ok = m.MapWrite(0xFFFF)
	assert.False(t, ok)
}

func TestMapper000CHR(t *testing.T) {
	m := NewMapper000(1, 1)

	offset, ok := m.MapReadPPU(0x1ABC)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1ABC), offset)

	_, ok = m.MapReadPPU(0x2000)
	assert.False(t, ok)

	// CHR ROM boards reject writes.
	_, ok = m.MapWritePPU(0x1ABC)
	assert.False(t, ok)
}

func TestMapper000CHRRAM(t *testing.T) {
	m := NewMapper000(1, 0)

	offset, ok := m.MapWritePPU(0x0123)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0123), offset)

	_, ok = m.MapWritePPU(0x2000)
	assert.False(t, ok)
}
