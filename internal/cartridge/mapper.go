package cartridge

import "fmt"

// Mapper translates logical bus addresses into physical offsets within
// the owning cartridge's ROM buffers. Strategies only compute offsets;
// the cartridge applies them to the bytes it owns. A false result means
// the address is outside the strategy's claimed range and is ordinary
// control flow for the caller, not an error.
type Mapper interface {
	// MapRead and MapWrite cover CPU-visible PRG space.
	MapRead(addr uint16) (uint32, bool)
	MapWrite(addr uint16) (uint32, bool)

	// MapReadPPU and MapWritePPU cover PPU-visible CHR space.
	MapReadPPU(addr uint16) (uint32, bool)
	MapWritePPU(addr uint16) (uint32, bool)
}

// UnsupportedMapperError reports a ROM requesting a mapper this core
// does not implement. It carries the numeric id from the header.
type UnsupportedMapperError struct {
	ID uint8
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper %d", e.ID)
}

// newMapper selects the mapper strategy for the header's mapper id.
// Only mapper 0 is supported; anything else fails loudly rather than
// falling back to a best-effort mapping.
func newMapper(header Header) (Mapper, error) {
	switch id := header.MapperID(); id {
	case 0:
		return NewMapper000(header.PRGChunks, header.CHRChunks), nil
	default:
		return nil, &UnsupportedMapperError{ID: id}
	}
}
