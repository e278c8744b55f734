package cartridge

import (
	"fmt"
	"io"
)

const trainerSize = 512

// Cartridge holds a loaded ROM image's PRG/CHR storage and the mapper
// that translates addresses into it. It implements bus.Bus's Read and
// Write methods so it can be plugged directly into the address space
// $8000-$FFFF and the 8 KiB PRG RAM window at $6000-$7FFF, which every
// loaded cartridge carries.
type Cartridge struct {
	MapperID   uint8
	PRGBanks   uint8
	CHRBanks   uint8
	Mirroring  Mirroring
	HasCHRRAM  bool
	HasTrainer bool

	prg []byte
	chr []byte
	ram []byte // PRG RAM, $6000-$7FFF, present regardless of mapper

	mapper Mapper
}

// String renders a one-line inspection summary of the cartridge's
// header fields, for diagnostics and the debugger.
func (c *Cartridge) String() string {
	chr := fmt.Sprintf("%d CHR bank(s)", c.CHRBanks)
	if c.HasCHRRAM {
		chr = "CHR RAM"
	}
	return fmt.Sprintf("mapper %d, %d PRG bank(s), %s, mirroring=%s, trainer=%t",
		c.MapperID, c.PRGBanks, chr, c.Mirroring, c.HasTrainer)
}

// Load parses an iNES v1 image from r and constructs a Cartridge.
func Load(r io.Reader) (*Cartridge, error) {
	h, err := parseHeader(r)
	if err != nil {
		return nil, err
	}

	if h.hasTrainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedROM, err)
		}
	}

	prg := make([]byte, h.prgSize())
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedROM, err)
	}

	chr := make([]byte, h.chrSize())
	if h.chrBanks > 0 {
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncatedROM, err)
		}
	}
	// chrBanks == 0 means CHR RAM: chr stays zeroed. PPU writes to it go
	// through mapper.PPUTranslateWrite; UxROM accepts them, while NROM
	// and CNROM decline every pattern-table write.

	mapperID := h.mapperID()
	mapper, err := newMapper(mapperID, h.prgBanks, h.chrBanks)
	if err != nil {
		return nil, err
	}

	return &Cartridge{
		MapperID:   mapperID,
		PRGBanks:   h.prgBanks,
		CHRBanks:   h.chrBanks,
		Mirroring:  h.mirroring(),
		HasCHRRAM:  h.chrBanks == 0,
		HasTrainer: h.hasTrainer(),
		prg:        prg,
		chr:        chr,
		ram:        make([]byte, 8*1024),
		mapper:     mapper,
	}, nil
}

// Read satisfies the CPU-facing side of bus.Bus for addresses the
// cartridge owns ($6000-$FFFF). Addresses below $8000 fall back to
// the fixed 8 KiB PRG RAM window; the mapper only ever sees $8000+.
func (c *Cartridge) Read(addr uint16) byte {
	if addr >= 0x6000 && addr < 0x8000 {
		return c.ram[addr-0x6000]
	}
	offset, ok := c.mapper.CPUTranslateRead(addr)
	if !ok {
		return 0
	}
	return c.prg[offset%len(c.prg)]
}

// Write satisfies the CPU-facing side of bus.Bus. PRG RAM writes land
// directly; $8000+ writes are handed to the mapper, which may accept
// them into its own storage or consume them as a bank-select register.
func (c *Cartridge) Write(addr uint16, value byte) {
	if addr >= 0x6000 && addr < 0x8000 {
		c.ram[addr-0x6000] = value
		return
	}
	outcome := c.mapper.CPUTranslateWrite(addr, value)
	if outcome.Kind == WriteAccepted {
		c.ram[outcome.Offset%len(c.ram)] = value
	}
}

// PPURead resolves a pattern-table fetch through the mapper's CHR
// translation.
func (c *Cartridge) PPURead(addr uint16) byte {
	offset, ok := c.mapper.PPUTranslateRead(addr)
	if !ok || len(c.chr) == 0 {
		return 0
	}
	return c.chr[offset%len(c.chr)]
}

// PPUWrite stores into CHR RAM when the mapper honors the write;
// CHR ROM boards decline it.
func (c *Cartridge) PPUWrite(addr uint16, value byte) {
	offset, ok := c.mapper.PPUTranslateWrite(addr)
	if !ok || len(c.chr) == 0 {
		return
	}
	c.chr[offset%len(c.chr)] = value
}
