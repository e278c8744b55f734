// Package bus defines the memory contract the CPU core issues all its
// reads and writes through. The CPU owns no cartridge, PPU, or APU
// state of its own; it only calls Read and Write.
package bus

// A Bus is the CPU's only path to memory. Read must return the byte
// visible at addr; Write must commit value at addr. Both are
// synchronous and infallible from the CPU's perspective.
//
// One or more components can be wired behind a Bus (RAM, cartridge,
// PPU/APU registers); how addr is routed among them is the embedding
// system's responsibility, not the CPU's.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// Funcs adapts a pair of plain functions into a Bus, for callers that
// would rather close over state than define a named type.
type Funcs struct {
	ReadFunc  func(addr uint16) byte
	WriteFunc func(addr uint16, value byte)
}

func (f Funcs) Read(addr uint16) byte         { return f.ReadFunc(addr) }
func (f Funcs) Write(addr uint16, value byte) { f.WriteFunc(addr, value) }

// RAM is a flat, unmirrored 64 KiB address space. It implements Bus
// directly and is useful for tests and small standalone tools that
// don't need a full cartridge-backed memory map.
type RAM struct {
	mem [65536]byte
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read(addr uint16) byte { return r.mem[addr] }

func (r *RAM) Write(addr uint16, value byte) { r.mem[addr] = value }

// Load copies program into the RAM starting at addr, wrapping around
// $FFFF if program overruns the top of the address space.
func (r *RAM) Load(addr uint16, program []byte) {
	for i, b := range program {
		r.mem[addr+uint16(i)] = b
	}
}
