package cpu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Taiga/NES-Emulator/cartridge"
)

// cartBus is the minimal bus.Bus a headless test needs: RAM below
// $2000, the cartridge everywhere $6000 and up.
type cartBus struct {
	ram  [2048]byte
	cart *cartridge.Cartridge
}

func (b *cartBus) Read(addr uint16) byte {
	if addr < 0x2000 {
		return b.ram[addr%0x0800]
	}
	return b.cart.Read(addr)
}

func (b *cartBus) Write(addr uint16, value byte) {
	if addr < 0x2000 {
		b.ram[addr%0x0800] = value
		return
	}
	b.cart.Write(addr, value)
}

func buildNROM(t *testing.T, prg []byte) *cartridge.Cartridge {
	t.Helper()
	padded := make([]byte, 16*1024)
	copy(padded, prg)
	raw := append([]byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, padded...)
	raw = append(raw, make([]byte, 8*1024)...)
	cart, err := cartridge.Load(bytes.NewReader(raw))
	require.NoError(t, err)
	return cart
}

func TestCPURunsProgramDirectlyFromCartridge(t *testing.T) {
	prg := make([]byte, 16*1024)
	// reset vector points at $8000, relative to PRG start
	prg[0x3FFC] = 0x00
	prg[0x3FFD] = 0x80
	copy(prg, []byte{0xA9, 0x07, 0xAA, 0xE8, 0x00}) // LDA #$07, TAX, INX, BRK

	cart := buildNROM(t, prg)
	bus := &cartBus{cart: cart}
	c := New(bus)
	c.Step() // reset

	c.Step() // LDA #$07
	assert.Equal(t, byte(0x07), c.A)
	c.Step() // TAX
	assert.Equal(t, byte(0x07), c.X)
	c.Step() // INX
	assert.Equal(t, byte(0x08), c.X)
}
