package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroPageXWrapsWithinPage(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x8000
	c.X = 0xFF
	ram.Write(0x8000, 0xB5) // LDA $80,X -> zero page wraps to $7F
	ram.Write(0x8001, 0x80)
	ram.Write(0x007F, 0x55)
	c.Step()
	assert.Equal(t, byte(0x55), c.A)
}

func TestIndexedIndirectXWrapsWithinZeroPage(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x8000
	c.X = 0x04
	ram.Write(0x8000, 0xA1) // LDA ($20,X) -> ptr at $24/$25
	ram.Write(0x8001, 0x20)
	ram.Write(0x0024, 0x00)
	ram.Write(0x0025, 0x90)
	ram.Write(0x9000, 0x77)
	c.Step()
	assert.Equal(t, byte(0x77), c.A)
}

func TestIndirectIndexedYAppliesPageCross(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x8000
	c.Y = 0xFF
	ram.Write(0x8000, 0xB1) // LDA ($20),Y
	ram.Write(0x8001, 0x20)
	ram.Write(0x0020, 0x01)
	ram.Write(0x0021, 0x90)
	ram.Write(0x9100, 0x33) // $9001 + $FF = $9100, page cross
	cycles := c.Step()
	assert.Equal(t, byte(0x33), c.A)
	assert.Equal(t, 6, cycles) // base 5 + 1 page-cross
}

func TestRelativeAddressingHandlesNegativeOffset(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x8010
	c.setZero(true)
	ram.Write(0x8010, 0xF0) // BEQ -16
	ram.Write(0x8011, 0xF0)
	c.Step()
	assert.Equal(t, uint16(0x8002), c.PC)
}

func TestAccumulatorModeOperatesOnARegister(t *testing.T) {
	c, ram := newTestCPU()
	c.PC = 0x8000
	c.A = 0x81
	ram.Write(0x8000, 0x0A) // ASL A
	c.Step()
	assert.Equal(t, byte(0x02), c.A)
	assert.True(t, c.Carry())
}
