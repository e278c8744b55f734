package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM()
	r.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), r.Read(0x1234))
	assert.Equal(t, byte(0), r.Read(0x1235))
}

func TestRAMLoad(t *testing.T) {
	r := NewRAM()
	r.Load(0x8000, []byte{0xA9, 0x00, 0x00})
	assert.Equal(t, byte(0xA9), r.Read(0x8000))
	assert.Equal(t, byte(0x00), r.Read(0x8001))
}

func TestFuncsAdapter(t *testing.T) {
	mem := map[uint16]byte{}
	var b Bus = Funcs{
		ReadFunc:  func(addr uint16) byte { return mem[addr] },
		WriteFunc: func(addr uint16, v byte) { mem[addr] = v },
	}
	b.Write(0x10, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x10))
}
