// Package cpu implements the MOS Technology 6502 microprocessor core, as
// used in the NES. The core owns no memory of its own; it issues every
// read and write through a bus.Bus.
package cpu

import (
	"github.com/A-Taiga/NES-Emulator/bus"
	"github.com/A-Taiga/NES-Emulator/mask"
)

// current holds the transient, per-instruction scratch state: which
// opcode is executing, where its operand lives, what was fetched, any
// page-cross or branch penalty cycles, and whether the operand is the
// accumulator itself rather than a memory location.
type current struct {
	op              OpcodeInfo
	address         uint16
	data            byte
	accumulatorMode bool
	pageCrossed     bool
	extraCycles     int
}

// CPU is one MOS 6502 core. It carries its own registers and packed
// status byte, and executes against whatever bus.Bus it is given.
type CPU struct {
	Bus bus.Bus

	PC uint16
	A  byte
	X  byte
	Y  byte
	SP byte
	P  byte // N V _ B D I Z C, bit 7 -> bit 0

	cyclesRemaining int
	current         current

	pendingReset bool
	pendingNMI   bool
	pendingIRQ   bool
}

// New constructs a CPU wired to b with a reset already pending; the
// first Step services that reset before anything else, bringing the
// registers to a known state.
func New(b bus.Bus) *CPU {
	c := &CPU{Bus: b}
	c.pendingReset = true
	return c
}

func (c *CPU) read(addr uint16) byte           { return c.Bus.Read(addr) }
func (c *CPU) write(addr uint16, value byte)   { c.Bus.Write(addr, value) }
func (c *CPU) readWord(addr uint16) uint16 {
	lo := c.read(addr)
	hi := c.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Status flag accessors. Each pair is grounded directly on a single
// mask.IsSet/mask.Unset call against the packed P byte; kept as
// distinct named methods (rather than one generic helper) because
// mask.byteIndex is unexported and cannot appear in this package's own
// function signatures.

func (c *CPU) Negative() bool { return mask.IsSet(c.P, mask.I1) }
func (c *CPU) setNegative(v bool) {
	if v {
		c.P |= 0x80
	} else {
		c.P = mask.Unset(c.P, mask.I1, mask.I1)
	}
}

func (c *CPU) Overflow() bool { return mask.IsSet(c.P, mask.I2) }
func (c *CPU) setOverflow(v bool) {
	if v {
		c.P |= 0x40
	} else {
		c.P = mask.Unset(c.P, mask.I2, mask.I2)
	}
}

func (c *CPU) unused() bool { return mask.IsSet(c.P, mask.I3) }
func (c *CPU) setUnused(v bool) {
	if v {
		c.P |= 0x20
	} else {
		c.P = mask.Unset(c.P, mask.I3, mask.I3)
	}
}

func (c *CPU) breakFlag() bool { return mask.IsSet(c.P, mask.I4) }
func (c *CPU) setBreak(v bool) {
	if v {
		c.P |= 0x10
	} else {
		c.P = mask.Unset(c.P, mask.I4, mask.I4)
	}
}

func (c *CPU) Decimal() bool { return mask.IsSet(c.P, mask.I5) }
func (c *CPU) setDecimal(v bool) {
	if v {
		c.P |= 0x08
	} else {
		c.P = mask.Unset(c.P, mask.I5, mask.I5)
	}
}

func (c *CPU) InterruptDisable() bool { return mask.IsSet(c.P, mask.I6) }
func (c *CPU) setInterruptDisable(v bool) {
	if v {
		c.P |= 0x04
	} else {
		c.P = mask.Unset(c.P, mask.I6, mask.I6)
	}
}

func (c *CPU) Zero() bool { return mask.IsSet(c.P, mask.I7) }
func (c *CPU) setZero(v bool) {
	if v {
		c.P |= 0x02
	} else {
		c.P = mask.Unset(c.P, mask.I7, mask.I7)
	}
}

func (c *CPU) Carry() bool { return mask.IsSet(c.P, mask.I8) }
func (c *CPU) setCarry(v bool) {
	if v {
		c.P |= 0x01
	} else {
		c.P = mask.Unset(c.P, mask.I8, mask.I8)
	}
}

func (c *CPU) setZN(v byte) {
	c.setZero(v == 0)
	c.setNegative(v&0x80 != 0)
}

func (c *CPU) push(v byte) {
	c.write(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() byte {
	c.SP++
	return c.read(0x0100 + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// TriggerReset schedules a reset to be serviced before the next
// instruction fetch.
func (c *CPU) TriggerReset() { c.pendingReset = true }

// TriggerNMI schedules a non-maskable interrupt. Unlike IRQ, it cannot
// be disabled by the interrupt-disable flag.
func (c *CPU) TriggerNMI() { c.pendingNMI = true }

// TriggerIRQ schedules a maskable interrupt request. It is serviced
// only if InterruptDisable is clear.
func (c *CPU) TriggerIRQ() { c.pendingIRQ = true }

func (c *CPU) serviceReset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = 0x24 // I set, unused bit set, everything else clear
	c.PC = c.readWord(0xFFFC)
	c.pendingReset = false
	c.cyclesRemaining = 7
}

func (c *CPU) serviceNMI() {
	c.pushWord(c.PC)
	c.setBreak(false)
	c.setUnused(true)
	c.push(c.P)
	c.setInterruptDisable(true)
	c.PC = c.readWord(0xFFFA)
	c.pendingNMI = false
	c.cyclesRemaining = 7
}

func (c *CPU) serviceIRQ() {
	c.pushWord(c.PC)
	c.setBreak(false)
	c.setUnused(true)
	c.push(c.P)
	c.setInterruptDisable(true)
	c.PC = c.readWord(0xFFFE)
	c.pendingIRQ = false
	c.cyclesRemaining = 7
}

// Step services any pending interrupt (reset first, then NMI, then IRQ
// if interrupts are not disabled) or, failing that, fetches, decodes
// and executes exactly one instruction. It returns the number of
// cycles the instruction (or interrupt) consumed.
func (c *CPU) Step() int {
	switch {
	case c.pendingReset:
		c.serviceReset()
		return c.cyclesRemaining
	case c.pendingNMI:
		c.serviceNMI()
		return c.cyclesRemaining
	case c.pendingIRQ && !c.InterruptDisable():
		c.serviceIRQ()
		return c.cyclesRemaining
	}

	opByte := c.read(c.PC)
	c.PC++

	op := opcodeTable[opByte]
	c.current = current{op: op}

	pageCrossed := c.evaluateAddress(op.Mode)
	c.current.pageCrossed = pageCrossed

	c.execute(op.Mnemonic)

	total := op.Cycles
	if pageCrossed && pageCrossBonusMnemonic(op.Mnemonic) {
		total++
	}
	total += c.current.extraCycles

	c.cyclesRemaining = total
	return total
}

// Tick drives the CPU one clock cycle at a time rather than one
// instruction at a time. It decrements cyclesRemaining; once that
// reaches zero the next instruction (or pending interrupt) is fetched
// and executed via Step, which refills cyclesRemaining with that
// instruction's cost, and this tick is charged as the instruction's
// first cycle. This keeps execution instruction-granular internally
// while exposing a per-cycle clock to external components such as a
// PPU or APU that must stay synchronized with the CPU.
func (c *CPU) Tick() {
	if c.cyclesRemaining == 0 {
		c.Step()
	}
	c.cyclesRemaining--
}
