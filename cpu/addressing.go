package cpu

// evaluateAddress resolves the effective address (or, for ACC/IMP,
// the operand itself) for mode, advancing PC past however many
// operand bytes the mode consumes. It reports whether resolving the
// address crossed a page boundary; callers decide whether that crossing
// is chargeable based on the instruction being executed.
func (c *CPU) evaluateAddress(mode AddrMode) bool {
	switch mode {
	case ACC:
		c.current.accumulatorMode = true
		return false

	case IMP:
		return false

	case IMM:
		c.current.address = c.PC
		c.PC++
		return false

	case ZPG:
		c.current.address = uint16(c.read(c.PC))
		c.PC++
		return false

	case ZPX:
		c.current.address = uint16(c.read(c.PC) + c.X)
		c.PC++
		return false

	case ZPY:
		c.current.address = uint16(c.read(c.PC) + c.Y)
		c.PC++
		return false

	case ABS:
		c.current.address = c.readWord(c.PC)
		c.PC += 2
		return false

	case ABX:
		base := c.readWord(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		c.current.address = addr
		return (addr & 0xFF00) != (base & 0xFF00)

	case ABY:
		base := c.readWord(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		c.current.address = addr
		return (addr & 0xFF00) != (base & 0xFF00)

	case IND:
		ptr := c.readWord(c.PC)
		c.PC += 2
		lo := c.read(ptr)
		// The page-wrap bug: if the pointer's low byte is $FF, the high
		// byte is fetched from the start of the same page instead of
		// rolling over into the next one.
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.read(hiAddr)
		c.current.address = uint16(hi)<<8 | uint16(lo)
		return false

	case XIZ:
		base := c.read(c.PC)
		c.PC++
		ptr := base + c.X
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr + 1))
		c.current.address = uint16(hi)<<8 | uint16(lo)
		return false

	case YIZ:
		zp := c.read(c.PC)
		c.PC++
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.current.address = addr
		return (addr & 0xFF00) != (base & 0xFF00)

	case REL:
		offset := int8(c.read(c.PC))
		c.PC++
		c.current.address = uint16(int32(c.PC) + int32(offset))
		return false
	}

	return false
}
