package cpu

// opcodeTable is the full 256-entry mnemonic/addressing-mode/cycle-count
// map for every possible opcode byte, including the 105 illegal slots,
// transcribed from the canonical MOS 6502 instruction set. Unused slots
// decode as (XXX, IMP, 2): a two-cycle no-op that still advances PC by
// one, never a panic or a table hole.
var opcodeTable = [256]OpcodeInfo{
	0x00: {BRK, IMP, 7}, 0x01: {ORA, XIZ, 6}, 0x02: {XXX, IMP, 2}, 0x03: {XXX, IMP, 2},
	0x04: {XXX, IMP, 2}, 0x05: {ORA, ZPG, 3}, 0x06: {ASL, ZPG, 5}, 0x07: {XXX, IMP, 2},
	0x08: {PHP, IMP, 3}, 0x09: {ORA, IMM, 2}, 0x0A: {ASL, ACC, 2}, 0x0B: {XXX, IMP, 2},
	0x0C: {XXX, IMP, 2}, 0x0D: {ORA, ABS, 4}, 0x0E: {ASL, ABS, 6}, 0x0F: {XXX, IMP, 2},

	0x10: {BPL, REL, 2}, 0x11: {ORA, YIZ, 5}, 0x12: {XXX, IMP, 2}, 0x13: {XXX, IMP, 2},
	0x14: {XXX, IMP, 2}, 0x15: {ORA, ZPX, 4}, 0x16: {ASL, ZPX, 6}, 0x17: {XXX, IMP, 2},
	0x18: {CLC, IMP, 2}, 0x19: {ORA, ABY, 4}, 0x1A: {XXX, IMP, 2}, 0x1B: {XXX, IMP, 2},
	0x1C: {XXX, IMP, 2}, 0x1D: {ORA, ABX, 4}, 0x1E: {ASL, ABX, 7}, 0x1F: {XXX, IMP, 2},

	0x20: {JSR, ABS, 6}, 0x21: {AND, XIZ, 6}, 0x22: {XXX, IMP, 2}, 0x23: {XXX, IMP, 2},
	0x24: {BIT, ZPG, 3}, 0x25: {AND, ZPG, 3}, 0x26: {ROL, ZPG, 5}, 0x27: {XXX, IMP, 2},
	0x28: {PLP, IMP, 4}, 0x29: {AND, IMM, 2}, 0x2A: {ROL, ACC, 2}, 0x2B: {XXX, IMP, 2},
	0x2C: {BIT, ABS, 4}, 0x2D: {AND, ABS, 4}, 0x2E: {ROL, ABS, 6}, 0x2F: {XXX, IMP, 2},

	0x30: {BMI, REL, 2}, 0x31: {AND, YIZ, 5}, 0x32: {XXX, IMP, 2}, 0x33: {XXX, IMP, 2},
	0x34: {XXX, IMP, 2}, 0x35: {AND, ZPX, 4}, 0x36: {ROL, ZPX, 6}, 0x37: {XXX, IMP, 2},
	0x38: {SEC, IMP, 2}, 0x39: {AND, ABY, 4}, 0x3A: {XXX, IMP, 2}, 0x3B: {XXX, IMP, 2},
	0x3C: {XXX, IMP, 2}, 0x3D: {AND, ABX, 4}, 0x3E: {ROL, ABX, 7}, 0x3F: {XXX, IMP, 2},

	0x40: {RTI, IMP, 6}, 0x41: {EOR, XIZ, 6}, 0x42: {XXX, IMP, 2}, 0x43: {XXX, IMP, 2},
	0x44: {XXX, IMP, 2}, 0x45: {EOR, ZPG, 3}, 0x46: {LSR, ZPG, 5}, 0x47: {XXX, IMP, 2},
	0x48: {PHA, IMP, 3}, 0x49: {EOR, IMM, 2}, 0x4A: {LSR, ACC, 2}, 0x4B: {XXX, IMP, 2},
	0x4C: {JMP, ABS, 3}, 0x4D: {EOR, ABS, 4}, 0x4E: {LSR, ABS, 6}, 0x4F: {XXX, IMP, 2},

	0x50: {BVC, REL, 2}, 0x51: {EOR, YIZ, 5}, 0x52: {XXX, IMP, 2}, 0x53: {XXX, IMP, 2},
	0x54: {XXX, IMP, 2}, 0x55: {EOR, ZPX, 4}, 0x56: {LSR, ZPX, 6}, 0x57: {XXX, IMP, 2},
	0x58: {CLI, IMP, 2}, 0x59: {EOR, ABY, 4}, 0x5A: {XXX, IMP, 2}, 0x5B: {XXX, IMP, 2},
	0x5C: {XXX, IMP, 2}, 0x5D: {EOR, ABX, 4}, 0x5E: {LSR, ABX, 7}, 0x5F: {XXX, IMP, 2},

	0x60: {RTS, IMP, 6}, 0x61: {ADC, XIZ, 6}, 0x62: {XXX, IMP, 2}, 0x63: {XXX, IMP, 2},
	0x64: {XXX, IMP, 2}, 0x65: {ADC, ZPG, 3}, 0x66: {ROR, ZPG, 5}, 0x67: {XXX, IMP, 2},
	0x68: {PLA, IMP, 4}, 0x69: {ADC, IMM, 2}, 0x6A: {ROR, ACC, 2}, 0x6B: {XXX, IMP, 2},
	0x6C: {JMP, IND, 5}, 0x6D: {ADC, ABS, 4}, 0x6E: {ROR, ABS, 6}, 0x6F: {XXX, IMP, 2},

	0x70: {BVS, REL, 2}, 0x71: {ADC, YIZ, 5}, 0x72: {XXX, IMP, 2}, 0x73: {XXX, IMP, 2},
	0x74: {XXX, IMP, 2}, 0x75: {ADC, ZPX, 4}, 0x76: {ROR, ZPX, 6}, 0x77: {XXX, IMP, 2},
	0x78: {SEI, IMP, 2}, 0x79: {ADC, ABY, 4}, 0x7A: {XXX, IMP, 2}, 0x7B: {XXX, IMP, 2},
	0x7C: {XXX, IMP, 2}, 0x7D: {ADC, ABX, 4}, 0x7E: {ROR, ABX, 7}, 0x7F: {XXX, IMP, 2},

	0x80: {XXX, IMP, 2}, 0x81: {STA, XIZ, 6}, 0x82: {XXX, IMP, 2}, 0x83: {XXX, IMP, 2},
	0x84: {STY, ZPG, 3}, 0x85: {STA, ZPG, 3}, 0x86: {STX, ZPG, 3}, 0x87: {XXX, IMP, 2},
	0x88: {DEY, IMP, 2}, 0x89: {XXX, IMP, 2}, 0x8A: {TXA, IMP, 2}, 0x8B: {XXX, IMP, 2},
	0x8C: {STY, ABS, 4}, 0x8D: {STA, ABS, 4}, 0x8E: {STX, ABS, 4}, 0x8F: {XXX, IMP, 2},

	0x90: {BCC, REL, 2}, 0x91: {STA, YIZ, 6}, 0x92: {XXX, IMP, 2}, 0x93: {XXX, IMP, 2},
	0x94: {STY, ZPX, 4}, 0x95: {STA, ZPX, 4}, 0x96: {STX, ZPY, 4}, 0x97: {XXX, IMP, 2},
	0x98: {TYA, IMP, 2}, 0x99: {STA, ABY, 5}, 0x9A: {TXS, IMP, 2}, 0x9B: {XXX, IMP, 2},
	0x9C: {XXX, IMP, 2}, 0x9D: {STA, ABX, 5}, 0x9E: {XXX, IMP, 2}, 0x9F: {XXX, IMP, 2},

	0xA0: {LDY, IMM, 2}, 0xA1: {LDA, XIZ, 6}, 0xA2: {LDX, IMM, 2}, 0xA3: {XXX, IMP, 2},
	0xA4: {LDY, ZPG, 3}, 0xA5: {LDA, ZPG, 3}, 0xA6: {LDX, ZPG, 3}, 0xA7: {XXX, IMP, 2},
	0xA8: {TAY, IMP, 2}, 0xA9: {LDA, IMM, 2}, 0xAA: {TAX, IMP, 2}, 0xAB: {XXX, IMP, 2},
	0xAC: {LDY, ABS, 4}, 0xAD: {LDA, ABS, 4}, 0xAE: {LDX, ABS, 4}, 0xAF: {XXX, IMP, 2},

	0xB0: {BCS, REL, 2}, 0xB1: {LDA, YIZ, 5}, 0xB2: {XXX, IMP, 2}, 0xB3: {XXX, IMP, 2},
	0xB4: {LDY, ZPX, 4}, 0xB5: {LDA, ZPX, 4}, 0xB6: {LDX, ZPY, 4}, 0xB7: {XXX, IMP, 2},
	0xB8: {CLV, IMP, 2}, 0xB9: {LDA, ABY, 4}, 0xBA: {TSX, IMP, 2}, 0xBB: {XXX, IMP, 2},
	0xBC: {LDY, ABX, 4}, 0xBD: {LDA, ABX, 4}, 0xBE: {LDX, ABY, 4}, 0xBF: {XXX, IMP, 2},

	0xC0: {CPY, IMM, 2}, 0xC1: {CMP, XIZ, 6}, 0xC2: {XXX, IMP, 2}, 0xC3: {XXX, IMP, 2},
	0xC4: {CPY, ZPG, 3}, 0xC5: {CMP, ZPG, 3}, 0xC6: {DEC, ZPG, 5}, 0xC7: {XXX, IMP, 2},
	0xC8: {INY, IMP, 2}, 0xC9: {CMP, IMM, 2}, 0xCA: {DEX, IMP, 2}, 0xCB: {XXX, IMP, 2},
	0xCC: {CPY, ABS, 4}, 0xCD: {CMP, ABS, 4}, 0xCE: {DEC, ABS, 6}, 0xCF: {XXX, IMP, 2},

	0xD0: {BNE, REL, 2}, 0xD1: {CMP, YIZ, 5}, 0xD2: {XXX, IMP, 2}, 0xD3: {XXX, IMP, 2},
	0xD4: {XXX, IMP, 2}, 0xD5: {CMP, ZPX, 4}, 0xD6: {DEC, ZPX, 6}, 0xD7: {XXX, IMP, 2},
	0xD8: {CLD, IMP, 2}, 0xD9: {CMP, ABY, 4}, 0xDA: {XXX, IMP, 2}, 0xDB: {XXX, IMP, 2},
	0xDC: {XXX, IMP, 2}, 0xDD: {CMP, ABX, 4}, 0xDE: {DEC, ABX, 7}, 0xDF: {XXX, IMP, 2},

	0xE0: {CPX, IMM, 2}, 0xE1: {SBC, XIZ, 6}, 0xE2: {XXX, IMP, 2}, 0xE3: {XXX, IMP, 2},
	0xE4: {CPX, ZPG, 3}, 0xE5: {SBC, ZPG, 3}, 0xE6: {INC, ZPG, 5}, 0xE7: {XXX, IMP, 2},
	0xE8: {INX, IMP, 2}, 0xE9: {SBC, IMM, 2}, 0xEA: {NOP, IMP, 2}, 0xEB: {XXX, IMP, 2},
	0xEC: {CPX, ABS, 4}, 0xED: {SBC, ABS, 4}, 0xEE: {INC, ABS, 6}, 0xEF: {XXX, IMP, 2},

	0xF0: {BEQ, REL, 2}, 0xF1: {SBC, YIZ, 5}, 0xF2: {XXX, IMP, 2}, 0xF3: {XXX, IMP, 2},
	0xF4: {XXX, IMP, 2}, 0xF5: {SBC, ZPX, 4}, 0xF6: {INC, ZPX, 6}, 0xF7: {XXX, IMP, 2},
	0xF8: {SED, IMP, 2}, 0xF9: {SBC, ABY, 4}, 0xFA: {XXX, IMP, 2}, 0xFB: {XXX, IMP, 2},
	0xFC: {XXX, IMP, 2}, 0xFD: {SBC, ABX, 4}, 0xFE: {INC, ABX, 7}, 0xFF: {XXX, IMP, 2},
}

// pageCrossBonusMnemonic reports whether m, when addressed in a mode
// that can straddle a page boundary (ABX, ABY, YIZ), picks up the extra
// read cycle on a page cross. Store instructions (STA/STX/STY) and
// read-modify-write instructions (ASL/LSR/ROL/ROR/INC/DEC) always pay
// their fixed cost up front in opcodeTable and never vary.
func pageCrossBonusMnemonic(m Mnemonic) bool {
	switch m {
	case ADC, AND, CMP, EOR, LDA, LDX, LDY, ORA, SBC:
		return true
	default:
		return false
	}
}
