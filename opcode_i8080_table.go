// opcode_i8080_table.go - the static 256-entry opcode length/timing table.

package main

// OpcodeInfo describes one entry of the 8080 opcode space: how many
// bytes the instruction occupies (including the opcode byte itself),
// and how many machine cycles it costs on the taken and not-taken
// paths of a conditional instruction. Len is always in {1,2,3}. Alt is
// zero for every unconditional instruction; it is only consulted for
// the conditional CALL/RET/Jcc family, none of which actually vary
// duration on the jump (Jcc costs the same either way — only Ccc and
// Rcc have a real alt).
type OpcodeInfo struct {
	Len byte
	Dur byte
	Alt byte
}

// opcodeTable is indexed by the raw opcode byte. It is the single
// source of truth the disassembler and the interpreter both read from:
// the disassembler only ever looks at Len, the interpreter only ever
// looks at Dur/Alt.
var opcodeTable = [256]OpcodeInfo{
	0x00: {1, 4, 0},  // NOP
	0x01: {3, 10, 0}, // LXI B,d16
	0x02: {1, 7, 0},  // STAX B
	0x03: {1, 5, 0},  // INX B
	0x04: {1, 5, 0},  // INR B
	0x05: {1, 5, 0},  // DCR B
	0x06: {2, 7, 0},  // MVI B,d8
	0x07: {1, 4, 0},  // RLC
	0x08: {1, 4, 0},  // *NOP
	0x09: {1, 10, 0}, // DAD B
	0x0A: {1, 7, 0},  // LDAX B
	0x0B: {1, 5, 0},  // DCX B
	0x0C: {1, 5, 0},  // INR C
	0x0D: {1, 5, 0},  // DCR C
	0x0E: {2, 7, 0},  // MVI C,d8
	0x0F: {1, 4, 0},  // RRC

	0x10: {1, 4, 0},  // *NOP
	0x11: {3, 10, 0}, // LXI D,d16
	0x12: {1, 7, 0},  // STAX D
	0x13: {1, 5, 0},  // INX D
	0x14: {1, 5, 0},  // INR D
	0x15: {1, 5, 0},  // DCR D
	0x16: {2, 7, 0},  // MVI D,d8
	0x17: {1, 4, 0},  // RAL
	0x18: {1, 4, 0},  // *NOP
	0x19: {1, 10, 0}, // DAD D
	0x1A: {1, 7, 0},  // LDAX D
	0x1B: {1, 5, 0},  // DCX D
	0x1C: {1, 5, 0},  // INR E
	0x1D: {1, 5, 0},  // DCR E
	0x1E: {2, 7, 0},  // MVI E,d8
	0x1F: {1, 4, 0},  // RAR

	0x20: {1, 4, 0},  // *NOP
	0x21: {3, 10, 0}, // LXI H,d16
	0x22: {3, 16, 0}, // SHLD a16
	0x23: {1, 5, 0},  // INX H
	0x24: {1, 5, 0},  // INR H
	0x25: {1, 5, 0},  // DCR H
	0x26: {2, 7, 0},  // MVI H,d8
	0x27: {1, 4, 0},  // DAA
	0x28: {1, 4, 0},  // *NOP
	0x29: {1, 10, 0}, // DAD H
	0x2A: {3, 16, 0}, // LHLD a16
	0x2B: {1, 5, 0},  // DCX H
	0x2C: {1, 5, 0},  // INR L
	0x2D: {1, 5, 0},  // DCR L
	0x2E: {2, 7, 0},  // MVI L,d8
	0x2F: {1, 4, 0},  // CMA

	0x30: {1, 4, 0},  // *NOP
	0x31: {3, 10, 0}, // LXI SP,d16
	0x32: {3, 13, 0}, // STA a16
	0x33: {1, 5, 0},  // INX SP
	0x34: {1, 10, 0}, // INR M
	0x35: {1, 10, 0}, // DCR M
	0x36: {2, 10, 0}, // MVI M,d8
	0x37: {1, 4, 0},  // STC
	0x38: {1, 4, 0},  // *NOP
	0x39: {1, 10, 0}, // DAD SP
	0x3A: {3, 13, 0}, // LDA a16
	0x3B: {1, 5, 0},  // DCX SP
	0x3C: {1, 5, 0},  // INR A
	0x3D: {1, 5, 0},  // DCR A
	0x3E: {2, 7, 0},  // MVI A,d8
	0x3F: {1, 4, 0},  // CMC

	// 0x40-0x7F: MOV r,r' (len 1, dur 5, dur 7 if M is source/dest), HLT at 0x76.
	0x40: {1, 5, 0}, 0x41: {1, 5, 0}, 0x42: {1, 5, 0}, 0x43: {1, 5, 0},
	0x44: {1, 5, 0}, 0x45: {1, 5, 0}, 0x46: {1, 7, 0}, 0x47: {1, 5, 0},
	0x48: {1, 5, 0}, 0x49: {1, 5, 0}, 0x4A: {1, 5, 0}, 0x4B: {1, 5, 0},
	0x4C: {1, 5, 0}, 0x4D: {1, 5, 0}, 0x4E: {1, 7, 0}, 0x4F: {1, 5, 0},

	0x50: {1, 5, 0}, 0x51: {1, 5, 0}, 0x52: {1, 5, 0}, 0x53: {1, 5, 0},
	0x54: {1, 5, 0}, 0x55: {1, 5, 0}, 0x56: {1, 7, 0}, 0x57: {1, 5, 0},
	0x58: {1, 5, 0}, 0x59: {1, 5, 0}, 0x5A: {1, 5, 0}, 0x5B: {1, 5, 0},
	0x5C: {1, 5, 0}, 0x5D: {1, 5, 0}, 0x5E: {1, 7, 0}, 0x5F: {1, 5, 0},

	0x60: {1, 5, 0}, 0x61: {1, 5, 0}, 0x62: {1, 5, 0}, 0x63: {1, 5, 0},
	0x64: {1, 5, 0}, 0x65: {1, 5, 0}, 0x66: {1, 7, 0}, 0x67: {1, 5, 0},
	0x68: {1, 5, 0}, 0x69: {1, 5, 0}, 0x6A: {1, 5, 0}, 0x6B: {1, 5, 0},
	0x6C: {1, 5, 0}, 0x6D: {1, 5, 0}, 0x6E: {1, 7, 0}, 0x6F: {1, 5, 0},

	0x70: {1, 7, 0}, 0x71: {1, 7, 0}, 0x72: {1, 7, 0}, 0x73: {1, 7, 0},
	0x74: {1, 7, 0}, 0x75: {1, 7, 0}, 0x76: {1, 7, 0}, /* HLT */
	0x77: {1, 7, 0},
	0x78: {1, 5, 0}, 0x79: {1, 5, 0}, 0x7A: {1, 5, 0}, 0x7B: {1, 5, 0},
	0x7C: {1, 5, 0}, 0x7D: {1, 5, 0}, 0x7E: {1, 7, 0}, 0x7F: {1, 5, 0},

	// 0x80-0xBF: ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r (len 1, dur 4, dur 7 for M).
	0x80: {1, 4, 0}, 0x81: {1, 4, 0}, 0x82: {1, 4, 0}, 0x83: {1, 4, 0},
	0x84: {1, 4, 0}, 0x85: {1, 4, 0}, 0x86: {1, 7, 0}, 0x87: {1, 4, 0},
	0x88: {1, 4, 0}, 0x89: {1, 4, 0}, 0x8A: {1, 4, 0}, 0x8B: {1, 4, 0},
	0x8C: {1, 4, 0}, 0x8D: {1, 4, 0}, 0x8E: {1, 7, 0}, 0x8F: {1, 4, 0},

	0x90: {1, 4, 0}, 0x91: {1, 4, 0}, 0x92: {1, 4, 0}, 0x93: {1, 4, 0},
	0x94: {1, 4, 0}, 0x95: {1, 4, 0}, 0x96: {1, 7, 0}, 0x97: {1, 4, 0},
	0x98: {1, 4, 0}, 0x99: {1, 4, 0}, 0x9A: {1, 4, 0}, 0x9B: {1, 4, 0},
	0x9C: {1, 4, 0}, 0x9D: {1, 4, 0}, 0x9E: {1, 7, 0}, 0x9F: {1, 4, 0},

	0xA0: {1, 4, 0}, 0xA1: {1, 4, 0}, 0xA2: {1, 4, 0}, 0xA3: {1, 4, 0},
	0xA4: {1, 4, 0}, 0xA5: {1, 4, 0}, 0xA6: {1, 7, 0}, 0xA7: {1, 4, 0},
	0xA8: {1, 4, 0}, 0xA9: {1, 4, 0}, 0xAA: {1, 4, 0}, 0xAB: {1, 4, 0},
	0xAC: {1, 4, 0}, 0xAD: {1, 4, 0}, 0xAE: {1, 7, 0}, 0xAF: {1, 4, 0},

	0xB0: {1, 4, 0}, 0xB1: {1, 4, 0}, 0xB2: {1, 4, 0}, 0xB3: {1, 4, 0},
	0xB4: {1, 4, 0}, 0xB5: {1, 4, 0}, 0xB6: {1, 7, 0}, 0xB7: {1, 4, 0},
	0xB8: {1, 4, 0}, 0xB9: {1, 4, 0}, 0xBA: {1, 4, 0}, 0xBB: {1, 4, 0},
	0xBC: {1, 4, 0}, 0xBD: {1, 4, 0}, 0xBE: {1, 7, 0}, 0xBF: {1, 4, 0},

	0xC0: {1, 11, 5},  // RNZ
	0xC1: {1, 10, 0},  // POP B
	0xC2: {3, 10, 0},  // JNZ a16
	0xC3: {3, 10, 0},  // JMP a16
	0xC4: {3, 17, 11}, // CNZ a16
	0xC5: {1, 11, 0},  // PUSH B
	0xC6: {2, 7, 0},   // ADI d8
	0xC7: {1, 11, 0},  // RST 0
	0xC8: {1, 11, 5},  // RZ
	0xC9: {1, 10, 0},  // RET
	0xCA: {3, 10, 0},  // JZ a16
	0xCB: {3, 10, 0},  // *JMP a16
	0xCC: {3, 17, 11}, // CZ a16
	0xCD: {3, 17, 0},  // CALL a16
	0xCE: {2, 7, 0},   // ACI d8
	0xCF: {1, 11, 0},  // RST 1

	0xD0: {1, 11, 5},  // RNC
	0xD1: {1, 10, 0},  // POP D
	0xD2: {3, 10, 0},  // JNC a16
	0xD3: {2, 10, 0},  // OUT d8
	0xD4: {3, 17, 11}, // CNC a16
	0xD5: {1, 11, 0},  // PUSH D
	0xD6: {2, 7, 0},   // SUI d8
	0xD7: {1, 11, 0},  // RST 2
	0xD8: {1, 11, 5},  // RC
	0xD9: {1, 10, 0},  // *RET
	0xDA: {3, 10, 0},  // JC a16
	0xDB: {2, 10, 0},  // IN d8
	0xDC: {3, 17, 11}, // CC a16
	0xDD: {3, 17, 0},  // *CALL a16
	0xDE: {2, 7, 0},   // SBI d8
	0xDF: {1, 11, 0},  // RST 3

	0xE0: {1, 11, 5},  // RPO
	0xE1: {1, 10, 0},  // POP H
	0xE2: {3, 10, 0},  // JPO a16
	0xE3: {1, 18, 0},  // XTHL
	0xE4: {3, 17, 11}, // CPO a16
	0xE5: {1, 11, 0},  // PUSH H
	0xE6: {2, 7, 0},   // ANI d8
	0xE7: {1, 11, 0},  // RST 4
	0xE8: {1, 11, 5},  // RPE
	0xE9: {1, 5, 0},   // PCHL
	0xEA: {3, 10, 0},  // JPE a16
	0xEB: {1, 5, 0},   // XCHG
	0xEC: {3, 17, 11}, // CPE a16
	0xED: {3, 17, 0},  // *CALL a16
	0xEE: {2, 7, 0},   // XRI d8
	0xEF: {1, 11, 0},  // RST 5

	0xF0: {1, 11, 5},  // RP
	0xF1: {1, 10, 0},  // POP PSW
	0xF2: {3, 10, 0},  // JP a16
	0xF3: {1, 4, 0},   // DI
	0xF4: {3, 17, 11}, // CP a16
	0xF5: {1, 11, 0},  // PUSH PSW
	0xF6: {2, 7, 0},   // ORI d8
	0xF7: {1, 11, 0},  // RST 6
	0xF8: {1, 11, 5},  // RM
	0xF9: {1, 5, 0},   // SPHL
	0xFA: {3, 10, 0},  // JM a16
	0xFB: {1, 4, 0},   // EI
	0xFC: {3, 17, 11}, // CM a16
	0xFD: {3, 17, 0},  // *CALL a16
	0xFE: {2, 7, 0},   // CPI d8
	0xFF: {1, 11, 0},  // RST 7
}
