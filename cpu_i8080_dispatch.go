// cpu_i8080_dispatch.go - builds the 256-entry opcode dispatch table.
// Grouped ranges are filled with a loop that bakes the relevant
// register/pair/condition field into a closure, the same shape the
// rest of this codebase's dispatch-table CPU cores use for their
// regular instruction families.

package main

func (c *CPU8080) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU8080).opUnimplemented
	}

	// *NOP aliases at 0x08/0x10/0x18/0x20/0x28/0x30/0x38 plus the real
	// NOP at 0x00.
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		c.baseOps[op] = (*CPU8080).opNOP
	}

	c.baseOps[0x76] = (*CPU8080).opHLT

	// MOV r,r' (01dddsss), excluding 0x76 which is HLT.
	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		_, dest, src := decode(byte(op))
		c.baseOps[op] = func(cpu *CPU8080) byte {
			return cpu.opMOVRegReg(dest, src)
		}
	}

	// MVI r,d8 (00dddd110).
	for r := byte(0); r < 8; r++ {
		op := 0x06 + r*8
		dest := r
		c.baseOps[op] = func(cpu *CPU8080) byte {
			return cpu.opMVI(dest)
		}
	}

	// LXI rp,d16 / INX rp / DCX rp / DAD rp.
	for rp := byte(0); rp < 4; rp++ {
		lxiOp, inxOp, dadOp, dcxOp := 0x01+rp*0x10, 0x03+rp*0x10, 0x09+rp*0x10, 0x0B+rp*0x10
		p := rp
		c.baseOps[lxiOp] = func(cpu *CPU8080) byte { return cpu.opLXI(p) }
		c.baseOps[inxOp] = func(cpu *CPU8080) byte { return cpu.opINX(p) }
		c.baseOps[dadOp] = func(cpu *CPU8080) byte { return cpu.opDAD(p) }
		c.baseOps[dcxOp] = func(cpu *CPU8080) byte { return cpu.opDCX(p) }
	}

	// INR r / DCR r for every register code, including M.
	for r := byte(0); r < 8; r++ {
		inrOp, dcrOp := 0x04+r*8, 0x05+r*8
		reg := r
		c.baseOps[inrOp] = func(cpu *CPU8080) byte { return cpu.opINR(reg) }
		c.baseOps[dcrOp] = func(cpu *CPU8080) byte { return cpu.opDCR(reg) }
	}

	c.baseOps[0x02] = func(cpu *CPU8080) byte { return cpu.opSTAX(0) }
	c.baseOps[0x0A] = func(cpu *CPU8080) byte { return cpu.opLDAX(0) }
	c.baseOps[0x12] = func(cpu *CPU8080) byte { return cpu.opSTAX(1) }
	c.baseOps[0x1A] = func(cpu *CPU8080) byte { return cpu.opLDAX(1) }

	c.baseOps[0x22] = (*CPU8080).opSHLD
	c.baseOps[0x2A] = (*CPU8080).opLHLD
	c.baseOps[0x32] = (*CPU8080).opSTA
	c.baseOps[0x3A] = (*CPU8080).opLDA
	c.baseOps[0xEB] = (*CPU8080).opXCHG

	c.baseOps[0x07] = (*CPU8080).opRLC
	c.baseOps[0x0F] = (*CPU8080).opRRC
	c.baseOps[0x17] = (*CPU8080).opRAL
	c.baseOps[0x1F] = (*CPU8080).opRAR
	c.baseOps[0x27] = (*CPU8080).opDAA
	c.baseOps[0x2F] = (*CPU8080).opCMA
	c.baseOps[0x37] = (*CPU8080).opSTC
	c.baseOps[0x3F] = (*CPU8080).opCMC

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP r, 0x80-0xBF.
	for group := byte(0); group < 8; group++ {
		for src := byte(0); src < 8; src++ {
			op := 0x80 + int(group)*8 + int(src)
			g, s := group, src
			c.baseOps[op] = func(cpu *CPU8080) byte {
				return cpu.opALUReg(g, s)
			}
		}
	}

	// Immediate ALU ops: ADI/ACI/SUI/SBI/ANI/XRI/ORI/CPI.
	immOps := []byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for group, op := range immOps {
		g := byte(group)
		c.baseOps[op] = func(cpu *CPU8080) byte {
			return cpu.opALUImm(g)
		}
	}

	// Jcc/Ccc/Rcc, keyed by the 3-bit condition field.
	for cc := byte(0); cc < 8; cc++ {
		jOp, cOp, rOp := 0xC2+int(cc)*8, 0xC4+int(cc)*8, 0xC0+int(cc)*8
		code := cc
		c.baseOps[jOp] = func(cpu *CPU8080) byte { return cpu.opJcc(code) }
		c.baseOps[cOp] = func(cpu *CPU8080) byte { return cpu.opCcc(code) }
		c.baseOps[rOp] = func(cpu *CPU8080) byte { return cpu.opRcc(code) }
		rstOp := 0xC7 + int(cc)*8
		n := cc
		c.baseOps[rstOp] = func(cpu *CPU8080) byte { return cpu.opRST(n) }
	}

	c.baseOps[0xC3] = (*CPU8080).opJMP
	c.baseOps[0xCB] = (*CPU8080).opJMP
	c.baseOps[0xC9] = (*CPU8080).opRET
	c.baseOps[0xD9] = (*CPU8080).opRET
	c.baseOps[0xCD] = (*CPU8080).opCALL
	c.baseOps[0xDD] = (*CPU8080).opCALL
	c.baseOps[0xED] = (*CPU8080).opCALL
	c.baseOps[0xFD] = (*CPU8080).opCALL

	// PUSH rp / POP rp, where rp index 3 means PSW, not SP.
	for rp := byte(0); rp < 4; rp++ {
		pushOp, popOp := 0xC5+rp*0x10, 0xC1+rp*0x10
		p := rp
		c.baseOps[pushOp] = func(cpu *CPU8080) byte { return cpu.opPUSH(p) }
		c.baseOps[popOp] = func(cpu *CPU8080) byte { return cpu.opPOP(p) }
	}

	c.baseOps[0xE3] = (*CPU8080).opXTHL
	c.baseOps[0xE9] = (*CPU8080).opPCHL
	c.baseOps[0xF9] = (*CPU8080).opSPHL
	c.baseOps[0xF3] = (*CPU8080).opDI
	c.baseOps[0xFB] = (*CPU8080).opEI
	c.baseOps[0xD3] = (*CPU8080).opOUT
	c.baseOps[0xDB] = (*CPU8080).opIN
}
