// cpu_i8080_ops_alu.go - arithmetic, logical, and BCD-adjust
// instructions. Flag computation follows spec's "standard 8-bit flag
// update on result r" rule uniformly: Z/S/P from the truncated 8-bit
// result, C from the 9-bit extended carry-out (subtraction is carry
// complemented to read as a borrow), A from carry/borrow across the
// bit3/bit4 boundary.

package main

// parity8 reports true when value has an even number of 1 bits (the
// 8080's P flag convention — opposite of some textbook "parity"
// definitions that flag odd counts).
func parity8(value byte) bool {
	value ^= value >> 4
	value ^= value >> 2
	value ^= value >> 1
	return value&1 == 0
}

// setFlagsSZP updates Z, S and P from result, leaving C and A alone.
func (c *CPU8080) setFlagsSZP(result byte) {
	c.SetFlag(flagZ, result == 0)
	c.SetFlag(flagS, result&0x80 != 0)
	c.SetFlag(flagP, parity8(result))
}

// aluAddFlags computes a+b+carryIn, sets Z/S/P/C/A from the result,
// and returns the truncated 8-bit sum. Shared by ADD/ADC/ADI/ACI and,
// with carryIn fixed at 0, by INR.
func (c *CPU8080) aluAddFlags(a, b, carryIn byte) byte {
	sum := uint16(a) + uint16(b) + uint16(carryIn)
	res := byte(sum)
	c.setFlagsSZP(res)
	c.SetFlag(flagC, sum&0x100 != 0)
	half := (a & 0x0F) + (b & 0x0F) + carryIn
	c.SetFlag(flagA, half&0x10 != 0)
	return res
}

// aluSubFlags computes a-b-borrowIn, sets Z/S/P/C/A from the result
// (C reading as "a borrow occurred"), and returns the truncated 8-bit
// difference. Shared by SUB/SBB/SUI/SBI/CMP/CPI and, with borrowIn
// fixed at 0, by DCR.
func (c *CPU8080) aluSubFlags(a, b, borrowIn byte) byte {
	sub := int(b) + int(borrowIn)
	diff := int(a) - sub
	res := byte(diff)
	c.setFlagsSZP(res)
	c.SetFlag(flagC, diff < 0)
	halfDiff := int(a&0x0F) - int(b&0x0F) - int(borrowIn)
	c.SetFlag(flagA, halfDiff < 0)
	return res
}

// aluLogicFlags updates Z/S/P for a logical-operation result; C and A
// are cleared per the common simplified 8080 model for ANA/XRA/ORA.
func (c *CPU8080) aluLogicFlags(result byte) {
	c.setFlagsSZP(result)
	c.SetFlag(flagC, false)
	c.SetFlag(flagA, false)
}

const (
	aluAdd = 0
	aluAdc = 1
	aluSub = 2
	aluSbb = 3
	aluAna = 4
	aluXra = 5
	aluOra = 6
	aluCmp = 7
)

// opALUReg implements the 0x80-0xBF block: one of ADD/ADC/SUB/SBB/
// ANA/XRA/ORA/CMP against register/pseudo-register src.
func (c *CPU8080) opALUReg(group, src byte) byte {
	return c.aluApply(group, c.ReadReg8(src))
}

// opALUImm implements the immediate ALU family: ADI/ACI/SUI/SBI/ANI/
// XRI/ORI/CPI, one per group in the same order as opALUReg.
func (c *CPU8080) opALUImm(group byte) byte {
	return c.aluApply(group, c.read8())
}

func (c *CPU8080) aluApply(group byte, operand byte) byte {
	carryIn := byte(0)
	if c.Flag(flagC) {
		carryIn = 1
	}
	switch group {
	case aluAdd:
		c.A = c.aluAddFlags(c.A, operand, 0)
	case aluAdc:
		c.A = c.aluAddFlags(c.A, operand, carryIn)
	case aluSub:
		c.A = c.aluSubFlags(c.A, operand, 0)
	case aluSbb:
		c.A = c.aluSubFlags(c.A, operand, carryIn)
	case aluAna:
		c.A &= operand
		c.aluLogicFlags(c.A)
	case aluXra:
		c.A ^= operand
		c.aluLogicFlags(c.A)
	case aluOra:
		c.A |= operand
		c.aluLogicFlags(c.A)
	case aluCmp:
		c.aluSubFlags(c.A, operand, 0) // discard result, keep flags
	}
	return 0
}

// opINR increments register/pseudo-register reg by one. Preserves C;
// updates Z/S/P/A.
func (c *CPU8080) opINR(reg byte) byte {
	savedC := c.Flag(flagC)
	res := c.aluAddFlags(c.ReadReg8(reg), 1, 0)
	c.SetFlag(flagC, savedC)
	c.WriteReg8(reg, res)
	return 0
}

// opDCR decrements register/pseudo-register reg by one. Preserves C;
// updates Z/S/P/A.
func (c *CPU8080) opDCR(reg byte) byte {
	savedC := c.Flag(flagC)
	res := c.aluSubFlags(c.ReadReg8(reg), 1, 0)
	c.SetFlag(flagC, savedC)
	c.WriteReg8(reg, res)
	return 0
}

// opINX increments register pair rp by one. No flags affected.
func (c *CPU8080) opINX(rp byte) byte {
	c.SetRegPair(rp, c.RegPair(rp)+1)
	return 0
}

// opDCX decrements register pair rp by one. No flags affected.
func (c *CPU8080) opDCX(rp byte) byte {
	c.SetRegPair(rp, c.RegPair(rp)-1)
	return 0
}

// opDAD adds register pair rp into HL. Updates only C, from the
// carry out of bit 15.
func (c *CPU8080) opDAD(rp byte) byte {
	hl := c.RegPair(2)
	operand := c.RegPair(rp)
	sum := uint32(hl) + uint32(operand)
	c.SetRegPair(2, uint16(sum))
	c.SetFlag(flagC, sum&0x10000 != 0)
	return 0
}

// opDAA performs the 8080's binary-coded-decimal adjustment of A: a
// conditional +6 of the low nibble, then a conditional +0x60 of the
// high nibble, each gated on the nibble exceeding 9 or the
// corresponding flag (AC, then C) already being set.
func (c *CPU8080) opDAA() byte {
	a := c.A
	carry := c.Flag(flagC)
	aux := c.Flag(flagA)

	correction := byte(0)
	if a&0x0F > 9 || aux {
		correction |= 0x06
	}

	highNibble := a >> 4
	lowAfterLowCorrection := (a & 0x0F) + (correction & 0x0F)
	if highNibble > 9 || carry || (highNibble == 9 && lowAfterLowCorrection > 9) {
		correction |= 0x60
		carry = true
	}

	sum := uint16(a) + uint16(correction)
	res := byte(sum)
	half := (a & 0x0F) + (correction & 0x0F)

	c.A = res
	c.setFlagsSZP(res)
	c.SetFlag(flagA, half&0x10 != 0)
	c.SetFlag(flagC, carry || sum&0x100 != 0)
	return 0
}
