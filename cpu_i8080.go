// cpu_i8080.go - register file, flags, memory and the fetch/decode/
// execute loop for the Intel 8080 interpreter.

package main

import (
	"fmt"
	"sync"
)

// flag bit masks for the F register. Bit 1, 3 and 5 are architectural
// constants (1, 0, 0) and are never set through SetFlag.
const (
	flagC byte = 1 << 0
	// bit 1 always 1
	flagP byte = 1 << 2
	// bit 3 always 0
	flagA byte = 1 << 4
	// bit 5 always 0
	flagZ byte = 1 << 6
	flagS byte = 1 << 7

	flagsReserved = 1 << 1
)

// IOPort delegates IN/OUT port access. See io_port_i8080.go.
type IOPort interface {
	In(port byte) byte
	Out(port byte, value byte)
}

// CPU8080 owns the full programmer-visible state of one Intel 8080:
// the seven 8-bit registers, the flags byte, PC/SP, and the 64 KiB
// memory image it executes against. One CPU8080 is one machine; the
// wait counter that makes Step cycle-accurate lives on this struct,
// not anywhere process-wide, so independent interpreters can coexist.
type CPU8080 struct {
	A, B, C, D, E, H, L byte
	F                   byte
	PC, SP              uint16

	Memory [65536]byte

	Halted  bool
	Faulted bool
	Cycles  uint64

	wait byte

	io   IOPort
	diag Diagnostics

	baseOps [256]func(*CPU8080) byte

	instructionsExecuted uint64

	mu sync.RWMutex
}

// CPUState is a point-in-time copy of the programmer-visible
// registers, returned by Snapshot for display code that wants a
// consistent read without racing an in-progress Step.
type CPUState struct {
	A, B, C, D, E, H, L byte
	F                   byte
	PC, SP              uint16
	Halted, Faulted     bool
	Cycles              uint64
}

// Snapshot returns a consistent copy of the register file, guarded by
// mu so a concurrent Monitor display loop never observes a partially
// updated instruction. Step's execution remains single-threaded per
// the concurrency model; this is a read-side convenience only, so
// Step takes the same lock around each instruction retirement.
func (c *CPU8080) Snapshot() CPUState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CPUState{
		A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
		F: c.F, PC: c.PC, SP: c.SP,
		Halted: c.Halted, Faulted: c.Faulted, Cycles: c.Cycles,
	}
}

// NewCPU8080 constructs an interpreter with memory cleared, PC/SP set
// to loadOffset, and F forced to its architectural reset value (bit 1
// set, everything else clear). io and diag may be nil; a no-op I/O
// port and a stderr diagnostics sink are installed in that case.
func NewCPU8080(loadOffset uint16, io IOPort, diag Diagnostics) *CPU8080 {
	if io == nil {
		io = NoopIOPort{}
	}
	if diag == nil {
		diag = StderrDiagnostics{}
	}
	cpu := &CPU8080{
		io:   io,
		diag: diag,
	}
	cpu.initBaseOps()
	cpu.Reset(loadOffset)
	return cpu
}

// Reset restores every register to its power-on value without
// touching memory contents. PC and SP both start at loadOffset, per
// the 8080's convention of aliasing SP to PC until the program sets
// its own stack.
func (c *CPU8080) Reset(loadOffset uint16) {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.F = flagsReserved
	c.PC = loadOffset
	c.SP = loadOffset
	c.Halted = false
	c.Faulted = false
	c.Cycles = 0
	c.wait = 0
	c.instructionsExecuted = 0
}

// Flag reports whether every bit set in mask is set in F.
func (c *CPU8080) Flag(mask byte) bool {
	return c.F&mask == mask
}

// SetFlag sets or clears mask within F, then re-pins the architectural
// constant bits (1 set, 3 and 5 clear) so no caller can accidentally
// disturb them.
func (c *CPU8080) SetFlag(mask byte, on bool) {
	if on {
		c.F |= mask
	} else {
		c.F &^= mask
	}
	c.pinReservedBits()
}

func (c *CPU8080) pinReservedBits() {
	c.F |= flagsReserved
	c.F &^= (1 << 3) | (1 << 5)
}

// regPairHigh/regPairLow return pointers to the two 8-bit halves of a
// register pair selected by the 2-bit rp field (0=BC, 1=DE, 2=HL). rp
// 3 (SP) has no 8-bit halves and must be handled by callers via SP
// directly; RegPair/SetRegPair below do that.
func (c *CPU8080) regPairHigh(rp byte) *byte {
	switch rp {
	case 0:
		return &c.B
	case 1:
		return &c.D
	case 2:
		return &c.H
	}
	return nil
}

func (c *CPU8080) regPairLow(rp byte) *byte {
	switch rp {
	case 0:
		return &c.C
	case 1:
		return &c.E
	case 2:
		return &c.L
	}
	return nil
}

// RegPair reads the 16-bit value of register pair rp (0=BC, 1=DE,
// 2=HL, 3=SP).
func (c *CPU8080) RegPair(rp byte) uint16 {
	if rp == 3 {
		return c.SP
	}
	hi, lo := c.regPairHigh(rp), c.regPairLow(rp)
	return uint16(*hi)<<8 | uint16(*lo)
}

// SetRegPair writes a 16-bit value into register pair rp. High byte
// goes to the high half, low byte (masked to 0xFF) to the low half;
// rp 3 writes the whole value into SP.
func (c *CPU8080) SetRegPair(rp byte, val uint16) {
	if rp == 3 {
		c.SP = val
		return
	}
	hi, lo := c.regPairHigh(rp), c.regPairLow(rp)
	*hi = byte(val >> 8)
	*lo = byte(val & 0xFF)
}

// PSW returns the 16-bit Program Status Word: A in the high byte, F
// in the low byte. Used only by PUSH PSW / POP PSW (register pair
// index 3 in the push/pop opcode space means PSW, not SP).
func (c *CPU8080) PSW() uint16 {
	return uint16(c.A)<<8 | uint16(c.F)
}

// SetPSW writes the Program Status Word back into A and F. F is
// re-pinned to its architectural constants afterward.
func (c *CPU8080) SetPSW(val uint16) {
	c.A = byte(val >> 8)
	c.F = byte(val & 0xFF)
	c.pinReservedBits()
}

// regByIndex returns a pointer to the 8-bit register selected by a
// 3-bit register code (0=B,1=C,2=D,3=E,4=H,5=L,7=A). Code 6 (M) has
// no single backing byte — it aliases memory at H:L — so callers must
// special-case 6 via ReadReg8/WriteReg8 below rather than call this
// directly for it.
func (c *CPU8080) regByIndex(idx byte) *byte {
	switch idx {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	return nil
}

// ReadReg8 reads register/pseudo-register idx, resolving M (code 6)
// through memory at H:L.
func (c *CPU8080) ReadReg8(idx byte) byte {
	if idx == 6 {
		return c.Memory[c.RegPair(2)]
	}
	return *c.regByIndex(idx)
}

// WriteReg8 writes register/pseudo-register idx, resolving M (code 6)
// through memory at H:L.
func (c *CPU8080) WriteReg8(idx byte, val byte) {
	if idx == 6 {
		c.Memory[c.RegPair(2)] = val
		return
	}
	*c.regByIndex(idx) = val
}

// read8 fetches the byte at PC and advances PC by one.
func (c *CPU8080) read8() byte {
	v := c.Memory[c.PC]
	c.PC++
	return v
}

// read16 fetches a little-endian word starting at PC and advances PC
// by two: low byte first, then high byte.
func (c *CPU8080) read16() uint16 {
	lo := uint16(c.Memory[c.PC])
	hi := uint16(c.Memory[c.PC+1])
	c.PC += 2
	return hi<<8 | lo
}

// decode splits an opcode byte into its rp/ddd/sss bit fields, as
// used by register-pair ops, MOV/ALU destination-or-condition fields,
// and MOV/ALU source fields respectively.
func decode(op byte) (rp, ddd, sss byte) {
	return (op >> 4) & 0x3, (op >> 3) & 0x7, op & 0x7
}

// testCondition evaluates one of the eight 3-bit condition codes
// against the current flags, used by Jcc/Ccc/Rcc.
func (c *CPU8080) testCondition(ccc byte) bool {
	switch ccc {
	case 0:
		return !c.Flag(flagZ)
	case 1:
		return c.Flag(flagZ)
	case 2:
		return !c.Flag(flagC)
	case 3:
		return c.Flag(flagC)
	case 4:
		return !c.Flag(flagP)
	case 5:
		return c.Flag(flagP)
	case 6:
		return !c.Flag(flagS)
	case 7:
		return c.Flag(flagS)
	}
	panic("unreachable condition code")
}

// Step executes one machine cycle's worth of work: either it pays
// down a cycle already owed to the previous instruction, or it
// fetches and dispatches the next opcode. It returns true to keep
// running and false once the CPU has halted or faulted.
//
// The cycle-accuracy contract (spec §5): across N consecutive calls,
// the instructions retired are exactly those whose call found wait==0,
// and the sum of their durations equals N (excluding the call that
// begins a still-pending wait).
func (c *CPU8080) Step() bool {
	if c.Halted || c.Faulted {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.wait > 0 {
		c.wait--
		c.Cycles++
		return true
	}

	pc := c.PC
	op := c.read8()
	handler := c.baseOps[op]
	result := handler(c)
	c.instructionsExecuted++

	switch result {
	case 0:
		info := opcodeTable[op]
		c.wait = info.Dur - 1
	case 1:
		info := opcodeTable[op]
		c.wait = info.Alt - 1
	case 2:
		c.Halted = true
		c.Cycles++
		return false
	case 3:
		c.Faulted = true
		c.diag.Fault(pc, op)
		return false
	case 4:
		// push() already reported this via diag.StackUnderflow;
		// don't also report it as an undefined-opcode fault.
		c.Faulted = true
		return false
	}
	c.Cycles++
	return true
}

// Run steps the CPU until it halts or faults.
func (c *CPU8080) Run() {
	for c.Step() {
	}
}

// opUnimplemented is installed for every opcode with no defined
// 8080 meaning. Per spec §7 this is fatal: Step records PC and the
// opcode byte via the diagnostics sink and returns false. Every real
// opcode handler returns 0, 1 or 2 (success/primary, success/alt,
// halt); 3 and 4 are this implementation's extension of that contract
// to report faults: 3 is an undefined opcode (reported here), 4 is a
// stack-underflow fault already reported by push() itself.
func (c *CPU8080) opUnimplemented() byte {
	return 3
}

func (c *CPU8080) String() string {
	return fmt.Sprintf(
		"PC=%04X SP=%04X A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X",
		c.PC, c.SP, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L,
	)
}
