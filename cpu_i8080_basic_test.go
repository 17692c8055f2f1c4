// cpu_i8080_basic_test.go - register file, flag-bit pinning, data
// movement, and the cycle-accuracy contract (S1).

package main

import "testing"

func TestResetPinsReservedFlagBits(t *testing.T) {
	c := newCPU8080TestRig()
	requireU8Equal(t, "F", c.F, flagsReserved)
}

func TestSetFlagNeverDisturbsReservedBits(t *testing.T) {
	c := newCPU8080TestRig()
	c.SetFlag(flagZ, true)
	c.SetFlag(flagC, true)
	requireFlag(t, c, "reserved bit 1", flagsReserved, true)
	requireU8Equal(t, "bit3/bit5", c.F&((1<<3)|(1<<5)), 0)
}

func TestRegPairHLAliasesMAndReadWriteReg8(t *testing.T) {
	c := newCPU8080TestRig()
	c.SetRegPair(2, 0x4000)
	c.WriteReg8(6, 0x99)
	requireU8Equal(t, "memory[H:L]", c.Memory[0x4000], 0x99)
	requireU8Equal(t, "ReadReg8(M)", c.ReadReg8(6), 0x99)
}

func TestPSWAliasesAAndF(t *testing.T) {
	c := newCPU8080TestRig()
	c.A = 0x12
	c.F = 0xD7 // includes reserved bits already set correctly
	requireU16Equal(t, "PSW", c.PSW(), 0x12D7)
	c.SetPSW(0x34C2)
	requireU8Equal(t, "A after SetPSW", c.A, 0x34)
	requireFlag(t, c, "reserved bit 1 after SetPSW", flagsReserved, true)
}

// S1 - NOP timing: one Step retires NOP (dur=4) and primes wait=3;
// the next three Steps pay down wait without moving PC.
func TestNOPTiming(t *testing.T) {
	c := newCPU8080TestRig()
	load(c, 0, 0x00)

	if !c.Step() {
		t.Fatal("first Step should return true")
	}
	requireU16Equal(t, "PC after instruction retires", c.PC, 1)

	for i := 0; i < 3; i++ {
		if !c.Step() {
			t.Fatalf("Step %d during wait should return true", i)
		}
		requireU16Equal(t, "PC while paying down wait", c.PC, 1)
	}
}

// S2 - LXI H,0x1234; LXI D,0x1122; DAD D.
func TestLXIAndDAD(t *testing.T) {
	c := newCPU8080TestRig()
	load(c, 0, 0x21, 0x34, 0x12, 0x11, 0x22, 0x11, 0x19)
	runToCompletion(c, 3)

	requireU16Equal(t, "HL", c.RegPair(2), 0x2356)
	requireU16Equal(t, "DE", c.RegPair(1), 0x1122)
	requireFlag(t, c, "C", flagC, false)
}

func TestXCHGIsSelfInverse(t *testing.T) {
	c := newCPU8080TestRig()
	c.D, c.E, c.H, c.L = 0x11, 0x22, 0x33, 0x44
	c.opXCHG()
	c.opXCHG()
	requireU8Equal(t, "D", c.D, 0x11)
	requireU8Equal(t, "E", c.E, 0x22)
	requireU8Equal(t, "H", c.H, 0x33)
	requireU8Equal(t, "L", c.L, 0x44)
}

func TestCMAandCMCSelfInverse(t *testing.T) {
	c := newCPU8080TestRig()
	c.A = 0x5A
	c.opCMA()
	c.opCMA()
	requireU8Equal(t, "A after double CMA", c.A, 0x5A)

	c.SetFlag(flagC, true)
	c.opCMC()
	c.opCMC()
	requireFlag(t, c, "C after double CMC", flagC, true)

	c.SetFlag(flagC, false)
	c.opSTC()
	c.opCMC()
	requireFlag(t, c, "C after STC then CMC", flagC, false)
}

// runToCompletion steps the CPU until it has retired n instructions
// (including paying down each one's wait cycles), for tests that just
// want to run a short program to the end.
func runToCompletion(c *CPU8080, n int) {
	for c.instructionsExecuted < uint64(n) {
		c.Step()
	}
}
