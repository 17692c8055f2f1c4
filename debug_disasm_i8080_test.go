// debug_disasm_i8080_test.go - disassembly line format and the
// round-trip invariant (8, S8).

package main

import (
	"strings"
	"testing"
)

func TestDisassembleSingleByteInstruction(t *testing.T) {
	d := NewDisassembler([]byte{0x00}, 0x0100)
	line, err := d.GetLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "0x0100  NOP     " {
		t.Fatalf("line = %q", line)
	}
}

func TestDisassembleThreeByteInstruction(t *testing.T) {
	d := NewDisassembler([]byte{0xC3, 0x05, 0x00}, 0x0100)
	line, err := d.GetLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "0x0100  JMP     0x0005" {
		t.Fatalf("line = %q", line)
	}
}

func TestDisassembleTwoByteInstruction(t *testing.T) {
	d := NewDisassembler([]byte{0xC6, 0x2A}, 0x0000)
	line, err := d.GetLine()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(line, "0x0000  ADI     ") || !strings.HasSuffix(line, "0x2a") {
		t.Fatalf("line = %q", line)
	}
}

func TestHasContentReflectsRemainingBytes(t *testing.T) {
	d := NewDisassembler([]byte{0x00, 0x00}, 0)
	if !d.HasContent() {
		t.Fatal("expected content before consuming any bytes")
	}
	d.GetLine()
	d.GetLine()
	if d.HasContent() {
		t.Fatal("expected no content after consuming both bytes")
	}
}

func TestGetLineOnTruncatedStreamFails(t *testing.T) {
	d := NewDisassembler([]byte{0xC3, 0x05}, 0) // JMP needs 3 bytes, only 2 present
	if _, err := d.GetLine(); err == nil {
		t.Fatal("expected an error for a truncated instruction")
	}
}

// S8 - round-trip the full opcode space: decoding every opcode byte
// with plausible operand padding reproduces exactly the byte count
// fed in.
func TestDisassemblerRoundTripFullOpcodeSpace(t *testing.T) {
	var stream []byte
	for op := 0; op < 256; op++ {
		stream = append(stream, byte(op))
		switch opcodeTable[op].Len {
		case 2:
			stream = append(stream, 0xAB)
		case 3:
			stream = append(stream, 0xAB, 0xCD)
		}
	}

	d := NewDisassembler(stream, 0)
	consumed := 0
	for d.HasContent() {
		if _, err := d.GetLine(); err != nil {
			t.Fatalf("GetLine failed at byte %d: %v", consumed, err)
		}
		consumed++
	}
	if int(d.pos) != len(stream) {
		t.Fatalf("consumed %d bytes, want %d", d.pos, len(stream))
	}
}
