// errors_i8080.go - the five error kinds, as plain error values
// (sentinel errors plus one small fault struct), following the
// convention of returning ordinary errors up the call stack rather
// than building a custom error-type hierarchy.

package main

import (
	"errors"
	"fmt"
	"os"
)

// Loader error kinds: returned, never panicked.
var (
	ErrLoaderOpenFailed = errors.New("i8080: could not open ROM image")
	ErrLoaderReadError  = errors.New("i8080: read failed before instruction was complete")
)

// ErrMalformedInstruction guards the defensive "len out of {1,2,3}"
// case in the opcode table; a correct table makes this unreachable.
var ErrMalformedInstruction = errors.New("i8080: opcode table entry has invalid length")

// OpcodeFault records the PC and opcode byte of an UndefinedOpcode
// fault, for diagnostics sinks that want structured detail rather
// than a pre-formatted string.
type OpcodeFault struct {
	PC     uint16
	Opcode byte
}

func (f *OpcodeFault) Error() string {
	return fmt.Sprintf("i8080: undefined opcode 0x%02X at PC=0x%04X", f.Opcode, f.PC)
}

// StackFault records the PC and SP of a StackUnderflowProtection
// violation: PUSH or CALL attempted with SP <= 1.
type StackFault struct {
	PC uint16
	SP uint16
}

func (f *StackFault) Error() string {
	return fmt.Sprintf("i8080: stack underflow protection tripped at PC=0x%04X, SP=0x%04X", f.PC, f.SP)
}

// Diagnostics receives fatal-fault notifications from deep inside
// Step's opcode dispatch, so handlers can report a fault without
// importing fmt/os themselves or panicking mid-instruction.
type Diagnostics interface {
	Fault(pc uint16, opcode byte)
	StackUnderflow(pc uint16, sp uint16)
}

// StderrDiagnostics writes fault messages to stderr. This is the
// default sink installed by NewCPU8080 when the caller passes nil.
type StderrDiagnostics struct{}

func (StderrDiagnostics) Fault(pc uint16, opcode byte) {
	fmt.Fprintln(os.Stderr, (&OpcodeFault{PC: pc, Opcode: opcode}).Error())
}

func (StderrDiagnostics) StackUnderflow(pc uint16, sp uint16) {
	fmt.Fprintln(os.Stderr, (&StackFault{PC: pc, SP: sp}).Error())
}

// RecordingDiagnostics accumulates fault messages instead of writing
// them anywhere, for tests that want to assert a fault occurred
// without scraping stderr.
type RecordingDiagnostics struct {
	Faults          []OpcodeFault
	StackUnderflows []StackFault
}

func (r *RecordingDiagnostics) Fault(pc uint16, opcode byte) {
	r.Faults = append(r.Faults, OpcodeFault{PC: pc, Opcode: opcode})
}

func (r *RecordingDiagnostics) StackUnderflow(pc uint16, sp uint16) {
	r.StackUnderflows = append(r.StackUnderflows, StackFault{PC: pc, SP: sp})
}
