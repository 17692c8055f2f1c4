// debug_interface.go - the structured line type the batch
// disassembler returns, the same shape the rest of this codebase's
// debuggers use for a scrolling disassembly view.

package main

// DisassembledLine is one decoded instruction, suitable for a
// Monitor's scrolling disassembly window: Address is where it starts,
// HexBytes its raw encoding, Mnemonic its text form, Size its length
// in bytes, and IsPC marks the line the CPU is currently stopped on.
type DisassembledLine struct {
	Address  uint16
	HexBytes string
	Mnemonic string
	Size     int
	IsPC     bool
}
