// monitor_i8080.go - the interactive monitor: a small command
// language over Step/Run/Disassemble, driven by raw-mode stdin so a
// bare Enter can repeat the last step command the way hardware
// monitors traditionally work. Raw-mode setup/teardown and the
// CR/DEL translation follow the teacher's TerminalHost.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// MonitorCommand is one parsed monitor input line: a command name and
// its whitespace-separated arguments.
type MonitorCommand struct {
	Name string
	Args []string
}

// ParseCommand splits a raw input line into a MonitorCommand. An
// empty line parses to a command named "" (the monitor's "repeat the
// last step" shorthand).
func ParseCommand(line string) MonitorCommand {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return MonitorCommand{}
	}
	return MonitorCommand{Name: strings.ToLower(fields[0]), Args: fields[1:]}
}

// ParseAddress accepts three address spellings: "$1a2b" and "0x1a2b"
// (hex) or "#6699" (decimal), matching the notations found across the
// example monitors in this codebase.
func ParseAddress(s string) (uint16, error) {
	switch {
	case strings.HasPrefix(s, "$"):
		v, err := strconv.ParseUint(s[1:], 16, 16)
		return uint16(v), err
	case strings.HasPrefix(s, "#"):
		v, err := strconv.ParseUint(s[1:], 10, 16)
		return uint16(v), err
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 16)
		return uint16(v), err
	default:
		v, err := strconv.ParseUint(s, 16, 16)
		return uint16(v), err
	}
}

// Monitor is the interactive front end over a CPU8080: step/run/regs/
// dis/break/poke/quit, one line of raw terminal input at a time.
type Monitor struct {
	cpu        *CPU8080
	out        io.Writer
	in         *os.File
	fd         int
	oldState   *term.State
	breakpoint uint16
	hasBreak   bool
}

// NewMonitor builds a Monitor over cpu, reading commands from stdin
// and writing output to out.
func NewMonitor(cpu *CPU8080, out io.Writer) *Monitor {
	return &Monitor{cpu: cpu, out: out, in: os.Stdin}
}

// Run puts stdin into raw mode, prints the startup banner, and loops
// reading/executing commands until "quit" or EOF. Restores the
// terminal before returning, even on error.
func (m *Monitor) Run() error {
	m.fd = int(m.in.Fd())
	oldState, err := term.MakeRaw(m.fd)
	if err != nil {
		return fmt.Errorf("monitor: failed to set raw mode: %w", err)
	}
	m.oldState = oldState
	defer term.Restore(m.fd, m.oldState)

	fmt.Fprintln(m.out, "i8080 monitor - step, run, regs, dis, break <addr>, poke <addr> <byte>, quit")
	var lastCmd MonitorCommand
	for {
		fmt.Fprint(m.out, "> ")
		line, err := m.readLine()
		if err != nil {
			return nil
		}
		cmd := ParseCommand(line)
		if cmd.Name == "" {
			cmd = lastCmd
		}
		lastCmd = cmd
		if cmd.Name == "quit" || cmd.Name == "q" {
			return nil
		}
		m.dispatch(cmd)
	}
}

func (m *Monitor) dispatch(cmd MonitorCommand) {
	switch cmd.Name {
	case "step", "s":
		m.cpu.Step()
		m.printRegs()
	case "run", "r":
		for m.cpu.Step() {
			if m.hasBreak && m.cpu.PC == m.breakpoint {
				fmt.Fprintf(m.out, "breakpoint hit at 0x%04X\n", m.cpu.PC)
				break
			}
		}
		m.printRegs()
	case "regs", "g":
		m.printRegs()
	case "dis", "d":
		for _, l := range Disassemble(m.cpu.Memory[:], m.cpu.PC, 10) {
			fmt.Fprintf(m.out, "0x%04X  %-8s %s\n", l.Address, l.Mnemonic, l.HexBytes)
		}
	case "break", "b":
		if len(cmd.Args) != 1 {
			fmt.Fprintln(m.out, "usage: break <addr>")
			return
		}
		addr, err := ParseAddress(cmd.Args[0])
		if err != nil {
			fmt.Fprintln(m.out, "bad address:", err)
			return
		}
		m.breakpoint, m.hasBreak = addr, true
	case "poke", "p":
		if len(cmd.Args) != 2 {
			fmt.Fprintln(m.out, "usage: poke <addr> <byte>")
			return
		}
		addr, err := ParseAddress(cmd.Args[0])
		if err != nil {
			fmt.Fprintln(m.out, "bad address:", err)
			return
		}
		val, err := strconv.ParseUint(cmd.Args[1], 16, 8)
		if err != nil {
			fmt.Fprintln(m.out, "bad byte:", err)
			return
		}
		m.cpu.Memory[addr] = byte(val)
	default:
		fmt.Fprintln(m.out, "unknown command:", cmd.Name)
	}
}

func (m *Monitor) printRegs() {
	fmt.Fprintln(m.out, m.cpu.String())
}

// readLine reads one line of raw stdin, translating CR to LF and DEL
// to backspace the way the teacher's TerminalHost does, and echoing
// each character back since raw mode disables the terminal's own
// echo.
func (m *Monitor) readLine() (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := m.in.Read(buf)
		if n == 0 || err != nil {
			if err != nil {
				return sb.String(), err
			}
			continue
		}
		b := buf[0]
		if b == '\r' {
			b = '\n'
		}
		if b == 0x7F {
			b = 0x08
		}
		switch b {
		case '\n':
			fmt.Fprint(m.out, "\r\n")
			return sb.String(), nil
		case 0x08:
			s := sb.String()
			if len(s) > 0 {
				sb.Reset()
				sb.WriteString(s[:len(s)-1])
				fmt.Fprint(m.out, "\b \b")
			}
		case 0x03: // Ctrl-C
			return "", io.EOF
		default:
			sb.WriteByte(b)
			fmt.Fprintf(m.out, "%c", b)
		}
	}
}
