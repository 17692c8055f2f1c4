// main.go - CLI entry point: load a program image and either run it,
// disassemble it, or drop into the interactive monitor. Flag parsing
// follows the flag.NewFlagSet / mode-exclusive-bool-flags pattern used
// elsewhere in this codebase's command-line tools.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func main() {
	fs := flag.NewFlagSet("i8080", flag.ExitOnError)

	var (
		runMode     = fs.Bool("run", false, "load and run the image to completion")
		disMode     = fs.Bool("dis", false, "disassemble the image and exit")
		monitorMode = fs.Bool("monitor", false, "load the image and drop into the interactive monitor")
		fixtureDir  = fs.String("fixtures", "", "run every *.lua conformance fixture in this directory and exit")
		loadOffset  = fs.Uint("offset", 0, "byte offset to load the image at")
		terminalOut = fs.Bool("terminal-out", false, "route OUT on port 0 to stdout (CP/M-style test ROMs)")
	)
	fs.Parse(os.Args[1:])

	if *fixtureDir != "" {
		if err := RunFixtureDir(context.Background(), *fixtureDir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	args := fs.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: i8080 [-run|-dis|-monitor] [-offset=N] [-terminal-out] <image>")
		os.Exit(2)
	}

	var io IOPort
	if *terminalOut {
		io = NewTerminalIOPort(0, os.Stdout)
	}

	cpu := NewCPU8080(uint16(*loadOffset), io, nil)
	if err := cpu.LoadProgram(FileROMSource{Path: args[0]}, uint16(*loadOffset)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case *disMode:
		for _, l := range Disassemble(cpu.Memory[:], uint16(*loadOffset), len(cpu.Memory)) {
			fmt.Printf("0x%04X  %-8s %s\n", l.Address, l.Mnemonic, l.HexBytes)
		}
	case *monitorMode:
		m := NewMonitor(cpu, os.Stdout)
		if err := m.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *runMode:
		cpu.Run()
		if cpu.Faulted {
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: i8080 [-run|-dis|-monitor] [-offset=N] [-terminal-out] <image>")
		os.Exit(2)
	}
}
