// script_harness_i8080.go - a Lua-driven fixture runner for
// black-box program behavior: a fixture pokes memory and registers,
// runs the CPU, and asserts on the resulting state, all described in
// a .lua file rather than as one Go test function per opcode. Built
// on gopher-lua the way the rest of this codebase embeds it for
// host-driven scripting of emulated hardware, and x/sync/errgroup to
// run a batch of fixture files concurrently.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"golang.org/x/sync/errgroup"
)

// RunFixture executes one Lua fixture file against a fresh CPU8080.
// The fixture gets a "cpu" global table exposing:
//
//	cpu.poke(addr, byte)        -- write one byte of memory
//	cpu.peek(addr) -> byte      -- read one byte of memory
//	cpu.setreg(name, value)     -- write an 8- or 16-bit register by name
//	cpu.getreg(name) -> value   -- read a register by name
//	cpu.flag(name) -> bool      -- read one flag ("Z","S","P","C","A")
//	cpu.run(maxSteps)           -- Step() up to maxSteps times or until halt
//	cpu.assert(cond, message)   -- fail the fixture if cond is false
func RunFixture(path string) error {
	cpu := NewCPU8080(0, nil, nil)

	L := lua.NewState()
	defer L.Close()

	tbl := L.NewTable()
	L.SetField(tbl, "poke", L.NewFunction(func(L *lua.LState) int {
		addr := uint16(L.CheckInt(1))
		val := byte(L.CheckInt(2))
		cpu.Memory[addr] = val
		return 0
	}))
	L.SetField(tbl, "peek", L.NewFunction(func(L *lua.LState) int {
		addr := uint16(L.CheckInt(1))
		L.Push(lua.LNumber(cpu.Memory[addr]))
		return 1
	}))
	L.SetField(tbl, "setreg", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		val := L.CheckInt(2)
		if err := setRegisterByName(cpu, name, val); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))
	L.SetField(tbl, "getreg", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		v, err := registerByName(cpu, name)
		if err != nil {
			L.RaiseError("%v", err)
		}
		L.Push(lua.LNumber(v))
		return 1
	}))
	L.SetField(tbl, "flag", L.NewFunction(func(L *lua.LState) int {
		mask, err := flagMaskByName(L.CheckString(1))
		if err != nil {
			L.RaiseError("%v", err)
		}
		L.Push(lua.LBool(cpu.Flag(mask)))
		return 1
	}))
	L.SetField(tbl, "run", L.NewFunction(func(L *lua.LState) int {
		maxSteps := L.CheckInt(1)
		for i := 0; i < maxSteps; i++ {
			if !cpu.Step() {
				break
			}
		}
		return 0
	}))
	L.SetField(tbl, "assert", L.NewFunction(func(L *lua.LState) int {
		if !L.ToBool(1) {
			L.RaiseError("assertion failed: %s", L.OptString(2, "(no message)"))
		}
		return 0
	}))
	L.SetGlobal("cpu", tbl)

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("fixture %s: %w", path, err)
	}
	return nil
}

// RunFixtureDir runs every *.lua file in dir concurrently, one
// goroutine per fixture, and returns the first error encountered.
func RunFixtureDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		g.Go(func() error {
			return RunFixture(path)
		})
	}
	return g.Wait()
}

func setRegisterByName(c *CPU8080, name string, val int) error {
	switch name {
	case "A":
		c.A = byte(val)
	case "B":
		c.B = byte(val)
	case "C":
		c.C = byte(val)
	case "D":
		c.D = byte(val)
	case "E":
		c.E = byte(val)
	case "H":
		c.H = byte(val)
	case "L":
		c.L = byte(val)
	case "F":
		c.F = byte(val)
		c.pinReservedBits()
	case "PC":
		c.PC = uint16(val)
	case "SP":
		c.SP = uint16(val)
	default:
		return fmt.Errorf("unknown register %q", name)
	}
	return nil
}

func registerByName(c *CPU8080, name string) (int, error) {
	switch name {
	case "A":
		return int(c.A), nil
	case "B":
		return int(c.B), nil
	case "C":
		return int(c.C), nil
	case "D":
		return int(c.D), nil
	case "E":
		return int(c.E), nil
	case "H":
		return int(c.H), nil
	case "L":
		return int(c.L), nil
	case "F":
		return int(c.F), nil
	case "PC":
		return int(c.PC), nil
	case "SP":
		return int(c.SP), nil
	default:
		return 0, fmt.Errorf("unknown register %q", name)
	}
}

func flagMaskByName(name string) (byte, error) {
	switch name {
	case "Z":
		return flagZ, nil
	case "S":
		return flagS, nil
	case "P":
		return flagP, nil
	case "C":
		return flagC, nil
	case "A":
		return flagA, nil
	default:
		return 0, fmt.Errorf("unknown flag %q", name)
	}
}
