// loader_i8080.go - the loader component: spec.md's "byte-source
// interface" external collaborator given a concrete Go shape, mirroring
// the teacher's LoadProgram(filename string) error pattern on its CPU
// cores.

package main

import "os"

// ROMSource supplies the raw program bytes a CPU8080 will execute.
// FileROMSource below is the only implementation needed for a CLI
// tool; tests use a plain []byte via ReadFile-free construction.
type ROMSource interface {
	Bytes() ([]byte, error)
}

// FileROMSource reads a program image from disk.
type FileROMSource struct {
	Path string
}

func (f FileROMSource) Bytes() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, ErrLoaderOpenFailed
	}
	return data, nil
}

// LoadProgram copies src's bytes into memory starting at loadOffset,
// and sets PC (but not SP — Reset already aliased SP to loadOffset;
// LoadProgram is for loading a second image into a CPU that has
// already been reset) to that offset.
func (c *CPU8080) LoadProgram(src ROMSource, loadOffset uint16) error {
	data, err := src.Bytes()
	if err != nil {
		return err
	}
	if int(loadOffset)+len(data) > len(c.Memory) {
		return ErrLoaderReadError
	}
	copy(c.Memory[loadOffset:], data)
	c.PC = loadOffset
	return nil
}
