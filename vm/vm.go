// Package vm is the plain IRX driver: a flat ROM+RAM memory handler and a
// loop that steps the CPU until it halts. It has no terminal, no bus
// devices, and no interrupts of its own — a thin client of package cpu,
// the way the original vm.c is a thin client of the CPU core.
package vm

import (
	"fmt"
	"os"

	"github.com/avivbeeri/irx/cpu"
)

const memorySize = 1 << 16

// Memory is a flat 64K byte array backing a MemoryHandler. There is no
// distinction between ROM and RAM at this layer — the loaded program
// simply occupies the low addresses and everything is writable, matching
// the original driver's single-array model.
type Memory struct {
	bytes [memorySize]byte
}

// NewMemory returns a zeroed Memory with program loaded at address 0.
func NewMemory(program []byte) *Memory {
	m := &Memory{}
	copy(m.bytes[:], program)
	return m
}

// Handler returns a cpu.MemoryHandler backed by m.
func (m *Memory) Handler() cpu.MemoryHandler {
	return func(dir cpu.Direction, addr uint16, value byte) byte {
		if dir == cpu.Write {
			m.bytes[addr] = value
			return 0
		}
		return m.bytes[addr]
	}
}

// VM wires a CPU to a flat Memory and nothing else.
type VM struct {
	CPU *cpu.CPU
	Mem *Memory

	// Debug, when true, prints a state dump after the run loop exits.
	Debug bool
}

// New constructs a VM with program loaded at address 0 and the CPU's
// IP seeded from the reset vector at 0x00/0x01, per the boot convention
// established by the original drivers.
func New(program []byte) *VM {
	mem := NewMemory(program)
	c := cpu.New()
	c.SetMemoryHandler(mem.Handler())
	c.IP = uint16(mem.bytes[0]) | uint16(mem.bytes[1])<<8
	return &VM{CPU: c, Mem: mem}
}

// LoadFile reads a ROM image from disk and returns a VM initialised
// against it.
func LoadFile(path string) (*VM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vm: loading %s: %w", path, err)
	}
	if len(data) > memorySize {
		return nil, fmt.Errorf("vm: %s is %d bytes, exceeds %d-byte address space", path, len(data), memorySize)
	}
	return New(data), nil
}

// Run steps the CPU until it halts. It never returns an error: every
// failure mode the core exposes (decode fault, division by zero, stack
// wrap) is visible only through register and flag state, per the core's
// own error-handling contract.
func (v *VM) Run() {
	for v.CPU.Step() {
	}
	if v.Debug {
		v.DumpState()
	}
}

// DumpState prints a plain-text snapshot of the CPU, in the spirit of the
// original CPU_dump helper: one line of registers and flags, nothing
// structured.
func (v *VM) DumpState() {
	c := v.CPU
	fmt.Printf("IP=%04X F=%02X A=%02X B=%02X C=%02X D=%02X G=%02X H=%02X E=%02X SP=%02X running=%v\n",
		c.IP, c.F, c.A(), c.B(), c.C(), c.D(), c.G(), c.H(), c.E(), c.SP(), c.Running)
}
