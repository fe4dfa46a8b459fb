package terminal

import (
	"testing"

	"github.com/avivbeeri/irx/cpu"
)

// flatMemory mirrors the minimal MemoryHandler used by package vm: no
// ROM/RAM distinction, just a zeroed 64K array with the program copied in
// at address 0.
func flatMemory(program []byte) (*cpu.CPU, [65536]byte) {
	var mem [65536]byte
	copy(mem[:], program)
	c := cpu.New()
	c.SetMemoryHandler(func(dir cpu.Direction, addr uint16, value byte) byte {
		if dir == cpu.Write {
			mem[addr] = value
			return 0
		}
		return mem[addr]
	})
	return c, mem
}

func TestExampleEchoROMServicesOneInterrupt(t *testing.T) {
	rom := ExampleEchoROM()
	c, mem := flatMemory(rom)

	dev := NewSerialDevice()
	c.SetBusHandler(0, dev.BusHandler())

	c.IP = uint16(mem[0]) | uint16(mem[1])<<8 // reset vector -> 0x0004

	if !c.Step() { // SEF 2
		t.Fatalf("halted unexpectedly")
	}
	if !c.Step() { // SET SP,0
		t.Fatalf("halted unexpectedly")
	}
	if !c.Step() { // JMP 0 -> idle loop at 0x0007
		t.Fatalf("halted unexpectedly")
	}
	if c.IP != 0x0007 {
		t.Fatalf("expected idle loop at 0x0007, got IP=0x%04X", c.IP)
	}

	dev.EnqueueByte('x')
	c.RaiseInterrupt()

	if !c.Step() { // interrupt entry, then SYS 5 (clear IPend)
		t.Fatalf("halted unexpectedly")
	}
	if c.IPend() != 0 {
		t.Fatalf("IPend should be cleared by the handler, got %d", c.IPend())
	}
	if !c.Step() { // SYS 3 (DATA_IN)
		t.Fatalf("halted unexpectedly")
	}
	if c.A() != 'x' {
		t.Fatalf("A should hold the byte read from the bus, got 0x%02X", c.A())
	}
	if !c.Step() { // COPY_OUT B
		t.Fatalf("halted unexpectedly")
	}
	if !c.Step() { // SYS 4 (DATA_OUT)
		t.Fatalf("halted unexpectedly")
	}
	if !c.Step() { // RET 1
		t.Fatalf("halted unexpectedly")
	}

	if c.IP != 0x0007 {
		t.Fatalf("expected return to idle loop at 0x0007, got IP=0x%04X", c.IP)
	}
	if out := dev.DrainOutput(); out != "x" {
		t.Fatalf("expected echoed byte 'x', got %q", out)
	}
}

func TestSerialDeviceOutputCallback(t *testing.T) {
	dev := NewSerialDevice()
	var got []byte
	dev.SetCharOutputCallback(func(b byte) { got = append(got, b) })

	h := dev.BusHandler()
	h(cpu.Write, 'h')
	h(cpu.Write, 'i')

	if string(got) != "hi" {
		t.Fatalf("expected callback to receive \"hi\", got %q", string(got))
	}
	if out := dev.DrainOutput(); out != "" {
		t.Fatalf("expected DrainOutput to be empty when a callback is set, got %q", out)
	}
}

func TestSerialDeviceMissingInputReadsZero(t *testing.T) {
	dev := NewSerialDevice()
	h := dev.BusHandler()
	if got := h(cpu.Read, 0); got != 0 {
		t.Fatalf("expected 0 from an empty input buffer, got 0x%02X", got)
	}
}
