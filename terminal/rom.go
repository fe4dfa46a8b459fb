package terminal

import "github.com/avivbeeri/irx/cpu"

func inst(opcode, field byte) byte {
	return (opcode & 0x1F) | (field << 5)
}

// ExampleEchoROM returns the reference terminal echo program: it enables
// interrupts, idles in a self-loop, and services every incoming byte by
// clearing the pending-interrupt counter, reading it from bus slot 0,
// copying it into B, and writing it back out — a minimal echo server
// driven entirely by the interrupt line. This is the literal worked
// example the terminal driver is modelled on.
func ExampleEchoROM() []byte {
	rom := make([]byte, 16)
	rom[0x00], rom[0x01] = 0x04, 0x00 // reset vector -> 0x0004
	rom[0x02], rom[0x03] = 0x0A, 0x00 // interrupt vector -> 0x000A

	rom[0x04] = inst(cpu.OpSEF, 2) // enable interrupts (F.I)

	rom[0x05] = inst(cpu.OpSET, cpu.RegSP)
	rom[0x06] = 0x00 // SP := 0

	rom[0x07] = inst(cpu.OpJMP, 0) // idle: jump to self
	rom[0x08], rom[0x09] = 0x07, 0x00

	rom[0x0A] = inst(cpu.OpSYS, cpu.SysClearIPend)
	rom[0x0B] = inst(cpu.OpSYS, cpu.SysDataIn) // A := bus[E]
	rom[0x0C] = inst(cpu.OpCOPYOUT, cpu.RegB)  // B := A
	rom[0x0D] = inst(cpu.OpSYS, cpu.SysDataOut) // bus[E] := A
	rom[0x0E] = inst(cpu.OpRET, 1)              // interrupt return

	return rom
}
