package vm

import "github.com/avivbeeri/irx/cpu"

func inst(opcode, field byte) byte {
	return (opcode & 0x1F) | (field << 5)
}

// ExampleSwapROM returns a small boot ROM: it calls a subroutine that
// swaps A and B, then halts. It is the literal demo program carried
// forward from the reference driver this package is modelled on, useful
// as a smoke-test default ROM for cmd/irxvm.
func ExampleSwapROM() []byte {
	rom := make([]byte, 16)
	rom[0x00], rom[0x01] = 0x04, 0x00 // reset vector -> 0x0004
	rom[0x02], rom[0x03] = 0x0C, 0x00 // interrupt vector -> 0x000C (unused here)

	rom[0x04] = inst(cpu.OpSET, cpu.RegA)
	rom[0x05] = 0x07 // A := 7

	rom[0x06] = inst(cpu.OpSET, cpu.RegB)
	rom[0x07] = 0x00 // B := 0

	rom[0x08] = inst(cpu.OpJMP, 4) // call 0x000C
	rom[0x09], rom[0x0A] = 0x0C, 0x00

	rom[0x0B] = inst(cpu.OpSYS, cpu.SysHalt)

	rom[0x0C] = inst(cpu.OpSWAP, cpu.RegA)
	rom[0x0D] = cpu.RegB // swap A <-> B

	rom[0x0E] = inst(cpu.OpRET, 0)

	return rom
}
