// Command irxterm runs an IRX ROM image against a raw-mode terminal host:
// stdin is read byte-by-byte on a background goroutine, each byte raises
// an interrupt, and bus slot 0 is wired to a serial device that writes
// DATA_OUT bytes straight to stdout. Press Ctrl-Q to quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/avivbeeri/irx/cpu"
	"github.com/avivbeeri/irx/terminal"
)

func main() {
	debug := flag.Bool("debug", false, "print a register/flag dump on exit")
	flag.Parse()

	romPath := flag.Arg(0)
	var rom []byte
	if romPath == "" {
		rom = terminal.ExampleEchoROM()
	} else {
		data, err := os.ReadFile(romPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "irxterm: %v\n", err)
			os.Exit(1)
		}
		rom = data
	}

	var mem [1 << 16]byte
	copy(mem[:], rom)

	c := cpu.New()
	c.SetMemoryHandler(func(dir cpu.Direction, addr uint16, value byte) byte {
		if dir == cpu.Write {
			mem[addr] = value
			return 0
		}
		return mem[addr]
	})
	c.IP = uint16(mem[0]) | uint16(mem[1])<<8

	dev := terminal.NewSerialDevice()
	dev.SetCharOutputCallback(func(b byte) { fmt.Printf("%c", b) })
	c.SetBusHandler(0, dev.BusHandler())

	host := terminal.NewHost(dev, c)
	host.Start()
	defer host.Stop()

	quit := host.Quit()
runLoop:
	for c.Step() {
		select {
		case <-quit:
			break runLoop
		default:
		}
	}

	if *debug {
		fmt.Printf("\nIP=%04X F=%02X A=%02X B=%02X C=%02X D=%02X G=%02X H=%02X E=%02X SP=%02X running=%v\n",
			c.IP, c.F, c.A(), c.B(), c.C(), c.D(), c.G(), c.H(), c.E(), c.SP(), c.Running)
	}
}
