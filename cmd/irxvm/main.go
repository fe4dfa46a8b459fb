// Command irxvm runs an IRX ROM image to completion on the plain VM
// driver: no terminal, no bus devices, just a flat memory handler and a
// step loop. With no ROM path it runs vm.ExampleSwapROM.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/avivbeeri/irx/vm"
)

func main() {
	debug := flag.Bool("debug", false, "print a register/flag dump after halting")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: irxvm [-debug] [rom-file]")
		os.Exit(2)
	}

	var v *vm.VM
	if flag.NArg() == 0 {
		v = vm.New(vm.ExampleSwapROM())
	} else {
		var err error
		v, err = vm.LoadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "irxvm: %v\n", err)
			os.Exit(1)
		}
	}
	v.Debug = *debug

	v.Run()
}
