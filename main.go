// famigo runs iNES cartridges through an emulated NES: a 6502 core, a
// bus with mirrored RAM and the PPU register window, and a mapper-0
// cartridge. The run ends when the program executes BRK.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"famigo/cpu"
	"famigo/mem"
	"famigo/rom"
)

func main() {
	log.SetFlags(0)

	trace := flag.Bool("trace", false, "print a nestest-style line per instruction")
	debug := flag.Bool("debug", false, "single-step the program in a TUI")
	strict := flag.Bool("strict", false, "stop on unknown opcodes instead of logging")
	pc := flag.Uint("pc", 0, "override the reset vector (nestest wants 0xC000)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.nes\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	r, err := rom.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	c := cpu.New(mem.NewBus(r))
	c.IndirectBug = true
	c.Strict = *strict
	c.Reset()
	if *pc != 0 {
		c.ProgramCounter = uint16(*pc)
	}

	switch {
	case *debug:
		err = c.Debug()
	case *trace:
		err = c.RunWithCallback(func(c *cpu.Cpu) {
			fmt.Println(cpu.Trace(c))
		})
	default:
		err = c.Run()
	}
	if err != nil {
		log.Fatal(err)
	}
}
