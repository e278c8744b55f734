// Command gone6502 loads an iNES ROM image, wires it behind a CPU bus
// alongside 2 KiB of console RAM, and either runs it headless for a
// fixed number of steps or drops into the interactive debugger.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/A-Taiga/NES-Emulator/cartridge"
	"github.com/A-Taiga/NES-Emulator/cpu"
	"github.com/A-Taiga/NES-Emulator/debugger"
)

// systemBus routes the CPU's $0000-$FFFF address space across the
// console's 2 KiB of work RAM (mirrored four times up to $1FFF) and
// the cartridge, which owns everything from $6000 up. Addresses with
// no backing device read as open bus (zero).
type systemBus struct {
	ram  [2048]byte
	cart *cartridge.Cartridge
}

func (b *systemBus) Read(addr uint16) byte {
	switch {
	case addr < 0x2000:
		return b.ram[addr%0x0800]
	case addr >= 0x6000:
		return b.cart.Read(addr)
	default:
		return 0
	}
}

func (b *systemBus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		b.ram[addr%0x0800] = value
	case addr >= 0x6000:
		b.cart.Write(addr, value)
	}
}

func main() {
	debug := flag.Bool("debug", false, "launch the interactive debugger instead of running headless")
	steps := flag.Int("steps", 1000, "number of CPU steps to run in headless mode")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: gone6502 [-debug] [-steps N] <rom path>")
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open rom: %v", err)
	}
	defer f.Close()

	cart, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("load rom: %v", err)
	}

	sys := &systemBus{cart: cart}
	c := cpu.New(sys)
	c.Step() // service the initial reset, landing PC on the reset vector

	if *debug {
		if err := debugger.Run(c, sys, 0x8000); err != nil {
			log.Fatalf("debugger: %v", err)
		}
		return
	}

	for i := 0; i < *steps; i++ {
		c.Step()
	}
	snap := c.Snapshot()
	fmt.Printf("ran %d steps: PC=%04x A=%02x X=%02x Y=%02x SP=%02x P=%02x\n",
		*steps, snap.PC, snap.A, snap.X, snap.Y, snap.SP, snap.P)
}
