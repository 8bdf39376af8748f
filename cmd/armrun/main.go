// This file is part of gbacore.
//
// gbacore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbacore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbacore.  If not, see <https://www.gnu.org/licenses/>.

// Command armrun loads a flat Thumb or ARM binary into RAM and drives it
// to completion, printing the final register file. It is a thin front end
// over the cpu package for scripted regression runs; interactive work
// belongs to armdbg.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/arm7tdmi/gbacore/hardware/cpu"
	"github.com/arm7tdmi/gbacore/hardware/cpu/registers"
	"github.com/arm7tdmi/gbacore/hardware/memory"
)

func main() {
	optROM := getopt.StringLong("rom", 'r', "", "path to a flat binary to load at address 0")
	optThumb := getopt.BoolLong("thumb", 't', "start execution in Thumb mode")
	optSP := getopt.StringLong("sp", 's', "0x200", "initial stack pointer")
	optCycles := getopt.StringLong("cycles", 'n', "0", "stop after this many cycles (0: run to Undefined)")
	optBreak := getopt.StringLong("break", 'b', "", "comma-separated breakpoint addresses")
	optLog := getopt.BoolLong("log", 'l', "print the instruction log after running")
	optHelp := getopt.BoolLong("help", 'h', "help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	if *optROM == "" {
		fmt.Fprintln(os.Stderr, "armrun: --rom is required")
		getopt.Usage()
		os.Exit(1)
	}

	prog, err := os.ReadFile(*optROM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armrun: %s\n", err)
		os.Exit(1)
	}

	sp, err := strconv.ParseUint(*optSP, 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armrun: bad --sp %q\n", *optSP)
		os.Exit(1)
	}

	cycles, err := strconv.Atoi(*optCycles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armrun: bad --cycles %q\n", *optCycles)
		os.Exit(1)
	}

	size := len(prog)
	if size < 0x1000 {
		size = 0x1000
	}
	mem := memory.NewRamWithData(size, prog)

	c := cpu.New(mem, []cpu.Seed{{Reg: registers.SP, Value: uint32(sp)}})
	c.SetThumbMode(*optThumb)

	var breaks []uint32
	if *optBreak != "" {
		for _, b := range strings.Split(*optBreak, ",") {
			addr, err := strconv.ParseUint(strings.TrimSpace(b), 0, 32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "armrun: bad breakpoint %q\n", b)
				os.Exit(1)
			}
			breaks = append(breaks, uint32(addr))
		}
	}
	c.SetBreaks(breaks)

	if cycles > 0 {
		for i := 0; i < cycles; i++ {
			if !c.Cycle() {
				break
			}
		}
	} else {
		c.Run()
	}

	if err := c.LastError(); err != nil {
		fmt.Printf("stopped: %s\n", err)
	}

	fmt.Println(c.Regs.String())

	if *optLog {
		cpu.Log.Write(os.Stdout)
	}
}
