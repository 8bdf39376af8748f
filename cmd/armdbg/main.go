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

// Command armdbg is an interactive line-oriented debugger over the cpu
// package: step, run to a breakpoint, and inspect registers or memory.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	"github.com/arm7tdmi/gbacore/hardware/cpu"
	"github.com/arm7tdmi/gbacore/hardware/cpu/registers"
	"github.com/arm7tdmi/gbacore/hardware/memory"
)

var commands = []string{
	"step", "run", "break", "clear", "regs", "mem", "log", "help", "quit",
}

func main() {
	optROM := getopt.StringLong("rom", 'r', "", "path to a flat binary to load at address 0")
	optThumb := getopt.BoolLong("thumb", 't', "start execution in Thumb mode")
	optSP := getopt.StringLong("sp", 's', "0x200", "initial stack pointer")
	optHelp := getopt.BoolLong("help", 'h', "help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}
	if *optROM == "" {
		fmt.Fprintln(os.Stderr, "armdbg: --rom is required")
		getopt.Usage()
		os.Exit(1)
	}

	prog, err := os.ReadFile(*optROM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armdbg: %s\n", err)
		os.Exit(1)
	}

	sp, err := strconv.ParseUint(*optSP, 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "armdbg: bad --sp %q\n", *optSP)
		os.Exit(1)
	}

	size := len(prog)
	if size < 0x1000 {
		size = 0x1000
	}
	mem := memory.NewRamWithData(size, prog)
	c := cpu.New(mem, []cpu.Seed{{Reg: registers.SP, Value: uint32(sp)}})
	c.SetThumbMode(*optThumb)

	runLoop(c, mem)
}

func runLoop(c *cpu.CPU, mem *memory.Ram) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var matches []string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, partial) {
				matches = append(matches, cmd)
			}
		}
		return matches
	})

	for {
		input, err := line.Prompt("armdbg> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Fprintf(os.Stderr, "armdbg: %s\n", err)
			return
		}

		line.AppendHistory(input)
		if quit := dispatch(c, mem, input); quit {
			return
		}
	}
}

func dispatch(c *cpu.CPU, mem *memory.Ram, input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "step", "s":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			if !c.Cycle() {
				reportStop(c)
				break
			}
		}
	case "run", "r":
		c.Run()
		reportStop(c)
	case "break", "b":
		if len(fields) < 2 {
			fmt.Println("usage: break <addr>")
			break
		}
		addr, err := strconv.ParseUint(fields[1], 0, 32)
		if err != nil {
			fmt.Printf("bad address %q\n", fields[1])
			break
		}
		currentBreaks = append(currentBreaks, uint32(addr))
		c.SetBreaks(currentBreaks)
	case "clear":
		currentBreaks = nil
		c.SetBreaks(nil)
	case "regs":
		fmt.Println(c.Regs.String())
	case "mem", "m":
		if len(fields) < 2 {
			fmt.Println("usage: mem <addr>")
			break
		}
		addr, err := strconv.ParseUint(fields[1], 0, 32)
		if err != nil {
			fmt.Printf("bad address %q\n", fields[1])
			break
		}
		fmt.Printf("%#08x: %#08x\n", addr, mem.Load32(uint32(addr)))
	case "log", "l":
		cpu.Log.Tail(os.Stdout, 32)
	case "help", "h", "?":
		fmt.Println("step [n], run, break <addr>, clear, regs, mem <addr>, log, quit")
	case "quit", "q", "exit":
		return true
	default:
		fmt.Printf("unknown command %q (try help)\n", fields[0])
	}

	return false
}

// currentBreaks mirrors the breakpoint set the debugger has asked the CPU
// to stop at, since CPU exposes no getter for it.
var currentBreaks []uint32

func reportStop(c *cpu.CPU) {
	if err := c.LastError(); err != nil {
		fmt.Printf("stopped: %s\n", err)
	}
}
