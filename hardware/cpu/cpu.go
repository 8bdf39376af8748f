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

// Package cpu wires the register file, the Thumb/ARM executors and a
// memory bus into the runnable CPU scheduler surface spec.md §4.1
// describes: construction with a seeded register state, breakpoints,
// and a Cycle/Run loop.
package cpu

import (
	"github.com/arm7tdmi/gbacore/errors"
	"github.com/arm7tdmi/gbacore/hardware/cpu/execution"
	"github.com/arm7tdmi/gbacore/hardware/cpu/registers"
	"github.com/arm7tdmi/gbacore/hardware/memory/bus"
	"github.com/arm7tdmi/gbacore/logger"
)

// Seed sets register Reg (0..15, in the reset mode) to Value at
// construction time. Seeds are applied in the order given, so a later entry
// for the same register overwrites an earlier one.
type Seed struct {
	Reg   int
	Value uint32
}

// Log is the central logger every CPU instance reports decode and
// breakpoint events to. Tests and cmd/ front ends may swap it for one with
// a different capacity.
var Log = logger.NewLogger(512)

// CPU is the ARM7TDMI scheduler: a register file, a memory bus, and the
// Thumb/ARM executors, driven one instruction at a time via Cycle.
type CPU struct {
	Regs *registers.File
	mem  bus.Bus
	exec *execution.Executor

	breaks map[uint32]bool

	lastErr error
}

// New constructs a CPU against mem, applying seed in order. An empty seed
// leaves the register file at its reset state (CPSR 0x1F, every GPR zero).
func New(mem bus.Bus, seed []Seed) *CPU {
	c := &CPU{
		Regs:   registers.NewFile(),
		mem:    mem,
		exec:   execution.New(),
		breaks: make(map[uint32]bool),
	}
	for _, s := range seed {
		c.Regs.SetBanked(c.Regs.Mode(), s.Reg, s.Value)
	}
	return c
}

// SetBreaks replaces the set of breakpoint addresses. Cycle checks the
// program counter against this set before fetching, logging and refusing
// to advance when it is hit.
func (c *CPU) SetBreaks(addrs []uint32) {
	c.breaks = make(map[uint32]bool, len(addrs))
	for _, a := range addrs {
		c.breaks[a] = true
	}
}

// SetThumbMode sets or clears CPSR's T bit, selecting which executor Cycle
// dispatches to.
func (c *CPU) SetThumbMode(thumb bool) {
	c.Regs.CPSR.T = thumb
}

// LastError returns the curated error recorded by the most recent Cycle
// that stopped on an Undefined (or SoftwareInt) form, or nil if the core
// has never stopped on one. A breakpoint stop neither sets nor clears it.
func (c *CPU) LastError() error {
	return c.lastErr
}

// Cycle runs exactly one instruction. It returns false when execution
// should stop: a breakpoint was hit, or the executor ran an Undefined (or
// unimplemented SoftwareInt) form, in which case LastError explains why.
func (c *CPU) Cycle() bool {
	pc := c.Regs.Get(registers.PC)
	if c.breaks[pc] {
		Log.Logf(logger.Allow, "cpu", "breakpoint hit at %#08x", pc)
		return false
	}

	wasThumb := c.Regs.CPSR.T

	var result execution.Result
	if wasThumb {
		result = c.exec.ExecuteThumb(c.Regs, c.mem)
	} else {
		result = c.exec.ExecuteARM(c.Regs, c.mem)
	}

	if wasThumb {
		Log.Logf(logger.Allow, "cpu", "%#08x: %s", result.Address, result.Form)
	} else {
		Log.Logf(logger.Allow, "cpu", "%#08x: arm", result.Address)
	}

	if !result.Continue {
		c.lastErr = result.Err
		Log.Logf(logger.Allow, "cpu", "stopped: %s", errors.Head(result.Err))
		return false
	}

	return true
}

// Run calls Cycle until it returns false.
func (c *CPU) Run() {
	for c.Cycle() {
	}
}
