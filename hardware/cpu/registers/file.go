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

// Package registers implements the ARM7TDMI's banked register file: R0..R15,
// CPSR, and the per-mode SPSRs. The banking itself lives behind Get/Set so
// that the executor can index registers 0..15 without caring which mode is
// current; see spec.md §9 "Banked registers".
package registers

import "fmt"

const numRegs = 16

// PC, LR and SP are the conventional names for R15, R14 and R13.
const (
	PC = 15
	LR = 14
	SP = 13
)

type bank struct {
	r13, r14 uint32
}

// File is the ARM7TDMI register file: R0..R15 with mode-aware banking of
// R8..R12 (FIQ only) and R13/R14 (every exception mode), plus CPSR and the
// five exception-mode SPSRs.
type File struct {
	r      [8]uint32 // R0..R7, never banked
	r8_12  [5]uint32 // R8..R12, User/System/IRQ/Supervisor/Abort/Undefined
	fiq812 [5]uint32 // R8..R12, FIQ bank
	banks  [6]bank   // R13/R14, indexed by Mode.bankIndex()
	pc     uint32    // R15, never banked

	CPSR Status
	spsr [6]Status // indexed by Mode.spsrIndex(); index 5 (User/System) unused
}

// NewFile returns a File with CPSR reset to 0x1F (System mode, ARM state,
// flags clear) and every other register zeroed.
func NewFile() *File {
	f := &File{}
	f.CPSR = NewStatus()
	return f
}

// Mode returns the processor mode currently selected by CPSR.
func (f *File) Mode() Mode {
	return f.CPSR.Mode
}

// Get reads register reg (0..15) under the current mode.
func (f *File) Get(reg int) uint32 {
	return f.GetBanked(f.CPSR.Mode, reg)
}

// Set writes register reg (0..15) under the current mode.
func (f *File) Set(reg int, v uint32) {
	f.SetBanked(f.CPSR.Mode, reg, v)
}

// GetBanked reads register reg as it would appear under mode, regardless of
// the file's current mode. Useful for a debugger dumping every bank.
func (f *File) GetBanked(mode Mode, reg int) uint32 {
	switch {
	case reg >= 0 && reg <= 7:
		return f.r[reg]
	case reg >= 8 && reg <= 12:
		if mode == FIQ {
			return f.fiq812[reg-8]
		}
		return f.r8_12[reg-8]
	case reg == SP:
		return f.banks[mode.bankIndex()].r13
	case reg == LR:
		return f.banks[mode.bankIndex()].r14
	case reg == PC:
		return f.pc
	}
	panic(fmt.Sprintf("registers: index %d out of range", reg))
}

// SetBanked writes register reg as it would appear under mode.
func (f *File) SetBanked(mode Mode, reg int, v uint32) {
	switch {
	case reg >= 0 && reg <= 7:
		f.r[reg] = v
	case reg >= 8 && reg <= 12:
		if mode == FIQ {
			f.fiq812[reg-8] = v
		} else {
			f.r8_12[reg-8] = v
		}
	case reg == SP:
		f.banks[mode.bankIndex()].r13 = v
	case reg == LR:
		f.banks[mode.bankIndex()].r14 = v
	case reg == PC:
		f.pc = v
	default:
		panic(fmt.Sprintf("registers: index %d out of range", reg))
	}
}

// SPSR returns the saved status register for the current mode. Reading it
// in User or System mode (which have none) returns an unused, harmless slot.
func (f *File) SPSR() Status {
	return f.spsr[f.CPSR.Mode.spsrIndex()]
}

// SetSPSR writes the saved status register for the current mode.
func (f *File) SetSPSR(s Status) {
	f.spsr[f.CPSR.Mode.spsrIndex()] = s
}

// String renders every R0..R15 plus CPSR, for debugging.
func (f *File) String() string {
	s := ""
	for i := 0; i < numRegs; i++ {
		s += fmt.Sprintf("r%d=%#010x ", i, f.Get(i))
	}
	return s + f.CPSR.String()
}
