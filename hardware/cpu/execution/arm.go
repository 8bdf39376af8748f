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

package execution

import (
	"math/bits"

	gbaerrors "github.com/arm7tdmi/gbacore/errors"
	"github.com/arm7tdmi/gbacore/hardware/cpu/decode"
	"github.com/arm7tdmi/gbacore/hardware/cpu/registers"
	"github.com/arm7tdmi/gbacore/hardware/memory/bus"
)

// ExecuteARM fetches, decodes and runs one ARM instruction. Structurally
// parallel to ExecuteThumb: capture PC, fetch the word, advance PC by 4,
// then gate on the condition field before running the semantic body, per
// spec.md §4.4.
func (*Executor) ExecuteARM(f *registers.File, mem bus.Bus) Result {
	pc := f.Get(registers.PC)
	inst := mem.Load32(pc &^ 3)

	f.Set(registers.PC, pc+4)

	cond := uint8(inst >> 28)
	form := decode.DecodeARM(inst)
	result := Result{Form: decode.Form(-1), Address: pc, Continue: true}

	if !f.CPSR.Cond(cond) {
		return result
	}

	switch form {
	case decode.ARMDataProc:
		execARMDataProc(f, inst)
	case decode.ARMSingleXfer:
		execARMSingleXfer(f, mem, inst)
	case decode.ARMBlockXfer:
		execARMBlockXfer(f, mem, inst)
	case decode.ARMBranch:
		execARMBranch(f, pc, inst)
	default:
		result.Continue = false
		result.Err = gbaerrors.Errorf(gbaerrors.UndefinedInstruction.String())
	}

	return result
}

// armOperand2 evaluates the shifter operand of a data-processing
// instruction and returns its value and the shifter's carry-out.
func armOperand2(f *registers.File, inst uint32) (uint32, bool) {
	c := f.CPSR.C

	if bit(inst, 25) == 1 {
		imm := extract(inst, 0, 8)
		rotate := extract(inst, 8, 4) * 2
		if rotate == 0 {
			return imm, c
		}
		return shift(imm, rotate, ror)
	}

	rm := int(extract(inst, 0, 4))
	st := shiftType(extract(inst, 5, 2))
	val := f.Get(rm)

	if bit(inst, 4) == 0 {
		amount := extract(inst, 7, 5)
		if amount == 0 {
			return shiftByZero(val, st, c)
		}
		return shift(val, amount, st)
	}

	rs := int(extract(inst, 8, 4))
	amount := f.Get(rs) & 0xFF
	if amount == 0 {
		return val, c
	}
	return shift(val, amount, st)
}

func execARMDataProc(f *registers.File, inst uint32) {
	s := bit(inst, 20)
	rn := int(extract(inst, 16, 4))
	rd := int(extract(inst, 12, 4))
	opcode := extract(inst, 21, 4)

	op2, shiftC := armOperand2(f, inst)
	vald := f.Get(rn)

	var res uint32
	var newV, newC bool
	writesRd := true
	v, c := f.CPSR.V, f.CPSR.C

	switch opcode {
	case 0x0: // AND
		res, newV, newC = vald&op2, v, shiftC
	case 0x1: // EOR
		res, newV, newC = vald^op2, v, shiftC
	case 0x2: // SUB
		res, newV, newC = subtract(vald, op2)
	case 0x3: // RSB
		res, newV, newC = subtract(op2, vald)
	case 0x4: // ADD
		res, newV, newC = addWithCarry(vald, op2, false)
	case 0x5: // ADC
		res, newV, newC = addWithCarry(vald, op2, c)
	case 0x6: // SBC
		res, newV, newC = addWithCarry(vald, ^op2, c)
	case 0x7: // RSC
		res, newV, newC = addWithCarry(op2, ^vald, c)
	case 0x8: // TST
		res, newV, newC, writesRd = vald&op2, v, shiftC, false
	case 0x9: // TEQ
		res, newV, newC, writesRd = vald^op2, v, shiftC, false
	case 0xA: // CMP
		res, newV, newC = subtract(vald, op2)
		writesRd = false
	case 0xB: // CMN
		res, newV, newC = addWithCarry(vald, op2, false)
		writesRd = false
	case 0xC: // ORR
		res, newV, newC = vald|op2, v, shiftC
	case 0xD: // MOV
		res, newV, newC = op2, v, shiftC
	case 0xE: // BIC
		res, newV, newC = vald&^op2, v, shiftC
	case 0xF: // MVN
		res, newV, newC = ^op2, v, shiftC
	}

	if writesRd {
		f.Set(rd, res)
	}
	if s == 1 {
		f.CPSR.SetFlags(res, newV, newC)
	}
}

func execARMSingleXfer(f *registers.File, mem bus.Bus, inst uint32) {
	i := bit(inst, 25)
	p := bit(inst, 24)
	u := bit(inst, 23)
	b := bit(inst, 22)
	w := bit(inst, 21)
	l := bit(inst, 20)
	rn := int(extract(inst, 16, 4))
	rd := int(extract(inst, 12, 4))

	var offset uint32
	if i == 0 {
		offset = extract(inst, 0, 12)
	} else {
		rm := int(extract(inst, 0, 4))
		st := shiftType(extract(inst, 5, 2))
		amount := extract(inst, 7, 5)
		if amount == 0 {
			offset, _ = shiftByZero(f.Get(rm), st, f.CPSR.C)
		} else {
			offset, _ = shift(f.Get(rm), amount, st)
		}
	}

	base := f.Get(rn)
	var xferAddr uint32
	if p == 1 {
		if u == 1 {
			xferAddr = base + offset
		} else {
			xferAddr = base - offset
		}
	} else {
		xferAddr = base
	}

	if b == 1 {
		if l == 0 {
			mem.Set8(xferAddr, uint8(f.Get(rd)))
		} else {
			f.Set(rd, uint32(mem.Load8(xferAddr)))
		}
	} else {
		if l == 0 {
			mem.Set32(xferAddr&^3, f.Get(rd))
		} else {
			f.Set(rd, mem.Load32(xferAddr&^3))
		}
	}

	if p == 0 || w == 1 {
		var writeback uint32
		if u == 1 {
			writeback = base + offset
		} else {
			writeback = base - offset
		}
		f.Set(rn, writeback)
	}
}

func execARMBlockXfer(f *registers.File, mem bus.Bus, inst uint32) {
	p := bit(inst, 24)
	u := bit(inst, 23)
	w := bit(inst, 21)
	l := bit(inst, 20)
	rn := int(extract(inst, 16, 4))
	rlist := extract(inst, 0, 16)

	total := uint32(bits.OnesCount32(rlist))
	base := f.Get(rn)

	var start uint32
	if u == 1 {
		start = base
		if p == 1 {
			start += 4
		}
	} else {
		start = base - total*4
		if p == 0 {
			start += 4
		}
	}

	rem := rlist
	for i := uint32(0); i < total; i++ {
		reg := int(bits.TrailingZeros32(rem))
		addr := start + i*4
		if l == 0 {
			mem.Set32(addr, f.Get(reg))
		} else {
			f.Set(reg, mem.Load32(addr))
		}
		rem &^= 1 << uint(reg)
	}

	if w == 1 {
		if u == 1 {
			f.Set(rn, base+total*4)
		} else {
			f.Set(rn, base-total*4)
		}
	}
}

func execARMBranch(f *registers.File, pc uint32, inst uint32) {
	l := bit(inst, 24)
	offset := signExtend(extract(inst, 0, 24)<<2, 26)

	if l == 1 {
		f.Set(registers.LR, pc+4)
	}
	f.Set(registers.PC, pc+8+offset)
}
