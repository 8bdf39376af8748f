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

// Executor runs one Thumb or ARM instruction against a register file and a
// memory bus. The zero value is ready to use; it carries no state of its
// own between instructions (all state lives in the register file).
type Executor struct{}

// New returns a ready-to-use Executor.
func New() *Executor {
	return &Executor{}
}

// ExecuteThumb fetches, decodes and runs one Thumb instruction. The common
// prologue -- capture PC, fetch the word, read C/V, advance PC by 2 --
// happens here before dispatch, per spec.md §4.3.
func (*Executor) ExecuteThumb(f *registers.File, mem bus.Bus) Result {
	pc := f.Get(registers.PC)
	word := mem.Load16(pc &^ 1)
	inst := uint32(word)

	c := f.CPSR.C
	v := f.CPSR.V

	f.Set(registers.PC, pc+2)

	form := decode.Decode(word)
	result := Result{Form: form, Address: pc, Continue: true}

	switch form {
	case decode.Shifted:
		op := extract(inst, 11, 2)
		amount := extract(inst, 6, 5)
		rs := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))

		val := f.Get(rs)
		var res uint32
		var newC bool
		if amount == 0 {
			res, newC = shiftByZero(val, shiftType(op), c)
		} else {
			res, newC = shift(val, amount, shiftType(op))
		}
		f.Set(rd, res)
		f.CPSR.SetFlags(res, v, newC)

	case decode.AddSub:
		i := bit(inst, 10)
		op := bit(inst, 9)
		rs := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))
		rn := extract(inst, 6, 3)

		var val2 uint32
		if i == 0 {
			val2 = f.Get(int(rn))
		} else {
			val2 = rn
		}

		var res uint32
		var newV, newC bool
		if op == 0 {
			res, newV, newC = addWithCarry(f.Get(rs), val2, false)
		} else {
			res, newV, newC = subtract(f.Get(rs), val2)
		}
		f.Set(rd, res)
		f.CPSR.SetFlags(res, newV, newC)

	case decode.ImmOp:
		op := extract(inst, 11, 2)
		rd := int(extract(inst, 8, 3))
		imm := extract(inst, 0, 8)

		var res uint32
		var newV, newC bool
		switch op {
		case 0: // MOV
			res, newV, newC = imm, v, c
		case 1, 3: // CMP, SUB
			res, newV, newC = subtract(f.Get(rd), imm)
		case 2: // ADD
			res, newV, newC = addWithCarry(f.Get(rd), imm, false)
		}
		if op != 1 {
			f.Set(rd, res)
		}
		f.CPSR.SetFlags(res, newV, newC)

	case decode.AluOp:
		op := extract(inst, 6, 4)
		rs := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))

		vals := f.Get(rs)
		vald := f.Get(rd)

		var res uint32
		var newV, newC bool
		switch op {
		case 0x0, 0x8: // AND, TST
			res, newV, newC = vald&vals, v, c
		case 0x1: // EOR
			res, newV, newC = vald^vals, v, c
		case 0x2, 0x3, 0x4, 0x7: // LSL, LSR, ASR, ROR
			amount := vals & 0xff
			var sres uint32
			var sc bool
			if amount == 0 {
				sres, sc = vald, c
			} else {
				st := shiftType(((op >> 1) & 2) | (op & 1))
				sres, sc = shift(vald, amount, st)
			}
			res, newV, newC = sres, v, sc
		case 0x5: // ADC
			res, newV, newC = addWithCarry(vald, vals, c)
		case 0x6: // SBC -- reproduces original_source's literal formula
			// (vald + vals + (1-c)), not the architectural
			// (vald - vals - !c); see SPEC_FULL.md §4.3 and DESIGN.md.
			res, newV, newC = addWithCarry(vald, vals, !c)
		case 0x9: // NEG
			res, newV, newC = subtract(0, vals)
		case 0xA: // CMP
			res, newV, newC = subtract(vald, vals)
		case 0xB: // CMN
			res, newV, newC = addWithCarry(vald, vals, false)
		case 0xC: // ORR
			res, newV, newC = vald|vals, v, c
		case 0xD: // MUL
			res, newV, newC = vald*vals, v, false
		case 0xE: // BIC
			res, newV, newC = vald&^vals, v, c
		case 0xF: // MVN
			res, newV, newC = ^vals, v, c
		}
		switch op {
		case 0x8, 0xA, 0xB: // TST, CMP, CMN never write Rd
		default:
			f.Set(rd, res)
		}
		f.CPSR.SetFlags(res, newV, newC)

	case decode.HiRegBx:
		op := extract(inst, 8, 2)
		hd := bit(inst, 7)
		hs := bit(inst, 6)
		rs := extract(inst, 3, 3)
		rd := extract(inst, 0, 3)

		crs := int(hs*8 + rs)
		crd := int(hd*8 + rd)

		vals := f.Get(crs)
		if crs == registers.PC {
			vals += 2
		}

		switch op {
		case 0: // ADD
			f.Set(crd, f.Get(crd)+vals)
		case 1: // CMP
			res, newV, newC := subtract(f.Get(crd), vals)
			f.CPSR.SetFlags(res, newV, newC)
		case 2: // MOV
			f.Set(crd, vals)
		case 3: // BX
			newT := vals&1 != 0
			mask := ^uint32(1)
			if !newT {
				mask = ^uint32(3)
			}
			f.Set(registers.PC, vals&mask)
			f.CPSR.T = newT
		}

	case decode.PcLoad:
		rd := int(extract(inst, 8, 3))
		offset := extract(inst, 0, 8)
		addr := (f.Get(registers.PC) + 2 + offset*4) &^ 3
		f.Set(rd, mem.Load32(addr))

	case decode.SingleXferR:
		l := bit(inst, 11)
		b := bit(inst, 10)
		ro := int(extract(inst, 6, 3))
		rb := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))

		addr := f.Get(rb) + f.Get(ro)
		switch {
		case l == 0 && b == 0:
			mem.Set32(addr&^3, f.Get(rd))
		case l == 0 && b == 1:
			mem.Set8(addr, uint8(f.Get(rd)))
		case l == 1 && b == 0:
			f.Set(rd, mem.Load32(addr&^3))
		default:
			f.Set(rd, uint32(mem.Load8(addr)))
		}

	case decode.HwSgnXfer:
		h := bit(inst, 11)
		s := bit(inst, 10)
		ro := int(extract(inst, 6, 3))
		rb := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))

		addr := f.Get(rb) + f.Get(ro)
		switch {
		case h == 0 && s == 0:
			mem.Set16(addr&^1, uint16(f.Get(rd)))
		case h == 0 && s == 1:
			f.Set(rd, uint32(mem.Load16(addr&^1)))
		case h == 1 && s == 0:
			f.Set(rd, uint32(int32(int8(mem.Load8(addr)))))
		default:
			f.Set(rd, uint32(int32(int16(mem.Load16(addr&^1)))))
		}

	case decode.SingleXferI:
		l := bit(inst, 11)
		b := bit(inst, 12)
		offset := extract(inst, 6, 5)
		rb := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))

		if b == 0 {
			addr := (f.Get(rb) + offset*4) &^ 3
			if l == 0 {
				mem.Set32(addr, f.Get(rd))
			} else {
				f.Set(rd, mem.Load32(addr))
			}
		} else {
			addr := f.Get(rb) + offset
			if l == 0 {
				mem.Set8(addr, uint8(f.Get(rd)))
			} else {
				f.Set(rd, uint32(mem.Load8(addr)))
			}
		}

	case decode.HwXferI:
		l := bit(inst, 11)
		offset := extract(inst, 6, 5)
		rb := int(extract(inst, 3, 3))
		rd := int(extract(inst, 0, 3))

		addr := (f.Get(rb) + offset*2) &^ 1
		if l == 0 {
			mem.Set16(addr, uint16(f.Get(rd)))
		} else {
			f.Set(rd, uint32(mem.Load16(addr)))
		}

	case decode.SpXfer:
		l := bit(inst, 11)
		rd := int(extract(inst, 8, 3))
		offset := extract(inst, 0, 8) * 4

		addr := f.Get(registers.SP) + offset
		if l == 0 {
			mem.Set32(addr, f.Get(rd))
		} else {
			f.Set(rd, mem.Load32(addr))
		}

	case decode.LoadAddr:
		s := bit(inst, 11)
		rd := int(extract(inst, 8, 3))
		imm := extract(inst, 0, 8)

		var base uint32
		if s == 0 {
			base = (f.Get(registers.PC) + 2) &^ 1
		} else {
			base = f.Get(registers.SP)
		}
		f.Set(rd, base+imm*4)

	case decode.SpAdd:
		s := bit(inst, 7)
		imm := extract(inst, 0, 7) * 4

		sp := f.Get(registers.SP)
		if s == 0 {
			f.Set(registers.SP, sp+imm)
		} else {
			f.Set(registers.SP, sp-imm)
		}

	case decode.PushPop:
		l := bit(inst, 11)
		r := bit(inst, 8)
		rlist := extract(inst, 0, 8)

		total := uint32(bits.OnesCount32(rlist)) + r

		base := f.Get(registers.SP) &^ 3
		var postAddr uint32
		if l == 0 {
			postAddr = base - total*4
		} else {
			postAddr = base + total*4
		}

		var addr uint32
		if l == 0 {
			addr = postAddr
		} else {
			addr = base
		}

		rem := rlist
		if r == 1 {
			if l == 0 {
				rem |= 1 << uint(registers.LR)
			} else {
				rem |= 1 << uint(registers.PC)
			}
		}

		for i := uint32(0); i < total; i++ {
			reg := int(bits.TrailingZeros32(rem))
			idxAddr := addr + i*4
			if l == 0 {
				mem.Set32(idxAddr, f.Get(reg))
			} else {
				f.Set(reg, mem.Load32(idxAddr))
			}
			rem &^= 1 << uint(reg)
		}

		f.Set(registers.SP, postAddr)

	case decode.BlockXfer:
		l := bit(inst, 11)
		rb := int(extract(inst, 8, 3))
		rlist := extract(inst, 0, 8)

		total := uint32(bits.OnesCount32(rlist))
		base := f.Get(rb)

		// Writeback happens before the transfer loop, exactly as in
		// original_source/src/cpu/thumb.rs; with an empty list this is a
		// harmless Rb = Rb + 0 and the loop below runs zero times. See
		// SPEC_FULL.md §4.3 and DESIGN.md for both open questions this
		// resolves by literal reproduction.
		f.Set(rb, base+total*4)

		rem := rlist
		for i := uint32(0); i < total; i++ {
			reg := int(bits.TrailingZeros32(rem))
			idxAddr := base + i*4
			if l == 0 {
				var val uint32
				if i == 0 && reg == rb {
					val = base
				} else {
					val = f.Get(reg)
				}
				mem.Set32(idxAddr, val)
			} else {
				f.Set(reg, mem.Load32(idxAddr))
			}
			rem &^= 1 << uint(reg)
		}

	case decode.CondBranch:
		cond := uint8(extract(inst, 8, 4))
		offset := signExtend(extract(inst, 0, 8), 8)
		if f.CPSR.Cond(cond) {
			f.Set(registers.PC, pc+4+(offset<<1))
		}

	case decode.SoftwareInt:
		// Unreachable through Decode (see decode.matchOrder), kept for
		// completeness.
		result.Continue = false
		result.Err = gbaerrors.Errorf(gbaerrors.UnimplementedInstruction.String())

	case decode.Branch:
		offset := signExtend(extract(inst, 0, 11)<<1, 12)
		f.Set(registers.PC, pc+4+offset)

	case decode.LongBranch:
		h := bit(inst, 11)
		offset := extract(inst, 0, 11)
		if h == 0 {
			f.Set(registers.LR, pc+4+signExtend(offset<<12, 23))
		} else {
			f.Set(registers.PC, f.Get(registers.LR)+(offset<<1))
			f.Set(registers.LR, (pc+2)|1)
		}

	case decode.Undefined:
		result.Continue = false
		result.Err = gbaerrors.Errorf(gbaerrors.UndefinedInstruction.String())
	}

	return result
}
