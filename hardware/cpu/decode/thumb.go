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

// Package decode classifies Thumb and ARM instruction words into one of a
// fixed set of forms via priority-ordered mask/test patterns.
package decode

// Form identifies one of the twenty Thumb instruction shapes.
type Form int

// The twenty Thumb forms, in their decode priority order.
const (
	Branch Form = iota
	AddSub
	AluOp
	Shifted
	ImmOp
	HiRegBx
	PcLoad
	SingleXferR
	HwSgnXfer
	SingleXferI
	HwXferI
	SpXfer
	LoadAddr
	SpAdd
	PushPop
	BlockXfer
	CondBranch
	SoftwareInt
	LongBranch
	Undefined
)

// String names the form.
func (f Form) String() string {
	switch f {
	case Branch:
		return "Branch"
	case AddSub:
		return "AddSub"
	case AluOp:
		return "AluOp"
	case Shifted:
		return "Shifted"
	case ImmOp:
		return "ImmOp"
	case HiRegBx:
		return "HiRegBx"
	case PcLoad:
		return "PcLoad"
	case SingleXferR:
		return "SingleXferR"
	case HwSgnXfer:
		return "HwSgnXfer"
	case SingleXferI:
		return "SingleXferI"
	case HwXferI:
		return "HwXferI"
	case SpXfer:
		return "SpXfer"
	case LoadAddr:
		return "LoadAddr"
	case SpAdd:
		return "SpAdd"
	case PushPop:
		return "PushPop"
	case BlockXfer:
		return "BlockXfer"
	case CondBranch:
		return "CondBranch"
	case SoftwareInt:
		return "SoftwareInt"
	case LongBranch:
		return "LongBranch"
	default:
		return "Undefined"
	}
}

type pattern struct {
	form Form
	mask uint16
	test uint16
}

// matchOrder is the fixed priority order spec.md §4.2/§6.2 requires.
// (mask, test) pairs are the bit-exact external contract.
//
// CondBranch's mask (0xf000) is strictly broader than SoftwareInt's
// (0xff00) and is tested first, so any word with a cond nibble of 0xF
// matches CondBranch before SoftwareInt is ever tried. SoftwareInt is
// therefore unreachable through Decode -- this is a faithful reproduction
// of original_source/src/cpu/thumb.rs's own INST_MATCH_ORDER, not a defect
// introduced here (see DESIGN.md).
var matchOrder = [20]pattern{
	{Branch, 0xf800, 0xe000},
	{AddSub, 0xf800, 0x1800},
	{AluOp, 0xfc00, 0x4000},
	{Shifted, 0xe000, 0x0000},
	{ImmOp, 0xe000, 0x2000},
	{HiRegBx, 0xfc00, 0x4400},
	{PcLoad, 0xf800, 0x4800},
	{SingleXferR, 0xf200, 0x5000},
	{HwSgnXfer, 0xf200, 0x5200},
	{SingleXferI, 0xe000, 0x6000},
	{HwXferI, 0xf000, 0x8000},
	{SpXfer, 0xf000, 0x9000},
	{LoadAddr, 0xf000, 0xa000},
	{SpAdd, 0xff00, 0xb000},
	{PushPop, 0xf600, 0xb400},
	{BlockXfer, 0xf000, 0xc000},
	{CondBranch, 0xf000, 0xd000},
	{SoftwareInt, 0xff00, 0xdf00},
	{LongBranch, 0xf000, 0xf000},
	{Undefined, 0x0000, 0x0000},
}

// Decode classifies a 16-bit Thumb instruction word. It is total: every
// word maps to exactly one form, Undefined if nothing else matches.
func Decode(word uint16) Form {
	for _, p := range matchOrder {
		if word&p.mask == p.test {
			return p.form
		}
	}
	return Undefined
}
