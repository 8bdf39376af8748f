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

package decode

// ARMForm identifies one of the 32-bit ARM instruction groups this core
// implements. spec.md §4.4 does not enumerate a fixed ARM form list the
// way it does for Thumb (§4.2); this is a conforming subset grounded on
// the forms directly analogous to the fully specified Thumb ones, per
// SPEC_FULL.md §4.4.
type ARMForm int

const (
	ARMDataProc ARMForm = iota
	ARMSingleXfer
	ARMBlockXfer
	ARMBranch
	ARMUndefined
)

// DecodeARM classifies a 32-bit ARM instruction word by its bits 27:26
// group, the coarse split the architecture itself uses.
func DecodeARM(word uint32) ARMForm {
	switch (word >> 26) & 0x3 {
	case 0b00:
		return ARMDataProc
	case 0b01:
		return ARMSingleXfer
	case 0b10:
		if word&(1<<25) == 0 {
			return ARMBlockXfer
		}
		return ARMBranch
	default: // 0b11: coprocessor / SWI, out of scope per spec.md §1
		return ARMUndefined
	}
}
