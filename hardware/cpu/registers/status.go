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

package registers

import "strings"

// Status is the CPSR/SPSR: condition flags, the Thumb-mode select bit, and
// the processor mode field.
type Status struct {
	N, Z, C, V bool
	T          bool
	Mode       Mode
}

// NewStatus returns the CPSR reset value: System mode, ARM state, flags
// clear (0x1F).
func NewStatus() Status {
	var s Status
	s.Load(0x1F)
	return s
}

// Label returns the canonical name for the status register.
func (s Status) Label() string {
	return "CPSR"
}

func (s Status) String() string {
	var b strings.Builder
	flag := func(set bool, c rune) {
		if set {
			b.WriteRune(c)
		} else {
			b.WriteRune('-')
		}
	}
	flag(s.N, 'N')
	flag(s.Z, 'Z')
	flag(s.C, 'C')
	flag(s.V, 'V')
	if s.T {
		b.WriteString(" T ")
	} else {
		b.WriteString(" A ")
	}
	b.WriteString(s.Mode.String())
	return b.String()
}

// Value packs the status flags into the bit layout spec.md §3 describes:
// N,Z,C,V in bits 31..28, T in bit 5, M in bits 4..0.
func (s Status) Value() uint32 {
	var v uint32
	if s.N {
		v |= 1 << 31
	}
	if s.Z {
		v |= 1 << 30
	}
	if s.C {
		v |= 1 << 29
	}
	if s.V {
		v |= 1 << 28
	}
	if s.T {
		v |= 1 << 5
	}
	v |= uint32(s.Mode) & 0x1F
	return v
}

// Load unpacks v into the status flags using the same bit layout as Value.
func (s *Status) Load(v uint32) {
	s.N = v&(1<<31) != 0
	s.Z = v&(1<<30) != 0
	s.C = v&(1<<29) != 0
	s.V = v&(1<<28) != 0
	s.T = v&(1<<5) != 0
	s.Mode = Mode(v & 0x1F)
}

// SetFlags applies the common Thumb/ARM flag-update contract: N = sign of
// res, Z = (res == 0), C = c, V = v. Other state is untouched.
func (s *Status) SetFlags(res uint32, v, c bool) {
	s.N = res&0x80000000 != 0
	s.Z = res == 0
	s.C = c
	s.V = v
}

// Cond evaluates a 4-bit ARM condition code against the current flags.
// Condition 0xE is "always". Condition 0xF is the reserved NV encoding;
// original_source's condition evaluator is not present in the retrieval
// pack, so this treats it as "never", the standard ARMv4 documented
// meaning of NV (see DESIGN.md).
func (s Status) Cond(cond uint8) bool {
	switch cond & 0xF {
	case 0x0: // EQ
		return s.Z
	case 0x1: // NE
		return !s.Z
	case 0x2: // CS/HS
		return s.C
	case 0x3: // CC/LO
		return !s.C
	case 0x4: // MI
		return s.N
	case 0x5: // PL
		return !s.N
	case 0x6: // VS
		return s.V
	case 0x7: // VC
		return !s.V
	case 0x8: // HI
		return s.C && !s.Z
	case 0x9: // LS
		return !s.C || s.Z
	case 0xA: // GE
		return s.N == s.V
	case 0xB: // LT
		return s.N != s.V
	case 0xC: // GT
		return !s.Z && s.N == s.V
	case 0xD: // LE
		return s.Z || s.N != s.V
	case 0xE: // AL
		return true
	default: // 0xF, NV
		return false
	}
}
