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

// bit extracts a single bit from x at position n.
func bit(x uint32, n uint) uint32 {
	return (x >> n) & 1
}

// extract pulls length bits out of x starting at pos.
func extract(x uint32, pos, length uint) uint32 {
	return (x >> pos) & ((1 << length) - 1)
}

// signExtend treats the low `bits` bits of val as a two's-complement
// signed value and sign-extends it to the full 32 bits.
func signExtend(val uint32, bits uint) uint32 {
	shift := 32 - bits
	return uint32(int32(val<<shift) >> shift)
}
