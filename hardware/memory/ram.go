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

// Package memory provides a flat RAM implementation of bus.Bus, used by
// the cmd/ front ends and by the core's own tests in place of the full
// GBA memory map (out of this core's scope; see SPEC_FULL.md §1).
package memory

import "encoding/binary"

// Ram is a flat byte-addressable block of memory implementing bus.Bus.
// Addresses outside its bounds wrap modulo its size -- open-bus behaviour
// is left to whatever the host wires up instead; a flat RAM has no
// unmapped region of its own.
type Ram struct {
	data []byte
}

// NewRam allocates a zeroed Ram of the given size in bytes.
func NewRam(size int) *Ram {
	return &Ram{data: make([]byte, size)}
}

// NewRamWithData allocates a Ram of the given size and copies prog into
// the start of it, mirroring original_source's Ram::new_with_data used to
// load a test program at address 0.
func NewRamWithData(size int, prog []byte) *Ram {
	r := NewRam(size)
	copy(r.data, prog)
	return r
}

func (r *Ram) index(addr uint32) int {
	return int(addr) % len(r.data)
}

// Load8 reads a byte.
func (r *Ram) Load8(addr uint32) uint8 {
	return r.data[r.index(addr)]
}

// Load16 reads a little-endian halfword.
func (r *Ram) Load16(addr uint32) uint16 {
	i := r.index(addr)
	if i+2 > len(r.data) {
		return uint16(r.data[i])
	}
	return binary.LittleEndian.Uint16(r.data[i : i+2])
}

// Load32 reads a little-endian word.
func (r *Ram) Load32(addr uint32) uint32 {
	i := r.index(addr)
	if i+4 > len(r.data) {
		var buf [4]byte
		copy(buf[:], r.data[i:])
		return binary.LittleEndian.Uint32(buf[:])
	}
	return binary.LittleEndian.Uint32(r.data[i : i+4])
}

// Set8 writes a byte.
func (r *Ram) Set8(addr uint32, v uint8) {
	r.data[r.index(addr)] = v
}

// Set16 writes a little-endian halfword.
func (r *Ram) Set16(addr uint32, v uint16) {
	i := r.index(addr)
	if i+2 > len(r.data) {
		return
	}
	binary.LittleEndian.PutUint16(r.data[i:i+2], v)
}

// Set32 writes a little-endian word.
func (r *Ram) Set32(addr uint32, v uint32) {
	i := r.index(addr)
	if i+4 > len(r.data) {
		return
	}
	binary.LittleEndian.PutUint32(r.data[i:i+4], v)
}
