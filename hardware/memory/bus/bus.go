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

// Package bus defines the Memory collaborator the CPU core is driven
// against. It is grounded on the teacher's hardware/memory/bus.CPUBus
// interface, widened from 16-bit to 32-bit addressing and from
// byte-at-a-time to the three transfer widths the ARM7TDMI needs.
package bus

// Bus is the memory management unit contract consumed by the CPU core.
// Alignment is the caller's responsibility -- the executor pre-masks
// addresses where the architecture requires it (& ~1 for halfword, & ~3
// for word); implementations need not re-check alignment and must accept
// any address in 0..2^32, returning some defined value rather than
// faulting (the core does not define a memory-fault error kind).
type Bus interface {
	Load8(addr uint32) uint8
	Load16(addr uint32) uint16
	Load32(addr uint32) uint32

	Set8(addr uint32, v uint8)
	Set16(addr uint32, v uint16)
	Set32(addr uint32, v uint32)
}
