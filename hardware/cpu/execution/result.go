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

import "github.com/arm7tdmi/gbacore/hardware/cpu/decode"

// Result records what a single Execute call did, for the CPU scheduler and
// for debugger introspection.
type Result struct {
	Form    decode.Form
	Address uint32

	// Continue mirrors spec.md §4.1: false iff the executor encountered
	// the Undefined form (or the deliberately unimplemented SoftwareInt
	// form, per §7).
	Continue bool

	// Err is set when Continue is false, carrying the curated error that
	// explains why.
	Err error
}

// Reset clears the result to its zero value.
func (r *Result) Reset() {
	*r = Result{}
}
