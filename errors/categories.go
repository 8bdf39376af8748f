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

package errors

// Errno identifies an error category. Values are grouped by subsystem.
type Errno int

// list of error numbers
const (
	// CPU
	UnimplementedInstruction Errno = iota
	UndefinedInstruction
	NullInstruction
	ProgramCounterCycled
	InvalidOperationMidInstruction

	// Memory
	UnreadableAddress
	UnwritableAddress
	UnrecognisedAddress

	// Debugger / tooling
	SymbolsFileCannotOpen
	ScriptFileCannotOpen
	InvalidTarget
	CommandError
	InputEmpty
)

// String names the category, for diagnostic output.
func (e Errno) String() string {
	switch e {
	case UnimplementedInstruction:
		return "unimplemented instruction"
	case UndefinedInstruction:
		return "undefined instruction"
	case NullInstruction:
		return "null instruction"
	case ProgramCounterCycled:
		return "program counter cycled"
	case InvalidOperationMidInstruction:
		return "invalid operation mid instruction"
	case UnreadableAddress:
		return "unreadable address"
	case UnwritableAddress:
		return "unwritable address"
	case UnrecognisedAddress:
		return "unrecognised address"
	case SymbolsFileCannotOpen:
		return "symbols file cannot open"
	case ScriptFileCannotOpen:
		return "script file cannot open"
	case InvalidTarget:
		return "invalid target"
	case CommandError:
		return "command error"
	case InputEmpty:
		return "input empty"
	}
	return "unknown error"
}
