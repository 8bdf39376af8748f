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

package errors_test

import (
	"testing"

	"github.com/arm7tdmi/gbacore/errors"
)

func TestErrorf(t *testing.T) {
	err := errors.Errorf("%s at %#010x", errors.UndefinedInstruction, uint32(0x1000))
	if got, want := err.Error(), "undefined instruction at 0x00001000"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	err := errors.Errorf(errors.UnimplementedInstruction.String())
	if !errors.IsAny(err) {
		t.Fatalf("expected curated error")
	}
	if !errors.Is(err, errors.UnimplementedInstruction.String()) {
		t.Fatalf("expected Is to match head")
	}
	if errors.Is(err, errors.UndefinedInstruction.String()) {
		t.Fatalf("did not expect Is to match unrelated head")
	}
}

func TestIsAnyNil(t *testing.T) {
	if errors.IsAny(nil) {
		t.Fatalf("nil error should not be curated")
	}
}
