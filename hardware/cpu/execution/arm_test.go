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

package execution_test

import (
	"testing"

	"github.com/arm7tdmi/gbacore/hardware/cpu/execution"
	"github.com/arm7tdmi/gbacore/hardware/cpu/registers"
	"github.com/arm7tdmi/gbacore/hardware/memory"
)

// armDataProc builds a data-processing word with an immediate-rotate
// operand2, the form exercised below; rotate is the encoded 4-bit field
// (actual rotation is rotate*2).
func armDataProc(cond, opcode, s, rn, rd, rotate, imm uint32) uint32 {
	return cond<<28 | 1<<25 | opcode<<21 | s<<20 | rn<<16 | rd<<12 | rotate<<8 | imm
}

func armSingleXfer(cond, p, u, b, w, l, rn, rd, offset uint32) uint32 {
	return cond<<28 | 1<<26 | p<<24 | u<<23 | b<<22 | w<<21 | l<<20 | rn<<16 | rd<<12 | offset
}

func armBlockXfer(cond, p, u, w, l, rn, rlist uint32) uint32 {
	return cond<<28 | 1<<27 | p<<24 | u<<23 | w<<21 | l<<20 | rn<<16 | rlist
}

func armBranch(cond, l uint32, offset int32) uint32 {
	return cond<<28 | 0x5<<25 | l<<24 | (uint32(offset)>>2)&0xFFFFFF
}

const alwaysCond = 0xE

func TestExecuteARMDataProc(t *testing.T) {
	// ADD R2, R0, #15, S=1
	word := armDataProc(alwaysCond, 0x4, 1, 0, 2, 0, 15)
	mem := memory.NewRamWithData(0x10, encodeARM(word))

	f := registers.NewFile()
	f.Set(0, 10)

	exec := execution.New()
	res := exec.ExecuteARM(f, mem)

	if !res.Continue {
		t.Fatalf("expected Continue, got err %v", res.Err)
	}
	if got := f.Get(2); got != 25 {
		t.Errorf("R2 = %d, want 25", got)
	}
	if f.Get(registers.PC) != 4 {
		t.Errorf("PC = %#x, want 4", f.Get(registers.PC))
	}
}

func TestExecuteARMDataProcCMPDoesNotWriteRd(t *testing.T) {
	// CMP R0, #10, S implied by the opcode
	word := armDataProc(alwaysCond, 0xA, 1, 0, 5, 0, 10)
	mem := memory.NewRamWithData(0x10, encodeARM(word))

	f := registers.NewFile()
	f.Set(0, 10)
	f.Set(5, 0xAAAAAAAA)

	exec := execution.New()
	exec.ExecuteARM(f, mem)

	if got := f.Get(5); got != 0xAAAAAAAA {
		t.Errorf("CMP must not write Rd, got R5=%#x", got)
	}
	if !f.CPSR.Z {
		t.Errorf("expected Z set from CMP R0,#10 with R0==10")
	}
}

func TestExecuteARMConditionGate(t *testing.T) {
	// MOVEQ R0, #1 -- should not execute unless Z is set.
	word := armDataProc(0x0, 0xD, 0, 0, 0, 0, 1)
	mem := memory.NewRamWithData(0x10, encodeARM(word))

	f := registers.NewFile()
	exec := execution.New()
	exec.ExecuteARM(f, mem)

	if f.Get(0) != 0 {
		t.Errorf("MOVEQ executed despite Z clear, R0=%d", f.Get(0))
	}
}

func TestExecuteARMSingleXfer(t *testing.T) {
	// STR R1, [R0, #4]; LDR R2, [R0, #4]
	str := armSingleXfer(alwaysCond, 1, 1, 0, 0, 0, 0, 1, 4)
	ldr := armSingleXfer(alwaysCond, 1, 1, 0, 0, 1, 0, 2, 4)
	mem := memory.NewRamWithData(0x20, encodeARM(str, ldr))

	f := registers.NewFile()
	f.Set(0, 0x10)
	f.Set(1, 0xCAFEBABE)

	exec := execution.New()
	exec.ExecuteARM(f, mem)
	exec.ExecuteARM(f, mem)

	if got := f.Get(2); got != 0xCAFEBABE {
		t.Errorf("R2 = %#x, want 0xcafebabe", got)
	}
}

func TestExecuteARMBlockXferPushPop(t *testing.T) {
	// STMDB R13!, {R0,R1} (push); LDMIA R13!, {R0,R1} (pop)
	push := armBlockXfer(alwaysCond, 1, 0, 1, 0, registers.SP, 0x3)
	pop := armBlockXfer(alwaysCond, 0, 1, 1, 1, registers.SP, 0x3)
	mem := memory.NewRamWithData(0x100, encodeARM(push, pop))

	f := registers.NewFile()
	f.SetBanked(f.Mode(), registers.SP, 0x80)
	f.Set(0, 0x1111)
	f.Set(1, 0x2222)

	exec := execution.New()
	exec.ExecuteARM(f, mem)

	if got := f.Get(registers.SP); got != 0x78 {
		t.Errorf("SP after push = %#x, want 0x78", got)
	}

	f.Set(0, 0)
	f.Set(1, 0)
	exec.ExecuteARM(f, mem)

	if f.Get(0) != 0x1111 || f.Get(1) != 0x2222 {
		t.Errorf("pop did not restore R0/R1: R0=%#x R1=%#x", f.Get(0), f.Get(1))
	}
	if got := f.Get(registers.SP); got != 0x80 {
		t.Errorf("SP after pop = %#x, want 0x80", got)
	}
}

func TestExecuteARMBranchWithLink(t *testing.T) {
	word := armBranch(alwaysCond, 1, 8)
	mem := memory.NewRamWithData(0x20, encodeARM(word))

	f := registers.NewFile()
	exec := execution.New()
	res := exec.ExecuteARM(f, mem)

	if !res.Continue {
		t.Fatalf("expected Continue, got err %v", res.Err)
	}
	if got, want := f.Get(registers.LR), uint32(4); got != want {
		t.Errorf("LR = %#x, want %#x", got, want)
	}
	if got, want := f.Get(registers.PC), uint32(0+8+8); got != want {
		t.Errorf("PC = %#x, want %#x", got, want)
	}
}

func TestExecuteARMUndefined(t *testing.T) {
	// coprocessor space with the AL condition, so the condition gate passes
	mem := memory.NewRamWithData(0x10, encodeARM(0xEE000000))

	f := registers.NewFile()
	exec := execution.New()
	res := exec.ExecuteARM(f, mem)

	if res.Continue {
		t.Fatalf("expected Continue=false on an ARMUndefined word")
	}
	if res.Err == nil {
		t.Errorf("expected a non-nil Err on ARMUndefined")
	}
}

func encodeARM(words ...uint32) []byte {
	buf := make([]byte, len(words)*4)
	for i, w := range words {
		buf[i*4+0] = byte(w)
		buf[i*4+1] = byte(w >> 8)
		buf[i*4+2] = byte(w >> 16)
		buf[i*4+3] = byte(w >> 24)
	}
	return buf
}
