/*
 * pdk13 - Disassembler tests
 *
 * Copyright 2026, PDK13 Emulator Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package disassembler

import (
	"strings"
	"testing"

	"github.com/cornwell-emu/pdk13/decoder"
)

func TestDisassembleNoOperandOpcode(t *testing.T) {
	got := Disassemble(decoder.Slot{Op: decoder.OpSwapA})
	if got != "SWAP A" {
		t.Fatalf("Disassemble(SWAP A) = %q, want %q", got, "SWAP A")
	}
}

func TestDisassembleMemoryOperand(t *testing.T) {
	got := Disassemble(decoder.Slot{Op: decoder.OpIncM, Addr: 0x2A})
	if !strings.Contains(got, "INC M") || !strings.Contains(got, "0x2A") {
		t.Fatalf("Disassemble(INC M, 0x2A) = %q, want mnemonic and address", got)
	}
}

func TestDisassembleBitOperand(t *testing.T) {
	got := Disassemble(decoder.Slot{Op: decoder.OpT0snMn, Addr: 0x0A, Bit: 5})
	if !strings.Contains(got, "0x0A.5") {
		t.Fatalf("Disassemble(T0SN M.n) = %q, want an address.bit operand", got)
	}
}

func TestDisassembleJumpTargetUsesROMAddress(t *testing.T) {
	slot := decoder.Slot{Op: decoder.OpGoto, Addr: 0x5A, Bit: 3}
	got := Disassemble(slot)
	if !strings.Contains(got, "0x35A") {
		t.Fatalf("Disassemble(GOTO) = %q, want ROM address 0x35A", got)
	}
}

func TestDisassembleROMProducesOneLinePerSlot(t *testing.T) {
	rom := []decoder.Slot{
		{Op: decoder.OpNop},
		{Op: decoder.OpMovAK, Addr: 7},
	}
	lines := DisassembleROM(rom)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "000:") || !strings.HasPrefix(lines[1], "001:") {
		t.Fatalf("lines = %v, want address-prefixed entries", lines)
	}
}
