/*
 * pdk13 - Bus contract tests
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

package bus

import (
	"testing"

	"github.com/cornwell-emu/pdk13/decoder"
)

// fakeBus is a minimal Bus implementation backed by plain arrays, just
// enough to exercise the derived helpers above without pulling in the
// full mcu package.
type fakeBus struct {
	ram [64]uint8
	io  [32]uint8
}

func (b *fakeBus) ReadROM(uint16) decoder.Slot    { return decoder.Slot{} }
func (b *fakeBus) ReadIO(addr uint8) uint8        { return b.io[addr&0x1F] }
func (b *fakeBus) WriteIO(addr uint8, v uint8)    { b.io[addr&0x1F] = v }
func (b *fakeBus) ReadRAM(addr uint8) uint8       { return b.ram[addr&0x3F] }
func (b *fakeBus) WriteRAM(addr uint8, v uint8)   { b.ram[addr&0x3F] = v }
func (b *fakeBus) ReadTim16() uint16              { return 0 }
func (b *fakeBus) WriteTim16(uint16)              {}
func (b *fakeBus) Reset()                         {}
func (b *fakeBus) StopSys()                       {}
func (b *fakeBus) StopExe()                       {}
func (b *fakeBus) WdtReset()                      {}

func TestRAMWordRoundTripsLittleEndian(t *testing.T) {
	b := &fakeBus{}
	WriteRAMWord(b, 0x10, 0xBEEF)
	if got := b.ReadRAM(0x10); got != 0xEF {
		t.Fatalf("low byte = 0x%02X, want 0xEF", got)
	}
	if got := b.ReadRAM(0x11); got != 0xBE {
		t.Fatalf("high byte = 0x%02X, want 0xBE", got)
	}
	if got := ReadRAMWord(b, 0x10); got != 0xBEEF {
		t.Fatalf("ReadRAMWord = 0x%04X, want 0xBEEF", got)
	}
}

func TestRAMWordWrapsAtSpaceWidth(t *testing.T) {
	b := &fakeBus{}
	// Address 0x3F is the last byte of a 64-byte RAM; its high byte wraps
	// around to address 0.
	WriteRAMWord(b, 0x3F, 0xABCD)
	if got := b.ReadRAM(0x3F); got != 0xCD {
		t.Fatalf("low byte = 0x%02X, want 0xCD", got)
	}
	if got := b.ReadRAM(0x00); got != 0xAB {
		t.Fatalf("wrapped high byte = 0x%02X, want 0xAB", got)
	}
}

func TestSPAliasesIORegisterTwo(t *testing.T) {
	b := &fakeBus{}
	WriteSP(b, 0x20)
	if got := b.ReadIO(ioSP); got != 0x20 {
		t.Fatalf("IO[0x02] = 0x%02X, want 0x20", got)
	}
	if got := ReadSP(b); got != 0x20 {
		t.Fatalf("ReadSP() = 0x%02X, want 0x20", got)
	}
}

func TestFlagsAliasIORegisterZero(t *testing.T) {
	b := &fakeBus{}
	WriteFlags(b, 0xAA)
	if got := b.ReadIO(ioFlags); got != 0xAA {
		t.Fatalf("IO[0x00] = 0x%02X, want 0xAA", got)
	}
	if got := ReadFlags(b); got != 0xAA {
		t.Fatalf("ReadFlags() = 0x%02X, want 0xAA", got)
	}
}

func TestPerFlagAccessorsReadTheirBit(t *testing.T) {
	b := &fakeBus{}
	WriteFlags(b, FlagZ|FlagOV)
	if !IsZeroFlag(b) {
		t.Errorf("IsZeroFlag() = false, want true")
	}
	if IsCarryFlag(b) {
		t.Errorf("IsCarryFlag() = true, want false")
	}
	if IsAuxCarryFlag(b) {
		t.Errorf("IsAuxCarryFlag() = true, want false")
	}
	if !IsOverflowFlag(b) {
		t.Errorf("IsOverflowFlag() = false, want true")
	}
}

func TestPerFlagSettersPreserveOtherBits(t *testing.T) {
	b := &fakeBus{}
	WriteFlags(b, FlagZ)
	SetCarryFlag(b, true)
	if got := ReadFlags(b); got != FlagZ|FlagC {
		t.Fatalf("flags after SetCarryFlag(true) = 0x%02X, want 0x%02X", got, FlagZ|FlagC)
	}
	SetZeroFlag(b, false)
	if got := ReadFlags(b); got != FlagC {
		t.Fatalf("flags after SetZeroFlag(false) = 0x%02X, want 0x%02X", got, FlagC)
	}
	SetAuxCarryFlag(b, true)
	SetOverflowFlag(b, true)
	if got := ReadFlags(b); got != FlagC|FlagAC|FlagOV {
		t.Fatalf("flags = 0x%02X, want 0x%02X", got, FlagC|FlagAC|FlagOV)
	}
}
