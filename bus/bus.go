/*
 * pdk13 - Bus contract between the CPU core and the MCU shell
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

// Package bus defines the interface the CPU core uses to reach ROM, RAM and
// IO storage without knowing which concrete MCU shell backs it. The CPU
// never owns a Bus; one is passed in, by exclusive use, on every step: only
// one caller may be driving a given Bus implementation at a time, the same
// discipline the original Rust source enforced with the borrow checker.
package bus

import "github.com/cornwell-emu/pdk13/decoder"

// Bus is implemented by an MCU shell and consumed by the CPU core.
type Bus interface {
	ReadROM(addr uint16) decoder.Slot

	ReadIO(addr uint8) uint8
	WriteIO(addr uint8, value uint8)

	ReadRAM(addr uint8) uint8
	WriteRAM(addr uint8, value uint8)

	ReadTim16() uint16
	WriteTim16(value uint16)

	Reset()
	StopSys()
	StopExe()
	WdtReset()
}

// IO register addresses used by the derived helpers below.
const (
	ioFlags = 0x00
	ioSP    = 0x02
)

// Flag bit masks for the flags byte held at IO register 0x00. Defined here,
// rather than in pdkcpu, so both the CPU's ALU and the bus-level flag
// helpers below share one definition without an import cycle.
const (
	FlagZ  uint8 = 1 << 0
	FlagC  uint8 = 1 << 1
	FlagAC uint8 = 1 << 2
	FlagOV uint8 = 1 << 3
)

// ReadRAMWord and WriteRAMWord read/write a little-endian 16-bit word split
// across two consecutive RAM bytes, addr and addr+1 (mod RAM size).
func ReadRAMWord(b Bus, addr uint8) uint16 {
	lo := uint16(b.ReadRAM(addr))
	hi := uint16(b.ReadRAM(addr + 1))
	return lo | (hi << 8)
}

func WriteRAMWord(b Bus, addr uint8, value uint16) {
	b.WriteRAM(addr, uint8(value))
	b.WriteRAM(addr+1, uint8(value>>8))
}

// ReadSP / WriteSP alias the stack pointer, held at IO register 0x02.
func ReadSP(b Bus) uint8          { return b.ReadIO(ioSP) }
func WriteSP(b Bus, value uint8)  { b.WriteIO(ioSP, value) }

// ReadFlags / WriteFlags alias the flags byte, held at IO register 0x00.
func ReadFlags(b Bus) uint8         { return b.ReadIO(ioFlags) }
func WriteFlags(b Bus, value uint8) { b.WriteIO(ioFlags, value) }

// Per-flag accessors, expressed in terms of the flag masks above.
func IsZeroFlag(b Bus) bool    { return ReadFlags(b)&FlagZ != 0 }
func IsCarryFlag(b Bus) bool   { return ReadFlags(b)&FlagC != 0 }
func IsAuxCarryFlag(b Bus) bool { return ReadFlags(b)&FlagAC != 0 }
func IsOverflowFlag(b Bus) bool { return ReadFlags(b)&FlagOV != 0 }

func setFlagBit(b Bus, mask uint8, value bool) {
	f := ReadFlags(b)
	if value {
		f |= mask
	} else {
		f &^= mask
	}
	WriteFlags(b, f)
}

func SetZeroFlag(b Bus, v bool)     { setFlagBit(b, FlagZ, v) }
func SetCarryFlag(b Bus, v bool)    { setFlagBit(b, FlagC, v) }
func SetAuxCarryFlag(b Bus, v bool) { setFlagBit(b, FlagAC, v) }
func SetOverflowFlag(b Bus, v bool) { setFlagBit(b, FlagOV, v) }
