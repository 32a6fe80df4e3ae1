/*
 * pdk13 - ALU flag arithmetic
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

package pdkcpu

import "github.com/cornwell-emu/pdk13/bus"

// Flag bit masks, re-exported from bus for convenience in ALU code.
const (
	FlagZ  = bus.FlagZ
	FlagC  = bus.FlagC
	FlagAC = bus.FlagAC
	FlagOV = bus.FlagOV

	flagsArithMask = FlagZ | FlagC | FlagAC | FlagOV
)

// Z80-style auxiliary-carry / overflow lookup tables, indexed by a value
// built from bits 3 and 7 of the two operands and the result.
var (
	acAddTable = [8]uint8{0, FlagAC, FlagAC, FlagAC, 0, 0, 0, FlagAC}
	acSubTable = [8]uint8{0, 0, FlagAC, 0, FlagAC, 0, FlagAC, FlagAC}

	ovAddTable = [8]uint8{0, 0, 0, FlagOV, FlagOV, 0, 0, 0}
	ovSubTable = [8]uint8{0, FlagOV, 0, 0, 0, 0, FlagOV, 0}
)

func flagsLookupIndex(a, b, result uint8) uint8 {
	return ((a & 0x88) >> 3) | ((b & 0x88) >> 2) | ((result & 0x88) >> 1)
}

// Add computes acc + value with no carry-in.
func Add(acc, value, oldFlags uint8) (uint8, uint8) {
	return addImpl(acc, value, oldFlags, 0)
}

// Addc computes acc + value + the current carry flag's bit value.
func Addc(acc, value, oldFlags uint8) (uint8, uint8) {
	carry := (oldFlags & FlagC) >> 1
	return addImpl(acc, value, oldFlags, carry)
}

// Sub computes acc - value with no borrow-in.
func Sub(acc, value, oldFlags uint8) (uint8, uint8) {
	return subImpl(acc, value, oldFlags, 0)
}

// Subc computes acc - value - the current carry flag's bit value.
func Subc(acc, value, oldFlags uint8) (uint8, uint8) {
	carry := (oldFlags & FlagC) >> 1
	return subImpl(acc, value, oldFlags, carry)
}

func addImpl(acc, value, oldFlags, carry uint8) (uint8, uint8) {
	flags := oldFlags &^ flagsArithMask
	wide := uint16(acc) + uint16(value) + uint16(carry)
	result := uint8(wide)
	idx := flagsLookupIndex(acc, value, result)
	if wide > 0xFF {
		flags |= FlagC
	}
	if result == 0 {
		flags |= FlagZ
	}
	flags |= ovAddTable[idx>>4]
	flags |= acAddTable[idx&0x07]
	return result, flags
}

func subImpl(acc, value, oldFlags, carry uint8) (uint8, uint8) {
	flags := oldFlags &^ flagsArithMask
	wide := uint16(acc) - uint16(value) - uint16(carry)
	result := uint8(wide)
	idx := flagsLookupIndex(acc, value, result)
	if wide > 0xFF {
		flags |= FlagC
	}
	if result == 0 {
		flags |= FlagZ
	}
	flags |= ovSubTable[idx>>4]
	flags |= acSubTable[idx&0x07]
	return result, flags
}

// And, Or, Xor only ever touch Z; C/AC/OV are preserved.
func And(acc, value, flags uint8) (uint8, uint8) {
	acc &= value
	return acc, setZ(flags, acc == 0)
}

func Or(acc, value, flags uint8) (uint8, uint8) {
	acc |= value
	return acc, setZ(flags, acc == 0)
}

func Xor(acc, value, flags uint8) (uint8, uint8) {
	acc ^= value
	return acc, setZ(flags, acc == 0)
}

// Mov sets Z from the source value's zeroness, not the (discarded) destination.
func Mov(value, flags uint8) (uint8, uint8) {
	return value, setZ(flags, value == 0)
}

func Not(acc, flags uint8) (uint8, uint8) {
	acc = ^acc
	return acc, setZ(flags, acc == 0)
}

func Neg(acc, flags uint8) (uint8, uint8) {
	acc = ^acc + 1
	return acc, setZ(flags, acc == 0)
}

// Sr, Sl, Src, Slc only ever touch C; Z keeps its prior value in this model.
func Sr(acc, flags uint8) (uint8, uint8) {
	flags = setC(flags, acc&0x01 != 0)
	return acc >> 1, flags
}

func Sl(acc, flags uint8) (uint8, uint8) {
	flags = setC(flags, acc&0x80 != 0)
	return acc << 1, flags
}

func Src(acc, flags uint8) (uint8, uint8) {
	head := (flags & FlagC) >> 1 << 7
	flags = setC(flags, acc&0x01 != 0)
	return (acc >> 1) | head, flags
}

func Slc(acc, flags uint8) (uint8, uint8) {
	tail := (flags & FlagC) >> 1
	flags = setC(flags, acc&0x80 != 0)
	return (acc << 1) | tail, flags
}

func setZ(flags uint8, zero bool) uint8 {
	if zero {
		return flags | FlagZ
	}
	return flags &^ FlagZ
}

func setC(flags uint8, carry bool) uint8 {
	if carry {
		return flags | FlagC
	}
	return flags &^ FlagC
}
