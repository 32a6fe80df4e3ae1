/*
 * pdk13 - Decoded instruction slot
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

// Package decoder translates raw 13-bit PDK13 ROM words into the decoded
// slot form the CPU core dispatches on.
package decoder

// Slot is the decoded form of one 13-bit instruction word: an opcode tag
// plus the operand fields the dispatcher needs. Word retains the original
// 13-bit value so LDSPTL/LDSPTH can recover its raw bits from ROM.
type Slot struct {
	Op   Op
	Addr uint8 // memory address, IO address, or immediate, depending on Op
	Bit  uint8 // bit index 0..7 for bit-test/set opcodes; ROM address bits 8..9 for GOTO/CALL
	Word uint16
}

// NopSlot is the default/zero decoded slot.
var NopSlot = Slot{Op: OpNop}

// ROMAddr reassembles the 10-bit ROM address used by GOTO/CALL from the
// slot's Addr (low 8 bits) and Bit (high 2 bits) fields, per the decoded
// slot's packing convention for jump/call targets.
func (s Slot) ROMAddr() uint16 {
	return uint16(s.Addr) | (uint16(s.Bit) << 8)
}
