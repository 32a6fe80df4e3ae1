/*
 * pdk13 - Disassembler
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
	"fmt"

	"github.com/cornwell-emu/pdk13/decoder"
)

// operandShape classifies how a decoded slot's operands are rendered,
// mirroring the opType-driven formatting switch of the S/370 disassembler
// this package started life as — only the shapes are far simpler here,
// since PDK13 instructions carry at most a memory/IO address plus a bit
// index, never a full RX/RS/SS addressing mode.
const (
	shapeNone = iota
	shapeAddr
	shapeAddrBit
	shapeImm
	shapeROM
)

var shapeTable = [decoder.OpCount]int{
	decoder.OpXorIOA:  shapeAddr,
	decoder.OpMovIOA:  shapeAddr,
	decoder.OpMovAIO:  shapeAddr,
	decoder.OpT0snIOn: shapeAddrBit,
	decoder.OpT1snIOn: shapeAddrBit,
	decoder.OpSet0IOn: shapeAddrBit,
	decoder.OpSet1IOn: shapeAddrBit,

	decoder.OpStt16M: shapeAddr,
	decoder.OpLdt16M: shapeAddr,
	decoder.OpIdxmMA: shapeAddr,
	decoder.OpIdxmAM: shapeAddr,

	decoder.OpRetK:    shapeImm,
	decoder.OpAddAK:   shapeImm,
	decoder.OpSubAK:   shapeImm,
	decoder.OpCeqsnAK: shapeImm,
	decoder.OpAndAK:   shapeImm,
	decoder.OpOrAK:    shapeImm,
	decoder.OpXorAK:   shapeImm,
	decoder.OpMovAK:   shapeImm,

	decoder.OpT0snMn: shapeAddrBit,
	decoder.OpT1snMn: shapeAddrBit,
	decoder.OpSet0Mn: shapeAddrBit,
	decoder.OpSet1Mn: shapeAddrBit,

	decoder.OpAddMA:  shapeAddr,
	decoder.OpSubMA:  shapeAddr,
	decoder.OpAddcMA: shapeAddr,
	decoder.OpSubcMA: shapeAddr,
	decoder.OpAndMA:  shapeAddr,
	decoder.OpOrMA:   shapeAddr,
	decoder.OpXorMA:  shapeAddr,
	decoder.OpMovMA:  shapeAddr,

	decoder.OpAddAM:  shapeAddr,
	decoder.OpSubAM:  shapeAddr,
	decoder.OpAddcAM: shapeAddr,
	decoder.OpSubcAM: shapeAddr,
	decoder.OpAndAM:  shapeAddr,
	decoder.OpOrAM:   shapeAddr,
	decoder.OpXorAM:  shapeAddr,
	decoder.OpMovAM:  shapeAddr,

	decoder.OpAddcM:  shapeAddr,
	decoder.OpSubcM:  shapeAddr,
	decoder.OpIzsnM:  shapeAddr,
	decoder.OpDzsnM:  shapeAddr,
	decoder.OpIncM:   shapeAddr,
	decoder.OpDecM:   shapeAddr,
	decoder.OpClearM: shapeAddr,
	decoder.OpXchM:   shapeAddr,
	decoder.OpNotM:   shapeAddr,
	decoder.OpNegM:   shapeAddr,
	decoder.OpSrM:    shapeAddr,
	decoder.OpSlM:    shapeAddr,
	decoder.OpSrcM:   shapeAddr,
	decoder.OpSlcM:   shapeAddr,
	decoder.OpCeqsnAM: shapeAddr,

	decoder.OpGoto: shapeROM,
	decoder.OpCall: shapeROM,
}

// Disassemble renders a decoded slot as a mnemonic-plus-operands line, the
// way it would appear in a listing keyed by ROM address.
func Disassemble(slot decoder.Slot) string {
	mnemonic := slot.Op.String()

	switch shapeTable[slot.Op] {
	case shapeAddr:
		return fmt.Sprintf("%-10s 0x%02X", mnemonic, slot.Addr)
	case shapeAddrBit:
		return fmt.Sprintf("%-10s 0x%02X.%d", mnemonic, slot.Addr, slot.Bit)
	case shapeImm:
		return fmt.Sprintf("%-10s 0x%02X", mnemonic, slot.Addr)
	case shapeROM:
		return fmt.Sprintf("%-10s 0x%03X", mnemonic, slot.ROMAddr())
	default:
		return mnemonic
	}
}

// DisassembleROM renders every slot of a ROM image as "addr: mnemonic"
// lines, in address order.
func DisassembleROM(rom []decoder.Slot) []string {
	lines := make([]string, len(rom))
	for addr, slot := range rom {
		lines[addr] = fmt.Sprintf("%03X: %s", addr, Disassemble(slot))
	}
	return lines
}
