package decoder

// Group masks and stamps, ported bit-for-bit from the group table: each
// group matches when (word & mask) == stamp. Mutually exclusive by
// construction, so match order only matters for the MISC group's fallback.
const (
	topBitsMask = 0x1FC0 // bits 6..12, used by MISC/XOR-IO/MOV-IO/MEM16

	xorIOStamp = 0x0040
	movIOStamp = 0x0080
	mem16Stamp = 0x00C0

	retImmMask  = 0x1F00 // bits 8..12
	retImmStamp = 0x0100

	memBitMask  = 0x1E00 // bits 9..12
	memBitStamp = 0x0200

	group3Mask     = 0x1C00 // bits 10..12
	memAndAccStamp = 0x0400
	memOnlyStamp   = 0x0800
	ioBitStamp     = 0x0C00

	group4Mask = 0x1800 // bits 11..12
	accImmStamp = 0x1000
	jumpStamp   = 0x1800
)

// miscTable maps the low 6 bits of a MISC-group word to its opcode; any
// key beyond the table's defined entries decodes as NOP.
var miscTable = [64]Op{
	0: OpNop, 1: OpLdsptl, 2: OpLdspth, 3: OpAddcA, 4: OpSubcA, 5: OpIzsnA,
	6: OpDzsnA, 7: OpPcaddA, 8: OpNotA, 9: OpNegA, 10: OpSrA, 11: OpSlA,
	12: OpSrcA, 13: OpSlcA, 14: OpSwapA, 15: OpWdreset, 16: OpPushaf,
	17: OpPopaf, 18: OpReset, 19: OpStopsys, 20: OpStopexe, 21: OpEngint,
	22: OpDisgint, 23: OpRet, 24: OpReti, 25: OpMul,
}

// mem16Table is keyed by (bit5<<1 | bit0).
var mem16Table = [4]Op{0: OpStt16M, 1: OpLdt16M, 2: OpIdxmMA, 3: OpIdxmAM}

// memBitTable is keyed by (bit8<<1 | bit4).
var memBitTable = [4]Op{0: OpSet0Mn, 1: OpSet1Mn, 2: OpT0snMn, 3: OpT1snMn}

// ioBitTable is keyed by (bit9<<1 | bit8).
var ioBitTable = [4]Op{0: OpSet0IOn, 1: OpSet1IOn, 2: OpT0snIOn, 3: OpT1snIOn}

// memAndAccTable is keyed by bits[9:6].
var memAndAccTable = [16]Op{
	0: OpAddMA, 1: OpSubMA, 2: OpAddcMA, 3: OpSubcMA,
	4: OpAndMA, 5: OpOrMA, 6: OpXorMA, 7: OpMovMA,
	8: OpAddAM, 9: OpSubAM, 10: OpAddcAM, 11: OpSubcAM,
	12: OpAndAM, 13: OpOrAM, 14: OpXorAM, 15: OpMovAM,
}

// memOnlyTable is keyed by bits[9:6]; key 15 is reserved and decodes as NOP.
var memOnlyTable = [16]Op{
	0: OpAddcM, 1: OpSubcM, 2: OpIzsnM, 3: OpDzsnM, 4: OpIncM, 5: OpDecM,
	6: OpClearM, 7: OpXchM, 8: OpNotM, 9: OpNegM, 10: OpSrM, 11: OpSlM,
	12: OpSrcM, 13: OpSlcM, 14: OpCeqsnAM, 15: OpNop,
}

// accImmTable is keyed by bits[10:8]; key 7 is reserved and decodes as NOP.
var accImmTable = [8]Op{
	0: OpAddAK, 1: OpSubAK, 2: OpCeqsnAK, 3: OpAndAK,
	4: OpOrAK, 5: OpXorAK, 6: OpMovAK, 7: OpNop,
}

// Decode translates a raw 13-bit instruction word into a Slot. Words
// outside 0..=0x1FFF are rejected. A word that matches no group, or whose
// narrower opcode key falls outside a group's defined range, decodes as
// NOP per the normalization rule.
func Decode(word uint16) (Slot, error) {
	if word > 0x1FFF {
		return Slot{}, &Error{Kind: TooBigWord, Word: word}
	}

	switch {
	case word&topBitsMask == 0:
		return Slot{Op: miscTable[word&0x3F], Word: word}, nil

	case word&topBitsMask == xorIOStamp:
		return Slot{Op: OpXorIOA, Addr: uint8(word & 0x1F), Word: word}, nil

	case word&topBitsMask == movIOStamp:
		op := OpMovIOA
		if word&0x20 != 0 {
			op = OpMovAIO
		}
		return Slot{Op: op, Addr: uint8(word & 0x1F), Word: word}, nil

	case word&topBitsMask == mem16Stamp:
		key := ((word >> 5) & 1 << 1) | (word & 1)
		return Slot{Op: mem16Table[key], Addr: uint8(word & 0b11110), Word: word}, nil

	case word&retImmMask == retImmStamp:
		return Slot{Op: OpRetK, Addr: uint8(word & 0xFF), Word: word}, nil

	case word&memBitMask == memBitStamp:
		key := ((word >> 8) & 1 << 1) | ((word >> 4) & 1)
		return Slot{
			Op:   memBitTable[key],
			Addr: uint8(word & 0xF),
			Bit:  uint8((word >> 5) & 0b111),
			Word: word,
		}, nil

	case word&group3Mask == memAndAccStamp:
		key := (word >> 6) & 0xF
		return Slot{Op: memAndAccTable[key], Addr: uint8(word & 0x3F), Word: word}, nil

	case word&group3Mask == memOnlyStamp:
		key := (word >> 6) & 0xF
		return Slot{Op: memOnlyTable[key], Addr: uint8(word & 0x3F), Word: word}, nil

	case word&group3Mask == ioBitStamp:
		key := ((word >> 9) & 1 << 1) | ((word >> 8) & 1)
		return Slot{
			Op:   ioBitTable[key],
			Addr: uint8(word & 0x1F),
			Bit:  uint8((word >> 5) & 0b111),
			Word: word,
		}, nil

	case word&group4Mask == accImmStamp:
		key := (word >> 8) & 0b111
		return Slot{Op: accImmTable[key], Addr: uint8(word & 0xFF), Word: word}, nil

	case word&group4Mask == jumpStamp:
		op := OpGoto
		if word&0x400 != 0 {
			op = OpCall
		}
		addr := word & 0x3FF
		return Slot{Op: op, Addr: uint8(addr & 0xFF), Bit: uint8(addr >> 8), Word: word}, nil

	default:
		return Slot{Op: OpNop, Word: word}, nil
	}
}
