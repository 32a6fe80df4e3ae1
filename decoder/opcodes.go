package decoder

// Op is the closed set of PDK13 opcode tags a decoded slot can carry.
// Values are assigned densely per §4.2.1's groupings; Nop is always zero so
// the default Slot is a harmless no-op.
type Op uint8

const (
	OpNop Op = iota

	// Miscellaneous, no operand.
	OpLdsptl
	OpLdspth
	OpAddcA
	OpSubcA
	OpIzsnA
	OpDzsnA
	OpPcaddA
	OpNotA
	OpNegA
	OpSrA
	OpSlA
	OpSrcA
	OpSlcA
	OpSwapA
	OpWdreset
	OpPushaf
	OpPopaf
	OpReset
	OpStopsys
	OpStopexe
	OpEngint
	OpDisgint
	OpRet
	OpReti
	OpMul

	// IO-register-addressed.
	OpXorIOA
	OpMovIOA
	OpMovAIO
	OpT0snIOn
	OpT1snIOn
	OpSet0IOn
	OpSet1IOn

	// 16-bit memory.
	OpStt16M
	OpLdt16M
	OpIdxmMA
	OpIdxmAM

	// Immediate.
	OpRetK
	OpAddAK
	OpSubAK
	OpCeqsnAK
	OpAndAK
	OpOrAK
	OpXorAK
	OpMovAK

	// Memory bit ops.
	OpT0snMn
	OpT1snMn
	OpSet0Mn
	OpSet1Mn

	// Memory-and-accumulator ALU, memory destination.
	OpAddMA
	OpSubMA
	OpAddcMA
	OpSubcMA
	OpAndMA
	OpOrMA
	OpXorMA
	OpMovMA

	// Memory-and-accumulator ALU, accumulator destination.
	OpAddAM
	OpSubAM
	OpAddcAM
	OpSubcAM
	OpAndAM
	OpOrAM
	OpXorAM
	OpMovAM

	// Memory-only ALU.
	OpAddcM
	OpSubcM
	OpIzsnM
	OpDzsnM
	OpIncM
	OpDecM
	OpClearM
	OpXchM
	OpNotM
	OpNegM
	OpSrM
	OpSlM
	OpSrcM
	OpSlcM
	OpCeqsnAM

	// Control flow.
	OpGoto
	OpCall

	// OpCount is the number of defined opcode tags, including Nop; useful
	// for sizing dispatch tables keyed by Op.
	OpCount
)

// names backs Op.String for disassembly and log output.
var names = [OpCount]string{
	OpNop:     "NOP",
	OpLdsptl:  "LDSPTL",
	OpLdspth:  "LDSPTH",
	OpAddcA:   "ADDC A",
	OpSubcA:   "SUBC A",
	OpIzsnA:   "IZSN A",
	OpDzsnA:   "DZSN A",
	OpPcaddA:  "PCADD A",
	OpNotA:    "NOT A",
	OpNegA:    "NEG A",
	OpSrA:     "SR A",
	OpSlA:     "SL A",
	OpSrcA:    "SRC A",
	OpSlcA:    "SLC A",
	OpSwapA:   "SWAP A",
	OpWdreset: "WDRESET",
	OpPushaf:  "PUSHAF",
	OpPopaf:   "POPAF",
	OpReset:   "RESET",
	OpStopsys: "STOPSYS",
	OpStopexe: "STOPEXE",
	OpEngint:  "ENGINT",
	OpDisgint: "DISGINT",
	OpRet:     "RET",
	OpReti:    "RETI",
	OpMul:     "MUL",

	OpXorIOA:  "XOR IO,A",
	OpMovIOA:  "MOV IO,A",
	OpMovAIO:  "MOV A,IO",
	OpT0snIOn: "T0SN IO.n",
	OpT1snIOn: "T1SN IO.n",
	OpSet0IOn: "SET0 IO.n",
	OpSet1IOn: "SET1 IO.n",

	OpStt16M: "STT16 M",
	OpLdt16M: "LDT16 M",
	OpIdxmMA: "IDXM M,A",
	OpIdxmAM: "IDXM A,M",

	OpRetK:    "RET k",
	OpAddAK:   "ADD A,k",
	OpSubAK:   "SUB A,k",
	OpCeqsnAK: "CEQSN A,k",
	OpAndAK:   "AND A,k",
	OpOrAK:    "OR A,k",
	OpXorAK:   "XOR A,k",
	OpMovAK:   "MOV A,k",

	OpT0snMn: "T0SN M.n",
	OpT1snMn: "T1SN M.n",
	OpSet0Mn: "SET0 M.n",
	OpSet1Mn: "SET1 M.n",

	OpAddMA:  "ADD M,A",
	OpSubMA:  "SUB M,A",
	OpAddcMA: "ADDC M,A",
	OpSubcMA: "SUBC M,A",
	OpAndMA:  "AND M,A",
	OpOrMA:   "OR M,A",
	OpXorMA:  "XOR M,A",
	OpMovMA:  "MOV M,A",

	OpAddAM:  "ADD A,M",
	OpSubAM:  "SUB A,M",
	OpAddcAM: "ADDC A,M",
	OpSubcAM: "SUBC A,M",
	OpAndAM:  "AND A,M",
	OpOrAM:   "OR A,M",
	OpXorAM:  "XOR A,M",
	OpMovAM:  "MOV A,M",

	OpAddcM:   "ADDC M",
	OpSubcM:   "SUBC M",
	OpIzsnM:   "IZSN M",
	OpDzsnM:   "DZSN M",
	OpIncM:    "INC M",
	OpDecM:    "DEC M",
	OpClearM:  "CLEAR M",
	OpXchM:    "XCH M",
	OpNotM:    "NOT M",
	OpNegM:    "NEG M",
	OpSrM:     "SR M",
	OpSlM:     "SL M",
	OpSrcM:    "SRC M",
	OpSlcM:    "SLC M",
	OpCeqsnAM: "CEQSN A,M",

	OpGoto: "GOTO",
	OpCall: "CALL",
}

func (o Op) String() string {
	if int(o) < len(names) && names[o] != "" {
		return names[o]
	}
	return "NOP"
}
