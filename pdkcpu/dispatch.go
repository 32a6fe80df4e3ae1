package pdkcpu

import (
	"github.com/cornwell-emu/pdk13/bus"
	"github.com/cornwell-emu/pdk13/decoder"
)

type handler func(c *CPU, b bus.Bus, slot decoder.Slot, st *step)

type binOp func(a, operand, flags uint8) (uint8, uint8)
type unOp func(a, flags uint8) (uint8, uint8)

func skipNext(st *step) {
	st.pcIncrement = 2
	st.nextSkip = true
}

func carryBit(flags uint8) uint8 {
	return (flags & FlagC) >> 1
}

// accBin applies op(A, operand, flags), writing A and flags.
func accBin(op binOp, operand func(c *CPU, b bus.Bus, slot decoder.Slot) uint8) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		result, flags := op(c.A, operand(c, b, slot), bus.ReadFlags(b))
		c.A = result
		bus.WriteFlags(b, flags)
	}
}

// accBinSkipIfZero is accBin plus a skip when the result is zero (IZSN/DZSN on A).
func accBinSkipIfZero(op binOp, operand func(c *CPU, b bus.Bus, slot decoder.Slot) uint8) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		result, flags := op(c.A, operand(c, b, slot), bus.ReadFlags(b))
		c.A = result
		bus.WriteFlags(b, flags)
		if result == 0 {
			skipNext(st)
		}
	}
}

// accUnary applies a unary ALU op to A.
func accUnary(op unOp) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		result, flags := op(c.A, bus.ReadFlags(b))
		c.A = result
		bus.WriteFlags(b, flags)
	}
}

// memDestBin applies op(RAM[addr], A, flags), writing RAM and flags: the
// "M,A" family (memory destination).
func memDestBin(op binOp) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		val := b.ReadRAM(slot.Addr)
		result, flags := op(val, c.A, bus.ReadFlags(b))
		b.WriteRAM(slot.Addr, result)
		bus.WriteFlags(b, flags)
	}
}

// accSrcMemBin applies op(A, RAM[addr], flags), writing A and flags: the
// "A,M" family (accumulator destination).
func accSrcMemBin(op binOp) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		val := b.ReadRAM(slot.Addr)
		result, flags := op(c.A, val, bus.ReadFlags(b))
		c.A = result
		bus.WriteFlags(b, flags)
	}
}

// memUnary applies a unary ALU op to RAM[addr], writing RAM and flags.
func memUnary(op unOp) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		val := b.ReadRAM(slot.Addr)
		result, flags := op(val, bus.ReadFlags(b))
		b.WriteRAM(slot.Addr, result)
		bus.WriteFlags(b, flags)
	}
}

// memImmBin applies op(RAM[addr], imm, flags), writing RAM and flags; used
// for INC M / DEC M (imm is always 1).
func memImmBin(op binOp, imm uint8) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		val := b.ReadRAM(slot.Addr)
		result, flags := op(val, imm, bus.ReadFlags(b))
		b.WriteRAM(slot.Addr, result)
		bus.WriteFlags(b, flags)
	}
}

// memImmBinSkipIfZero is memImmBin plus a skip when the result is zero
// (IZSN M / DZSN M).
func memImmBinSkipIfZero(op binOp, imm uint8) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		val := b.ReadRAM(slot.Addr)
		result, flags := op(val, imm, bus.ReadFlags(b))
		b.WriteRAM(slot.Addr, result)
		bus.WriteFlags(b, flags)
		if result == 0 {
			skipNext(st)
		}
	}
}

// carryMemUnary applies op(RAM[addr], carry-bit, flags) for ADDC M / SUBC M.
func carryMemUnary(op binOp) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		flags := bus.ReadFlags(b)
		val := b.ReadRAM(slot.Addr)
		result, newFlags := op(val, carryBit(flags), flags)
		b.WriteRAM(slot.Addr, result)
		bus.WriteFlags(b, newFlags)
	}
}

func ramBitSet(value bool) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		v := b.ReadRAM(slot.Addr)
		v = setBit(v, slot.Bit, value)
		b.WriteRAM(slot.Addr, v)
	}
}

func ramBitSkipIfEquals(want bool) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		v := b.ReadRAM(slot.Addr)
		if bitIsSet(v, slot.Bit) == want {
			skipNext(st)
		}
	}
}

func ioBitSet(value bool) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		v := b.ReadIO(slot.Addr)
		v = setBit(v, slot.Bit, value)
		b.WriteIO(slot.Addr, v)
	}
}

func ioBitSkipIfEquals(want bool) handler {
	return func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		v := b.ReadIO(slot.Addr)
		if bitIsSet(v, slot.Bit) == want {
			skipNext(st)
		}
	}
}

func setBit(v, n uint8, value bool) uint8 {
	mask := uint8(1) << n
	if value {
		return v | mask
	}
	return v &^ mask
}

func bitIsSet(v, n uint8) bool {
	return v&(uint8(1)<<n) != 0
}

func operandImmediate(c *CPU, b bus.Bus, slot decoder.Slot) uint8 { return slot.Addr }

func doRet(c *CPU, b bus.Bus, st *step) {
	sp := bus.ReadSP(b) - 2
	bus.WriteSP(b, sp)
	c.PC = bus.ReadRAMWord(b, sp) & pcMask
	st.pcIncrement = 0
	st.nextSkip = true
}

func doCall(c *CPU, b bus.Bus, target uint16, st *step) {
	sp := bus.ReadSP(b)
	retAddr := (c.PC + 1) & pcMask
	bus.WriteRAMWord(b, sp, retAddr)
	bus.WriteSP(b, sp+2)
	c.PC = target
	st.pcIncrement = 0
	st.nextSkip = true
}

var dispatchTable = buildDispatchTable()

func buildDispatchTable() [decoder.OpCount]handler {
	var t [decoder.OpCount]handler

	// Miscellaneous, no operand.
	t[decoder.OpLdsptl] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		addr := bus.ReadRAMWord(b, bus.ReadSP(b)) & pcMask
		c.A = uint8(b.ReadROM(addr).Word)
	}
	t[decoder.OpLdspth] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		addr := bus.ReadRAMWord(b, bus.ReadSP(b)) & pcMask
		c.A = uint8(b.ReadROM(addr).Word >> 8)
	}
	t[decoder.OpAddcA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		flags := bus.ReadFlags(b)
		result, newFlags := Add(c.A, carryBit(flags), flags)
		c.A = result
		bus.WriteFlags(b, newFlags)
	}
	t[decoder.OpSubcA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		flags := bus.ReadFlags(b)
		result, newFlags := Sub(c.A, carryBit(flags), flags)
		c.A = result
		bus.WriteFlags(b, newFlags)
	}
	t[decoder.OpIzsnA] = accBinSkipIfZero(Add, func(*CPU, bus.Bus, decoder.Slot) uint8 { return 1 })
	t[decoder.OpDzsnA] = accBinSkipIfZero(Sub, func(*CPU, bus.Bus, decoder.Slot) uint8 { return 1 })
	t[decoder.OpPcaddA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		c.PC = (c.PC + uint16(c.A)) & pcMask
		st.pcIncrement = 0
		st.nextSkip = true
	}
	t[decoder.OpNotA] = accUnary(Not)
	t[decoder.OpNegA] = accUnary(Neg)
	t[decoder.OpSrA] = accUnary(Sr)
	t[decoder.OpSlA] = accUnary(Sl)
	t[decoder.OpSrcA] = accUnary(Src)
	t[decoder.OpSlcA] = accUnary(Slc)
	t[decoder.OpSwapA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		c.A = (c.A << 4) | (c.A >> 4)
	}
	t[decoder.OpWdreset] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) { b.WdtReset() }
	t[decoder.OpPushaf] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		sp := bus.ReadSP(b)
		b.WriteRAM(sp, c.A)
		b.WriteRAM(sp+1, bus.ReadFlags(b))
		bus.WriteSP(b, sp+2)
	}
	t[decoder.OpPopaf] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		sp := bus.ReadSP(b) - 2
		bus.WriteSP(b, sp)
		c.A = b.ReadRAM(sp)
		bus.WriteFlags(b, b.ReadRAM(sp+1))
	}
	t[decoder.OpReset] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		c.Reset(b)
		st.pcIncrement = 0
	}
	t[decoder.OpStopsys] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) { b.StopSys() }
	t[decoder.OpStopexe] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) { b.StopExe() }
	t[decoder.OpEngint] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) { c.GIE = true }
	t[decoder.OpDisgint] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) { c.GIE = false }
	t[decoder.OpRet] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) { doRet(c, b, st) }
	t[decoder.OpReti] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		doRet(c, b, st)
		c.GIE = true
	}

	// IO-register-addressed.
	t[decoder.OpXorIOA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		b.WriteIO(slot.Addr, b.ReadIO(slot.Addr)^c.A)
	}
	t[decoder.OpMovIOA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		b.WriteIO(slot.Addr, c.A)
	}
	t[decoder.OpMovAIO] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		v := b.ReadIO(slot.Addr)
		c.A = v
		bus.SetZeroFlag(b, v == 0)
	}
	t[decoder.OpT0snIOn] = ioBitSkipIfEquals(false)
	t[decoder.OpT1snIOn] = ioBitSkipIfEquals(true)
	t[decoder.OpSet0IOn] = ioBitSet(false)
	t[decoder.OpSet1IOn] = ioBitSet(true)

	// 16-bit memory.
	t[decoder.OpStt16M] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		b.WriteTim16(bus.ReadRAMWord(b, slot.Addr))
	}
	t[decoder.OpLdt16M] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		bus.WriteRAMWord(b, slot.Addr, b.ReadTim16())
	}
	t[decoder.OpIdxmMA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		ptr := bus.ReadRAMWord(b, slot.Addr)
		b.WriteRAM(uint8(ptr), c.A)
		st.nextSkip = true
	}
	t[decoder.OpIdxmAM] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		ptr := bus.ReadRAMWord(b, slot.Addr)
		c.A = b.ReadRAM(uint8(ptr))
		st.nextSkip = true
	}

	// Immediate.
	t[decoder.OpRetK] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		c.A = slot.Addr
		doRet(c, b, st)
	}
	t[decoder.OpAddAK] = accBin(Add, operandImmediate)
	t[decoder.OpSubAK] = accBin(Sub, operandImmediate)
	t[decoder.OpAndAK] = accBin(And, operandImmediate)
	t[decoder.OpOrAK] = accBin(Or, operandImmediate)
	t[decoder.OpXorAK] = accBin(Xor, operandImmediate)
	t[decoder.OpMovAK] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		result, flags := Mov(slot.Addr, bus.ReadFlags(b))
		c.A = result
		bus.WriteFlags(b, flags)
	}
	t[decoder.OpCeqsnAK] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		result, flags := Sub(c.A, slot.Addr, bus.ReadFlags(b))
		bus.WriteFlags(b, flags)
		if result == 0 {
			skipNext(st)
		}
	}

	// Memory bit ops.
	t[decoder.OpT0snMn] = ramBitSkipIfEquals(false)
	t[decoder.OpT1snMn] = ramBitSkipIfEquals(true)
	t[decoder.OpSet0Mn] = ramBitSet(false)
	t[decoder.OpSet1Mn] = ramBitSet(true)

	// Memory-and-accumulator ALU: memory destination.
	t[decoder.OpAddMA] = memDestBin(Add)
	t[decoder.OpSubMA] = memDestBin(Sub)
	t[decoder.OpAddcMA] = memDestBin(Addc)
	t[decoder.OpSubcMA] = memDestBin(Subc)
	t[decoder.OpAndMA] = memDestBin(And)
	t[decoder.OpOrMA] = memDestBin(Or)
	t[decoder.OpXorMA] = memDestBin(Xor)
	t[decoder.OpMovMA] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		b.WriteRAM(slot.Addr, c.A)
	}

	// Memory-and-accumulator ALU: accumulator destination.
	t[decoder.OpAddAM] = accSrcMemBin(Add)
	t[decoder.OpSubAM] = accSrcMemBin(Sub)
	t[decoder.OpAddcAM] = accSrcMemBin(Addc)
	t[decoder.OpSubcAM] = accSrcMemBin(Subc)
	t[decoder.OpAndAM] = accSrcMemBin(And)
	t[decoder.OpOrAM] = accSrcMemBin(Or)
	t[decoder.OpXorAM] = accSrcMemBin(Xor)
	t[decoder.OpMovAM] = accSrcMemBin(func(a, operand, flags uint8) (uint8, uint8) { return Mov(operand, flags) })

	// Memory-only ALU.
	t[decoder.OpAddcM] = carryMemUnary(Add)
	t[decoder.OpSubcM] = carryMemUnary(Sub)
	t[decoder.OpIzsnM] = memImmBinSkipIfZero(Add, 1)
	t[decoder.OpDzsnM] = memImmBinSkipIfZero(Sub, 1)
	t[decoder.OpIncM] = memImmBin(Add, 1)
	t[decoder.OpDecM] = memImmBin(Sub, 1)
	t[decoder.OpClearM] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		b.WriteRAM(slot.Addr, 0)
	}
	t[decoder.OpXchM] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		tmp := b.ReadRAM(slot.Addr)
		b.WriteRAM(slot.Addr, c.A)
		c.A = tmp
	}
	t[decoder.OpNotM] = memUnary(Not)
	t[decoder.OpNegM] = memUnary(Neg)
	t[decoder.OpSrM] = memUnary(Sr)
	t[decoder.OpSlM] = memUnary(Sl)
	t[decoder.OpSrcM] = memUnary(Src)
	t[decoder.OpSlcM] = memUnary(Slc)
	t[decoder.OpCeqsnAM] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		val := b.ReadRAM(slot.Addr)
		result, flags := Sub(c.A, val, bus.ReadFlags(b))
		bus.WriteFlags(b, flags)
		if result == 0 {
			skipNext(st)
		}
	}

	// Control flow.
	t[decoder.OpGoto] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		c.PC = slot.ROMAddr()
		st.pcIncrement = 0
		st.nextSkip = true
	}
	t[decoder.OpCall] = func(c *CPU, b bus.Bus, slot decoder.Slot, st *step) {
		doCall(c, b, slot.ROMAddr(), st)
	}

	return t
}
