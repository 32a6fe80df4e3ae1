/*
 * pdk13 - CPU core: fetch/execute state machine
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

// Package pdkcpu implements the PDK13 fetch/execute state machine: the
// accumulator, program counter, global-interrupt latch and the
// Execute/Skip stall latch, dispatching decoded slots against a Bus.
//
// Mirrors the split the teacher's cpudefs.go draws between persistent
// register-file state (cpuState) and step-local scratch (stepInfo): CPU
// holds only what must survive between steps, everything else lives as
// local variables inside Step.
package pdkcpu

import (
	"github.com/cornwell-emu/pdk13/bus"
)

const pcMask = 0x3FF // 10-bit program counter

// CPU is the PDK13 register file. The zero value is a CPU freshly reset.
type CPU struct {
	A   uint8
	PC  uint16
	GIE bool
	// Skip is the Execute/Skip stall latch: when true, the next Step call
	// does nothing but return the latch to Execute. It stands in for what
	// could have been a coroutine yielding for one "wasted" cycle.
	Skip bool
}

// step carries the scratch state that only ever lives for one Step call.
type step struct {
	pcIncrement uint16
	nextSkip    bool
}

// Step runs exactly one Execute or Skip cycle of the state machine against
// the given Bus, which the CPU borrows exclusively for the call's duration.
func (c *CPU) Step(b bus.Bus) {
	if c.Skip {
		c.Skip = false
		return
	}

	slot := b.ReadROM(c.PC)
	st := step{pcIncrement: 1}

	h := dispatchTable[slot.Op]
	if h != nil {
		h(c, b, slot, &st)
	}

	c.PC = (c.PC + st.pcIncrement) & pcMask
	c.Skip = st.nextSkip
}

// Reset zeroes the register file and asks the bus to reset MCU-owned state.
func (c *CPU) Reset(b bus.Bus) {
	b.Reset()
	c.A = 0
	c.PC = 0
	c.GIE = false
	c.Skip = false
}
