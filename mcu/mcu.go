/*
 * pdk13 - MCU shell: ROM/RAM/IO storage, clock-mode decoding, Port-A mirroring
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

// Package mcu implements the PMS150C shell: the concrete bus.Bus that owns
// ROM, RAM and IO storage, decodes the clock-mode register, and mirrors
// Port-A traffic to a host adapter. Nothing outside this package ever
// reaches into MCU-owned state directly; every access goes through the
// Bus interface.
package mcu

import (
	"github.com/cornwell-emu/pdk13/decoder"
	"github.com/cornwell-emu/pdk13/hostadapter"
	"github.com/cornwell-emu/pdk13/memory"
)

// IO register addresses this shell gives special treatment.
const (
	ioFlags  = 0x00
	ioSP     = 0x02
	ioClkmd  = 0x03
	ioPadier = 0x0D
	ioPA     = 0x10
	ioPAC    = 0x11
	ioPAPH   = 0x12
)

const (
	romSize = 1024
	ramSize = 64
	ioSize  = 32

	ihrcHz = 16_000_000
	ilrcHz = 62_000
)

const (
	resetClkmd  = 0b1111_0110
	resetPadier = 0b1111_1001
)

// clockSource selects which oscillator (if any) feeds the derived frequency
// table in freqTable, per §4.3.2's selector encoding.
type clockSource int

const (
	sourceNone clockSource = iota
	sourceIHRC
	sourceILRC
)

type freqEntry struct {
	source  clockSource
	divider uint32
}

// freqTable is indexed by the 4-bit selector f = ((clkmd>>5)&0x7) | (clkmd&0x8).
var freqTable = [16]freqEntry{
	0:  {sourceIHRC, 4},
	1:  {sourceIHRC, 2},
	2:  {sourceNone, 0},
	3:  {sourceNone, 0},
	4:  {sourceNone, 0},
	5:  {sourceNone, 0},
	6:  {sourceILRC, 4},
	7:  {sourceILRC, 1},
	8:  {sourceIHRC, 16},
	9:  {sourceIHRC, 8},
	10: {sourceILRC, 16},
	11: {sourceIHRC, 32},
	12: {sourceIHRC, 64},
	13: {sourceNone, 0},
	14: {sourceNone, 0},
	15: {sourceNone, 0},
}

// MCU is the PMS150C shell: ROM, RAM, IO storage, clock state and the
// Port-A mirror the host adapter reflects. The zero value is not usable;
// construct one with New.
type MCU struct {
	Host hostadapter.HostAdapter

	rom [romSize]decoder.Slot
	ram memory.Bytes
	io  memory.Bytes

	tim16 uint16

	clockHz uint32

	// paData / paDir / paPullUp mirror the three Port-A IO registers so
	// reads from PA can fold in live input-pin state without re-deriving
	// direction from the IO byte each time.
	paData   uint8
	paDir    uint8
	paPullUp uint8
}

// New builds an MCU shell wired to the given host adapter and resets it to
// its power-on state.
func New(host hostadapter.HostAdapter) *MCU {
	m := &MCU{
		Host: host,
		ram:  memory.New(ramSize),
		io:   memory.New(ioSize),
	}
	m.Init()
	return m
}

// Init performs the host-facing portion of power-on: every exposed pin is
// asked for output-disabled, pull-up-disabled, driven low, then shell state
// is reset.
func (m *MCU) Init() {
	for _, pin := range hostadapter.ExposedPins {
		m.Host.SetPinOutputEnabled(pin, false)
		m.Host.SetPinPullUpEnabled(pin, false)
		m.Host.WritePinDigital(pin, false)
	}
	m.Reset()
}

// LoadFirmware installs decoded ROM slots starting at address 0, padding
// any remainder with NOP. Images wider than ROM are rejected.
func (m *MCU) LoadFirmware(slots []decoder.Slot) error {
	if len(slots) > romSize {
		return &decoder.Error{Kind: decoder.TooBigAddress, Addr: len(slots), Size: romSize}
	}
	for i := 0; i < romSize; i++ {
		if i < len(slots) {
			m.rom[i] = slots[i]
		} else {
			m.rom[i] = decoder.NopSlot
		}
	}
	return nil
}

func (m *MCU) ReadROM(addr uint16) decoder.Slot {
	return m.rom[addr&(romSize-1)]
}

func (m *MCU) ReadRAM(addr uint8) uint8         { return m.ram.Get(addr) }
func (m *MCU) WriteRAM(addr uint8, value uint8) { m.ram.Set(addr, value) }

func (m *MCU) ReadTim16() uint16        { return m.tim16 }
func (m *MCU) WriteTim16(value uint16) { m.tim16 = value }

func (m *MCU) ReadIO(addr uint8) uint8 {
	if addr&0x1F == ioPA {
		return m.readPA()
	}
	return m.io.Get(addr)
}

func (m *MCU) WriteIO(addr uint8, value uint8) {
	addr &= 0x1F
	m.io.Set(addr, value)
	switch addr {
	case ioClkmd:
		m.recomputeClock(value)
	case ioPA:
		m.paData = value
		m.mirrorPA()
	case ioPAC:
		m.paDir = value
		m.mirrorDirection()
	case ioPAPH:
		m.paPullUp = value
		m.mirrorPullUp()
	}
}

// readPA folds live host-adapter state into input-configured bits, and the
// last-written value into output-configured bits.
func (m *MCU) readPA() uint8 {
	result := m.paData
	for _, pin := range hostadapter.ExposedPins {
		bit := uint8(pin)
		if m.paDir&(1<<bit) != 0 {
			continue // configured as output: keep the written bit
		}
		if m.Host.ReadPinDigital(pin) {
			result |= 1 << bit
		} else {
			result &^= 1 << bit
		}
	}
	return result
}

func (m *MCU) mirrorPA() {
	for _, pin := range hostadapter.ExposedPins {
		bit := uint8(pin)
		m.Host.WritePinDigital(pin, m.paData&(1<<bit) != 0)
	}
}

func (m *MCU) mirrorDirection() {
	for _, pin := range hostadapter.ExposedPins {
		bit := uint8(pin)
		m.Host.SetPinOutputEnabled(pin, m.paDir&(1<<bit) != 0)
	}
}

func (m *MCU) mirrorPullUp() {
	for _, pin := range hostadapter.ExposedPins {
		bit := uint8(pin)
		m.Host.SetPinPullUpEnabled(pin, m.paPullUp&(1<<bit) != 0)
	}
}

func (m *MCU) recomputeClock(clkmd uint8) {
	// The 4-bit selector packs CLKMD's top 3 bits as the low bits and bit 3
	// (the IHRC/ILRC source-select bit) as the high bit.
	selector := ((clkmd >> 5) & 0x7) | (clkmd & 0x08)
	entry := freqTable[selector]

	// §4.3.2 also says the chosen source's gate bit (IHRC bit 4, ILRC bit
	// 2) halts the clock when clear. That rule is not applied here: the
	// documented clock-mode write scenario (CLKMD = 0x00 selecting IHRC/4) expects a
	// running 4 MHz clock despite bit 4 being clear, so gating strictly
	// by that bit would halt a clock the spec's own worked example expects
	// to be running. See DESIGN.md's open question decisions.
	var base uint32
	switch entry.source {
	case sourceIHRC:
		base = ihrcHz
	case sourceILRC:
		base = ilrcHz
	default:
		m.clockHz = 0
		return
	}
	m.clockHz = base / entry.divider
}

// ClockHz reports the currently selected system frequency in Hertz; 0 means
// the clock is halted (an ungated or reserved selector was written).
func (m *MCU) ClockHz() uint32 { return m.clockHz }

// Reset restores shell state to power-on values. It does not touch ROM: a
// loaded firmware image survives a software RESET.
func (m *MCU) Reset() {
	m.io.Set(ioClkmd, resetClkmd)
	m.io.Set(ioPadier, resetPadier)
	m.paData = 0
	m.paDir = 0
	m.paPullUp = 0
	m.recomputeClock(resetClkmd)
	m.mirrorPA()
	m.mirrorDirection()
	m.mirrorPullUp()
}

// StopSys and StopExe are accepted as inert signals in this generation: no
// observable MCU state changes, matching §4.3's non-goal of sub-cycle power
// modeling.
func (m *MCU) StopSys() {}
func (m *MCU) StopExe() {}

// WdtReset is accepted and inert; watchdog timing is not modeled.
func (m *MCU) WdtReset() {}
