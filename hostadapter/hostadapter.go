/*
 * pdk13 - Host-adapter contract between the MCU shell and the outside world
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

// Package hostadapter defines the contract between the MCU shell and
// whatever represents "the world" to it: the physical (or simulated) pins
// of the part. Host calls are treated as infallible; faults here are out
// of scope for this emulator generation.
package hostadapter

// Pin identifies one of the PMS150C's exposed Port-A pins.
type Pin uint8

const (
	PA0 Pin = 0
	PA3 Pin = 3
	PA4 Pin = 4
	PA5 Pin = 5
	PA6 Pin = 6
	PA7 Pin = 7
)

// ExposedPins lists every pin the PMS150C surfaces through the host
// adapter. PA1 and PA2 exist in hardware but are deliberately not exposed.
var ExposedPins = []Pin{PA0, PA3, PA4, PA5, PA6, PA7}

// HostAdapter is implemented by whatever embeds the MCU and represents its
// pins to the outside world (a simulated board, real GPIO, a test harness).
type HostAdapter interface {
	ReadPinDigital(pin Pin) bool
	WritePinDigital(pin Pin, value bool)

	ReadPinAnalog(pin Pin) uint16
	WritePinAnalog(pin Pin, value uint16)

	SetPinOutputEnabled(pin Pin, enabled bool)
	SetPinPullUpEnabled(pin Pin, enabled bool)
}
