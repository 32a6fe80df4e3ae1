/*
 * pdk13 - Flat masked-address storage
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

// Package memory implements the flat, masked-address byte storage backing
// the MCU's RAM and IO spaces. Every access wraps to the space's width, so
// addressing past the end of the array is defined behavior, not an error.
package memory

// Bytes is a fixed-width byte array whose address space is a power of two;
// Mask is width-1 and is applied to every address before indexing.
type Bytes struct {
	data []byte
	Mask uint8
}

// New allocates a Bytes space of the given power-of-two size.
func New(size int) Bytes {
	return Bytes{data: make([]byte, size), Mask: uint8(size - 1)}
}

func (m Bytes) Get(addr uint8) uint8 {
	return m.data[addr&m.Mask]
}

func (m Bytes) Set(addr uint8, value uint8) {
	m.data[addr&m.Mask] = value
}

// Len reports the storage width in bytes.
func (m Bytes) Len() int {
	return len(m.data)
}
