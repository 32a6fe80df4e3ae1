/*
 * pdk13 - Firmware image loading
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

// Package firmware reads the PDK13 firmware image format (§6.1): a flat
// byte stream of little-endian 13-bit words, two bytes each, decoded one
// ROM slot at a time.
package firmware

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cornwell-emu/pdk13/decoder"
)

const (
	maxBytes = 2048
	maxWords = maxBytes / 2
)

// Error reports a malformed firmware image.
type Error struct {
	Reason string
}

func (e *Error) Error() string { return "firmware: " + e.Reason }

// Load reads a complete firmware image from r and decodes it into ROM
// slots. Short images are padded with NOP out to maxWords; images whose
// byte length is odd, exceeds 2048 bytes, or that contain a word whose top
// 3 bits are nonzero are rejected.
func Load(r io.Reader) ([]decoder.Slot, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, &Error{Reason: fmt.Sprintf("reading image: %v", err)}
	}
	if len(raw) > maxBytes {
		return nil, &Error{Reason: fmt.Sprintf("image is %d bytes, exceeds the %d byte limit", len(raw), maxBytes)}
	}
	if len(raw)%2 != 0 {
		return nil, &Error{Reason: fmt.Sprintf("image length %d is odd", len(raw))}
	}

	slots := make([]decoder.Slot, maxWords)
	for i := range slots {
		slots[i] = decoder.NopSlot
	}

	for i := 0; i+1 < len(raw); i += 2 {
		word := binary.LittleEndian.Uint16(raw[i : i+2])
		slot, err := decoder.Decode(word)
		if err != nil {
			return nil, &Error{Reason: fmt.Sprintf("word %d (offset %d): %v", i/2, i, err)}
		}
		slots[i/2] = slot
	}

	return slots, nil
}
