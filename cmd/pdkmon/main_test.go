/*
 * pdk13 - Interactive debug monitor tests
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

package main

import (
	"testing"

	"github.com/cornwell-emu/pdk13/mcu"
)

func newTestSession() *session {
	return &session{
		mcu:         mcu.New(newNullHost()),
		breakpoints: map[uint16]bool{},
	}
}

func TestParseAddrAcceptsHexWithAndWithoutPrefix(t *testing.T) {
	for _, s := range []string{"0x2A", "2A", "2a"} {
		got, err := parseAddr(s)
		if err != nil {
			t.Fatalf("parseAddr(%q) returned error: %v", s, err)
		}
		if got != 0x2A {
			t.Fatalf("parseAddr(%q) = 0x%02X, want 0x2A", s, got)
		}
	}
}

func TestParseAddrRejectsGarbage(t *testing.T) {
	if _, err := parseAddr("not-hex"); err == nil {
		t.Fatalf("parseAddr(\"not-hex\") returned nil error, want an error")
	}
}

func TestDispatchCommandQuitSignalsExit(t *testing.T) {
	sess := newTestSession()
	quit, err := dispatchCommand(sess, "quit")
	if err != nil {
		t.Fatalf("dispatchCommand(quit) returned error: %v", err)
	}
	if !quit {
		t.Fatalf("dispatchCommand(quit) quit = false, want true")
	}
}

func TestDispatchCommandBlankLineIsNoop(t *testing.T) {
	sess := newTestSession()
	quit, err := dispatchCommand(sess, "   ")
	if err != nil || quit {
		t.Fatalf("dispatchCommand(blank) = (%v, %v), want (false, nil)", quit, err)
	}
}

func TestDispatchCommandUnknownReturnsError(t *testing.T) {
	sess := newTestSession()
	if _, err := dispatchCommand(sess, "frobnicate"); err == nil {
		t.Fatalf("dispatchCommand(frobnicate) returned nil error, want an error")
	}
}

func TestDispatchCommandBreakRecordsBreakpoint(t *testing.T) {
	sess := newTestSession()
	if _, err := dispatchCommand(sess, "break 0x010"); err != nil {
		t.Fatalf("dispatchCommand(break) returned error: %v", err)
	}
	if !sess.breakpoints[0x10] {
		t.Fatalf("breakpoints = %v, want 0x10 set", sess.breakpoints)
	}
}

func TestDispatchCommandRamAcceptsHexAddress(t *testing.T) {
	sess := newTestSession()
	sess.mcu.WriteRAM(0x05, 0x42)
	if _, err := dispatchCommand(sess, "ram 0x05"); err != nil {
		t.Fatalf("dispatchCommand(ram) returned error: %v", err)
	}
}

func TestDispatchCommandRamRejectsWrongArgCount(t *testing.T) {
	sess := newTestSession()
	if _, err := dispatchCommand(sess, "ram"); err == nil {
		t.Fatalf("dispatchCommand(ram) with no address returned nil error")
	}
}
