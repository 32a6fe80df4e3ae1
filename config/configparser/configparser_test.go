/*
 * pdk13 - Monitor configuration file parser tests
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

package configparser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "monitor.cfg")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadParsesAllDirectives(t *testing.T) {
	path := writeTempConfig(t, `# sample monitor config
firmware blink.bin
clock IHRC
break 0x010
break 0x20
trace
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FirmwarePath != "blink.bin" {
		t.Fatalf("FirmwarePath = %q, want blink.bin", cfg.FirmwarePath)
	}
	if cfg.ClockSource != "ihrc" {
		t.Fatalf("ClockSource = %q, want ihrc", cfg.ClockSource)
	}
	if len(cfg.Breakpoints) != 2 || cfg.Breakpoints[0] != 0x10 || cfg.Breakpoints[1] != 0x20 {
		t.Fatalf("Breakpoints = %v, want [0x10 0x20]", cfg.Breakpoints)
	}
	if !cfg.Trace {
		t.Fatalf("Trace = false, want true")
	}
}

func TestLoadRejectsUnknownDirective(t *testing.T) {
	path := writeTempConfig(t, "bogus foo\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown directive")
	}
}

func TestLoadRejectsUnknownClockSource(t *testing.T) {
	path := writeTempConfig(t, "clock crystal\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for an unknown clock source")
	}
}

func TestLoadIgnoresBlankAndCommentLines(t *testing.T) {
	path := writeTempConfig(t, "\n# just a comment\n   \nfirmware a.bin\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FirmwarePath != "a.bin" {
		t.Fatalf("FirmwarePath = %q, want a.bin", cfg.FirmwarePath)
	}
}
