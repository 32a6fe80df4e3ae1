/*
 * pdk13 - Monitor configuration file parser
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

// Package configparser reads the monitor's startup configuration file: one
// directive per line, whitespace separated, '#' starting a comment.
//
// Configuration file format:
//
//	<line>      := <directive> <whitespace> <args> | '#' <comment>
//	<directive> := 'firmware' | 'clock' | 'break' | 'trace'
//	<args>      ::= *(<string> *(<whitespace>))
package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config is the parsed result of a monitor configuration file.
type Config struct {
	FirmwarePath string
	ClockSource  string // "ihrc" or "ilrc"; empty means leave the part's default
	Breakpoints  []uint16
	Trace        bool
}

var lineNumber int

// Load reads and parses a monitor configuration file.
func Load(name string) (*Config, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{}
	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		lineNumber++
		if len(line) == 0 && readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, readErr
		}
		if err := parseLine(cfg, line); err != nil {
			return nil, err
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, readErr
		}
	}
	return cfg, nil
}

func parseLine(cfg *Config, line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	directive := strings.ToLower(fields[0])
	args := fields[1:]

	switch directive {
	case "firmware":
		if len(args) != 1 {
			return lineError("firmware directive requires exactly one path")
		}
		cfg.FirmwarePath = args[0]

	case "clock":
		if len(args) != 1 {
			return lineError("clock directive requires exactly one source")
		}
		source := strings.ToLower(args[0])
		if source != "ihrc" && source != "ilrc" {
			return lineError(fmt.Sprintf("unknown clock source %q, want ihrc or ilrc", args[0]))
		}
		cfg.ClockSource = source

	case "break":
		if len(args) != 1 {
			return lineError("break directive requires exactly one address")
		}
		pc, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 16)
		if err != nil {
			return lineError(fmt.Sprintf("invalid breakpoint address %q: %v", args[0], err))
		}
		cfg.Breakpoints = append(cfg.Breakpoints, uint16(pc))

	case "trace":
		cfg.Trace = true

	default:
		return lineError(fmt.Sprintf("unknown directive %q", directive))
	}
	return nil
}

func lineError(reason string) error {
	return fmt.Errorf("config line %d: %s", lineNumber, reason)
}
