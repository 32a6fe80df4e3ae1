/*
 * pdk13 - Interactive debug monitor
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

// Command pdkmon is an interactive step/trace monitor for the PDK13
// emulator: load a firmware image, single-step or run it, and inspect
// registers, RAM and IO between steps.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	"github.com/cornwell-emu/pdk13/bus"
	config "github.com/cornwell-emu/pdk13/config/configparser"
	"github.com/cornwell-emu/pdk13/emu/disassemble"
	"github.com/cornwell-emu/pdk13/firmware"
	"github.com/cornwell-emu/pdk13/hostadapter"
	"github.com/cornwell-emu/pdk13/internal/emulog"
	"github.com/cornwell-emu/pdk13/mcu"
	"github.com/cornwell-emu/pdk13/pdkcpu"
)

// nullHost is a host adapter with no wired board: pins read back whatever
// was last written and nothing else observes them. It exists so the
// monitor can run firmware with no physical part attached.
type nullHost struct {
	digital map[hostadapter.Pin]bool
}

func newNullHost() *nullHost { return &nullHost{digital: map[hostadapter.Pin]bool{}} }

func (h *nullHost) ReadPinDigital(pin hostadapter.Pin) bool  { return h.digital[pin] }
func (h *nullHost) WritePinDigital(pin hostadapter.Pin, v bool) { h.digital[pin] = v }
func (h *nullHost) ReadPinAnalog(hostadapter.Pin) uint16      { return 0 }
func (h *nullHost) WritePinAnalog(hostadapter.Pin, uint16)    {}
func (h *nullHost) SetPinOutputEnabled(hostadapter.Pin, bool) {}
func (h *nullHost) SetPinPullUpEnabled(hostadapter.Pin, bool) {}

// session bundles the running emulator state the monitor's commands act on.
type session struct {
	cpu         pdkcpu.CPU
	mcu         *mcu.MCU
	breakpoints map[uint16]bool
	trace       bool
}

func main() {
	optFirmware := getopt.StringLong("firmware", 'f', "", "Firmware image to load")
	optConfig := getopt.StringLong("config", 'c', "", "Monitor configuration file")
	optTrace := getopt.BoolLong("trace", 't', "Trace every step to stdout")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	handler := emulog.New(os.Stdout, programLevel.Level(), false)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	sess := &session{breakpoints: map[uint16]bool{}}

	firmwarePath := *optFirmware
	if *optConfig != "" {
		cfg, err := config.Load(*optConfig)
		if err != nil {
			logger.Error("loading config", "error", err)
			os.Exit(1)
		}
		if firmwarePath == "" {
			firmwarePath = cfg.FirmwarePath
		}
		for _, pc := range cfg.Breakpoints {
			sess.breakpoints[pc] = true
		}
		sess.trace = cfg.Trace
	}
	if *optTrace {
		sess.trace = true
	}

	sess.mcu = mcu.New(newNullHost())

	if firmwarePath != "" {
		f, err := os.Open(firmwarePath)
		if err != nil {
			logger.Error("opening firmware", "path", firmwarePath, "error", err)
			os.Exit(1)
		}
		slots, err := firmware.Load(f)
		f.Close()
		if err != nil {
			logger.Error("decoding firmware", "path", firmwarePath, "error", err)
			os.Exit(1)
		}
		if err := sess.mcu.LoadFirmware(slots); err != nil {
			logger.Error("loading firmware into ROM", "error", err)
			os.Exit(1)
		}
		logger.Info("firmware loaded", "path", firmwarePath)
	}

	runREPL(sess, logger)
}

func runREPL(sess *session, logger *slog.Logger) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("pdkmon> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			logger.Error("reading command", "error", err)
			return
		}
		line.AppendHistory(input)

		quit, err := dispatchCommand(sess, input)
		if err != nil {
			fmt.Println("error: " + err.Error())
		}
		if quit {
			return
		}
	}
}

func dispatchCommand(sess *session, input string) (bool, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil

	case "step":
		sess.step()
		return false, nil

	case "run":
		count := 1
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return false, fmt.Errorf("run: %w", err)
			}
			count = n
		}
		sess.run(count)
		return false, nil

	case "regs":
		sess.printRegs()
		return false, nil

	case "ram":
		if len(fields) != 2 {
			return false, errors.New("usage: ram <addr>")
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return false, err
		}
		fmt.Printf("RAM[0x%02X] = 0x%02X\n", addr, sess.mcu.ReadRAM(addr))
		return false, nil

	case "io":
		if len(fields) != 2 {
			return false, errors.New("usage: io <addr>")
		}
		addr, err := parseAddr(fields[1])
		if err != nil {
			return false, err
		}
		fmt.Printf("IO[0x%02X] = 0x%02X\n", addr, sess.mcu.ReadIO(addr))
		return false, nil

	case "break":
		if len(fields) != 2 {
			return false, errors.New("usage: break <pc>")
		}
		pc, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "0x"), 16, 16)
		if err != nil {
			return false, err
		}
		sess.breakpoints[uint16(pc)] = true
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseAddr(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func (s *session) step() {
	if s.trace {
		slot := s.mcu.ReadROM(s.cpu.PC)
		fmt.Printf("%03X: %s\n", s.cpu.PC, disassembler.Disassemble(slot))
	}
	s.cpu.Step(s.mcu)
}

func (s *session) run(count int) {
	for i := 0; i < count; i++ {
		s.step()
		if s.breakpoints[s.cpu.PC] {
			fmt.Printf("breakpoint hit at 0x%03X\n", s.cpu.PC)
			return
		}
	}
}

func (s *session) printRegs() {
	flags := bus.ReadFlags(s.mcu)
	fmt.Printf("A=0x%02X PC=0x%03X GIE=%v SKIP=%v FLAGS=0x%02X (Z=%v C=%v AC=%v OV=%v)\n",
		s.cpu.A, s.cpu.PC, s.cpu.GIE, s.cpu.Skip, flags,
		bus.IsZeroFlag(s.mcu), bus.IsCarryFlag(s.mcu), bus.IsAuxCarryFlag(s.mcu), bus.IsOverflowFlag(s.mcu))
}
