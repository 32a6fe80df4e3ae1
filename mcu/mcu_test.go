package mcu

import (
	"testing"

	"github.com/cornwell-emu/pdk13/decoder"
	"github.com/cornwell-emu/pdk13/hostadapter"
)

type mockHost struct {
	digital     map[hostadapter.Pin]bool
	analog      map[hostadapter.Pin]uint16
	outputEn    map[hostadapter.Pin]bool
	pullUpEn    map[hostadapter.Pin]bool
	writtenDig  []hostadapter.Pin
}

func newMockHost() *mockHost {
	return &mockHost{
		digital:  map[hostadapter.Pin]bool{},
		analog:   map[hostadapter.Pin]uint16{},
		outputEn: map[hostadapter.Pin]bool{},
		pullUpEn: map[hostadapter.Pin]bool{},
	}
}

func (h *mockHost) ReadPinDigital(pin hostadapter.Pin) bool { return h.digital[pin] }
func (h *mockHost) WritePinDigital(pin hostadapter.Pin, value bool) {
	h.digital[pin] = value
	h.writtenDig = append(h.writtenDig, pin)
}
func (h *mockHost) ReadPinAnalog(pin hostadapter.Pin) uint16        { return h.analog[pin] }
func (h *mockHost) WritePinAnalog(pin hostadapter.Pin, value uint16) { h.analog[pin] = value }
func (h *mockHost) SetPinOutputEnabled(pin hostadapter.Pin, enabled bool) { h.outputEn[pin] = enabled }
func (h *mockHost) SetPinPullUpEnabled(pin hostadapter.Pin, enabled bool) { h.pullUpEn[pin] = enabled }

func TestClockModeWriteSelectsFrequency(t *testing.T) {
	m := New(newMockHost())

	m.WriteIO(ioClkmd, 0b00000000)
	if got := m.ClockHz(); got != 4_000_000 {
		t.Fatalf("clock after CLKMD=0x00 = %d, want 4000000", got)
	}

	m.WriteIO(ioClkmd, 0b11100111)
	if got := m.ClockHz(); got != 62_000 {
		t.Fatalf("clock after CLKMD=0xE7 = %d, want 62000", got)
	}
}

func TestClockModeUngatedSelectorHalts(t *testing.T) {
	m := New(newMockHost())
	// selector bits chosen to land in the 2..5 "halted" range.
	m.WriteIO(ioClkmd, 0b01000000)
	if got := m.ClockHz(); got != 0 {
		t.Fatalf("clock after ungated selector = %d, want 0", got)
	}
}

func TestPortAWriteMirrorsToHostAdapter(t *testing.T) {
	host := newMockHost()
	m := New(host)

	m.WriteIO(ioPAC, 0xFF) // all exposed pins as outputs
	m.WriteIO(ioPA, 0b1010_1001)

	for _, pin := range hostadapter.ExposedPins {
		want := 0b1010_1001&(1<<uint8(pin)) != 0
		if got := host.digital[pin]; got != want {
			t.Fatalf("pin %d mirrored as %v, want %v", pin, got, want)
		}
	}
}

func TestPortAReadFoldsInputPins(t *testing.T) {
	host := newMockHost()
	m := New(host)

	m.WriteIO(ioPAC, 0x00) // all exposed pins as inputs
	host.digital[hostadapter.PA3] = true
	host.digital[hostadapter.PA7] = true

	got := m.ReadIO(ioPA)
	want := uint8(1<<3 | 1<<7)
	if got != want {
		t.Fatalf("ReadIO(PA) = %#b, want %#b", got, want)
	}
}

func TestResetRestoresPowerOnValuesButKeepsROM(t *testing.T) {
	host := newMockHost()
	m := New(host)

	if err := m.LoadFirmware([]decoder.Slot{{Op: decoder.OpMovAK, Addr: 7}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.WriteIO(ioPAC, 0xFF)
	m.WriteIO(ioClkmd, 0x00)

	m.Reset()

	if got := m.ReadROM(0); got.Op != decoder.OpMovAK || got.Addr != 7 {
		t.Fatalf("ROM[0] after reset = %+v, want the loaded MOV A,7", got)
	}
	if m.io.Get(ioClkmd) != resetClkmd {
		t.Fatalf("CLKMD after reset = %#x, want %#x", m.io.Get(ioClkmd), resetClkmd)
	}
	if m.io.Get(ioPadier) != resetPadier {
		t.Fatalf("PADIER after reset = %#x, want %#x", m.io.Get(ioPadier), resetPadier)
	}
	if m.ClockHz() != ilrcHz {
		t.Fatalf("clock after reset = %d, want ILRC (%d)", m.ClockHz(), ilrcHz)
	}
}

func TestLoadFirmwareRejectsOversizeImage(t *testing.T) {
	m := New(newMockHost())
	slots := make([]decoder.Slot, romSize+1)
	if err := m.LoadFirmware(slots); err == nil {
		t.Fatalf("expected an error loading an oversize image")
	}
}

func TestLoadFirmwarePadsShortImageWithNop(t *testing.T) {
	m := New(newMockHost())
	if err := m.LoadFirmware([]decoder.Slot{{Op: decoder.OpMovAK, Addr: 7}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.ReadROM(0); got.Op != decoder.OpMovAK || got.Addr != 7 {
		t.Fatalf("ROM[0] = %+v, want the loaded MOV A,7", got)
	}
	if got := m.ReadROM(1); got.Op != decoder.OpNop {
		t.Fatalf("ROM[1] = %+v, want padding NOP", got)
	}
}
