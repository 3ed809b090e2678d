package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/domain/directory"
	"github.com/frontdesk/frontdesk/internal/domain/ledger"
	"github.com/frontdesk/frontdesk/internal/platform/store"
)

// -- Mocks --

type mockDirectory struct {
	doctors map[int]directory.Doctor
}

func (m *mockDirectory) Get(id int) (directory.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return directory.Doctor{}, store.ErrNotFound
	}
	return d, nil
}

// mockLedger tracks Scheduled bookings by (doctor, date, slot).
type tripleKey struct {
	doctorID   int
	date, slot string
}

type mockLedger struct {
	booked map[tripleKey]bool
	nextID int
}

func newMockLedger() *mockLedger {
	return &mockLedger{booked: make(map[tripleKey]bool), nextID: 1}
}

func key(doctorID int, date, slot string) tripleKey {
	return tripleKey{doctorID: doctorID, date: date, slot: slot}
}

func (m *mockLedger) Book(patientID string, doctorID int, date, slot, reason string) (int, error) {
	k := key(doctorID, date, slot)
	if m.booked[k] {
		return 0, ledger.ErrSlotTaken
	}
	m.booked[k] = true
	id := m.nextID
	m.nextID++
	return id, nil
}

func (m *mockLedger) Occupancy(doctorID int, dates, slots []string) [][]bool {
	grid := make([][]bool, len(slots))
	for r := range slots {
		grid[r] = make([]bool, len(dates))
		for c := range dates {
			grid[r][c] = m.booked[key(doctorID, dates[c], slots[r])]
		}
	}
	return grid
}

func newTestEngine() (*Service, *mockLedger) {
	dir := &mockDirectory{doctors: map[int]directory.Doctor{
		1: {ID: 1, Name: "Rajesh Kumar", Specialization: "Cardiology", ShiftStartHour: 9, ShiftHours: 8},
	}}
	led := newMockLedger()
	return NewService(dir, led, zerolog.Nop()), led
}

// -- Tests --

func TestRenderWeek(t *testing.T) {
	svc, _ := newTestEngine()
	anchor := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	grid, err := svc.RenderWeek(1, anchor)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if len(grid.Dates) != WindowDays {
		t.Fatalf("expected %d dates, got %d", WindowDays, len(grid.Dates))
	}
	if grid.Dates[0] != "01-09-2026" || grid.Dates[6] != "07-09-2026" {
		t.Errorf("unexpected window: %v", grid.Dates)
	}
	if len(grid.Slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(grid.Slots))
	}
	if grid.Slots[0] != "09:00-10:00" || grid.Slots[7] != "16:00-17:00" {
		t.Errorf("unexpected slots: %v", grid.Slots)
	}
	if len(grid.Booked) != 8 || len(grid.Booked[0]) != 7 {
		t.Errorf("grid dimensions %dx%d, want 8x7", len(grid.Booked), len(grid.Booked[0]))
	}
}

func TestRenderWeek_MonthBoundary(t *testing.T) {
	svc, _ := newTestEngine()
	anchor := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	grid, err := svc.RenderWeek(1, anchor)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if grid.Dates[3] != "01-09-2026" {
		t.Errorf("expected rollover to 01-09-2026, got %s", grid.Dates[3])
	}
}

func TestRenderWeek_DoctorNotFound(t *testing.T) {
	svc, _ := newTestEngine()
	if _, err := svc.RenderWeek(99, time.Time{}); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestRenderWeek_ReflectsBookings(t *testing.T) {
	svc, led := newTestEngine()
	anchor := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	if _, err := led.Book("P10001", 1, "02-09-2026", "10:00-11:00", ""); err != nil {
		t.Fatal(err)
	}

	grid, err := svc.RenderWeek(1, anchor)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !grid.Booked[1][1] {
		t.Error("expected slot 2 on day 2 to be booked")
	}
	if grid.Booked[0][0] {
		t.Error("expected slot 1 on day 1 to be free")
	}
}

func TestSelectCell_Bounds(t *testing.T) {
	svc, _ := newTestEngine()
	grid, err := svc.RenderWeek(1, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	tests := []struct {
		day, slot int
		wantErr   error
	}{
		{0, 1, ErrInvalidSelection},
		{8, 1, ErrInvalidSelection},
		{1, 0, ErrInvalidSelection},
		{1, 9, ErrInvalidSelection},
		{-3, -1, ErrInvalidSelection},
		{1, 1, nil},
		{7, 8, nil},
	}
	for _, tt := range tests {
		_, _, err := svc.SelectCell(grid, tt.day, tt.slot)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("day %d slot %d: got %v, want %v", tt.day, tt.slot, err, tt.wantErr)
		}
	}
}

func TestSelectCell_ResolvesDateAndLabel(t *testing.T) {
	svc, _ := newTestEngine()
	grid, _ := svc.RenderWeek(1, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))

	date, label, err := svc.SelectCell(grid, 3, 2)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if date != "03-09-2026" || label != "10:00-11:00" {
		t.Errorf("got (%s, %s)", date, label)
	}
}

func TestSelectCell_BookedCell(t *testing.T) {
	svc, led := newTestEngine()
	led.Book("P10001", 1, "01-09-2026", "09:00-10:00", "")

	grid, _ := svc.RenderWeek(1, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))
	if _, _, err := svc.SelectCell(grid, 1, 1); !errors.Is(err, ledger.ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken, got %v", err)
	}
}

// A grid is a hint, not a lock: when another booking lands between the
// snapshot and the commit, the ledger's own check rejects the commit.
func TestCommitBooking_StaleGrid(t *testing.T) {
	svc, led := newTestEngine()
	anchor := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	grid, _ := svc.RenderWeek(1, anchor)
	date, label, err := svc.SelectCell(grid, 1, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}

	// A competing booking lands after the snapshot was taken.
	if _, err := led.Book("P10002", 1, date, label, ""); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.CommitBooking("P10001", 1, date, label, ""); !errors.Is(err, ledger.ErrSlotTaken) {
		t.Errorf("expected ErrSlotTaken on stale commit, got %v", err)
	}
}

func TestCommitBooking_Succeeds(t *testing.T) {
	svc, _ := newTestEngine()

	id, err := svc.CommitBooking("P10001", 1, "01-09-2026", "09:00-10:00", "chest pain")
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if id != 1 {
		t.Errorf("expected appointment id 1, got %d", id)
	}
}
