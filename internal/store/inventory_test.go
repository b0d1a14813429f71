package store

import (
	"errors"
	"testing"

	"github.com/tripoli-karting/tentdesk/internal/domain"
)

func testReceipt(tentCode string) domain.Receipt {
	return domain.Receipt{
		ID:         "1700000000000",
		TentCode:   tentCode,
		ClientName: "Alice",
		Phone:      "5550100",
		Date:       "2025-06-01",
		Price:      50,
		Usage:      "Team hospitality",
		Zones:      []string{"A", "C"},
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	inv := NewInventory()

	inv.Initialize()
	if got := len(inv.List()); got != 56 {
		t.Fatalf("expected 56 tents after initialize, got %d", got)
	}

	// Book one, then initialize again: not duplicated, not reset.
	if err := inv.Book("T1", testReceipt("T1")); err != nil {
		t.Fatal(err)
	}
	inv.Initialize()

	if got := len(inv.List()); got != 56 {
		t.Errorf("second initialize changed collection size: %d", got)
	}
	tent, _ := inv.Get("T1")
	if tent.Status != domain.TentBooked {
		t.Error("second initialize reset tent state")
	}
}

func TestListAvailableShrinksAfterBooking(t *testing.T) {
	inv := NewInventory()
	inv.Initialize()

	if got := len(inv.ListAvailable()); got != 56 {
		t.Fatalf("expected 56 available, got %d", got)
	}

	if err := inv.Book("T1", testReceipt("T1")); err != nil {
		t.Fatal(err)
	}

	available := inv.ListAvailable()
	if len(available) != 55 {
		t.Errorf("expected 55 available after booking, got %d", len(available))
	}
	for _, tent := range available {
		if tent.Code == "T1" {
			t.Error("booked tent still listed as available")
		}
	}

	tent, ok := inv.Get("T1")
	if !ok || tent.Status != domain.TentBooked {
		t.Errorf("T1 status = %v, want booked", tent.Status)
	}
	if tent.ClientName != "Alice" || tent.ReceiptID != "1700000000000" {
		t.Error("booking details not populated together")
	}
}

func TestBookIsCompareAndSwap(t *testing.T) {
	inv := NewInventory()
	inv.Initialize()

	if err := inv.Book("T1", testReceipt("T1")); err != nil {
		t.Fatal(err)
	}

	err := inv.Book("T1", testReceipt("T1"))
	if !errors.Is(err, domain.ErrTentUnavailable) {
		t.Errorf("second booking: err = %v, want ErrTentUnavailable", err)
	}

	if err := inv.Book("Z9", testReceipt("Z9")); !errors.Is(err, domain.ErrTentNotFound) {
		t.Errorf("unknown code: err = %v, want ErrTentNotFound", err)
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	inv := NewInventory()
	inv.Initialize()

	if err := inv.Book("B3", testReceipt("B3")); err != nil {
		t.Fatal(err)
	}

	notes := "gate access after 6pm"
	inv.Update("B3", domain.TentPatch{Notes: &notes})

	tent, _ := inv.Get("B3")
	if tent.Notes != notes {
		t.Errorf("notes = %q, want %q", tent.Notes, notes)
	}
	if tent.ClientName != "Alice" || tent.Status != domain.TentBooked {
		t.Error("unspecified fields did not retain prior values")
	}

	// Unknown code is a silent no-op.
	inv.Update("Z9", domain.TentPatch{Notes: &notes})
}

func TestGetReturnsSnapshot(t *testing.T) {
	inv := NewInventory()
	inv.Initialize()

	if err := inv.Book("L5", testReceipt("L5")); err != nil {
		t.Fatal(err)
	}

	tent, _ := inv.Get("L5")
	tent.Zones[0] = "F"
	tent.ClientName = "Mallory"

	fresh, _ := inv.Get("L5")
	if fresh.Zones[0] != "A" || fresh.ClientName != "Alice" {
		t.Error("mutating a returned tent leaked into the store")
	}
}
