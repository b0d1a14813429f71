package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tripoli-karting/tentdesk/internal/clock"
	"github.com/tripoli-karting/tentdesk/internal/domain"
	"github.com/tripoli-karting/tentdesk/internal/receipt"
	"github.com/tripoli-karting/tentdesk/internal/store"
	"github.com/tripoli-karting/tentdesk/pkg/config"
	"github.com/tripoli-karting/tentdesk/pkg/events"
)

type capturingPublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *capturingPublisher) Publish(_ context.Context, subject string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func bookingConfig() *config.Config {
	return &config.Config{
		Receipt: config.ReceiptConfig{
			ComposeTimeout: 10 * time.Second,
			EventName:      "TRIPOLI KARTING RACE 2025",
			SeasonEN:       "SEASON 1",
			SeasonAR:       "الموسم الأول",
		},
	}
}

func validBooking(tentCode string) *domain.BookingRequest {
	return &domain.BookingRequest{
		TentCode:       tentCode,
		ClientName:     "Alice",
		Phone:          "555-0100",
		Date:           "2025-06-01",
		Price:          50,
		Usage:          "Team hospitality",
		Services:       domain.Services{Electricity: true},
		Zones:          []string{"A", "C"},
		QtyBannerFlags: 2,
	}
}

func newTestBooking(t *testing.T) (BookingService, *store.Inventory, *store.ReceiptLog, *capturingPublisher) {
	t.Helper()

	cfg := bookingConfig()
	inv := store.NewInventory()
	inv.Initialize()
	receipts := store.NewReceiptLog()
	publisher := &capturingPublisher{}
	composer := receipt.NewComposer(cfg.Receipt)
	fixed := clock.NewFixed(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	svc := NewBookingService(inv, receipts, composer, publisher, fixed, cfg)
	return svc, inv, receipts, publisher
}

func TestBookCommitsTentAndIssuesReceipt(t *testing.T) {
	svc, inv, receipts, publisher := newTestBooking(t)

	result, err := svc.Book(context.Background(), validBooking("T1"), "5550199")
	if err != nil {
		t.Fatalf("Book: %v", err)
	}

	if len(result.Document) == 0 {
		t.Error("no document bytes returned")
	}
	if result.Filename != "receipt-T1-"+result.Receipt.ID+".pdf" {
		t.Errorf("filename = %q", result.Filename)
	}
	if result.Receipt.GeneratedBy != "5550199" {
		t.Errorf("generatedBy = %q", result.Receipt.GeneratedBy)
	}

	tent, _ := inv.Get("T1")
	if tent.Status != domain.TentBooked {
		t.Errorf("tent status = %v, want booked", tent.Status)
	}
	if tent.ReceiptID != result.Receipt.ID {
		t.Error("tent does not reference the issued receipt")
	}
	if len(inv.ListAvailable()) != 55 {
		t.Errorf("available = %d, want 55", len(inv.ListAvailable()))
	}

	if _, ok := receipts.Get(result.Receipt.ID); !ok {
		t.Error("receipt not recorded")
	}
	if len(publisher.subjects) != 1 || publisher.subjects[0] != events.SubjectBookingCreated {
		t.Errorf("published subjects = %v", publisher.subjects)
	}
}

func TestBookRejectsUnavailableTentBeforeMutation(t *testing.T) {
	svc, inv, receipts, _ := newTestBooking(t)

	if _, err := svc.Book(context.Background(), validBooking("T1"), "op"); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Book(context.Background(), validBooking("T1"), "op")
	if !errors.Is(err, domain.ErrTentUnavailable) {
		t.Fatalf("err = %v, want ErrTentUnavailable", err)
	}

	if got := len(receipts.List()); got != 1 {
		t.Errorf("receipt count = %d, want 1 (conflict must not issue)", got)
	}

	tent, _ := inv.Get("T1")
	if tent.ClientName != "Alice" {
		t.Error("conflicting submission overwrote booking details")
	}
}

func TestBookUnknownTent(t *testing.T) {
	svc, _, _, _ := newTestBooking(t)

	req := validBooking("T1")
	req.TentCode = "Z9"
	if _, err := svc.Book(context.Background(), req, "op"); err == nil {
		t.Error("unknown tent code must fail")
	}
}

func TestReceiptSnapshotIsolation(t *testing.T) {
	svc, inv, receipts, _ := newTestBooking(t)

	result, err := svc.Book(context.Background(), validBooking("T3"), "op")
	if err != nil {
		t.Fatal(err)
	}
	if result.Receipt.Notes != "" {
		t.Fatalf("unexpected notes on receipt: %q", result.Receipt.Notes)
	}

	notes := "late arrival"
	inv.Update("T3", domain.TentPatch{Notes: &notes})

	frozen, _ := receipts.Get(result.Receipt.ID)
	if frozen.Notes != "" {
		t.Errorf("tent mutation leaked into issued receipt: %q", frozen.Notes)
	}
}

func TestRegenerateIsDeterministic(t *testing.T) {
	svc, _, _, _ := newTestBooking(t)

	result, err := svc.Book(context.Background(), validBooking("R7"), "op")
	if err != nil {
		t.Fatal(err)
	}

	again, err := svc.Regenerate(context.Background(), result.Receipt.ID)
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	if again.Filename != result.Filename {
		t.Errorf("filename changed across regenerations: %q vs %q", again.Filename, result.Filename)
	}
	if len(again.Document) != len(result.Document) {
		t.Error("regenerated document differs structurally")
	}

	if _, err := svc.Regenerate(context.Background(), "nope"); !errors.Is(err, domain.ErrReceiptNotFound) {
		t.Errorf("unknown receipt: err = %v, want ErrReceiptNotFound", err)
	}
}
