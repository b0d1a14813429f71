package store

import (
	"sync"

	"github.com/tripoli-karting/tentdesk/internal/domain"
)

// Inventory holds the fixed tent collection in process memory. It is the only
// mutator of tent state.
type Inventory struct {
	mu    sync.RWMutex
	tents []*domain.Tent
	index map[string]*domain.Tent
}

func NewInventory() *Inventory {
	return &Inventory{
		index: make(map[string]*domain.Tent),
	}
}

// Initialize seeds the 56-tent layout. Calling it again is a no-op, not a
// reset.
func (s *Inventory) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tents) > 0 {
		return
	}

	for _, code := range domain.TentLayout() {
		t := &domain.Tent{Code: code, Status: domain.TentAvailable}
		s.tents = append(s.tents, t)
		s.index[code] = t
	}
}

// List returns a snapshot of every tent in layout order.
func (s *Inventory) List() []domain.Tent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Tent, 0, len(s.tents))
	for _, t := range s.tents {
		out = append(out, cloneTent(t))
	}
	return out
}

// ListAvailable returns available tents in stable insertion order.
func (s *Inventory) ListAvailable() []domain.Tent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Tent
	for _, t := range s.tents {
		if t.Status == domain.TentAvailable {
			out = append(out, cloneTent(t))
		}
	}
	return out
}

// Get returns a snapshot of the tent with the given code.
func (s *Inventory) Get(code string) (domain.Tent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.index[code]
	if !ok {
		return domain.Tent{}, false
	}
	return cloneTent(t), true
}

// Update merges the patch into the matching tent. Unknown codes are a silent
// no-op; callers are expected to have checked existence.
func (s *Inventory) Update(code string, patch domain.TentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.index[code]
	if !ok {
		return
	}
	applyPatch(t, patch)
}

// Book atomically transitions a tent from available to booked and populates
// every booking detail field in one step. It fails with ErrTentNotFound or
// ErrTentUnavailable without touching the tent.
func (s *Inventory) Book(code string, r domain.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.index[code]
	if !ok {
		return domain.ErrTentNotFound
	}
	if t.Status != domain.TentAvailable {
		return domain.ErrTentUnavailable
	}

	t.Status = domain.TentBooked
	t.ClientName = r.ClientName
	t.Phone = r.Phone
	t.BookingDate = r.Date
	t.Price = r.Price
	t.Usage = r.Usage
	t.Services = r.Services
	t.Zones = append([]string(nil), r.Zones...)
	t.QtyCarFlags = r.QtyCarFlags
	t.QtyBannerFlags = r.QtyBannerFlags
	t.Notes = r.Notes
	t.ReceiptID = r.ID
	return nil
}

func cloneTent(t *domain.Tent) domain.Tent {
	c := *t
	c.Zones = append([]string(nil), t.Zones...)
	return c
}

func applyPatch(t *domain.Tent, p domain.TentPatch) {
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ClientName != nil {
		t.ClientName = *p.ClientName
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
	}
	if p.BookingDate != nil {
		t.BookingDate = *p.BookingDate
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Usage != nil {
		t.Usage = *p.Usage
	}
	if p.Services != nil {
		t.Services = *p.Services
	}
	if p.Zones != nil {
		t.Zones = append([]string(nil), (*p.Zones)...)
	}
	if p.QtyCarFlags != nil {
		t.QtyCarFlags = *p.QtyCarFlags
	}
	if p.QtyBannerFlags != nil {
		t.QtyBannerFlags = *p.QtyBannerFlags
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.ReceiptID != nil {
		t.ReceiptID = *p.ReceiptID
	}
}
