package store

import (
	"sync"

	"github.com/tripoli-karting/tentdesk/internal/domain"
)

// ReceiptLog is the append-only record of issued receipts. Entries are frozen
// snapshots; nothing mutates them after Add.
type ReceiptLog struct {
	mu       sync.RWMutex
	receipts []domain.Receipt
	index    map[string]int
}

func NewReceiptLog() *ReceiptLog {
	return &ReceiptLog{
		index: make(map[string]int),
	}
}

func (s *ReceiptLog) Add(r domain.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Zones = append([]string(nil), r.Zones...)
	s.index[r.ID] = len(s.receipts)
	s.receipts = append(s.receipts, r)
}

func (s *ReceiptLog) Get(id string) (domain.Receipt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Receipt{}, false
	}
	r := s.receipts[i]
	r.Zones = append([]string(nil), r.Zones...)
	return r, true
}

func (s *ReceiptLog) List() []domain.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Receipt, len(s.receipts))
	for i, r := range s.receipts {
		r.Zones = append([]string(nil), r.Zones...)
		out[i] = r
	}
	return out
}
