package service

import (
	"context"
	"fmt"

	"github.com/tripoli-karting/tentdesk/internal/clock"
	"github.com/tripoli-karting/tentdesk/internal/domain"
	"github.com/tripoli-karting/tentdesk/internal/receipt"
	"github.com/tripoli-karting/tentdesk/internal/store"
	"github.com/tripoli-karting/tentdesk/pkg/config"
	"github.com/tripoli-karting/tentdesk/pkg/events"
	"github.com/tripoli-karting/tentdesk/pkg/logger"
)

type BookingResult struct {
	Receipt  domain.Receipt
	Document []byte
	Filename string
}

type BookingService interface {
	Book(ctx context.Context, req *domain.BookingRequest, operatorPhone string) (*BookingResult, error)
	Regenerate(ctx context.Context, receiptID string) (*BookingResult, error)
	ListReceipts(ctx context.Context) []domain.Receipt
}

type bookingService struct {
	inventory *store.Inventory
	receipts  *store.ReceiptLog
	composer  *receipt.Composer
	publisher events.Publisher
	clock     clock.Clock
	config    *config.Config
}

func NewBookingService(
	inventory *store.Inventory,
	receipts *store.ReceiptLog,
	composer *receipt.Composer,
	publisher events.Publisher,
	clk clock.Clock,
	config *config.Config,
) BookingService {
	return &bookingService{
		inventory: inventory,
		receipts:  receipts,
		composer:  composer,
		publisher: publisher,
		clock:     clk,
		config:    config,
	}
}

// Book runs the booking in two phases: the receipt document is composed
// first, and the tent transition commits only once the bytes exist. A
// composition failure therefore never leaves a tent booked without a
// delivered receipt.
func (s *bookingService) Book(ctx context.Context, req *domain.BookingRequest, operatorPhone string) (*BookingResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tent, ok := s.inventory.Get(req.TentCode)
	if !ok {
		return nil, domain.ErrTentNotFound
	}
	if tent.Status != domain.TentAvailable {
		return nil, domain.ErrTentUnavailable
	}

	rcpt := domain.Receipt{
		ID:             fmt.Sprintf("%d", s.clock.Now().UnixMilli()),
		TentCode:       req.TentCode,
		ClientName:     req.ClientName,
		Phone:          req.Phone,
		Date:           req.Date,
		Price:          req.Price,
		Usage:          req.Usage,
		Services:       req.Services,
		Zones:          append([]string(nil), req.Zones...),
		QtyCarFlags:    req.QtyCarFlags,
		QtyBannerFlags: req.QtyBannerFlags,
		Notes:          req.Notes,
		GeneratedBy:    operatorPhone,
	}

	doc, err := s.composeWithTimeout(ctx, rcpt)
	if err != nil {
		logger.ErrorContext(ctx, "Receipt composition failed, booking aborted",
			"error", err, "tent", req.TentCode)
		return nil, err
	}

	// Atomic commit: fails if another submission took the tent since the
	// availability check above.
	if err := s.inventory.Book(req.TentCode, rcpt); err != nil {
		return nil, err
	}

	s.receipts.Add(rcpt)

	if err := s.publisher.Publish(ctx, events.SubjectBookingCreated, rcpt); err != nil {
		logger.WarnContext(ctx, "Failed to publish booking event", "error", err, "receipt_id", rcpt.ID)
	}

	logger.InfoContext(ctx, "Tent booked",
		"tent", rcpt.TentCode,
		"receipt_id", rcpt.ID,
		"client", rcpt.ClientName,
	)

	return &BookingResult{
		Receipt:  rcpt,
		Document: doc,
		Filename: s.composer.Filename(rcpt),
	}, nil
}

// Regenerate re-composes the document for an issued receipt. Composition is
// pure, so the output and its filename are stable across calls.
func (s *bookingService) Regenerate(ctx context.Context, receiptID string) (*BookingResult, error) {
	rcpt, ok := s.receipts.Get(receiptID)
	if !ok {
		return nil, domain.ErrReceiptNotFound
	}

	doc, err := s.composeWithTimeout(ctx, rcpt)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.SubjectReceiptGenerated, rcpt); err != nil {
		logger.WarnContext(ctx, "Failed to publish receipt event", "error", err, "receipt_id", rcpt.ID)
	}

	return &BookingResult{
		Receipt:  rcpt,
		Document: doc,
		Filename: s.composer.Filename(rcpt),
	}, nil
}

func (s *bookingService) ListReceipts(ctx context.Context) []domain.Receipt {
	return s.receipts.List()
}

// composeWithTimeout bounds the document generation step so a hang surfaces
// as an error instead of stalling the submission.
func (s *bookingService) composeWithTimeout(ctx context.Context, rcpt domain.Receipt) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Receipt.ComposeTimeout)
	defer cancel()

	type result struct {
		doc []byte
		err error
	}
	done := make(chan result, 1)

	go func() {
		doc, err := s.composer.Compose(rcpt)
		done <- result{doc: doc, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrDocumentFailed, res.err)
		}
		return res.doc, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentFailed, ctx.Err())
	}
}
