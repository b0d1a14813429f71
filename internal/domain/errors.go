package domain

import "errors"

var (
	ErrOTPSendFailed   = errors.New("otp delivery failed")
	ErrNoPendingCode   = errors.New("no code pending")
	ErrOTPExpired      = errors.New("code expired")
	ErrOTPMismatch     = errors.New("code mismatch")
	ErrTentNotFound    = errors.New("tent not found")
	ErrTentUnavailable = errors.New("tent not available")
	ErrDocumentFailed  = errors.New("document generation failed")
	ErrReceiptNotFound = errors.New("receipt not found")
)
