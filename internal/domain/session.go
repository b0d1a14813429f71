package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Session is the single operator login cycle. PendingCodeHash and CodeExpiry
// are set together on request and cleared together on verify/expiry/logout.
type Session struct {
	PhoneNumber     string
	PendingCodeHash string
	CodeExpiry      time.Time
	Authenticated   bool
}

func (s *Session) HasPendingCode() bool {
	return s.PendingCodeHash != ""
}

func (s *Session) CodeExpired(now time.Time) bool {
	return s.HasPendingCode() && now.After(s.CodeExpiry)
}

// ClearPending drops the pending code and its expiry as a pair.
func (s *Session) ClearPending() {
	s.PendingCodeHash = ""
	s.CodeExpiry = time.Time{}
}

type OTPRequest struct {
	Phone string `json:"phone"`
}

type OTPVerify struct {
	Code string `json:"code"`
}

type SessionResponse struct {
	SessionToken string `json:"session_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Phone        string `json:"phone"`
}

var otpCodePattern = regexp.MustCompile(`^\d{6}$`)

func (r *OTPRequest) Normalize() {
	r.Phone = NormalizePhone(r.Phone)
}

func (r *OTPRequest) Validate() error {
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if !IsValidPhone(r.Phone) {
		return fmt.Errorf("invalid phone number")
	}
	return nil
}

func (r *OTPVerify) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
}

func (r *OTPVerify) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	if !otpCodePattern.MatchString(r.Code) {
		return fmt.Errorf("code must be 6 digits")
	}
	return nil
}
