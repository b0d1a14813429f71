package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tripoli-karting/tentdesk/internal/clock"
	"github.com/tripoli-karting/tentdesk/internal/domain"
	"github.com/tripoli-karting/tentdesk/internal/otp"
	"github.com/tripoli-karting/tentdesk/internal/store"
	"github.com/tripoli-karting/tentdesk/pkg/auth"
	"github.com/tripoli-karting/tentdesk/pkg/config"
	"github.com/tripoli-karting/tentdesk/pkg/logger"
)

type AuthService interface {
	RequestCode(ctx context.Context, req *domain.OTPRequest) (time.Time, error)
	VerifyCode(ctx context.Context, req *domain.OTPVerify) (*domain.SessionResponse, error)
	Logout(ctx context.Context)
	IsAuthenticated() bool
}

type authService struct {
	sessions *store.SessionStore
	sender   otp.Sender
	clock    clock.Clock
	config   *config.Config
}

func NewAuthService(
	sessions *store.SessionStore,
	sender otp.Sender,
	clk clock.Clock,
	config *config.Config,
) AuthService {
	return &authService{
		sessions: sessions,
		sender:   sender,
		clock:    clk,
		config:   config,
	}
}

// RequestCode generates a fresh 6-digit code bound to the phone number and
// delivers it out of band. Any previous pending code is replaced.
func (s *authService) RequestCode(ctx context.Context, req *domain.OTPRequest) (time.Time, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("validation failed: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to generate code: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to hash code: %w", err)
	}

	expiresAt := s.clock.Now().Add(s.config.OTP.CodeTTL)

	if err := s.sender.SendCode(req.Phone, code, expiresAt); err != nil {
		logger.ErrorContext(ctx, "Failed to deliver one-time code", "error", err, "phone", req.Phone)
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrOTPSendFailed, err)
	}

	s.sessions.SetPending(req.Phone, string(codeHash), expiresAt)

	logger.InfoContext(ctx, "One-time code issued", "phone", req.Phone, "expires_at", expiresAt)
	return expiresAt, nil
}

// VerifyCode checks the submitted code against the pending one. An expired
// code is invalidated as a side effect; a mismatch leaves it intact so the
// operator can retry before expiry.
func (s *authService) VerifyCode(ctx context.Context, req *domain.OTPVerify) (*domain.SessionResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	session := s.sessions.Get()

	if !session.HasPendingCode() {
		return nil, domain.ErrNoPendingCode
	}

	if session.CodeExpired(s.clock.Now()) {
		s.sessions.ClearPending()
		return nil, domain.ErrOTPExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(session.PendingCodeHash), []byte(req.Code)); err != nil {
		return nil, domain.ErrOTPMismatch
	}

	s.sessions.MarkAuthenticated()

	token, err := auth.NewOperatorToken(session.PhoneNumber, s.config.Auth.JWTSecret, s.config.Auth.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session token: %w", err)
	}

	logger.InfoContext(ctx, "Operator authenticated", "phone", session.PhoneNumber)

	return &domain.SessionResponse{
		SessionToken: token,
		ExpiresIn:    int64(s.config.Auth.SessionTTL.Seconds()),
		Phone:        session.PhoneNumber,
	}, nil
}

// Logout unconditionally resets the session to its initial state.
func (s *authService) Logout(ctx context.Context) {
	s.sessions.Reset()
	logger.InfoContext(ctx, "Operator logged out")
}

func (s *authService) IsAuthenticated() bool {
	return s.sessions.Get().Authenticated
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
