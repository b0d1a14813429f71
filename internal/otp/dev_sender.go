package otp

import (
	"fmt"
	"time"

	"github.com/tripoli-karting/tentdesk/pkg/logger"
)

// DevSender discloses the code on screen instead of transmitting it. This is
// the stand-in for a real SMS gateway.
type DevSender struct{}

func NewDevSender() *DevSender {
	return &DevSender{}
}

func (d *DevSender) SendCode(phone, code string, expiresAt time.Time) error {
	logger.Info("📱 [DEV SMS] One-time code",
		"to", phone,
		"code", code,
		"expires_at", expiresAt.Format(time.RFC3339),
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📱 ONE-TIME CODE (DEV MODE)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"To: %s\n"+
		"Code: %s\n"+
		"Expires: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		phone, code, expiresAt.Format(time.RFC3339))

	return nil
}
