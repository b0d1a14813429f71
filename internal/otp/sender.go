package otp

import "time"

// Sender delivers a one-time code to the operator through an out-of-band
// channel. The production channel would be an SMS gateway; this desk ships a
// dev sender that surfaces the code directly, and an email sender.
type Sender interface {
	SendCode(phone, code string, expiresAt time.Time) error
}
