package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// AdZones are the six fixed advertising slots on the track.
var AdZones = []string{"A", "B", "C", "D", "E", "F"}

func IsAdZone(z string) bool {
	for _, zone := range AdZones {
		if z == zone {
			return true
		}
	}
	return false
}

// Receipt is a frozen snapshot of a completed booking. Later mutation of the
// originating tent never changes an issued receipt.
type Receipt struct {
	ID             string   `json:"id"`
	TentCode       string   `json:"tent_code"`
	ClientName     string   `json:"client_name"`
	Phone          string   `json:"phone"`
	Date           string   `json:"date"`
	Price          float64  `json:"price"`
	Usage          string   `json:"usage"`
	Services       Services `json:"services"`
	Zones          []string `json:"zones"`
	QtyCarFlags    int      `json:"qty_car_flags"`
	QtyBannerFlags int      `json:"qty_banner_flags"`
	Notes          string   `json:"notes"`
	GeneratedBy    string   `json:"generated_by"`
}

// BookingRequest is the form submission the presentation layer hands to the
// booking workflow.
type BookingRequest struct {
	TentCode       string   `json:"tent_code"`
	ClientName     string   `json:"client_name"`
	Phone          string   `json:"phone"`
	Date           string   `json:"date"`
	Price          float64  `json:"price"`
	Usage          string   `json:"usage"`
	Services       Services `json:"services"`
	Zones          []string `json:"zones"`
	QtyCarFlags    int      `json:"qty_car_flags"`
	QtyBannerFlags int      `json:"qty_banner_flags"`
	Notes          string   `json:"notes"`
}

func (r *BookingRequest) Normalize() {
	r.TentCode = strings.ToUpper(strings.TrimSpace(r.TentCode))
	r.ClientName = strings.TrimSpace(r.ClientName)
	r.Phone = NormalizePhone(r.Phone)
	r.Date = strings.TrimSpace(r.Date)
	r.Usage = strings.TrimSpace(r.Usage)
	r.Notes = strings.TrimSpace(r.Notes)
	for i, z := range r.Zones {
		r.Zones[i] = strings.ToUpper(strings.TrimSpace(z))
	}
}

func (r *BookingRequest) Validate() error {
	if _, _, ok := ParseTentCode(r.TentCode); !ok {
		return fmt.Errorf("invalid tent code %q", r.TentCode)
	}
	if r.ClientName == "" {
		return fmt.Errorf("client name is required")
	}
	if !IsValidPhone(r.Phone) {
		return fmt.Errorf("invalid phone number")
	}
	if r.Date == "" {
		return fmt.Errorf("booking date is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if r.Usage == "" {
		return fmt.Errorf("usage purpose is required")
	}
	if r.QtyCarFlags < 0 || r.QtyBannerFlags < 0 {
		return fmt.Errorf("flag quantities must not be negative")
	}
	for _, z := range r.Zones {
		if !IsAdZone(z) {
			return fmt.Errorf("unknown advertising zone %q", z)
		}
	}
	return nil
}

// NormalizePhone strips everything but digits and a leading +.
func NormalizePhone(phone string) string {
	cleaned := strings.TrimSpace(phone)
	if cleaned == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range cleaned {
		if i == 0 && r == '+' {
			result.WriteRune(r)
		} else if unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// IsValidPhone performs basic phone validation.
func IsValidPhone(phone string) bool {
	normalized := NormalizePhone(phone)
	if len(normalized) < 7 {
		return false
	}

	first := rune(normalized[0])
	return first == '+' || unicode.IsDigit(first)
}
