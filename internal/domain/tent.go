package domain

import (
	"fmt"
	"sort"
	"strconv"
)

type TentStatus string

const (
	TentAvailable TentStatus = "available"
	TentBooked    TentStatus = "booked"
	TentReserved  TentStatus = "reserved"
)

func ParseTentStatus(s string) (TentStatus, bool) {
	switch TentStatus(s) {
	case TentAvailable, TentBooked, TentReserved:
		return TentStatus(s), true
	default:
		return "", false
	}
}

// Services are the optional extras a client can book with a tent.
type Services struct {
	Electricity bool `json:"electricity"`
	Chairs      bool `json:"chairs"`
	Table       bool `json:"table"`
}

func (s Services) Any() bool {
	return s.Electricity || s.Chairs || s.Table
}

// Tent is one bookable unit. Booking detail fields are either all empty
// (status available) or populated together by a single booking commit.
type Tent struct {
	Code          string     `json:"code"`
	Status        TentStatus `json:"status"`
	ClientName    string     `json:"client_name,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	BookingDate   string     `json:"booking_date,omitempty"`
	Price         float64    `json:"price,omitempty"`
	Usage         string     `json:"usage,omitempty"`
	Services      Services   `json:"services"`
	Zones         []string   `json:"zones,omitempty"`
	QtyCarFlags   int        `json:"qty_car_flags,omitempty"`
	QtyBannerFlags int       `json:"qty_banner_flags,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	ReceiptID     string     `json:"receipt_id,omitempty"`
}

// TentPatch carries a partial update; nil fields keep their prior values.
type TentPatch struct {
	Status         *TentStatus `json:"status,omitempty"`
	ClientName     *string     `json:"client_name,omitempty"`
	Phone          *string     `json:"phone,omitempty"`
	BookingDate    *string     `json:"booking_date,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	Usage          *string     `json:"usage,omitempty"`
	Services       *Services   `json:"services,omitempty"`
	Zones          *[]string   `json:"zones,omitempty"`
	QtyCarFlags    *int        `json:"qty_car_flags,omitempty"`
	QtyBannerFlags *int        `json:"qty_banner_flags,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
	ReceiptID      *string     `json:"receipt_id,omitempty"`
}

// Tent groups model the physical layout: two short rows above and below the
// track area, two long rows on either side.
type TentGroup struct {
	Prefix string
	Count  int
}

var TentGroups = []TentGroup{
	{Prefix: "T", Count: 9},
	{Prefix: "B", Count: 9},
	{Prefix: "L", Count: 19},
	{Prefix: "R", Count: 19},
}

// TentLayout returns the full set of tent codes in layout order.
func TentLayout() []string {
	var codes []string
	for _, g := range TentGroups {
		for i := 1; i <= g.Count; i++ {
			codes = append(codes, fmt.Sprintf("%s%d", g.Prefix, i))
		}
	}
	return codes
}

// ParseTentCode splits a code into its group prefix and one-based index.
func ParseTentCode(code string) (prefix string, index int, ok bool) {
	if len(code) < 2 {
		return "", 0, false
	}
	prefix = code[:1]
	index, err := strconv.Atoi(code[1:])
	if err != nil || index < 1 {
		return "", 0, false
	}
	for _, g := range TentGroups {
		if g.Prefix == prefix {
			return prefix, index, index <= g.Count
		}
	}
	return "", 0, false
}

func groupRank(prefix string) int {
	for i, g := range TentGroups {
		if g.Prefix == prefix {
			return i
		}
	}
	return len(TentGroups)
}

// CompareTentCodes orders codes by group, then numerically within a group,
// so L10 sorts after L9 rather than after L1.
func CompareTentCodes(a, b string) int {
	pa, ia, _ := ParseTentCode(a)
	pb, ib, _ := ParseTentCode(b)
	if ra, rb := groupRank(pa), groupRank(pb); ra != rb {
		return ra - rb
	}
	return ia - ib
}

// SortTentCodes sorts codes in display order.
func SortTentCodes(codes []string) {
	sort.Slice(codes, func(i, j int) bool {
		return CompareTentCodes(codes[i], codes[j]) < 0
	})
}
