package domain

import (
	"strings"
	"testing"
)

func TestTentLayout(t *testing.T) {
	codes := TentLayout()

	if len(codes) != 56 {
		t.Fatalf("expected 56 tents, got %d", len(codes))
	}

	counts := map[string]int{}
	for _, code := range codes {
		counts[code[:1]]++
	}
	want := map[string]int{"T": 9, "B": 9, "L": 19, "R": 19}
	for prefix, n := range want {
		if counts[prefix] != n {
			t.Errorf("group %s: expected %d tents, got %d", prefix, n, counts[prefix])
		}
	}

	if codes[0] != "T1" || codes[8] != "T9" || codes[9] != "B1" {
		t.Errorf("unexpected layout order: %v", codes[:10])
	}
}

func TestParseTentCode(t *testing.T) {
	tests := []struct {
		code   string
		ok     bool
		prefix string
		index  int
	}{
		{"T1", true, "T", 1},
		{"L19", true, "L", 19},
		{"R19", true, "R", 19},
		{"T10", false, "", 0},  // T group only has 9
		{"L20", false, "", 0},  // past end of group
		{"X5", false, "", 0},   // unknown group
		{"L0", false, "", 0},   // one-based
		{"L", false, "", 0},    // missing index
		{"", false, "", 0},
		{"Lx", false, "", 0},
	}

	for _, tt := range tests {
		prefix, index, ok := ParseTentCode(tt.code)
		if ok != tt.ok {
			t.Errorf("ParseTentCode(%q): ok = %v, want %v", tt.code, ok, tt.ok)
			continue
		}
		if ok && (prefix != tt.prefix || index != tt.index) {
			t.Errorf("ParseTentCode(%q) = %s, %d; want %s, %d", tt.code, prefix, index, tt.prefix, tt.index)
		}
	}
}

func TestTentCodeOrderingIsNumericWithinGroup(t *testing.T) {
	if CompareTentCodes("L2", "L10") >= 0 {
		t.Error("L2 must sort before L10")
	}
	if CompareTentCodes("L10", "L9") <= 0 {
		t.Error("L10 must sort after L9")
	}

	codes := []string{"L10", "R1", "L2", "T3", "B5", "L9"}
	SortTentCodes(codes)
	want := "T3 B5 L2 L9 L10 R1"
	if got := strings.Join(codes, " "); got != want {
		t.Errorf("sorted order = %q, want %q", got, want)
	}
}

func TestParseTentStatus(t *testing.T) {
	for _, s := range []string{"available", "booked", "reserved"} {
		if _, ok := ParseTentStatus(s); !ok {
			t.Errorf("ParseTentStatus(%q) should succeed", s)
		}
	}
	if _, ok := ParseTentStatus("pending"); ok {
		t.Error("ParseTentStatus should reject unknown status")
	}
}

func TestBookingRequestValidate(t *testing.T) {
	valid := func() BookingRequest {
		return BookingRequest{
			TentCode:   "T1",
			ClientName: "Alice",
			Phone:      "555-0100",
			Date:       "2025-06-01",
			Price:      50,
			Usage:      "Team hospitality",
			Zones:      []string{"A", "C"},
		}
	}

	req := valid()
	req.Normalize()
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if req.Phone != "5550100" {
		t.Errorf("phone not normalized: %q", req.Phone)
	}

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"bad tent code", func(r *BookingRequest) { r.TentCode = "Z1" }},
		{"missing name", func(r *BookingRequest) { r.ClientName = "  " }},
		{"negative price", func(r *BookingRequest) { r.Price = -1 }},
		{"missing usage", func(r *BookingRequest) { r.Usage = "" }},
		{"unknown zone", func(r *BookingRequest) { r.Zones = []string{"G"} }},
		{"negative flags", func(r *BookingRequest) { r.QtyCarFlags = -1 }},
		{"missing date", func(r *BookingRequest) { r.Date = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(&req)
			req.Normalize()
			if err := req.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBookingRequestNormalizeUppercasesCodes(t *testing.T) {
	req := BookingRequest{TentCode: " t1 ", Zones: []string{" a ", "c"}}
	req.Normalize()
	if req.TentCode != "T1" {
		t.Errorf("TentCode = %q, want T1", req.TentCode)
	}
	if req.Zones[0] != "A" || req.Zones[1] != "C" {
		t.Errorf("zones not normalized: %v", req.Zones)
	}
}
