package aggregate

import (
	"testing"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

func TestWorkday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		trips, units, extra float64
	}{
		{4, 1, 0},
		{10, 1, 6}, // công chặn trần 1, chuyến vượt đếm riêng
		{2, 0.5, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		units, extra := Workday(c.trips)
		if units != c.units || extra != c.extra {
			t.Fatalf("trips=%v: got (%v,%v) want (%v,%v)", c.trips, units, extra, c.units, c.extra)
		}
	}
}

func TestDailyKey_DiacriticEquivalence(t *testing.T) {
	t.Parallel()

	a := DailyKey("01/06/2024", "Nguyễn Văn Hùng")
	b := DailyKey("01/06/2024", "nguyen  van hung")
	if a != b {
		t.Fatalf("%q != %q", a, b)
	}
	if a == DailyKey("02/06/2024", "Nguyễn Văn Hùng") {
		t.Fatalf("different dates must not collide")
	}
}

func TestDailyAccumulator_MergeAndUnion(t *testing.T) {
	t.Parallel()

	agg := NewDaily()
	agg.Add("nguyen van hung", "01/06/2024", 3, 0, 2, "20B-12345", "đi sớm")
	agg.Add("Nguyễn Văn Hùng", "01/06/2024", 5, 1, 2, "20B-12345", "về muộn")

	recs := agg.Result()
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	r := recs[0]
	if r.Driver != "Nguyễn Văn Hùng" {
		t.Fatalf("driver: got %q", r.Driver)
	}
	if r.Customers != 8 || r.Tickets != 1 || r.Trips != 4 {
		t.Fatalf("sums: %+v", r)
	}
	if r.WorkUnits != 1 || r.ExtraTrips != 0 {
		t.Fatalf("workday: %+v", r)
	}
	if len(r.Plates) != 1 {
		t.Fatalf("plates not deduplicated: %v", r.Plates)
	}
	if r.Notes != "đi sớm; về muộn" {
		t.Fatalf("notes: got %q", r.Notes)
	}
}

func TestPreferName_RicherWins(t *testing.T) {
	t.Parallel()

	if got := preferName("Hung", "Hùng"); got != "Hùng" {
		t.Fatalf("diacritics: got %q", got)
	}
	if got := preferName("Hùng", "Nguyễn Văn Hùng"); got != "Nguyễn Văn Hùng" {
		t.Fatalf("longer: got %q", got)
	}
	if got := preferName("Nguyễn Văn Hùng", "Hung"); got != "Nguyễn Văn Hùng" {
		t.Fatalf("must not downgrade: got %q", got)
	}
}

func TestPhoneAccumulator_LastDate(t *testing.T) {
	t.Parallel()

	agg := NewPhone()
	agg.Add("0912345678", "Hùng", 1, "Tuyến A", "05/06/2024")
	agg.Add("0912345678", "Hùng", 1, "Tuyến B", "01/06/2024")

	recs := agg.Result()
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].LastDate != "05/06/2024" {
		t.Fatalf("lastDate: got %q", recs[0].LastDate)
	}
	if normalize.DateKey(recs[0].LastDate) != "20240605" {
		t.Fatalf("date key mismatch")
	}
	if len(recs[0].Routes) != 2 {
		t.Fatalf("routes: %v", recs[0].Routes)
	}
}

func TestPricingAccumulator_RevenueSum(t *testing.T) {
	t.Parallel()

	agg := NewPricing()
	agg.Add("Thái Nguyên - Mỹ Đình", 90000, "Học sinh có trung chuyển", 2)
	agg.Add("Thái Nguyên - Mỹ Đình", 90000, "Học sinh có trung chuyển", 1)
	agg.Add("Thái Nguyên - Mỹ Đình", 100000, "Khách trung chuyển taxi/bus", 1)

	recs := agg.Result()
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	// doanh thu cao hơn đứng trước
	if recs[0].Revenue != 270000 {
		t.Fatalf("first revenue: got %v", recs[0].Revenue)
	}
}
