package parser

import (
	"testing"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

func TestRouteGroup_Bidirectional(t *testing.T) {
	t.Parallel()

	a, knownA := RouteGroup("Thái Nguyên - Mỹ Đình")
	b, knownB := RouteGroup("Mỹ Đình đi Thái Nguyên")
	if !knownA || !knownB {
		t.Fatalf("known: %v %v", knownA, knownB)
	}
	if a != b {
		t.Fatalf("groups differ: %q vs %q", a, b)
	}
	// viết thiếu dấu vẫn về cùng nhóm
	c, knownC := RouteGroup("Thai Nguyen - My Dinh")
	if !knownC || c != a {
		t.Fatalf("no-diacritic: known=%v group=%q", knownC, c)
	}
}

func TestRouteGroup_UnknownKeepsRawName(t *testing.T) {
	t.Parallel()

	g, known := RouteGroup("Hà Nội - Hải Phòng")
	if known || g != "Hà Nội - Hải Phòng" {
		t.Fatalf("got known=%v group=%q", known, g)
	}
}

func TestClassifyTicket(t *testing.T) {
	t.Parallel()

	if got := ClassifyTicket(100000, true); got != TicketTransitRider {
		t.Fatalf("100k in group: got %q", got)
	}
	if got := ClassifyTicket(90000, true); got != TicketStudentTransit {
		t.Fatalf("90k in group: got %q", got)
	}
	if got := ClassifyTicket(70000, true); got != TicketStudentRegular {
		t.Fatalf("70k in group: got %q", got)
	}
	if got := ClassifyTicket(90000, false); got != TicketStudent {
		t.Fatalf("90k out of group: got %q", got)
	}
	if got := ClassifyTicket(80000, false); got != TicketRegular {
		t.Fatalf("80k out of group: got %q", got)
	}
}

func TestExtractPricing_FilterAndClassify(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("Tuyến", "Đơn giá", "Số lượng"),
		srow("Thái Nguyên - Mỹ Đình", "90000", "2"),
		srow("Thái Nguyên - Mỹ Đình", "200000", "1"), // vượt trần, loại
		srow("Thái Nguyên - Mỹ Đình", "0", "3"),      // giá 0, loại
	}
	recs, parsed := ExtractPricing(m, DefaultPriceCeiling)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	// hai dòng bị loại không tính là dòng trích được
	if parsed != 1 {
		t.Fatalf("parsed: got %d", parsed)
	}
	r := recs[0]
	if r.TicketType != TicketStudentTransit {
		t.Fatalf("type: got %q", r.TicketType)
	}
	if r.Quantity != 2 || r.Revenue != 180000 {
		t.Fatalf("qty=%v revenue=%v", r.Quantity, r.Revenue)
	}
}

func TestExtractPricing_CeilingZeroAndNegative(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("Tuyến", "Đơn giá", "Số lượng"),
		srow("Thái Nguyên - Mỹ Đình", "90000", "2"),
	}
	// trần 0 là giá trị cấu hình hợp lệ: mọi giá dương đều vượt trần
	if recs, _ := ExtractPricing(m, 0); len(recs) != 0 {
		t.Fatalf("ceiling 0: got %d records", len(recs))
	}
	// trần âm mới rơi về mặc định
	recs, _ := ExtractPricing(m, -1)
	if len(recs) != 1 {
		t.Fatalf("negative ceiling: got %d records", len(recs))
	}
}

func TestExtractPricing_MergesBothDirections(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("Tuyến", "Đơn giá", "Số lượng"),
		srow("Thái Nguyên - Mỹ Đình", "70000", "1"),
		srow("Mỹ Đình - Thái Nguyên", "70000", "2"),
	}
	recs, _ := ExtractPricing(m, DefaultPriceCeiling)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].Quantity != 3 || recs[0].Revenue != 210000 {
		t.Fatalf("qty=%v revenue=%v", recs[0].Quantity, recs[0].Revenue)
	}
}
