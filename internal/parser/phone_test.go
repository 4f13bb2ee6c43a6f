package parser

import (
	"testing"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

func TestExtractPhone_GroupsFormattingVariants(t *testing.T) {
	t.Parallel()

	// cùng một số viết ba kiểu khác nhau phải về chung một khóa
	m := model.Matrix{
		srow("Số điện thoại", "Tên khách", "Tuyến", "Ngày"),
		srow("0912.345.678", "Anh Hùng", "Thái Nguyên - Mỹ Đình", "01/06/2024"),
		srow("+84 912 345 678", "Hùng", "Mỹ Đình - Thái Nguyên", "05/06/2024"),
		srow("0912345678", "", "", ""),
	}
	recs, parsed := ExtractPhone(m)
	if len(recs) != 1 || parsed != 3 {
		t.Fatalf("got %d records, %d parsed", len(recs), parsed)
	}
	r := recs[0]
	if r.Phone != "0912345678" {
		t.Fatalf("phone: got %q", r.Phone)
	}
	if r.Trips != 3 {
		t.Fatalf("trips: got %v", r.Trips)
	}
	if r.LastDate != "05/06/2024" {
		t.Fatalf("lastDate: got %q", r.LastDate)
	}
	if len(r.Routes) != 2 {
		t.Fatalf("routes: got %v", r.Routes)
	}
}

func TestExtractPhone_ScansRowWhenColumnMissing(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("Số điện thoại", "Ghi chú"),
		srow("", "Liên hệ: 0912.345.678 (khách quen)"),
	}
	recs, _ := ExtractPhone(m)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if recs[0].Phone != "0912345678" {
		t.Fatalf("phone: got %q", recs[0].Phone)
	}
}
