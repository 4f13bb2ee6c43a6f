package parser

import (
	"testing"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

func TestExtractDaily_SingleRow(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("STT", "Ngày", "Tên lái xe", "Số khách"),
		srow("1", "01/06/2024", "Nguyễn Văn A", "12"),
	}
	recs, parsed := ExtractDaily(m)
	if len(recs) != 1 || parsed != 1 {
		t.Fatalf("got %d records, %d parsed", len(recs), parsed)
	}
	r := recs[0]
	if r.Driver != "Nguyễn Văn A" || r.Date != "01/06/2024" || r.Customers != 12 {
		t.Fatalf("unexpected record: %+v", r)
	}
}

func TestExtractDaily_DiacriticMerge(t *testing.T) {
	t.Parallel()

	// hai cách viết của cùng một người trong cùng ngày phải gộp làm
	// một, số khách cộng dồn, tên hiển thị giữ bản có dấu
	m := model.Matrix{
		srow("Ngày", "Tên lái xe", "Số khách"),
		srow("01/06/2024", "nguyen van hung", "3"),
		srow("01/06/2024", "Nguyễn Văn Hùng", "5"),
	}
	recs, parsed := ExtractDaily(m)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	// hai dòng nguồn, một bản ghi sau gộp
	if parsed != 2 {
		t.Fatalf("parsed: got %d", parsed)
	}
	if recs[0].Customers != 8 {
		t.Fatalf("customers: got %v", recs[0].Customers)
	}
	if recs[0].Driver != "Nguyễn Văn Hùng" {
		t.Fatalf("driver: got %q", recs[0].Driver)
	}
}

func TestExtractDaily_FillDownDate(t *testing.T) {
	t.Parallel()

	// ngày chỉ ghi một lần cho cả khối ô gộp
	m := model.Matrix{
		srow("Ngày", "Tên lái xe", "Số khách"),
		srow("02/06/2024", "Trần B", "4"),
		srow("", "Lê C", "6"),
	}
	recs, _ := ExtractDaily(m)
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	for _, r := range recs {
		if r.Date != "02/06/2024" {
			t.Fatalf("%s: date %q", r.Driver, r.Date)
		}
	}
}

func TestExtractDaily_SkipsSummaryRows(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("Ngày", "Tên lái xe", "Số khách"),
		srow("01/06/2024", "Trần B", "4"),
		srow("", "Tổng cộng", "4"),
	}
	recs, parsed := ExtractDaily(m)
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	// dòng tổng không tính là dòng trích được
	if parsed != 1 {
		t.Fatalf("parsed: got %d", parsed)
	}
}

func TestExtractDaily_SortNewestFirst(t *testing.T) {
	t.Parallel()

	m := model.Matrix{
		srow("Ngày", "Tên lái xe", "Số khách"),
		srow("01/06/2024", "Trần B", "4"),
		srow("03/06/2024", "Lê C", "2"),
		srow("02/06/2024", "Phạm D", "9"),
	}
	recs, _ := ExtractDaily(m)
	if len(recs) != 3 {
		t.Fatalf("got %d records", len(recs))
	}
	want := []string{"03/06/2024", "02/06/2024", "01/06/2024"}
	for i, w := range want {
		if recs[i].Date != w {
			t.Fatalf("pos %d: got %s", i, recs[i].Date)
		}
	}
}

func TestExtractSelf_RecordInput(t *testing.T) {
	t.Parallel()

	// dạng record không theo thứ tự cột phải cho cùng kết quả
	recs, parsed := ExtractSelf(model.FromRecords([]model.Record{
		{"Ngày": model.Str("01/06/2024"), "Lái xe": model.Str("e Hùng"), "Số khách": model.Str("3")},
		{"Ngày": model.Str("01/06/2024"), "Lái xe": model.Str("a Hùng"), "Số khách": model.Str("2")},
	}))
	if len(recs) != 1 || parsed != 2 {
		t.Fatalf("got %d records, %d parsed", len(recs), parsed)
	}
	if recs[0].Customers != 5 {
		t.Fatalf("customers: got %v", recs[0].Customers)
	}
}
