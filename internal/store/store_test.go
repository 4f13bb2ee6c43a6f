package store

import (
	"path/filepath"
	"testing"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMergeDaily_UpsertByDateAndDriverKey(t *testing.T) {
	s := newTestStore(t)

	if err := s.MergeDaily([]model.DailyCustomerStat{
		{Driver: "Nguyen Van Hung", Date: "01/06/2024", Customers: 3, Trips: 2},
	}); err != nil {
		t.Fatalf("MergeDaily: %v", err)
	}
	// cùng ngày, cùng người nhưng tên có dấu: phải ghi đè, không nhân đôi
	if err := s.MergeDaily([]model.DailyCustomerStat{
		{Driver: "Nguyễn Văn Hùng", Date: "01/06/2024", Customers: 8, Trips: 5, WorkUnits: 1, ExtraTrips: 1},
	}); err != nil {
		t.Fatalf("MergeDaily: %v", err)
	}

	stats, err := s.ListDaily()
	if err != nil {
		t.Fatalf("ListDaily: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d rows", len(stats))
	}
	if stats[0].Driver != "Nguyễn Văn Hùng" || stats[0].Customers != 8 || stats[0].Trips != 5 {
		t.Fatalf("got %+v", stats[0])
	}
}

func TestListDaily_NewestFirstUnknownDateLast(t *testing.T) {
	s := newTestStore(t)

	err := s.MergeDaily([]model.DailyCustomerStat{
		{Driver: "A", Date: "01/06/2024", Customers: 1},
		{Driver: "B", Date: "02/06/2024", Customers: 1},
		{Driver: "C", Date: "", Customers: 9},
	})
	if err != nil {
		t.Fatalf("MergeDaily: %v", err)
	}

	stats, err := s.ListDaily()
	if err != nil {
		t.Fatalf("ListDaily: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("got %d rows", len(stats))
	}
	if stats[0].Date != "02/06/2024" || stats[1].Date != "01/06/2024" {
		t.Fatalf("order: %q %q", stats[0].Date, stats[1].Date)
	}
	if stats[2].Date != "" {
		t.Fatalf("unknown date must sort last, got %q", stats[2].Date)
	}
}

func TestMergePhone_RoundTripRoutes(t *testing.T) {
	s := newTestStore(t)

	err := s.MergePhone([]model.PhoneStat{
		{Phone: "0912345678", Name: "Tuấn", Trips: 3, Routes: []string{"Thái Nguyên - Mỹ Đình", "Thái Nguyên - Bắc Kạn"}, LastDate: "02/06/2024"},
		{Phone: "0987654321", Name: "Hoa", Trips: 7},
	})
	if err != nil {
		t.Fatalf("MergePhone: %v", err)
	}

	stats, err := s.ListPhone()
	if err != nil {
		t.Fatalf("ListPhone: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d rows", len(stats))
	}
	// đi nhiều nhất trước
	if stats[0].Phone != "0987654321" {
		t.Fatalf("order: got %q first", stats[0].Phone)
	}
	if len(stats[1].Routes) != 2 || stats[1].Routes[0] != "Thái Nguyên - Mỹ Đình" {
		t.Fatalf("routes: %+v", stats[1].Routes)
	}
	if stats[1].LastDate != "02/06/2024" {
		t.Fatalf("lastDate: %q", stats[1].LastDate)
	}
}

func TestReplaceVAT_DropsPreviousRun(t *testing.T) {
	s := newTestStore(t)

	err := s.ReplaceVAT([]model.VATRecord{
		{Code: "AA111", RealAmount: 50000, Status: model.VATMissingInvoice},
	})
	if err != nil {
		t.Fatalf("ReplaceVAT: %v", err)
	}
	err = s.ReplaceVAT([]model.VATRecord{
		{Code: "BB222", RealAmount: 50000, InvoiceAmount: 50000, InvoiceIssued: true, Status: model.VATMatch},
		{Code: "CC333", RealAmount: 70000, InvoiceAmount: 10000, InvoiceIssued: true, Status: model.VATPriceMismatch},
	})
	if err != nil {
		t.Fatalf("ReplaceVAT: %v", err)
	}

	records, err := s.ListVAT()
	if err != nil {
		t.Fatalf("ListVAT: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	// dòng lệch xếp trước
	if records[0].Code != "CC333" || records[0].Status != model.VATPriceMismatch {
		t.Fatalf("got %+v", records[0])
	}
	if !records[1].InvoiceIssued {
		t.Fatalf("BB222 must keep invoiceIssued")
	}
}

func TestImportLog_CreateAndFinish(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateImportLog("baocao_thang6.xlsx")
	if err != nil {
		t.Fatalf("CreateImportLog: %v", err)
	}
	report := model.ImportReport{
		Sheet:      "Nhật trình",
		Dataset:    model.DatasetDaily,
		RowsTotal:  120,
		RowsParsed: 98,
		Records:    37,
	}
	if err := s.FinishImportLog(id, report, "completed", ""); err != nil {
		t.Fatalf("FinishImportLog: %v", err)
	}

	logs, err := s.ListImportLogs(10)
	if err != nil {
		t.Fatalf("ListImportLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs", len(logs))
	}
	e := logs[0]
	if e.Filename != "baocao_thang6.xlsx" || e.Sheet != "Nhật trình" || e.Dataset != "daily" {
		t.Fatalf("got %+v", e)
	}
	if e.RowsTotal != 120 || e.RowsParsed != 98 || e.Records != 37 || e.Status != "completed" {
		t.Fatalf("got %+v", e)
	}
}
