package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// Exporter xuất báo cáo thống kê ra file Excel
type Exporter struct{}

// NewExporter tạo exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportDaily xuất thống kê khách theo ngày
func (e *Exporter) ExportDaily(stats []model.DailyCustomerStat) (*excelize.File, error) {
	f, sheet := newReport("Khách theo ngày",
		"Lái xe", "Ngày", "Số khách", "Số vé", "Số chuyến", "Công", "Chuyến dư", "Biển số", "Ghi chú")
	for i, s := range stats {
		writeRow(f, sheet, i+2,
			s.Driver, s.Date, s.Customers, s.Tickets, s.Trips, s.WorkUnits, s.ExtraTrips,
			strings.Join(s.Plates, "; "), s.Notes)
	}
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "G", 12)
	f.SetColWidth(sheet, "H", "I", 25)
	return f, nil
}

// ExportSelf xuất thống kê tự khai thác
func (e *Exporter) ExportSelf(stats []model.SelfCustomerStat) (*excelize.File, error) {
	f, sheet := newReport("Tự khai thác",
		"Lái xe", "Ngày", "Số khách", "Số chuyến", "Biển số", "Ghi chú")
	for i, s := range stats {
		writeRow(f, sheet, i+2,
			s.Driver, s.Date, s.Customers, s.Trips, strings.Join(s.Plates, "; "), s.Notes)
	}
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "D", 12)
	f.SetColWidth(sheet, "E", "F", 25)
	return f, nil
}

// ExportTransit xuất thống kê trung chuyển
func (e *Exporter) ExportTransit(stats []model.TransitStat) (*excelize.File, error) {
	f, sheet := newReport("Trung chuyển",
		"Lái xe", "Ngày", "Số chuyến", "Số khách", "Biển số", "Ghi chú")
	for i, s := range stats {
		writeRow(f, sheet, i+2, s.Driver, s.Date, s.Trips, s.Passengers, s.Plate, s.Notes)
	}
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "D", 12)
	f.SetColWidth(sheet, "E", "F", 25)
	return f, nil
}

// ExportPhone xuất danh sách khách quen theo số điện thoại
func (e *Exporter) ExportPhone(stats []model.PhoneStat) (*excelize.File, error) {
	f, sheet := newReport("Khách quen",
		"Số điện thoại", "Tên khách", "Số chuyến", "Tuyến", "Đi gần nhất")
	for i, s := range stats {
		writeRow(f, sheet, i+2, s.Phone, s.Name, s.Trips, strings.Join(s.Routes, "; "), s.LastDate)
	}
	f.SetColWidth(sheet, "A", "B", 20)
	f.SetColWidth(sheet, "C", "C", 10)
	f.SetColWidth(sheet, "D", "D", 35)
	f.SetColWidth(sheet, "E", "E", 14)
	return f, nil
}

// ExportPricing xuất doanh thu theo nhóm tuyến / đơn giá / loại vé
func (e *Exporter) ExportPricing(stats []model.PricingStat) (*excelize.File, error) {
	f, sheet := newReport("Doanh thu vé",
		"Nhóm tuyến", "Đơn giá", "Loại vé", "Số lượng", "Doanh thu")
	for i, s := range stats {
		writeRow(f, sheet, i+2, s.RouteGroup, s.Price, s.TicketType, s.Quantity, s.Revenue)
	}
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "E", 14)
	f.SetColWidth(sheet, "C", "C", 28)
	return f, nil
}

// ExportVAT xuất kết quả đối soát hai sổ, kèm dòng tổng hợp cuối bảng
func (e *Exporter) ExportVAT(records []model.VATRecord) (*excelize.File, error) {
	f, sheet := newReport("Đối soát VAT",
		"Số vé", "Ngày", "Doanh thu thực", "Giá trị hóa đơn", "Chênh lệch", "Đã xuất HĐ", "Trạng thái")

	var totalReal, totalInvoice float64
	mismatches := 0
	for i, r := range records {
		issued := "Chưa"
		if r.InvoiceIssued {
			issued = "Rồi"
		}
		writeRow(f, sheet, i+2,
			r.Code, r.Date, r.RealAmount, r.InvoiceAmount, r.RealAmount-r.InvoiceAmount, issued, r.Status)
		totalReal += r.RealAmount
		totalInvoice += r.InvoiceAmount
		if r.Status != model.VATMatch {
			mismatches++
		}
	}

	sumRow := len(records) + 2
	writeRow(f, sheet, sumRow,
		"Tổng cộng", "", totalReal, totalInvoice, totalReal-totalInvoice,
		fmt.Sprintf("%d vé", len(records)), fmt.Sprintf("%d lệch", mismatches))
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetRowStyle(sheet, sumRow, sumRow, style)
	}

	f.SetColWidth(sheet, "A", "B", 14)
	f.SetColWidth(sheet, "C", "E", 16)
	f.SetColWidth(sheet, "F", "G", 18)
	return f, nil
}

// newReport tạo workbook một sheet với dòng tiêu đề đã định dạng
func newReport(sheet string, headers ...string) (*excelize.File, string) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheet)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheet, 1, 1, headerStyle)

	return f, sheet
}

func writeRow(f *excelize.File, sheet string, row int, vals ...interface{}) {
	for i, v := range vals {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}
