package parser

import (
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// VATEntry một mã vé đã gộp trên một sổ (doanh thu thực hoặc hóa đơn)
type VATEntry struct {
	Code   string  // dạng hiển thị, giữ nguyên cách viết gặp đầu tiên
	Amount float64 // cộng dồn nếu mã lặp
	Date   string
	Count  int
}

// ExtractVATSide trích xuất một sổ cho đối soát VAT: gộp theo mã vé
// chuẩn hóa (viết hoa, bỏ ký tự ngoài chữ/số). Mã vé không fill-down:
// dòng không ra mã thì bỏ, vé không được phép "kế thừa" mã dòng trước.
func ExtractVATSide(m model.Matrix, p HeaderProfile) map[string]*VATEntry {
	out := map[string]*VATEntry{}

	hr := InferHeader(m, p)
	if !hr.Found {
		return out
	}

	cols := hr.Mapping
	for _, row := range m[hr.Row+1:] {
		if row.IsEmpty() {
			continue
		}
		raw := row.At(cols.Col(model.RoleTicket)).Text()
		if isSummaryText(raw) {
			continue
		}
		if raw == "" {
			raw = scanTicket(row)
		}
		key := normalize.TicketCode(raw)
		if key == "" {
			continue
		}

		amount := numberOr(row, cols.Col(model.RolePrice), 0)
		date := dateFromRow(row, cols.Col(model.RoleDate), "")

		e, ok := out[key]
		if !ok {
			e = &VATEntry{Code: strings.TrimSpace(raw)}
			out[key] = e
		}
		e.Amount += amount
		e.Count++
		if e.Date == "" {
			e.Date = date
		}
	}

	return out
}
