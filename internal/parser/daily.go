package parser

import (
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/aggregate"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// ExtractDaily trích xuất nhật trình khách hàng ngày: mỗi dòng một
// quan sát (lái xe, ngày, số khách/vé/chuyến), gộp theo ngày + định
// danh lái xe. Không dò được tiêu đề thì trả rỗng. Trả kèm số dòng
// trích được cho nhật ký import.
func ExtractDaily(m model.Matrix) ([]model.DailyCustomerStat, int) {
	hr := InferHeader(m, DailyProfile())
	if !hr.Found {
		return nil, 0
	}

	cols := hr.Mapping
	vocab := DailyNameVocab()
	agg := aggregate.NewDaily()
	parsed := 0

	// fill-down: ngày và tên lái xe thường chỉ ghi một lần cho cả
	// khối ô gộp, các dòng sau kế thừa tuần tự từ dòng trước
	carryDate, carryDriver := "", ""

	for _, row := range m[hr.Row+1:] {
		if row.IsEmpty() {
			continue
		}
		raw := row.At(cols.Col(model.RoleDriver)).Text()
		if isSummaryText(raw) {
			continue
		}

		name := CleanName(raw, vocab)
		if name == "" {
			if carryDriver == "" || !rowHasPayload(row, cols,
				model.RoleQuantity, model.RoleTicket, model.RoleTrip, model.RolePlate, model.RoleNotes) {
				continue
			}
			name = carryDriver
		} else {
			carryDriver = name
		}

		date := dateFromRow(row, cols.Col(model.RoleDate), carryDate)
		if date != "" {
			carryDate = date
		}

		customers := numberOr(row, cols.Col(model.RoleQuantity), 0)
		tickets := numberOr(row, cols.Col(model.RoleTicket), 0)
		trips := numberOr(row, cols.Col(model.RoleTrip), 1)
		plate := normalize.Plate(row.At(cols.Col(model.RolePlate)).Text())
		note := row.At(cols.Col(model.RoleNotes)).Text()

		agg.Add(name, date, customers, tickets, trips, plate, note)
		parsed++
	}

	return agg.Result(), parsed
}
