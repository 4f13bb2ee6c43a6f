package parser

import (
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/aggregate"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// ExtractSelf trích xuất bản kê lái xe tự khai thác. File loại này
// có hai dạng: ma trận thường, hoặc danh sách record không theo thứ
// tự cột (export từ hệ thống khác); dạng record được quy về ma trận
// ngay tại đây rồi đi chung một đường.
func ExtractSelf(t model.Table) ([]model.SelfCustomerStat, int) {
	m := t.Matrix
	if t.IsRecords() {
		m = recordsToMatrix(t.Records)
	}

	hr := InferHeader(m, SelfProfile())
	if !hr.Found {
		return nil, 0
	}

	cols := hr.Mapping
	vocab := SelfNameVocab()
	agg := aggregate.NewSelf()
	parsed := 0
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
				model.RoleQuantity, model.RoleTrip, model.RolePlate, model.RoleNotes) {
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
		trips := numberOr(row, cols.Col(model.RoleTrip), 1)
		plate := normalize.Plate(row.At(cols.Col(model.RolePlate)).Text())
		note := row.At(cols.Col(model.RoleNotes)).Text()

		agg.Add(name, date, customers, trips, plate, note)
		parsed++
	}

	return agg.Result(), parsed
}
