package parser

import (
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/aggregate"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// ExtractTransit trích xuất sổ xe trung chuyển. Tên lái xe hay nằm
// trong ô gộp dọc nhiều dòng nên fill-down áp dụng cho cả tên lẫn
// ngày; mỗi dòng mặc định là một lượt trung chuyển.
func ExtractTransit(m model.Matrix) ([]model.TransitStat, int) {
	hr := InferHeader(m, TransitProfile())
	if !hr.Found {
		return nil, 0
	}

	cols := hr.Mapping
	vocab := TransitNameVocab()
	agg := aggregate.NewTransit()
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
				model.RoleQuantity, model.RoleTrip, model.RoleTime, model.RoleRoute, model.RoleNotes) {
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

		trips := numberOr(row, cols.Col(model.RoleTrip), 1)
		passengers := numberOr(row, cols.Col(model.RoleQuantity), 0)
		plate := normalize.Plate(row.At(cols.Col(model.RolePlate)).Text())
		note := row.At(cols.Col(model.RoleNotes)).Text()

		agg.Add(name, date, trips, passengers, plate, note)
		parsed++
	}

	return agg.Result(), parsed
}
