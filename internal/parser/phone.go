package parser

import (
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/aggregate"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// ExtractPhone trích xuất danh sách khách quen. Khóa gộp là số điện
// thoại chuẩn hóa, phạm vi toàn file; cột số vắng hoặc rỗng thì quét
// cả dòng tìm dãy 9-11 chữ số. Không ra số thì bỏ dòng.
func ExtractPhone(m model.Matrix) ([]model.PhoneStat, int) {
	hr := InferHeader(m, PhoneProfile())
	if !hr.Found {
		return nil, 0
	}

	cols := hr.Mapping
	vocab := SelfNameVocab()
	agg := aggregate.NewPhone()
	parsed := 0
	carryDate := ""

	for _, row := range m[hr.Row+1:] {
		if row.IsEmpty() {
			continue
		}

		rawPhone := row.At(cols.Col(model.RolePhone)).Text()
		if isSummaryText(rawPhone) {
			continue
		}
		phone := normalize.Phone(rawPhone)
		if phone == "" {
			phone = scanPhone(row)
		}
		if phone == "" {
			continue
		}

		name := CleanName(row.At(cols.Col(model.RoleDriver)).Text(), vocab)
		trips := numberOr(row, cols.Col(model.RoleTrip), 1)
		route := row.At(cols.Col(model.RoleRoute)).Text()

		date := dateFromRow(row, cols.Col(model.RoleDate), carryDate)
		if date != "" {
			carryDate = date
		}

		agg.Add(phone, name, trips, route, date)
		parsed++
	}

	return agg.Result(), parsed
}
