package parser

import (
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/aggregate"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// Loại vé theo bảng giá hiện hành
const (
	TicketTransitRider   = "Khách trung chuyển taxi/bus"
	TicketStudentTransit = "Học sinh có trung chuyển"
	TicketStudentRegular = "Học sinh thường"
	TicketStudent        = "Học sinh"
	TicketRegular        = "Khách thường"
)

// DefaultPriceCeiling trần đơn giá chấp nhận được; vượt trần coi là
// ô lỗi/tiêu đề lẫn vào dữ liệu và bị loại thẳng
const DefaultPriceCeiling = 150000

// Hai chiều của một tuyến ("Thái Nguyên - Mỹ Đình" và "Mỹ Đình -
// Thái Nguyên") gập về một nhóm. So khớp qua khóa định danh nên viết
// thiếu dấu vẫn trúng.
type routePair struct {
	aKey, bKey string
	label      string
}

var routePairs = []routePair{
	{"thainguyen", "mydinh", "Thái Nguyên - Mỹ Đình"},
	{"thainguyen", "backan", "Thái Nguyên - Bắc Kạn"},
}

// RouteGroup nhóm tuyến chuẩn của một nhãn tuyến tự do; tuyến lạ giữ
// nguyên tên thô làm nhóm riêng
func RouteGroup(route string) (label string, known bool) {
	key := normalize.IdentityKey(route)
	for _, p := range routePairs {
		if strings.Contains(key, p.aKey) && strings.Contains(key, p.bKey) {
			return p.label, true
		}
	}
	return strings.TrimSpace(route), false
}

// ClassifyTicket loại vé theo đơn giá. Tuyến thuộc nhóm đã biết dùng
// bảng giá cứng; tuyến lạ chỉ phân biệt được vé học sinh theo mức giá.
func ClassifyTicket(price float64, knownGroup bool) string {
	if knownGroup {
		switch price {
		case 100000:
			return TicketTransitRider
		case 90000:
			return TicketStudentTransit
		case 70000:
			return TicketStudentRegular
		}
		return TicketRegular
	}
	switch price {
	case 90000, 70000:
		return TicketStudent
	}
	return TicketRegular
}

// ExtractPricing trích xuất bảng giá vé, gộp theo nhóm tuyến + đơn
// giá + loại vé. Dòng giá 0 hoặc vượt trần bị loại (nhiễu từ tiêu
// đề/chân trang tràn vào). Trần 0 là giá trị cấu hình hợp lệ; chỉ
// trần âm mới rơi về mặc định.
func ExtractPricing(m model.Matrix, priceCeiling float64) ([]model.PricingStat, int) {
	if priceCeiling < 0 {
		priceCeiling = DefaultPriceCeiling
	}

	hr := InferHeader(m, PricingProfile())
	if !hr.Found {
		return nil, 0
	}

	cols := hr.Mapping
	agg := aggregate.NewPricing()
	parsed := 0
	carryRoute := ""

	for _, row := range m[hr.Row+1:] {
		if row.IsEmpty() {
			continue
		}
		route := row.At(cols.Col(model.RoleRoute)).Text()
		if isSummaryText(route) {
			continue
		}
		if route == "" {
			if carryRoute == "" {
				continue
			}
			route = carryRoute
		} else {
			carryRoute = route
		}

		price := numberOr(row, cols.Col(model.RolePrice), 0)
		if price <= 0 || price > priceCeiling {
			continue
		}

		quantity := numberOr(row, cols.Col(model.RoleQuantity), 1)
		group, known := RouteGroup(route)
		agg.Add(group, price, ClassifyTicket(price, known), quantity)
		parsed++
	}

	return agg.Result(), parsed
}
