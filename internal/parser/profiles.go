package parser

import "github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"

// Mỗi loại file có một bộ từ điển tiêu đề riêng. Từ khóa chia hai
// bậc: High khớp trước (cụm rõ nghĩa), Low chỉ dùng khi High không
// trúng cột nào. Trọng số cột chính + cột ngày phải áp đảo tổng điểm
// để dòng dữ liệu tình cờ chứa từ khóa không thắng được dòng tiêu đề.

// RoleKeywords từ điển từ khóa một vai trò cột
type RoleKeywords struct {
	High   []string
	Low    []string
	Weight float64
}

// HeaderProfile cấu hình dò tiêu đề cho một loại file
type HeaderProfile struct {
	Name     string
	Primary  model.Role // vai trò bắt buộc, thiếu là coi như không có tiêu đề
	ScanRows int        // số dòng đầu được quét
	Roles    map[model.Role]RoleKeywords
}

// DailyProfile nhật trình khách hàng ngày
func DailyProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "daily",
		Primary:  model.RoleDriver,
		ScanRows: 25,
		Roles: map[model.Role]RoleKeywords{
			model.RoleDriver: {
				High:   []string{"tên lái xe", "lái xe", "tài xế", "driver"},
				Low:    []string{"họ tên", "họ và tên"},
				Weight: 5,
			},
			model.RoleDate: {
				High:   []string{"ngày"},
				Low:    []string{"thời gian", "date"},
				Weight: 3,
			},
			model.RoleQuantity: {
				High:   []string{"số khách", "lượng khách", "khách"},
				Low:    []string{"số lượng", "sl"},
				Weight: 3,
			},
			model.RoleTicket: {
				High:   []string{"số vé", "vé"},
				Weight: 1,
			},
			model.RoleTrip: {
				High:   []string{"số chuyến", "chuyến", "lượt"},
				Weight: 1,
			},
			model.RolePlate: {
				High:   []string{"biển số", "biển kiểm soát", "bks"},
				Weight: 1,
			},
			model.RoleNotes: {
				High:   []string{"ghi chú"},
				Weight: 1,
			},
		},
	}
}

// SelfProfile lái xe tự khai thác (file tự khai, cột lộn xộn hơn)
func SelfProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "self",
		Primary:  model.RoleDriver,
		ScanRows: 30,
		Roles: map[model.Role]RoleKeywords{
			model.RoleDriver: {
				High:   []string{"lái xe tự khai thác", "tên lái xe", "lái xe", "tài xế"},
				Low:    []string{"họ tên", "tên"},
				Weight: 5,
			},
			model.RoleDate: {
				High:   []string{"ngày"},
				Low:    []string{"thời gian"},
				Weight: 3,
			},
			model.RoleQuantity: {
				High:   []string{"số khách", "khách"},
				Low:    []string{"số lượng", "sl"},
				Weight: 3,
			},
			model.RoleTrip: {
				High:   []string{"số chuyến", "chuyến"},
				Weight: 1,
			},
			model.RolePlate: {
				High:   []string{"biển số", "bks"},
				Weight: 1,
			},
			model.RoleNotes: {
				High:   []string{"ghi chú", "nội dung"},
				Weight: 1,
			},
		},
	}
}

// TransitProfile xe trung chuyển
func TransitProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "transit",
		Primary:  model.RoleDriver,
		ScanRows: 25,
		Roles: map[model.Role]RoleKeywords{
			model.RoleDriver: {
				High:   []string{"lái xe trung chuyển", "tên lái xe", "lái xe", "tài xế"},
				Weight: 5,
			},
			model.RoleDate: {
				High:   []string{"ngày"},
				Weight: 3,
			},
			model.RoleQuantity: {
				High:   []string{"số khách", "khách"},
				Weight: 2,
			},
			model.RoleTrip: {
				High:   []string{"số chuyến", "chuyến", "lượt trung chuyển", "lượt"},
				Weight: 2,
			},
			model.RoleTime: {
				High:   []string{"giờ"},
				Weight: 1,
			},
			model.RoleRoute: {
				High:   []string{"tuyến", "lộ trình"},
				Weight: 1,
			},
			model.RolePlate: {
				High:   []string{"biển số", "bks"},
				Weight: 1,
			},
			model.RoleNotes: {
				High:   []string{"ghi chú"},
				Weight: 1,
			},
		},
	}
}

// PhoneProfile danh sách khách quen theo số điện thoại
func PhoneProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "phone",
		Primary:  model.RolePhone,
		ScanRows: 25,
		Roles: map[model.Role]RoleKeywords{
			model.RolePhone: {
				High:   []string{"số điện thoại", "điện thoại", "sđt", "sdt", "phone"},
				Weight: 5,
			},
			model.RoleDriver: {
				// tên khách hàng hiển thị
				High:   []string{"tên khách", "khách hàng", "họ tên"},
				Low:    []string{"tên"},
				Weight: 2,
			},
			model.RoleDate: {
				High:   []string{"ngày"},
				Weight: 2,
			},
			model.RoleRoute: {
				High:   []string{"tuyến", "lộ trình", "điểm đón", "điểm đến"},
				Weight: 1,
			},
			model.RoleTrip: {
				High:   []string{"số chuyến", "lượt"},
				Weight: 1,
			},
		},
	}
}

// PricingProfile bảng giá vé
func PricingProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "pricing",
		Primary:  model.RoleRoute,
		ScanRows: 25,
		Roles: map[model.Role]RoleKeywords{
			model.RoleRoute: {
				High:   []string{"tuyến", "lộ trình", "chặng"},
				Weight: 4,
			},
			model.RolePrice: {
				High:   []string{"đơn giá", "giá vé", "giá"},
				Weight: 4,
			},
			model.RoleQuantity: {
				High:   []string{"số lượng", "số vé", "sl"},
				Weight: 2,
			},
			model.RoleDate: {
				High:   []string{"ngày"},
				Weight: 1,
			},
		},
	}
}

// VATRealProfile sổ doanh thu thực
func VATRealProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "vat_real",
		Primary:  model.RoleTicket,
		ScanRows: 30,
		Roles: map[model.Role]RoleKeywords{
			model.RoleTicket: {
				High:   []string{"số vé", "mã vé", "seri", "sê ri", "ký hiệu"},
				Low:    []string{"vé"},
				Weight: 5,
			},
			model.RolePrice: {
				High:   []string{"thành tiền", "số tiền", "doanh thu", "tổng tiền"},
				Low:    []string{"tiền"},
				Weight: 4,
			},
			model.RoleDate: {
				High:   []string{"ngày"},
				Weight: 2,
			},
		},
	}
}

// VATInvoiceProfile sổ hóa đơn đã xuất
func VATInvoiceProfile() HeaderProfile {
	return HeaderProfile{
		Name:     "vat_invoice",
		Primary:  model.RoleTicket,
		ScanRows: 30,
		Roles: map[model.Role]RoleKeywords{
			model.RoleTicket: {
				High:   []string{"số vé", "mã vé", "seri", "sê ri", "ký hiệu"},
				Low:    []string{"vé"},
				Weight: 5,
			},
			model.RolePrice: {
				High:   []string{"giá trị hóa đơn", "thành tiền", "số tiền", "tổng tiền"},
				Low:    []string{"tiền"},
				Weight: 4,
			},
			model.RoleDate: {
				High:   []string{"ngày hóa đơn", "ngày"},
				Weight: 2,
			},
		},
	}
}
