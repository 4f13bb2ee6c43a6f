package model

// Role vai trò ngữ nghĩa của một cột
type Role string

const (
	RoleDriver   Role = "driver"   // lái xe / tên khách / mã vé (cột chính tùy loại)
	RoleDate     Role = "date"     // ngày
	RoleQuantity Role = "quantity" // số khách / số lượng
	RoleTicket   Role = "ticket"   // số vé
	RoleTrip     Role = "trip"     // số chuyến / lượt
	RoleTime     Role = "time"     // giờ
	RolePrice    Role = "price"    // đơn giá / thành tiền
	RolePhone    Role = "phone"    // số điện thoại
	RoleRoute    Role = "route"    // tuyến
	RolePlate    Role = "plate"    // biển số
	RoleNotes    Role = "notes"    // ghi chú
)

// ColumnMapping ánh xạ vai trò -> chỉ số cột (0-based)
type ColumnMapping map[Role]int

// Col chỉ số cột của vai trò, -1 nếu không có
func (m ColumnMapping) Col(r Role) int {
	if idx, ok := m[r]; ok {
		return idx
	}
	return -1
}

// HeaderResult kết quả dò dòng tiêu đề
type HeaderResult struct {
	Found   bool          `json:"found"`
	Row     int           `json:"row"`   // chỉ số dòng tiêu đề
	Score   float64       `json:"score"` // điểm của dòng thắng cuộc
	Mapping ColumnMapping `json:"mapping"`
}
