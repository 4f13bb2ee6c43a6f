package model

// DatasetKind loại dữ liệu nguồn
type DatasetKind string

const (
	DatasetDaily   DatasetKind = "daily"   // nhật trình khách hàng ngày
	DatasetSelf    DatasetKind = "self"    // lái xe tự khai thác
	DatasetTransit DatasetKind = "transit" // trung chuyển
	DatasetPhone   DatasetKind = "phone"   // khách quen theo số điện thoại
	DatasetPricing DatasetKind = "pricing" // bảng giá vé
	DatasetVAT     DatasetKind = "vat"     // đối soát doanh thu / hóa đơn
)

// DailyCustomerStat thống kê khách theo lái xe theo ngày.
// Khóa gộp: date + khóa định danh của tên lái xe.
type DailyCustomerStat struct {
	Driver     string   `json:"driver"`
	Date       string   `json:"date"` // DD/MM/YYYY, rỗng = không rõ ngày
	Customers  float64  `json:"customers"`
	Tickets    float64  `json:"tickets"`
	Trips      float64  `json:"trips"`
	WorkUnits  float64  `json:"workUnits"`  // công: 4 chuyến = 1 công, tối đa 1/ngày
	ExtraTrips float64  `json:"extraTrips"` // chuyến vượt ngoài 4
	Plates     []string `json:"plates,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// SelfCustomerStat thống kê lái xe tự khai thác
type SelfCustomerStat struct {
	Driver    string   `json:"driver"`
	Date      string   `json:"date"`
	Customers float64  `json:"customers"`
	Trips     float64  `json:"trips"`
	Plates    []string `json:"plates,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// TransitStat thống kê lái xe trung chuyển
type TransitStat struct {
	Driver     string  `json:"driver"`
	Date       string  `json:"date"`
	Trips      float64 `json:"trips"`
	Passengers float64 `json:"passengers"`
	Plate      string  `json:"plate,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

// PhoneStat khách quen gộp theo số điện thoại chuẩn hóa
type PhoneStat struct {
	Phone    string   `json:"phone"` // dạng 0xxxxxxxxx
	Name     string   `json:"name"`
	Trips    float64  `json:"trips"`
	Routes   []string `json:"routes,omitempty"`
	LastDate string   `json:"lastDate,omitempty"`
}

// PricingStat doanh thu vé gộp theo nhóm tuyến + đơn giá + loại vé
type PricingStat struct {
	RouteGroup string  `json:"routeGroup"`
	Price      float64 `json:"price"`
	TicketType string  `json:"ticketType"`
	Quantity   float64 `json:"quantity"`
	Revenue    float64 `json:"revenue"` // price × quantity, cộng dồn
}

// Trạng thái đối soát VAT
const (
	VATMatch          = "MATCH"
	VATPriceMismatch  = "PRICE MISMATCH"
	VATMissingInvoice = "MISSING INVOICE"
	VATExtraInvoice   = "EXTRA INVOICE"
)

// VATRecord một vé sau khi đối soát hai sổ doanh thu thực / hóa đơn
type VATRecord struct {
	Code          string  `json:"code"` // dạng hiển thị, ưu tiên bên doanh thu thực
	Date          string  `json:"date,omitempty"`
	RealAmount    float64 `json:"realAmount"`
	InvoiceAmount float64 `json:"invoiceAmount"`
	InvoiceIssued bool    `json:"invoiceIssued"`
	Status        string  `json:"status"`
}
