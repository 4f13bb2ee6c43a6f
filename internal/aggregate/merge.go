package aggregate

import (
	"strconv"
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// Cùng một lái xe trong một file có thể xuất hiện nhiều dòng với tên
// viết mỗi lần một kiểu. Bộ gộp giữ mỗi khóa ghép một bản ghi, cộng
// dồn số đếm, hợp nhất ghi chú/biển số, và nâng cấp tên hiển thị dần
// về bản đầy đủ nhất. Không trường nào bị ghi đè làm mất tổng đã cộng.

// DailyKey khóa ghép của bản ghi khách ngày: ngày + khóa định danh tên.
// Phía lưu trữ phải dùng đúng khóa này khi gộp với lịch sử cũ.
func DailyKey(date, driver string) string {
	return date + "_" + normalize.IdentityKey(driver)
}

// preferName bản tên "giàu thông tin" hơn thắng: có dấu thắng không
// dấu, cùng mức thì chuỗi dài hơn thắng
func preferName(cur, cand string) string {
	if cand == "" {
		return cur
	}
	if cur == "" {
		return cand
	}
	curDia, candDia := normalize.HasDiacritics(cur), normalize.HasDiacritics(cand)
	if candDia != curDia {
		if candDia {
			return cand
		}
		return cur
	}
	if len([]rune(cand)) > len([]rune(cur)) {
		return cand
	}
	return cur
}

// stringSet tập chuỗi giữ thứ tự gặp đầu tiên
type stringSet struct {
	order []string
	seen  map[string]bool
}

func newStringSet() *stringSet {
	return &stringSet{seen: map[string]bool{}}
}

func (s *stringSet) add(v string) {
	v = strings.TrimSpace(v)
	if v == "" || s.seen[v] {
		return
	}
	s.seen[v] = true
	s.order = append(s.order, v)
}

func (s *stringSet) list() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *stringSet) join(sep string) string {
	return strings.Join(s.order, sep)
}

// DailyAccumulator gộp nhật trình khách ngày
type DailyAccumulator struct {
	recs   map[string]*model.DailyCustomerStat
	notes  map[string]*stringSet
	plates map[string]*stringSet
}

// NewDaily tạo bộ gộp khách ngày
func NewDaily() *DailyAccumulator {
	return &DailyAccumulator{
		recs:   map[string]*model.DailyCustomerStat{},
		notes:  map[string]*stringSet{},
		plates: map[string]*stringSet{},
	}
}

// Add nạp một dòng đã trích xuất vào bộ gộp
func (a *DailyAccumulator) Add(driver, date string, customers, tickets, trips float64, plate, note string) {
	key := DailyKey(date, driver)
	rec, ok := a.recs[key]
	if !ok {
		rec = &model.DailyCustomerStat{Driver: driver, Date: date}
		a.recs[key] = rec
		a.notes[key] = newStringSet()
		a.plates[key] = newStringSet()
	}
	rec.Driver = preferName(rec.Driver, driver)
	rec.Customers += customers
	rec.Tickets += tickets
	rec.Trips += trips
	a.plates[key].add(plate)
	a.notes[key].add(note)
}

// Result chốt sổ: tính công, gắn ghi chú/biển số, sắp xếp
func (a *DailyAccumulator) Result() []model.DailyCustomerStat {
	out := make([]model.DailyCustomerStat, 0, len(a.recs))
	for key, rec := range a.recs {
		r := *rec
		r.WorkUnits, r.ExtraTrips = Workday(r.Trips)
		r.Plates = a.plates[key].list()
		r.Notes = a.notes[key].join("; ")
		out = append(out, r)
	}
	sortDaily(out)
	return out
}

// workdayTripsPerUnit quy tắc lương cứng: 4 chuyến = 1 công
const workdayTripsPerUnit = 4

// Workday quy đổi số chuyến thành (công, chuyến vượt): tối đa 1
// công/ngày, chuyến ngoài 4 đếm riêng là chuyến vượt
func Workday(trips float64) (units, extra float64) {
	units = trips / workdayTripsPerUnit
	if units > 1 {
		units = 1
	}
	extra = trips - workdayTripsPerUnit
	if extra < 0 {
		extra = 0
	}
	return units, extra
}

// SelfAccumulator gộp bản ghi lái xe tự khai thác
type SelfAccumulator struct {
	recs   map[string]*model.SelfCustomerStat
	notes  map[string]*stringSet
	plates map[string]*stringSet
}

// NewSelf tạo bộ gộp tự khai thác
func NewSelf() *SelfAccumulator {
	return &SelfAccumulator{
		recs:   map[string]*model.SelfCustomerStat{},
		notes:  map[string]*stringSet{},
		plates: map[string]*stringSet{},
	}
}

// Add nạp một dòng đã trích xuất
func (a *SelfAccumulator) Add(driver, date string, customers, trips float64, plate, note string) {
	key := DailyKey(date, driver)
	rec, ok := a.recs[key]
	if !ok {
		rec = &model.SelfCustomerStat{Driver: driver, Date: date}
		a.recs[key] = rec
		a.notes[key] = newStringSet()
		a.plates[key] = newStringSet()
	}
	rec.Driver = preferName(rec.Driver, driver)
	rec.Customers += customers
	rec.Trips += trips
	a.plates[key].add(plate)
	a.notes[key].add(note)
}

// Result chốt sổ và sắp xếp
func (a *SelfAccumulator) Result() []model.SelfCustomerStat {
	out := make([]model.SelfCustomerStat, 0, len(a.recs))
	for key, rec := range a.recs {
		r := *rec
		r.Plates = a.plates[key].list()
		r.Notes = a.notes[key].join("; ")
		out = append(out, r)
	}
	sortSelf(out)
	return out
}

// TransitAccumulator gộp bản ghi trung chuyển
type TransitAccumulator struct {
	recs   map[string]*model.TransitStat
	notes  map[string]*stringSet
	plates map[string]*stringSet
}

// NewTransit tạo bộ gộp trung chuyển
func NewTransit() *TransitAccumulator {
	return &TransitAccumulator{
		recs:   map[string]*model.TransitStat{},
		notes:  map[string]*stringSet{},
		plates: map[string]*stringSet{},
	}
}

// Add nạp một dòng đã trích xuất
func (a *TransitAccumulator) Add(driver, date string, trips, passengers float64, plate, note string) {
	key := DailyKey(date, driver)
	rec, ok := a.recs[key]
	if !ok {
		rec = &model.TransitStat{Driver: driver, Date: date}
		a.recs[key] = rec
		a.notes[key] = newStringSet()
		a.plates[key] = newStringSet()
	}
	rec.Driver = preferName(rec.Driver, driver)
	rec.Trips += trips
	rec.Passengers += passengers
	a.plates[key].add(plate)
	a.notes[key].add(note)
}

// Result chốt sổ và sắp xếp
func (a *TransitAccumulator) Result() []model.TransitStat {
	out := make([]model.TransitStat, 0, len(a.recs))
	for key, rec := range a.recs {
		r := *rec
		r.Plate = a.plates[key].join(", ")
		r.Notes = a.notes[key].join("; ")
		out = append(out, r)
	}
	sortTransit(out)
	return out
}

// PhoneAccumulator gộp khách quen theo số điện thoại, phạm vi cả file
type PhoneAccumulator struct {
	recs   map[string]*model.PhoneStat
	routes map[string]*stringSet
}

// NewPhone tạo bộ gộp khách quen
func NewPhone() *PhoneAccumulator {
	return &PhoneAccumulator{
		recs:   map[string]*model.PhoneStat{},
		routes: map[string]*stringSet{},
	}
}

// Add nạp một dòng; phone phải đã chuẩn hóa dạng 0xxxxxxxxx
func (a *PhoneAccumulator) Add(phone, name string, trips float64, route, date string) {
	rec, ok := a.recs[phone]
	if !ok {
		rec = &model.PhoneStat{Phone: phone}
		a.recs[phone] = rec
		a.routes[phone] = newStringSet()
	}
	rec.Name = preferName(rec.Name, name)
	rec.Trips += trips
	a.routes[phone].add(route)
	if normalize.DateKey(date) > normalize.DateKey(rec.LastDate) {
		rec.LastDate = date
	}
}

// Result chốt sổ, xếp theo số chuyến giảm dần
func (a *PhoneAccumulator) Result() []model.PhoneStat {
	out := make([]model.PhoneStat, 0, len(a.recs))
	for phone, rec := range a.recs {
		r := *rec
		r.Routes = a.routes[phone].list()
		out = append(out, r)
	}
	sortPhone(out)
	return out
}

// PricingAccumulator gộp doanh thu vé theo nhóm tuyến + giá + loại vé
type PricingAccumulator struct {
	recs map[string]*model.PricingStat
}

// NewPricing tạo bộ gộp giá vé
func NewPricing() *PricingAccumulator {
	return &PricingAccumulator{recs: map[string]*model.PricingStat{}}
}

// Add nạp một dòng vé đã phân loại
func (a *PricingAccumulator) Add(routeGroup string, price float64, ticketType string, quantity float64) {
	key := routeGroup + "|" + strconv.FormatFloat(price, 'f', -1, 64) + "|" + ticketType
	rec, ok := a.recs[key]
	if !ok {
		rec = &model.PricingStat{RouteGroup: routeGroup, Price: price, TicketType: ticketType}
		a.recs[key] = rec
	}
	rec.Quantity += quantity
	rec.Revenue += price * quantity
}

// Result chốt sổ, xếp theo doanh thu giảm dần
func (a *PricingAccumulator) Result() []model.PricingStat {
	out := make([]model.PricingStat, 0, len(a.recs))
	for _, rec := range a.recs {
		out = append(out, *rec)
	}
	sortPricing(out)
	return out
}
