package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// Các file nguồn ghi ngày đủ kiểu: ô ngày gốc của Excel, số serial,
// hoặc chuỗi "1/6/2024", "01-06-2024", thậm chí lẫn trong ghi chú.
// Mọi đường đều quy về DD/MM/YYYY; không parse được thì trả rỗng,
// tuyệt đối không đoán ngày mặc định.

var (
	reDateStrict  = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	reDateLenient = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
)

// Date chuẩn hóa ngày từ một ô, chuỗi phải khớp trọn vẹn D/M/YYYY.
// Chuỗi toàn số được thử như serial Excel bị đọc thô — chỉ ở đường
// strict này, vì strict chỉ chạy trên cột đã được ánh xạ là cột ngày.
func Date(c model.Cell) string {
	if c.Kind == model.CellString {
		if n, err := strconv.ParseFloat(c.Text(), 64); err == nil {
			return fromSerial(n)
		}
	}
	return dateOf(c, reDateStrict)
}

// DateLenient như Date nhưng chấp nhận mẫu ngày nằm giữa chuỗi, dùng
// khi quét cả hàng tìm ngày. Cố ý KHÔNG thử serial với chuỗi số: khi
// quét cả hàng, một ô tiền "45000" mà đoán thành ngày là bịa dữ liệu.
func DateLenient(c model.Cell) string {
	return dateOf(c, reDateLenient)
}

func dateOf(c model.Cell, re *regexp.Regexp) string {
	switch c.Kind {
	case model.CellTime:
		return formatValid(c.Time.Day(), int(c.Time.Month()), c.Time.Year())
	case model.CellNumber:
		return fromSerial(c.Num)
	case model.CellString:
		m := re.FindStringSubmatch(c.Text())
		if m == nil {
			return ""
		}
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return formatValid(day, month, year)
	}
	return ""
}

// fromSerial đổi số serial Excel (ngày tính từ 1899-12-30) sang DD/MM/YYYY.
// Chỉ nhận khoảng (20000, 60000) ~ 1954..2064 để loại số liệu thường.
func fromSerial(n float64) string {
	if n <= 20000 || n >= 60000 {
		return ""
	}
	t := time.Unix(int64((n-25569)*86400), 0).UTC()
	return formatValid(t.Day(), int(t.Month()), t.Year())
}

// formatValid kiểm tra lịch rồi in DD/MM/YYYY, sai thì trả rỗng
func formatValid(day, month, year int) string {
	if year < 2000 || year > 2100 {
		return ""
	}
	if month < 1 || month > 12 {
		return ""
	}
	if day < 1 || day > daysInMonth(month, year) {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

func daysInMonth(month, year int) int {
	// ngày 0 của tháng sau = ngày cuối tháng này
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateKey đổi DD/MM/YYYY thành YYYYMMDD để so sánh/sắp xếp.
// Chuỗi rỗng hoặc sai dạng trả rỗng (xếp sau mọi ngày thật).
func DateKey(ddmmyyyy string) string {
	m := reDateStrict.FindStringSubmatch(ddmmyyyy)
	if m == nil {
		return ""
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}
