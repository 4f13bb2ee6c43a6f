package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// các marker dòng tổng kết, gặp ở cột định danh thì bỏ cả dòng
var summaryMarkers = []string{"tổng", "cộng", "total"}

// isSummaryText ô chứa marker dòng tổng/cộng
func isSummaryText(s string) bool {
	low := strings.ToLower(s)
	for _, m := range summaryMarkers {
		if strings.Contains(low, m) {
			return true
		}
	}
	return false
}

// dateFromRow lấy ngày cho một dòng: cột ngày (strict) trước, sau đó
// quét cả dòng tìm mẫu D/M/YYYY trong các ô chuỗi, cuối cùng dùng
// ngày kế thừa từ dòng trước. Không có thì trả rỗng, không bịa ngày.
func dateFromRow(row model.Row, dateCol int, carry string) string {
	if d := normalize.Date(row.At(dateCol)); d != "" {
		return d
	}
	for i, c := range row {
		if i == dateCol || c.Kind != model.CellString {
			continue
		}
		if d := normalize.DateLenient(c); d != "" {
			return d
		}
	}
	return carry
}

// scanPhone quét cả dòng tìm ô đầu tiên ra số điện thoại hợp lệ
func scanPhone(row model.Row) string {
	for _, c := range row {
		if c.Kind != model.CellString {
			continue
		}
		if p := normalize.Phone(c.Str); p != "" {
			return p
		}
	}
	return ""
}

var reTicketToken = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9\-/]{2,}`)

// scanTicket quét cả dòng tìm token giống mã vé: từ 3 ký tự, có cả
// chữ lẫn số
func scanTicket(row model.Row) string {
	for _, c := range row {
		if c.Kind != model.CellString {
			continue
		}
		for _, tok := range reTicketToken.FindAllString(c.Str, -1) {
			if hasMixedAlnum(tok) {
				return tok
			}
		}
	}
	return ""
}

func hasMixedAlnum(s string) bool {
	hasLetter, hasDigit := false, false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	return hasLetter && hasDigit
}

// numberOr đọc số từ cột; cột vắng mặt hoặc ô rỗng thì dùng giá trị
// mặc định (mỗi dòng là một chuyến/một đơn vị khi file không ghi số)
func numberOr(row model.Row, col int, def float64) float64 {
	if col < 0 {
		return def
	}
	c := row.At(col)
	if c.IsEmpty() {
		return def
	}
	return normalize.Number(c)
}

// rowHasPayload dòng còn dữ liệu ở các cột được liệt kê (điều kiện
// để được kế thừa giá trị fill-down từ dòng trước)
func rowHasPayload(row model.Row, cols model.ColumnMapping, roles ...model.Role) bool {
	for _, role := range roles {
		c := cols.Col(role)
		if c >= 0 && !row.At(c).IsEmpty() {
			return true
		}
	}
	return false
}

// recordsToMatrix đổi dữ liệu dạng record về ma trận: dòng đầu là
// tiêu đề ghép từ khóa, các dòng sau theo đúng thứ tự khóa đó.
// Quyết định dạng một lần tại biên, phần trích xuất phía sau chỉ
// làm việc với ma trận.
func recordsToMatrix(records []model.Record) model.Matrix {
	if len(records) == 0 {
		return nil
	}

	seen := map[string]bool{}
	var keys []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	// thứ tự khóa ổn định giữa các lần gọi
	sort.Strings(keys)

	m := make(model.Matrix, 0, len(records)+1)
	header := make(model.Row, len(keys))
	for i, k := range keys {
		header[i] = model.Str(k)
	}
	m = append(m, header)

	for _, rec := range records {
		row := make(model.Row, len(keys))
		for i, k := range keys {
			row[i] = rec[k]
		}
		m = append(m, row)
	}
	return m
}
