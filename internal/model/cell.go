package model

import (
	"strconv"
	"strings"
	"time"
)

// CellKind loại giá trị của một ô trong bảng tính
type CellKind int

const (
	CellEmpty CellKind = iota
	CellString
	CellNumber
	CellTime
)

// Cell một ô dữ liệu thô sau khi giải mã từ file Excel.
// Không giả định ma trận chữ nhật: hàng thiếu ô coi như ô rỗng.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Time time.Time
}

// Empty ô rỗng
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Str tạo ô chuỗi
func Str(s string) Cell { return Cell{Kind: CellString, Str: s} }

// Num tạo ô số
func Num(f float64) Cell { return Cell{Kind: CellNumber, Num: f} }

// Time tạo ô ngày giờ
func TimeOf(t time.Time) Cell { return Cell{Kind: CellTime, Time: t} }

// IsEmpty ô rỗng hoặc chuỗi toàn khoảng trắng
func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellString:
		return strings.TrimSpace(c.Str) == ""
	}
	return false
}

// Text giá trị dạng chuỗi (dùng cho so khớp từ khóa và quét mẫu)
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return strings.TrimSpace(c.Str)
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case CellTime:
		return c.Time.Format("02/01/2006")
	}
	return ""
}

// Row một hàng dữ liệu thô
type Row []Cell

// At lấy ô theo chỉ số, ngoài phạm vi trả về ô rỗng
func (r Row) At(idx int) Cell {
	if idx < 0 || idx >= len(r) {
		return Empty()
	}
	return r[idx]
}

// IsEmpty hàng không có ô nào mang giá trị
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Matrix ma trận ô thô của một sheet
type Matrix []Row

// Record hàng dữ liệu dạng đối tượng (khóa cột không theo thứ tự)
type Record map[string]Cell

// Table đầu vào của engine: hoặc ma trận theo vị trí cột, hoặc danh
// sách record. Bên giải mã quyết định dạng một lần tại biên, phần
// trích xuất bên trong không tự dò dạng nữa.
type Table struct {
	Matrix  Matrix
	Records []Record
}

// FromMatrix tạo Table dạng ma trận
func FromMatrix(m Matrix) Table { return Table{Matrix: m} }

// FromRecords tạo Table dạng danh sách record
func FromRecords(rs []Record) Table { return Table{Records: rs} }

// IsRecords đầu vào ở dạng record
func (t Table) IsRecords() bool { return t.Matrix == nil && t.Records != nil }
