package excel

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// Decoder đọc file Excel đã tải lên thành ma trận ô thô cho engine.
// Đọc ở chế độ raw để ngày tháng ra số serial thay vì chuỗi đã bị
// Excel format lại — engine tự chuẩn hóa serial.
type Decoder struct {
	file   *excelize.File
	fileID string
}

// NewDecoder mở file Excel từ reader
func NewDecoder(r io.Reader) (*Decoder, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	return &Decoder{file: f, fileID: uuid.New().String()}, nil
}

// FileID định danh file trong phiên làm việc
func (d *Decoder) FileID() string {
	return d.fileID
}

// Close đóng workbook
func (d *Decoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// Sheets danh sách sheet kèm số dòng
func (d *Decoder) Sheets() ([]model.SheetInfo, error) {
	if d.file == nil {
		return nil, errors.New("no file loaded")
	}
	var out []model.SheetInfo
	for _, name := range d.file.GetSheetList() {
		rows, err := d.file.GetRows(name)
		if err != nil {
			continue
		}
		out = append(out, model.SheetInfo{Name: name, RowCount: len(rows)})
	}
	return out, nil
}

// Matrix đọc một sheet thành ma trận ô
func (d *Decoder) Matrix(sheet string) (model.Matrix, error) {
	if d.file == nil {
		return nil, errors.New("no file loaded")
	}
	rows, err := d.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	m := make(model.Matrix, len(rows))
	for i, row := range rows {
		cells := make(model.Row, len(row))
		for j, v := range row {
			cells[j] = toCell(v)
		}
		m[i] = cells
	}
	return m, nil
}

// toCell phân loại giá trị raw: rỗng / số / chuỗi. Chuỗi bắt đầu
// bằng "0" (số điện thoại lưu dạng text) giữ nguyên là chuỗi để
// không mất số 0 đầu.
func toCell(v string) model.Cell {
	s := strings.TrimSpace(v)
	if s == "" {
		return model.Empty()
	}
	if len(s) > 1 && s[0] == '0' && s[1] != '.' {
		return model.Str(s)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return model.Num(n)
	}
	return model.Str(s)
}
