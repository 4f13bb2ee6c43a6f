package model

import "time"

// SheetInfo thông tin một sheet trong file đã tải lên
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// ImportReport kết quả một lần trích xuất + gộp vào lịch sử
type ImportReport struct {
	FileName   string        `json:"fileName"`
	Sheet      string        `json:"sheet"`
	Dataset    DatasetKind   `json:"dataset"`
	RowsTotal  int           `json:"rowsTotal"`  // số dòng dữ liệu sau tiêu đề
	RowsParsed int           `json:"rowsParsed"` // số dòng trích được
	Records    int           `json:"records"`    // số bản ghi sau gộp
	Duration   time.Duration `json:"duration"`
}
