package store

import (
	"fmt"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// CreateImportLog mở một bản ghi nhật ký import, trả về id
func (s *Store) CreateImportLog(filename string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, status) VALUES (?, 'processing')
	`, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinishImportLog chốt nhật ký import với kết quả trích xuất
func (s *Store) FinishImportLog(id int64, report model.ImportReport, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			sheet = ?,
			dataset = ?,
			rows_total = ?,
			rows_parsed = ?,
			records = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, report.Sheet, string(report.Dataset), report.RowsTotal, report.RowsParsed,
		report.Records, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}

// ImportLogEntry một dòng nhật ký import
type ImportLogEntry struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	Sheet        string `json:"sheet"`
	Dataset      string `json:"dataset"`
	RowsTotal    int    `json:"rowsTotal"`
	RowsParsed   int    `json:"rowsParsed"`
	Records      int    `json:"records"`
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ListImportLogs đọc nhật ký import mới nhất trước, tối đa limit dòng
func (s *Store) ListImportLogs(limit int) ([]ImportLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, filename, sheet, dataset, rows_total, rows_parsed, records, status, error_message, created_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query import logs: %w", err)
	}
	defer rows.Close()

	var out []ImportLogEntry
	for rows.Next() {
		var e ImportLogEntry
		if err := rows.Scan(&e.ID, &e.Filename, &e.Sheet, &e.Dataset, &e.RowsTotal,
			&e.RowsParsed, &e.Records, &e.Status, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
