package store

import (
	"fmt"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// ReplaceVAT thay toàn bộ kết quả đối soát bằng kết quả lần chạy mới.
// Đối soát luôn chạy trên đủ hai sổ nên kết quả cũ không còn giá trị.
func (s *Store) ReplaceVAT(records []model.VATRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM vat_records"); err != nil {
		return fmt.Errorf("failed to clear vat records: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO vat_records (code, date, real_amount, invoice_amount, invoice_issued, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		issued := 0
		if r.InvoiceIssued {
			issued = 1
		}
		if _, err := stmt.Exec(r.Code, r.Date, r.RealAmount, r.InvoiceAmount, issued, r.Status); err != nil {
			return fmt.Errorf("failed to insert vat record: %w", err)
		}
	}

	return tx.Commit()
}

// ListVAT đọc kết quả đối soát, dòng lệch xếp trước
func (s *Store) ListVAT() ([]model.VATRecord, error) {
	rows, err := s.db.Query(`
		SELECT code, date, real_amount, invoice_amount, invoice_issued, status
		FROM vat_records
		ORDER BY CASE WHEN status = ? THEN 1 ELSE 0 END, code ASC
	`, model.VATMatch)
	if err != nil {
		return nil, fmt.Errorf("failed to query vat records: %w", err)
	}
	defer rows.Close()

	var out []model.VATRecord
	for rows.Next() {
		var r model.VATRecord
		var issued int
		if err := rows.Scan(&r.Code, &r.Date, &r.RealAmount, &r.InvoiceAmount, &issued, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		r.InvoiceIssued = issued != 0
		out = append(out, r)
	}
	return out, rows.Err()
}
