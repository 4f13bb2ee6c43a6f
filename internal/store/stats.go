package store

import (
	"fmt"
	"strings"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/normalize"
)

// Các bảng thống kê upsert theo đúng khóa gộp của engine: import lại
// cùng file thì bản ghi mới thay bản ghi cũ của cùng (ngày, lái xe).

// MergeDaily ghi đè thống kê khách theo ngày
func (s *Store) MergeDaily(stats []model.DailyCustomerStat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO daily_stats (date, driver_key, driver, customers, tickets, trips, work_units, extra_trips, plates, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, driver_key) DO UPDATE SET
			driver = excluded.driver,
			customers = excluded.customers,
			tickets = excluded.tickets,
			trips = excluded.trips,
			work_units = excluded.work_units,
			extra_trips = excluded.extra_trips,
			plates = excluded.plates,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, st := range stats {
		_, err := stmt.Exec(st.Date, normalize.IdentityKey(st.Driver), st.Driver,
			st.Customers, st.Tickets, st.Trips, st.WorkUnits, st.ExtraTrips,
			joinList(st.Plates), st.Notes)
		if err != nil {
			return fmt.Errorf("failed to upsert daily stat: %w", err)
		}
	}

	return tx.Commit()
}

// ListDaily đọc toàn bộ thống kê khách theo ngày, mới nhất trước
func (s *Store) ListDaily() ([]model.DailyCustomerStat, error) {
	rows, err := s.db.Query(`
		SELECT driver, date, customers, tickets, trips, work_units, extra_trips, plates, notes
		FROM daily_stats
		ORDER BY substr(date,7,4)||substr(date,4,2)||substr(date,1,2) DESC, customers DESC, driver ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	var out []model.DailyCustomerStat
	for rows.Next() {
		var st model.DailyCustomerStat
		var plates string
		if err := rows.Scan(&st.Driver, &st.Date, &st.Customers, &st.Tickets, &st.Trips,
			&st.WorkUnits, &st.ExtraTrips, &plates, &st.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		st.Plates = splitList(plates)
		out = append(out, st)
	}
	return out, rows.Err()
}

// MergeSelf ghi đè thống kê tự khai thác
func (s *Store) MergeSelf(stats []model.SelfCustomerStat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO self_stats (date, driver_key, driver, customers, trips, plates, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, driver_key) DO UPDATE SET
			driver = excluded.driver,
			customers = excluded.customers,
			trips = excluded.trips,
			plates = excluded.plates,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, st := range stats {
		_, err := stmt.Exec(st.Date, normalize.IdentityKey(st.Driver), st.Driver,
			st.Customers, st.Trips, joinList(st.Plates), st.Notes)
		if err != nil {
			return fmt.Errorf("failed to upsert self stat: %w", err)
		}
	}

	return tx.Commit()
}

// ListSelf đọc thống kê tự khai thác, mới nhất trước
func (s *Store) ListSelf() ([]model.SelfCustomerStat, error) {
	rows, err := s.db.Query(`
		SELECT driver, date, customers, trips, plates, notes
		FROM self_stats
		ORDER BY substr(date,7,4)||substr(date,4,2)||substr(date,1,2) DESC, customers DESC, driver ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query self stats: %w", err)
	}
	defer rows.Close()

	var out []model.SelfCustomerStat
	for rows.Next() {
		var st model.SelfCustomerStat
		var plates string
		if err := rows.Scan(&st.Driver, &st.Date, &st.Customers, &st.Trips, &plates, &st.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		st.Plates = splitList(plates)
		out = append(out, st)
	}
	return out, rows.Err()
}

// MergeTransit ghi đè thống kê trung chuyển
func (s *Store) MergeTransit(stats []model.TransitStat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO transit_stats (date, driver_key, driver, trips, passengers, plate, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, driver_key) DO UPDATE SET
			driver = excluded.driver,
			trips = excluded.trips,
			passengers = excluded.passengers,
			plate = excluded.plate,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, st := range stats {
		_, err := stmt.Exec(st.Date, normalize.IdentityKey(st.Driver), st.Driver,
			st.Trips, st.Passengers, st.Plate, st.Notes)
		if err != nil {
			return fmt.Errorf("failed to upsert transit stat: %w", err)
		}
	}

	return tx.Commit()
}

// ListTransit đọc thống kê trung chuyển, mới nhất trước
func (s *Store) ListTransit() ([]model.TransitStat, error) {
	rows, err := s.db.Query(`
		SELECT driver, date, trips, passengers, plate, notes
		FROM transit_stats
		ORDER BY substr(date,7,4)||substr(date,4,2)||substr(date,1,2) DESC, driver ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transit stats: %w", err)
	}
	defer rows.Close()

	var out []model.TransitStat
	for rows.Next() {
		var st model.TransitStat
		if err := rows.Scan(&st.Driver, &st.Date, &st.Trips, &st.Passengers, &st.Plate, &st.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func joinList(vals []string) string {
	return strings.Join(vals, "; ")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "; ")
}
