package store

import (
	"fmt"

	"github.com/manhdung981tn-ux/BAOCAOCHECK/internal/model"
)

// MergePhone ghi đè danh sách khách quen theo số điện thoại
func (s *Store) MergePhone(stats []model.PhoneStat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO phone_stats (phone, name, trips, routes, last_date)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(phone) DO UPDATE SET
			name = excluded.name,
			trips = excluded.trips,
			routes = excluded.routes,
			last_date = excluded.last_date,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, st := range stats {
		_, err := stmt.Exec(st.Phone, st.Name, st.Trips, joinList(st.Routes), st.LastDate)
		if err != nil {
			return fmt.Errorf("failed to upsert phone stat: %w", err)
		}
	}

	return tx.Commit()
}

// ListPhone đọc khách quen, đi nhiều nhất trước
func (s *Store) ListPhone() ([]model.PhoneStat, error) {
	rows, err := s.db.Query(`
		SELECT phone, name, trips, routes, last_date
		FROM phone_stats
		ORDER BY trips DESC, phone ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phone stats: %w", err)
	}
	defer rows.Close()

	var out []model.PhoneStat
	for rows.Next() {
		var st model.PhoneStat
		var routes string
		if err := rows.Scan(&st.Phone, &st.Name, &st.Trips, &routes, &st.LastDate); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		st.Routes = splitList(routes)
		out = append(out, st)
	}
	return out, rows.Err()
}

// MergePricing ghi đè doanh thu vé theo nhóm tuyến / đơn giá / loại vé
func (s *Store) MergePricing(stats []model.PricingStat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO pricing_stats (route_group, price, ticket_type, quantity, revenue)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(route_group, price, ticket_type) DO UPDATE SET
			quantity = excluded.quantity,
			revenue = excluded.revenue,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, st := range stats {
		_, err := stmt.Exec(st.RouteGroup, st.Price, st.TicketType, st.Quantity, st.Revenue)
		if err != nil {
			return fmt.Errorf("failed to upsert pricing stat: %w", err)
		}
	}

	return tx.Commit()
}

// ListPricing đọc doanh thu vé, doanh thu cao nhất trước
func (s *Store) ListPricing() ([]model.PricingStat, error) {
	rows, err := s.db.Query(`
		SELECT route_group, price, ticket_type, quantity, revenue
		FROM pricing_stats
		ORDER BY revenue DESC, route_group ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing stats: %w", err)
	}
	defer rows.Close()

	var out []model.PricingStat
	for rows.Next() {
		var st model.PricingStat
		if err := rows.Scan(&st.RouteGroup, &st.Price, &st.TicketType, &st.Quantity, &st.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
