package repository // repository defines data access for bus seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
)

// BusSeat represents one Seat cell of a bus floor grid. Only Seat cells
// are stored; Empty, Blocked and Driver positions are reconstructed by
// the layout engine from the floor dimensions.
type BusSeat struct {
	ID              uint64  // primary key
	BusID           uint64  // FK -> buses.id
	FloorNumber     int     // deck the seat sits on
	RowPos          int     // 1-based grid row
	ColPos          int     // 1-based grid column
	SeatNumber      string  // e.g. 1A, 12F, or a manual override
	SeatClass       string  // STANDARD | VIP | SLEEPER
	PriceMultiplier float64 // per-seat price factor
	IsAvailable     bool    // sellable flag
	CreatedAt       string
	UpdatedAt       string
}

// SeatRepo provides methods to work with bus seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// seatInsertQuery builds the multi-VALUES insert statement and its argument
// list for a batch of seats. Shared by SeatRepo.CreateBulk and the
// transactional layout rebuilds.
func seatInsertQuery(seats []BusSeat) (string, []interface{}) {
	query := `INSERT INTO bus_seats (bus_id, floor_number, row_pos, col_pos, seat_number, seat_class, price_multiplier, is_available) VALUES `
	args := make([]interface{}, 0, len(seats)*8)
	for i, seat := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?, ?)"
		args = append(args, seat.BusID, seat.FloorNumber, seat.RowPos, seat.ColPos,
			seat.SeatNumber, seat.SeatClass, seat.PriceMultiplier, seat.IsAvailable)
	}
	return query, args
}

// CreateBulk inserts multiple seats in a single statement.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []BusSeat) error {
	if len(seats) == 0 {
		return nil
	}
	query, args := seatInsertQuery(seats)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetByBus retrieves all seats of a bus ordered by floor, row, column.
func (r *SeatRepo) GetByBus(ctx context.Context, busID uint64) ([]BusSeat, error) {
	const q = `SELECT id, bus_id, floor_number, row_pos, col_pos, seat_number, seat_class, price_multiplier, is_available, created_at, updated_at
	           FROM bus_seats
	           WHERE bus_id = ?
	           ORDER BY floor_number, row_pos, col_pos`
	rows, err := r.db.QueryContext(ctx, q, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BusSeat
	for rows.Next() {
		var s BusSeat
		if err := rows.Scan(
			&s.ID, &s.BusID, &s.FloorNumber, &s.RowPos, &s.ColPos,
			&s.SeatNumber, &s.SeatClass, &s.PriceMultiplier, &s.IsAvailable,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}


