package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
)

// BusFloor stores the grid dimensions of one deck of a bus. The seats
// themselves live in bus_seats; keeping rows/cols here means the grid
// shape survives a reload even when no seat sits in the outer rows.
type BusFloor struct {
	ID          uint64 // primary key
	BusID       uint64 // FK -> buses.id
	FloorNumber int    // 1-based deck number, stable across removals
	SeatRows    int    // grid height
	SeatCols    int    // grid width
	CreatedAt   string
	UpdatedAt   string
}

// FloorRepo provides methods to work with bus floors in the database.
type FloorRepo struct {
	db *sql.DB
}

// NewFloorRepo constructs a FloorRepo with the given DB handle.
func NewFloorRepo(db *sql.DB) *FloorRepo {
	return &FloorRepo{db: db}
}

// Create inserts a floor record. On success the floor's ID is populated.
func (r *FloorRepo) Create(ctx context.Context, f *BusFloor) error {
	const q = `INSERT INTO bus_floors (bus_id, floor_number, seat_rows, seat_cols)
	           VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.BusID, f.FloorNumber, f.SeatRows, f.SeatCols)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// GetByBus retrieves all floors of a bus ordered by floor_number.
func (r *FloorRepo) GetByBus(ctx context.Context, busID uint64) ([]BusFloor, error) {
	const q = `SELECT id, bus_id, floor_number, seat_rows, seat_cols, created_at, updated_at
	           FROM bus_floors
	           WHERE bus_id = ?
	           ORDER BY floor_number`
	rows, err := r.db.QueryContext(ctx, q, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []BusFloor
	for rows.Next() {
		var f BusFloor
		if err := rows.Scan(
			&f.ID, &f.BusID, &f.FloorNumber, &f.SeatRows, &f.SeatCols,
			&f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}


