package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
)

// LayoutRepo groups the floor and seat writes that must land together. A
// layout rebuild deletes rows before reinserting them, so every rebuild
// runs in a transaction; a failure mid-rebuild must never leave a bus with
// its seats gone.
type LayoutRepo struct {
	db *sql.DB
}

// NewLayoutRepo constructs a LayoutRepo with the given DB handle.
func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// ReplaceAll rewrites every floor and seat of a bus from a validated
// snapshot. All deletes and inserts happen in one transaction; on any error
// the previous layout stays intact. Ownership is checked by the caller.
func (r *LayoutRepo) ReplaceAll(ctx context.Context, busID uint64, floors []BusFloor, seats []BusSeat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM bus_seats WHERE bus_id = ?`, busID); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bus_floors WHERE bus_id = ?`, busID); err != nil {
		return err
	}
	const insFloor = `INSERT INTO bus_floors (bus_id, floor_number, seat_rows, seat_cols) VALUES (?, ?, ?, ?)`
	for _, f := range floors {
		if _, err = tx.ExecContext(ctx, insFloor, busID, f.FloorNumber, f.SeatRows, f.SeatCols); err != nil {
			return err
		}
	}
	if len(seats) > 0 {
		query, args := seatInsertQuery(seats)
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceFloor rewrites one deck: its dimensions and its seat rows, in one
// transaction. Returns sql.ErrNoRows when the floor record does not exist.
func (r *LayoutRepo) ReplaceFloor(ctx context.Context, busID uint64, floor BusFloor, seats []BusSeat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	const upd = `UPDATE bus_floors
	             SET seat_rows = ?, seat_cols = ?, updated_at = CURRENT_TIMESTAMP
	             WHERE bus_id = ? AND floor_number = ?`
	var res sql.Result
	if res, err = tx.ExecContext(ctx, upd, floor.SeatRows, floor.SeatCols, busID, floor.FloorNumber); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the dims did not change; confirm the
		// floor row really is missing before reporting it.
		var one int
		if err = tx.QueryRowContext(ctx,
			`SELECT 1 FROM bus_floors WHERE bus_id = ? AND floor_number = ?`,
			busID, floor.FloorNumber).Scan(&one); err != nil {
			return err
		}
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM bus_seats WHERE bus_id = ? AND floor_number = ?`,
		busID, floor.FloorNumber); err != nil {
		return err
	}
	if len(seats) > 0 {
		query, args := seatInsertQuery(seats)
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// DeleteFloor removes one deck and its seats in one transaction. Returns
// sql.ErrNoRows when the floor record does not exist.
func (r *LayoutRepo) DeleteFloor(ctx context.Context, busID uint64, floorNumber int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM bus_seats WHERE bus_id = ? AND floor_number = ?`,
		busID, floorNumber); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx,
		`DELETE FROM bus_floors WHERE bus_id = ? AND floor_number = ?`,
		busID, floorNumber); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = sql.ErrNoRows
		return err
	}
	return nil
}
