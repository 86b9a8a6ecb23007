package repository // repository holds data access logic for domain entities

import (
	"context"      // context carries deadlines and cancellation into queries
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions
	"strings"      // strings is used to detect duplicate-key failures
)

// Bus represents one vehicle in an operator's fleet. SeatCapacity is the
// reconciled seat count derived from the persisted layout; it is updated
// whenever the layout is saved, never edited directly.
type Bus struct {
	ID           uint64         // buses.id, primary key
	OwnerID      uint64         // buses.owner_id, references users.id
	Name         string         // buses.name, unique per owner
	PlateNumber  sql.NullString // buses.plate_number, optional registration plate
	SeatCapacity uint32         // buses.seat_capacity
	IsActive     bool           // buses.is_active
	CreatedAt    string         // buses.created_at
	UpdatedAt    string         // buses.updated_at
}

// ErrBusNotFound is returned when a bus lookup yields no rows.
var ErrBusNotFound = errors.New("bus not found")

// BusRepo provides methods to create and retrieve buses.
type BusRepo struct {
	db *sql.DB
}

// NewBusRepo constructs a BusRepo with the given DB handle.
func NewBusRepo(db *sql.DB) *BusRepo {
	return &BusRepo{db: db}
}

// Create inserts a new bus and reads the row back so timestamps and the
// active flag are populated. Duplicate name/plate rows surface as
// ErrConflict.
func (r *BusRepo) Create(ctx context.Context, b *Bus) error {
	const qInsert = `INSERT INTO buses (owner_id, name, plate_number, seat_capacity)
	                 VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, b.OwnerID, b.Name, b.PlateNumber, b.SeatCapacity)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const qSelect = `SELECT id, owner_id, name, plate_number, seat_capacity, is_active, created_at, updated_at
	                 FROM buses WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, b.ID).
		Scan(&b.ID, &b.OwnerID, &b.Name, &b.PlateNumber, &b.SeatCapacity, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
}

// GetByID retrieves a bus regardless of owner. Returns ErrBusNotFound when
// no row exists.
func (r *BusRepo) GetByID(ctx context.Context, id uint64) (*Bus, error) {
	const q = `SELECT id, owner_id, name, plate_number, seat_capacity, is_active, created_at, updated_at
	           FROM buses WHERE id = ?`
	var b Bus
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&b.ID, &b.OwnerID, &b.Name, &b.PlateNumber, &b.SeatCapacity, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusNotFound
		}
		return nil, err
	}
	return &b, nil
}

// GetByIDAndOwner retrieves a bus only if it belongs to the given owner.
// Used by every operator endpoint to enforce resource ownership.
func (r *BusRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*Bus, error) {
	const q = `SELECT id, owner_id, name, plate_number, seat_capacity, is_active, created_at, updated_at
	           FROM buses WHERE id = ? AND owner_id = ?`
	var b Bus
	err := r.db.QueryRowContext(ctx, q, id, ownerID).
		Scan(&b.ID, &b.OwnerID, &b.Name, &b.PlateNumber, &b.SeatCapacity, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListAll returns every active bus, ordered by id. Used by the public
// browse API.
func (r *BusRepo) ListAll(ctx context.Context) ([]*Bus, error) {
	const q = `SELECT id, owner_id, name, plate_number, seat_capacity, is_active, created_at, updated_at
	           FROM buses WHERE is_active = 1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Bus
	for rows.Next() {
		b := new(Bus)
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.PlateNumber, &b.SeatCapacity, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByOwner returns all buses belonging to one operator, ordered by id.
func (r *BusRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*Bus, error) {
	const q = `SELECT id, owner_id, name, plate_number, seat_capacity, is_active, created_at, updated_at
	           FROM buses WHERE owner_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Bus
	for rows.Next() {
		b := new(Bus)
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Name, &b.PlateNumber, &b.SeatCapacity, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByIDAndOwner updates name, plate number and active flag when the
// bus belongs to the given owner. Returns sql.ErrNoRows when not found.
func (r *BusRepo) UpdateByIDAndOwner(ctx context.Context, b *Bus) error {
	const q = `UPDATE buses
	           SET name = ?, plate_number = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Name, b.PlateNumber, b.IsActive, b.ID, b.OwnerID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateSeatCapacity reconciles the stored seat_capacity with a freshly
// computed total from the layout engine.
func (r *BusRepo) UpdateSeatCapacity(ctx context.Context, id uint64, capacity uint32) error {
	const q = `UPDATE buses SET seat_capacity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, capacity, id)
	return err
}

// DeleteByIDAndOwner removes a bus together with its floors and seats.
// Returns sql.ErrNoRows when the bus does not exist and ErrForbidden when
// it belongs to another owner.
func (r *BusRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
	var owner uint64
	err := r.db.QueryRowContext(ctx, `SELECT owner_id FROM buses WHERE id = ?`, id).Scan(&owner)
	if err != nil {
		return err
	}
	if owner != ownerID {
		return ErrForbidden
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bus_seats WHERE bus_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bus_floors WHERE bus_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM buses WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
