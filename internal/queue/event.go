// Package queue defines message payloads exchanged over the message broker.
package queue

// LayoutSavedEvent is published when an operator saves a bus seat layout.
// It carries enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type LayoutSavedEvent struct {
	BusID        uint64         `json:"bus_id"`
	BusName      string         `json:"bus_name"`
	OwnerID      uint64         `json:"owner_id"`
	Floors       int            `json:"floors"`
	TotalSeats   int            `json:"total_seats"`
	SeatsByClass map[string]int `json:"seats_by_class"`
	SavedAt      string         `json:"saved_at"`
}
