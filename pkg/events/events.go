package events

import "time"

const (
	TypeVehicleCreated = "vehicle.created"
	TypeBookingCreated = "booking.created"
)

// Header keys shared with downstream consumers.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// RecordCreated is the payload published after a successful insert.
type RecordCreated struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
