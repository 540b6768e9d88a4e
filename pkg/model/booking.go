package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a reservation request. The referenced vehicle information is
// caller-supplied free-form data kept in Extra; no structural linkage to the
// vehicles collection is enforced. Codecs follow the same flat-map scheme as
// Vehicle.
type Booking struct {
	ID        string
	UserEmail string
	BookedAt  time.Time
	Extra     map[string]any
}

func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(b.Extra)+3)
	for k, val := range b.Extra {
		out[k] = val
	}
	if b.ID != "" {
		out["id"] = b.ID
	}
	if b.UserEmail != "" {
		out["userEmail"] = b.UserEmail
	}
	if !b.BookedAt.IsZero() {
		out["bookedAt"] = b.BookedAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = popString(raw, "id")
	b.UserEmail = popString(raw, "userEmail")
	b.BookedAt = popTime(raw, "bookedAt")
	delete(raw, "_id")

	if len(raw) > 0 {
		b.Extra = raw
	} else {
		b.Extra = nil
	}
	return nil
}

func (b Booking) MarshalBSON() ([]byte, error) {
	doc := make(bson.M, len(b.Extra)+3)
	for k, val := range b.Extra {
		doc[k] = val
	}
	if b.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(b.ID); err == nil {
			doc["_id"] = oid
		}
	}
	if b.UserEmail != "" {
		doc["userEmail"] = b.UserEmail
	}
	if !b.BookedAt.IsZero() {
		doc["bookedAt"] = primitive.NewDateTimeFromTime(b.BookedAt)
	}
	return bson.Marshal(doc)
}

func (b *Booking) UnmarshalBSON(data []byte) error {
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = popHexID(raw)
	b.UserEmail = popString(raw, "userEmail")
	b.BookedAt = popDateTime(raw, "bookedAt")

	if len(raw) > 0 {
		b.Extra = raw
	} else {
		b.Extra = nil
	}
	return nil
}
