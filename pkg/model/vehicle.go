package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle is a rentable listing. Known fields are typed; everything else the
// caller supplies rides along in Extra. Both codecs go through a flat map, so
// a value whose type does not match a known field stays under its key in
// Extra and persists verbatim instead of failing the request.
type Vehicle struct {
	ID        string
	Category  string
	Location  string
	Price     float64
	UserEmail string
	CreatedAt time.Time
	Extra     map[string]any
}

// MarshalJSON flattens Extra into the top-level object alongside the known
// fields, reproducing the original document shape on the wire.
func (v Vehicle) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(v.Extra)+6)
	for k, val := range v.Extra {
		out[k] = val
	}
	if v.ID != "" {
		out["id"] = v.ID
	}
	if v.Category != "" {
		out["category"] = v.Category
	}
	if v.Location != "" {
		out["location"] = v.Location
	}
	if v.Price != 0 {
		out["price"] = v.Price
	}
	if v.UserEmail != "" {
		out["userEmail"] = v.UserEmail
	}
	if !v.CreatedAt.IsZero() {
		out["createdAt"] = v.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return json.Marshal(out)
}

// UnmarshalJSON routes known keys into typed fields and everything else into
// Extra.
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.ID = popString(raw, "id")
	v.Category = popString(raw, "category")
	v.Location = popString(raw, "location")
	v.Price = popFloat(raw, "price")
	v.UserEmail = popString(raw, "userEmail")
	v.CreatedAt = popTime(raw, "createdAt")
	delete(raw, "_id")

	if len(raw) > 0 {
		v.Extra = raw
	} else {
		v.Extra = nil
	}
	return nil
}

// MarshalBSON writes the flat document shape. A typed field only claims its
// key when set, so a wrong-typed value held in Extra under a known key is
// stored as-is.
func (v Vehicle) MarshalBSON() ([]byte, error) {
	doc := make(bson.M, len(v.Extra)+6)
	for k, val := range v.Extra {
		doc[k] = val
	}
	if v.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(v.ID); err == nil {
			doc["_id"] = oid
		}
	}
	if v.Category != "" {
		doc["category"] = v.Category
	}
	if v.Location != "" {
		doc["location"] = v.Location
	}
	if v.Price != 0 {
		doc["price"] = v.Price
	}
	if v.UserEmail != "" {
		doc["userEmail"] = v.UserEmail
	}
	if !v.CreatedAt.IsZero() {
		doc["createdAt"] = primitive.NewDateTimeFromTime(v.CreatedAt)
	}
	return bson.Marshal(doc)
}

// UnmarshalBSON is the read-path mirror: known keys decode into typed fields
// when their stored type fits, and everything else lands in Extra. A stored
// document with, say, a string price still decodes.
func (v *Vehicle) UnmarshalBSON(data []byte) error {
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.ID = popHexID(raw)
	v.Category = popString(raw, "category")
	v.Location = popString(raw, "location")
	v.Price = popFloat(raw, "price")
	v.UserEmail = popString(raw, "userEmail")
	v.CreatedAt = popDateTime(raw, "createdAt")

	if len(raw) > 0 {
		v.Extra = raw
	} else {
		v.Extra = nil
	}
	return nil
}
