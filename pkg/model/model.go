package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// popString removes key from raw and returns its string value. Non-string
// values stay in raw so free-form payloads pass through untouched.
func popString(raw map[string]any, key string) string {
	if val, ok := raw[key]; ok {
		if s, ok := val.(string); ok {
			delete(raw, key)
			return s
		}
	}
	return ""
}

// popFloat removes key from raw and returns its numeric value. JSON numbers
// decode to float64; stored documents may carry int32 or int64. Anything else
// stays in raw.
func popFloat(raw map[string]any, key string) float64 {
	switch n := raw[key].(type) {
	case float64:
		delete(raw, key)
		return n
	case int32:
		delete(raw, key)
		return float64(n)
	case int64:
		delete(raw, key)
		return float64(n)
	}
	return 0
}

// popTime removes key and parses it as RFC3339. Unparseable values are
// dropped; timestamp fields are server-owned and restamped on create.
func popTime(raw map[string]any, key string) time.Time {
	val, ok := raw[key]
	if !ok {
		return time.Time{}
	}
	delete(raw, key)

	s, ok := val.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// popHexID removes _id and returns it as a hex string.
func popHexID(raw map[string]any) string {
	switch id := raw["_id"].(type) {
	case primitive.ObjectID:
		delete(raw, "_id")
		return id.Hex()
	case string:
		delete(raw, "_id")
		return id
	}
	return ""
}

// popDateTime removes key when it holds a BSON datetime or an RFC3339 string.
// Anything else stays in raw and rides along in Extra.
func popDateTime(raw map[string]any, key string) time.Time {
	switch val := raw[key].(type) {
	case primitive.DateTime:
		delete(raw, key)
		return val.Time().UTC()
	case string:
		if t, err := time.Parse(time.RFC3339Nano, val); err == nil {
			delete(raw, key)
			return t.UTC()
		}
	}
	return time.Time{}
}
