package model

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVehicleUnmarshal_RoutesUnknownFieldsToExtra(t *testing.T) {
	body := []byte(`{
		"category": "suv",
		"location": "NYC",
		"price": 100,
		"userEmail": "a@b.com",
		"pricePerDay": 100,
		"features": ["gps", "sunroof"]
	}`)

	var v Vehicle
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Category != "suv" {
		t.Errorf("expected category 'suv', got %q", v.Category)
	}
	if v.Location != "NYC" {
		t.Errorf("expected location 'NYC', got %q", v.Location)
	}
	if v.Price != 100 {
		t.Errorf("expected price 100, got %v", v.Price)
	}
	if v.UserEmail != "a@b.com" {
		t.Errorf("expected userEmail 'a@b.com', got %q", v.UserEmail)
	}
	if _, ok := v.Extra["pricePerDay"]; !ok {
		t.Error("expected pricePerDay to land in Extra")
	}
	if _, ok := v.Extra["features"]; !ok {
		t.Error("expected features to land in Extra")
	}
	if _, ok := v.Extra["category"]; ok {
		t.Error("known field category must not stay in Extra")
	}
}

func TestVehicleMarshal_FlattensExtra(t *testing.T) {
	v := Vehicle{
		ID:        "65f000000000000000000001",
		Category:  "suv",
		Price:     42.5,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Extra:     map[string]any{"color": "red"},
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out["id"] != "65f000000000000000000001" {
		t.Errorf("expected id in output, got %v", out["id"])
	}
	if out["color"] != "red" {
		t.Errorf("expected extra field color flattened, got %v", out["color"])
	}
	if out["createdAt"] != "2026-03-01T12:00:00Z" {
		t.Errorf("expected RFC3339 createdAt, got %v", out["createdAt"])
	}
	if _, ok := out["Extra"]; ok {
		t.Error("Extra map itself must not appear in output")
	}
}

func TestVehicleJSON_RoundTripPreservesExtras(t *testing.T) {
	body := []byte(`{"category":"van","seats":7,"ownerNote":"no pets"}`)

	var v Vehicle
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out["category"] != "van" {
		t.Errorf("expected category 'van', got %v", out["category"])
	}
	if out["seats"] != float64(7) {
		t.Errorf("expected seats 7, got %v", out["seats"])
	}
	if out["ownerNote"] != "no pets" {
		t.Errorf("expected ownerNote preserved, got %v", out["ownerNote"])
	}
}

func TestVehicleUnmarshal_WrongTypeStaysInExtra(t *testing.T) {
	// A numeric category is not a known typed field value; it passes through
	// untouched instead of being coerced.
	body := []byte(`{"category": 7, "price": "cheap"}`)

	var v Vehicle
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.Category != "" {
		t.Errorf("expected empty category, got %q", v.Category)
	}
	if v.Price != 0 {
		t.Errorf("expected zero price, got %v", v.Price)
	}
	if v.Extra["category"] != float64(7) {
		t.Errorf("expected numeric category kept in Extra, got %v", v.Extra["category"])
	}
	if v.Extra["price"] != "cheap" {
		t.Errorf("expected string price kept in Extra, got %v", v.Extra["price"])
	}
}

func TestBookingUnmarshal_CallerTimestampDropped(t *testing.T) {
	body := []byte(`{"userEmail":"a@b.com","vehicleId":"X","bookedAt":"2020-01-01T00:00:00Z"}`)

	var b Booking
	if err := json.Unmarshal(body, &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.UserEmail != "a@b.com" {
		t.Errorf("expected userEmail 'a@b.com', got %q", b.UserEmail)
	}
	if b.Extra["vehicleId"] != "X" {
		t.Errorf("expected vehicleId in Extra, got %v", b.Extra["vehicleId"])
	}
	if _, ok := b.Extra["bookedAt"]; ok {
		t.Error("bookedAt must not stay in Extra")
	}
	if !b.BookedAt.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected parsed bookedAt, got %v", b.BookedAt)
	}
}

func TestVehicleBSON_WrongTypedPriceStoredVerbatim(t *testing.T) {
	var v Vehicle
	if err := json.Unmarshal([]byte(`{"category":"suv","price":"fifty"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := bson.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["category"] != "suv" {
		t.Errorf("expected category stored, got %v", doc["category"])
	}
	if doc["price"] != "fifty" {
		t.Errorf("expected string price stored verbatim, got %v", doc["price"])
	}
}

func TestVehicleBSON_DecodesStringPriceIntoExtra(t *testing.T) {
	data, err := bson.Marshal(bson.M{"category": "suv", "price": "fifty"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v Vehicle
	if err := bson.Unmarshal(data, &v); err != nil {
		t.Fatalf("a stored non-numeric price must still decode, got: %v", err)
	}

	if v.Category != "suv" {
		t.Errorf("expected category 'suv', got %q", v.Category)
	}
	if v.Price != 0 {
		t.Errorf("expected zero price, got %v", v.Price)
	}
	if v.Extra["price"] != "fifty" {
		t.Errorf("expected string price kept in Extra, got %v", v.Extra["price"])
	}
}

func TestVehicleBSON_DecodesIntegerPrice(t *testing.T) {
	data, err := bson.Marshal(bson.M{"price": int32(80)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v Vehicle
	if err := bson.Unmarshal(data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Price != 80 {
		t.Errorf("expected price 80, got %v", v.Price)
	}
	if _, ok := v.Extra["price"]; ok {
		t.Error("numeric price must not stay in Extra")
	}
}

func TestVehicleBSON_RoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	data, err := bson.Marshal(bson.M{
		"_id":       oid,
		"category":  "van",
		"price":     42.5,
		"userEmail": "a@b.com",
		"createdAt": primitive.NewDateTimeFromTime(createdAt),
		"seats":     int32(7),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v Vehicle
	if err := bson.Unmarshal(data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.ID != oid.Hex() {
		t.Errorf("expected hex id %q, got %q", oid.Hex(), v.ID)
	}
	if v.Category != "van" {
		t.Errorf("expected category 'van', got %q", v.Category)
	}
	if v.Price != 42.5 {
		t.Errorf("expected price 42.5, got %v", v.Price)
	}
	if !v.CreatedAt.Equal(createdAt) {
		t.Errorf("expected createdAt %v, got %v", createdAt, v.CreatedAt)
	}
	if v.Extra["seats"] != int32(7) {
		t.Errorf("expected seats kept in Extra, got %v", v.Extra["seats"])
	}
	if _, ok := v.Extra["_id"]; ok {
		t.Error("_id must not stay in Extra")
	}
}

func TestBookingBSON_WrongTypedEmailStoredVerbatim(t *testing.T) {
	var b Booking
	if err := json.Unmarshal([]byte(`{"userEmail":7,"vehicleId":"X"}`), &b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := bson.Marshal(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["userEmail"] != float64(7) {
		t.Errorf("expected numeric userEmail stored verbatim, got %v", doc["userEmail"])
	}
	if doc["vehicleId"] != "X" {
		t.Errorf("expected vehicleId stored, got %v", doc["vehicleId"])
	}
}

func TestBookingBSON_DecodeToleratesWrongTypedEmail(t *testing.T) {
	data, err := bson.Marshal(bson.M{"userEmail": int32(7), "vehicleId": "X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var b Booking
	if err := bson.Unmarshal(data, &b); err != nil {
		t.Fatalf("a stored non-string email must still decode, got: %v", err)
	}
	if b.UserEmail != "" {
		t.Errorf("expected empty typed email, got %q", b.UserEmail)
	}
	if b.Extra["userEmail"] != int32(7) {
		t.Errorf("expected wrong-typed email kept in Extra, got %v", b.Extra["userEmail"])
	}
}

func TestBookingMarshal_OmitsZeroTimestamp(t *testing.T) {
	b := Booking{UserEmail: "a@b.com"}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := out["bookedAt"]; ok {
		t.Error("zero bookedAt must be omitted")
	}
	if _, ok := out["id"]; ok {
		t.Error("empty id must be omitted")
	}
}
