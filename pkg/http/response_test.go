package http

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "travelease/pkg/errors"
)

func TestWriteSuccess_NilPayloadIsNull(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteSuccess(rec, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Errorf("expected null body, got %q", body)
	}
}

func TestWriteSuccess_SetsJSONContentType(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteSuccess(rec, map[string]string{"a": "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestWriteError_UsesAppErrorStatusAndMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteError(rec, apperrors.Internal("Error fetching vehicles", stderrors.New("socket closed")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp["message"] != "Error fetching vehicles" {
		t.Errorf("expected generic message only, got %v", resp)
	}
	if _, ok := resp["code"]; ok {
		t.Error("error code must not leak to the client")
	}
	if strings.Contains(rec.Body.String(), "socket closed") {
		t.Error("underlying cause must not leak to the client")
	}
}

func TestWriteError_PlainErrorCollapsesToInternal(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteError(rec, stderrors.New("boom")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestWriteMutation_OmitsEmptyInsertedID(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteMutation(rec, MutationResponse{Success: true, Message: "Vehicle updated successfully"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := resp["insertedId"]; ok {
		t.Error("insertedId must be omitted when empty")
	}
}

func TestWriteMutation_CarriesInsertedID(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteMutation(rec, MutationResponse{
		Success:    true,
		Message:    "Vehicle added successfully",
		InsertedID: "65f000000000000000000001",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp["insertedId"] != "65f000000000000000000001" {
		t.Errorf("expected insertedId, got %v", resp["insertedId"])
	}
}

func TestWriteMutationError_EnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteMutationError(rec, apperrors.Internal("Failed to add vehicle", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp["success"] != false {
		t.Errorf("expected success false, got %v", resp["success"])
	}
	if resp["message"] != "Failed to add vehicle" {
		t.Errorf("expected generic message, got %v", resp["message"])
	}
}

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteText(rec, http.StatusOK, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected plain text content type, got %q", ct)
	}
	if rec.Body.String() != "hello" {
		t.Errorf("expected raw body, got %q", rec.Body.String())
	}
}
