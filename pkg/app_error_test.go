package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	b, err := json.Marshal(appErr.ToHTTPError())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"error":"Product not found","code":"PRODUCT_NOT_FOUND"}` {
		t.Fatalf("unexpected envelope: %s", b)
	}
}

func TestAppError_DetailsAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError).
		WithDetails(json.RawMessage(`{"message":"bad"}`))

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	b, _ := json.Marshal(appErr.ToHTTPError())
	if string(b) != `{"error":"An internal error occurred","code":"INTERNAL_ERROR","details":{"message":"bad"}}` {
		t.Fatalf("unexpected envelope: %s", b)
	}
}
