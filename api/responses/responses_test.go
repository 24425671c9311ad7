package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
)

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Error.Code, envelope.Error.Message
}

func TestWriteErrorClientMessagePassesThrough(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	code, message := decodeError(t, resp)
	if code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code: %s", code)
	}
	if message != "cart is empty" {
		t.Fatalf("unexpected message: %q", message)
	}
}

func TestWriteErrorInternalMessageIsMasked(t *testing.T) {
	resp := httptest.NewRecorder()
	cause := errors.New("pq: deadlock detected")
	WriteError(context.Background(), nil, resp, pkgerrors.Wrap(pkgerrors.CodeInternal, cause, "order creation failed"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	_, message := decodeError(t, resp)
	if message != "internal server error" {
		t.Fatalf("internal details leaked: %q", message)
	}
}

func TestWriteErrorUntypedDefaultsToInternal(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteError(context.Background(), nil, resp, errors.New("boom"))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	code, _ := decodeError(t, resp)
	if code != string(pkgerrors.CodeInternal) {
		t.Fatalf("unexpected code: %s", code)
	}
}

func TestWriteSuccessWrapsData(t *testing.T) {
	resp := httptest.NewRecorder()
	WriteSuccess(resp, map[string]string{"status": "ok"})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data["status"] != "ok" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}
