package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	ordersvc "github.com/angelmondragon/mercado-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
)

type stubOrderFinalizer struct {
	result   *ordersvc.FinalizeResult
	err      error
	lastUser uuid.UUID
}

func (s *stubOrderFinalizer) Finalize(ctx context.Context, userID uuid.UUID) (*ordersvc.FinalizeResult, error) {
	s.lastUser = userID
	return s.result, s.err
}

func (s *stubOrderFinalizer) GetOrder(ctx context.Context, id uuid.UUID) (*ordersvc.OrderView, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}

func (s *stubOrderFinalizer) ListByUser(ctx context.Context, userID uuid.UUID) ([]ordersvc.OrderView, error) {
	return []ordersvc.OrderView{}, nil
}

func TestOrdersCreateSuccess(t *testing.T) {
	userID := uuid.New()
	stub := &stubOrderFinalizer{result: &ordersvc.FinalizeResult{
		OrderID:     uuid.New(),
		TotalAmount: decimal.RequireFromString("21.00"),
	}}
	handler := OrdersCreate(stub, nil)

	body := `{"user_id":"` + userID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if stub.lastUser != userID {
		t.Fatalf("expected finalize for %s got %s", userID, stub.lastUser)
	}

	var envelope struct {
		Data ordersvc.FinalizeResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OrderID != stub.result.OrderID {
		t.Fatalf("unexpected order id: %s", envelope.Data.OrderID)
	}
	if !envelope.Data.TotalAmount.Equal(stub.result.TotalAmount) {
		t.Fatalf("unexpected total: %s", envelope.Data.TotalAmount)
	}
}

func TestOrdersCreateEmptyCart(t *testing.T) {
	stub := &stubOrderFinalizer{err: pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")}
	handler := OrdersCreate(stub, nil)

	body := `{"user_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "cart is empty" {
		t.Fatalf("unexpected message: %q", envelope.Error.Message)
	}
}

func TestOrdersCreateBadUserID(t *testing.T) {
	stub := &stubOrderFinalizer{}
	handler := OrdersCreate(stub, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"user_id":"not-a-uuid"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if stub.lastUser != uuid.Nil {
		t.Fatalf("finalize should not run for invalid payloads")
	}
}

func TestOrdersCreateInternalFailure(t *testing.T) {
	stub := &stubOrderFinalizer{err: pkgerrors.New(pkgerrors.CodeInternal, "order creation failed")}
	handler := OrdersCreate(stub, nil)

	body := `{"user_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
