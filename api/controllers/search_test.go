package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	searchsvc "github.com/angelmondragon/mercado-backend/internal/search"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
)

type stubSearcher struct {
	result    *searchsvc.Result
	err       error
	lastQuery searchsvc.Query
}

func (s *stubSearcher) Search(ctx context.Context, query searchsvc.Query) (*searchsvc.Result, error) {
	s.lastQuery = query
	return s.result, s.err
}

func emptyResult() *searchsvc.Result {
	return &searchsvc.Result{
		Products: searchsvc.ProductPage{
			Items: []searchsvc.RankedProduct{},
			Meta:  pagination.NewMeta(pagination.Params{Page: 1, Limit: pagination.DefaultLimit}, 0),
		},
		Deals:     []searchsvc.RankedDeal{},
		Suppliers: []searchsvc.RankedSupplier{},
	}
}

func TestSearchPassesQueryThrough(t *testing.T) {
	stub := &stubSearcher{result: emptyResult()}
	handler := Search(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search?searchTerm=+honey+&page=2&limit=5&category=pantry", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if stub.lastQuery.Term != "honey" {
		t.Fatalf("expected trimmed term, got %q", stub.lastQuery.Term)
	}
	if stub.lastQuery.Pagination.Page != 2 || stub.lastQuery.Pagination.Limit != 5 {
		t.Fatalf("unexpected pagination: %+v", stub.lastQuery.Pagination)
	}
	if stub.lastQuery.Filters.Category == nil || *stub.lastQuery.Filters.Category != "pantry" {
		t.Fatalf("unexpected category filter: %+v", stub.lastQuery.Filters.Category)
	}

	var envelope struct {
		Data struct {
			SearchTerm string           `json:"search_term"`
			Results    *searchsvc.Result `json:"results"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SearchTerm != "honey" {
		t.Fatalf("unexpected search_term: %q", envelope.Data.SearchTerm)
	}
	if envelope.Data.Results == nil || envelope.Data.Results.Products.Items == nil {
		t.Fatalf("expected empty result sets, not null")
	}
}

func TestSearchRejectsBadPagination(t *testing.T) {
	stub := &stubSearcher{result: emptyResult()}
	handler := Search(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search?searchTerm=honey&page=zero", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if stub.lastQuery.Term != "" {
		t.Fatalf("search should not run for invalid pagination")
	}
}

func TestSearchRejectsBadSupplierFilter(t *testing.T) {
	stub := &stubSearcher{result: emptyResult()}
	handler := Search(stub, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search?searchTerm=honey&supplierId=nope", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
