package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/api/validators"
	"github.com/angelmondragon/mercado-backend/internal/search"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
)

type searchResponse struct {
	SearchTerm string         `json:"search_term"`
	Results    *search.Result `json:"results"`
}

// Search runs the combined product/deal/supplier search.
func Search(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		term := strings.TrimSpace(r.URL.Query().Get("searchTerm"))

		page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		supplierID, err := validators.ParseQueryUUID(r, "supplierId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		minPrice, err := validators.ParseQueryDecimal(r, "minPrice")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryDecimal(r, "maxPrice")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		query := search.Query{
			Term: term,
			Filters: search.Filters{
				Category:   validators.ParseQueryString(r, "category"),
				SupplierID: supplierID,
				MinPrice:   minPrice,
				MaxPrice:   maxPrice,
			},
			Pagination: pagination.Params{Page: page, Limit: limit},
		}

		result, err := svc.Search(ctx, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, searchResponse{
			SearchTerm: term,
			Results:    result,
		})
	}
}
