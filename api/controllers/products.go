package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/api/validators"
	"github.com/angelmondragon/mercado-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
	"github.com/angelmondragon/mercado-backend/pkg/pagination"
)

// ProductsList is the public catalog browse endpoint.
func ProductsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

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

		filters := catalog.ProductFilters{
			Category:   validators.ParseQueryString(r, "category"),
			SupplierID: supplierID,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
		}

		list, err := svc.ListProducts(ctx, filters, pagination.Params{Page: page, Limit: limit})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ProductsGet returns one product from an active supplier.
func ProductsGet(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.GetProduct(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
