package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/mercado-backend/api/middleware"
	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/api/validators"
	"github.com/angelmondragon/mercado-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

// SupplierProductCreate creates a listing owned by the authenticated supplier.
func SupplierProductCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		supplierID, err := supplierFromContext(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input catalog.CreateProductInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.CreateProduct(ctx, supplierID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// SupplierProductUpdate applies a partial update to an owned listing.
func SupplierProductUpdate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		supplierID, err := supplierFromContext(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := parsePathUUID(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input catalog.UpdateProductInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(ctx, supplierID, productID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// SupplierProductDelete removes an owned listing.
func SupplierProductDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		supplierID, err := supplierFromContext(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := parsePathUUID(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteProduct(ctx, supplierID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// SupplierDealCreate creates a promotion owned by the authenticated supplier.
func SupplierDealCreate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		supplierID, err := supplierFromContext(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var input catalog.CreateDealInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		deal, err := svc.CreateDeal(ctx, supplierID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, deal)
	}
}

// SupplierDealDelete removes an owned promotion.
func SupplierDealDelete(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		supplierID, err := supplierFromContext(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		dealID, err := parsePathUUID(r, "dealId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteDeal(ctx, supplierID, dealID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// supplierFromContext resolves the supplier the token was minted for. Admin
// tokens carry no supplier, so supplier routes reject them here.
func supplierFromContext(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.SupplierIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "supplier context missing")
	}
	supplierID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeForbidden, "supplier context missing")
	}
	return supplierID, nil
}
