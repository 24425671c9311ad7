package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/api/validators"
	"github.com/angelmondragon/mercado-backend/internal/cart"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

type upsertCartItemPayload struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartGet returns the user's cart lines joined with current pricing.
func CartGet(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := parsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		lines, err := svc.GetCart(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, lines)
	}
}

// CartUpsertItem adds a line or replaces its quantity.
func CartUpsertItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := parsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload upsertCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.UpsertItem(ctx, userID, productID, payload.Quantity); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"status": "saved"})
	}
}

// CartRemoveItem drops one line; absent lines are a no-op.
func CartRemoveItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := parsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := parsePathUUID(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.RemoveItem(ctx, userID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

// CartClear empties the user's cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := parsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Clear(ctx, userID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

func parsePathUUID(r *http.Request, key string) (uuid.UUID, error) {
	value, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+key)
	}
	return value, nil
}
