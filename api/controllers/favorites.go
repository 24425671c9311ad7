package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/api/validators"
	"github.com/angelmondragon/mercado-backend/internal/favorites"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

type addFavoritePayload struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// FavoritesList returns the user's favorited products.
func FavoritesList(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := parsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		views, err := svc.List(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, views)
	}
}

// FavoritesAdd marks a product as favorite; duplicates are a conflict.
func FavoritesAdd(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := parsePathUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload addFavoritePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		if err := svc.Add(ctx, userID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"status": "favorited"})
	}
}

// FavoritesRemove unmarks a favorite; absent favorites are a no-op.
func FavoritesRemove(svc favorites.Service, logg *logger.Logger) http.HandlerFunc {
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

		if err := svc.Remove(ctx, userID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}
