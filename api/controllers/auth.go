package controllers

import (
	"net/http"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/api/validators"
	"github.com/angelmondragon/mercado-backend/internal/auth"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

// AuthLogin exchanges credentials for an access token.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input auth.LoginInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Login(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthRegisterSupplier signs up a supplier and its first operator account.
func AuthRegisterSupplier(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input auth.RegisterSupplierInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.RegisterSupplier(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
