package controllers

import (
	"net/http"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/internal/catalog"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

// DealsList returns customer-visible deals.
func DealsList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deals, err := svc.ListDeals(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, deals)
	}
}
