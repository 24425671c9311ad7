package controllers

import (
	"net/http"

	"github.com/angelmondragon/mercado-backend/api/responses"
	"github.com/angelmondragon/mercado-backend/internal/catalog"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
)

// AdminSupplierActivate re-enables a supplier's storefront.
func AdminSupplierActivate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return setSupplierActive(svc, logg, true, "activated")
}

// AdminSupplierDeactivate hides a supplier and everything it sells from
// customer-facing reads.
func AdminSupplierDeactivate(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return setSupplierActive(svc, logg, false, "deactivated")
}

func setSupplierActive(svc catalog.Service, logg *logger.Logger, active bool, status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		supplierID, err := parsePathUUID(r, "supplierId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.SetSupplierActive(ctx, supplierID, active); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": status})
	}
}
