package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domorder "example.com/storefront/internal/domain/order"
)

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r.Context())

	orders, err := a.orderSvc.History(r.Context(), identity.UID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		out = append(out, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r.Context())

	o, err := a.orderSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	// Order records are private; another user's order looks absent.
	if o.UserID != identity.UID {
		respondError(w, http.StatusNotFound, domorder.ErrOrderNotFound)
		return
	}

	writeJSON(w, http.StatusOK, mapOrder(o))
}
