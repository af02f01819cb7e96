package http

import "net/http"

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	identity := getIdentity(r.Context())

	if err := a.checkout.PlaceOrder(r.Context(), identity); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order placed successfully!",
		"phase":   a.checkout.Phase(),
	})
}

func (a *API) handleCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"phase": a.checkout.Phase()})
}

func (a *API) handleCheckoutRestore(w http.ResponseWriter, r *http.Request) {
	if err := a.checkout.Restore(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"phase": a.checkout.Phase(),
		"items": a.cartStore.Items(),
	})
}
