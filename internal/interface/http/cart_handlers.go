package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domcart "example.com/storefront/internal/domain/cart"
)

type addCartItemRequest struct {
	ID       int64   `json:"id" validate:"required,gt=0"`
	Title    string  `json:"title" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Image    string  `json:"image"`
	Quantity int64   `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":      a.cartStore.Items(),
		"totalPrice": a.cartStore.CalculateTotal(),
		"totalItems": a.cartStore.CalculateTotalItemCount(),
	})
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	item := domcart.LineItem{
		ID:       req.ID,
		Title:    req.Title,
		Price:    req.Price,
		Image:    req.Image,
		Quantity: req.Quantity,
	}
	if err := a.cartStore.AddItem(r.Context(), item); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var req updateQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartStore.UpdateItemQuantity(r.Context(), id, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.cartStore.RemoveItem(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := a.cartStore.ClearCart(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func parseItemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
