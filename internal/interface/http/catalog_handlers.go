package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcatalog "example.com/storefront/internal/domain/catalog"
)

type productRequest struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.catalogSvc.FetchProducts(r.Context(), getIdentity(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.catalogSvc.FetchCategories(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (a *API) handleListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := a.catalogSvc.FetchProductsByCategory(r.Context(), category)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleSeedProducts(w http.ResponseWriter, r *http.Request) {
	seeded, err := a.catalogSvc.SeedProducts(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	msg := "Firestore already populated!"
	if seeded {
		msg = "Firestore populated!"
	}
	writeJSON(w, http.StatusOK, map[string]any{"seeded": seeded, "message": msg})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	docID, err := a.catalogSvc.AddProduct(r.Context(), req.product())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"docId": docID})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.GetProduct(r.Context(), chi.URLParam(r, "docId"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(*p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.catalogSvc.UpdateProduct(r.Context(), chi.URLParam(r, "docId"), req.product()); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := a.catalogSvc.DeleteProduct(r.Context(), chi.URLParam(r, "docId")); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (r productRequest) product() domcatalog.Product {
	return domcatalog.Product{
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
	}
}
