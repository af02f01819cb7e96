package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/storefront/internal/domain/cart"
	domcatalog "example.com/storefront/internal/domain/catalog"
	domorder "example.com/storefront/internal/domain/order"
	domuser "example.com/storefront/internal/domain/user"
	accountuc "example.com/storefront/internal/usecase/account"
	cartuc "example.com/storefront/internal/usecase/cart"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	checkoutuc "example.com/storefront/internal/usecase/checkout"
	orderuc "example.com/storefront/internal/usecase/order"
)

type TokenService interface {
	ParseToken(token string) (*domuser.Identity, error)
}

type API struct {
	catalogSvc *cataloguc.Service
	cartStore  *cartuc.Store
	checkout   *checkoutuc.Coordinator
	accountSvc *accountuc.Service
	orderSvc   *orderuc.Service
	validator  *validator.Validate
	tokenSvc   TokenService
}

type Dependencies struct {
	CatalogService *cataloguc.Service
	CartStore      *cartuc.Store
	Checkout       *checkoutuc.Coordinator
	AccountService *accountuc.Service
	OrderService   *orderuc.Service
	TokenService   TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		catalogSvc: deps.CatalogService,
		cartStore:  deps.CartStore,
		checkout:   deps.Checkout,
		accountSvc: deps.AccountService,
		orderSvc:   deps.OrderService,
		tokenSvc:   deps.TokenService,
		validator:  validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", a.handleRegister)
		r.Post("/auth/login", a.handleLogin)
		r.Post("/auth/logout", a.handleLogout)

		r.Group(func(pr chi.Router) {
			pr.Use(a.optionalAuthMiddleware)
			pr.Get("/products", a.handleListProducts)
		})
		r.Get("/products/categories", a.handleListCategories)
		r.Get("/products/category/{category}", a.handleListProductsByCategory)

		r.Get("/cart", a.handleGetCart)
		r.Post("/cart/items", a.handleAddCartItem)
		r.Put("/cart/items/{id}", a.handleUpdateCartItem)
		r.Delete("/cart/items/{id}", a.handleRemoveCartItem)
		r.Delete("/cart", a.handleClearCart)

		r.Group(func(cr chi.Router) {
			cr.Use(a.optionalAuthMiddleware)
			cr.Get("/checkout", a.handleCheckoutStatus)
			cr.Post("/checkout", a.handleCheckout)
			cr.Post("/checkout/restore", a.handleCheckoutRestore)
		})

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)

			ar.Post("/products/seed", a.handleSeedProducts)
			ar.Post("/products", a.handleCreateProduct)
			ar.Get("/products/{docId}", a.handleGetProduct)
			ar.Put("/products/{docId}", a.handleUpdateProduct)
			ar.Delete("/products/{docId}", a.handleDeleteProduct)

			ar.Get("/me/profile", a.handleGetProfile)
			ar.Put("/me/profile", a.handleUpdateProfile)
			ar.Delete("/me/profile", a.handleDeleteAccount)

			ar.Get("/me/orders", a.handleListOrders)
			ar.Get("/me/orders/{id}", a.handleGetOrder)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapProduct(p domcatalog.Product) map[string]any {
	return map[string]any{
		"docId":       p.DocID,
		"id":          p.ID,
		"title":       p.Title,
		"price":       p.Price,
		"description": p.Description,
		"category":    p.Category,
		"image":       p.Image,
		"rating":      map[string]any{"rate": p.Rating.Rate, "count": p.Rating.Count},
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	return map[string]any{
		"id":         o.ID,
		"userId":     o.UserID,
		"items":      o.Items,
		"totalPrice": o.TotalPrice,
		"createdAt":  o.CreatedAt,
	}
}

func mapProfile(p *domuser.Profile) map[string]any {
	return map[string]any{
		"email":       p.Email,
		"displayName": p.DisplayName,
		"address":     p.Address,
		"phoneNumber": p.PhoneNumber,
		"createdAt":   p.CreatedAt,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcart.ErrInvalidItem),
		errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrEmptyCart),
		errors.Is(err, domcatalog.ErrInvalidProduct):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domuser.ErrEmailAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domcatalog.ErrProductNotFound),
		errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrInvalidCredential),
		errors.Is(err, domuser.ErrUnauthorized),
		errors.Is(err, checkoutuc.ErrNotSignedIn):
		respondError(w, http.StatusUnauthorized, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
