package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"example.com/storefront/internal/config"
	"example.com/storefront/internal/infra/auth"
	"example.com/storefront/internal/infra/cartstore"
	"example.com/storefront/internal/infra/fakestore"
	mongorepo "example.com/storefront/internal/infra/persistence/mongo"
	"example.com/storefront/internal/infra/security"
	api "example.com/storefront/internal/interface/http"
	accountuc "example.com/storefront/internal/usecase/account"
	cartuc "example.com/storefront/internal/usecase/cart"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	checkoutuc "example.com/storefront/internal/usecase/checkout"
	orderuc "example.com/storefront/internal/usecase/order"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := mongorepo.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}

	productRepo := mongorepo.NewProductRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	userRepo := mongorepo.NewUserRepository(db)
	if err := userRepo.CreateIndexes(ctx); err != nil {
		log.Fatalf("mongodb indexes: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	cartStorage := cartstore.NewRedisStorage(redisClient, cfg.CartStorageKey)

	tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	hasher := security.NewBcryptService(0)
	provider := auth.NewProvider(userRepo, hasher, tokenSvc)

	catalogClient := fakestore.NewClient(cfg.CatalogBaseURL)

	cartStore := cartuc.NewStore(ctx, cartStorage)
	coordinator := checkoutuc.NewCoordinator(cartStore, orderRepo, 3*time.Second)
	defer coordinator.Close()

	session := accountuc.NewSession(provider)
	defer session.Close()

	a := api.NewAPI(api.Dependencies{
		CatalogService: cataloguc.NewService(productRepo, catalogClient),
		CartStore:      cartStore,
		Checkout:       coordinator,
		AccountService: accountuc.NewService(provider, userRepo),
		OrderService:   orderuc.NewService(orderRepo),
		TokenService:   tokenSvc,
	})

	addr := ":" + cfg.Port
	log.Printf("storefront listening on %s", addr)
	if err := http.ListenAndServe(addr, a.Router()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
