package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"sweetshop_backend/internal/app/router"
	authadapters "sweetshop_backend/internal/feature/auth/adapters"
	authhandler "sweetshop_backend/internal/feature/auth/transport/handler"
	authusecase "sweetshop_backend/internal/feature/auth/usecase"
	inventoryadapters "sweetshop_backend/internal/feature/inventory/adapters"
	inventoryhandler "sweetshop_backend/internal/feature/inventory/transport/handler"
	inventoryusecase "sweetshop_backend/internal/feature/inventory/usecase"
	orderadapters "sweetshop_backend/internal/feature/orders/adapters"
	orderhandler "sweetshop_backend/internal/feature/orders/transport/handler"
	orderusecase "sweetshop_backend/internal/feature/orders/usecase"
	sweetadapters "sweetshop_backend/internal/feature/sweets/adapters"
	sweethandler "sweetshop_backend/internal/feature/sweets/transport/handler"
	sweetusecase "sweetshop_backend/internal/feature/sweets/usecase"
	"sweetshop_backend/internal/platform/cache"
	"sweetshop_backend/internal/platform/config"
	"sweetshop_backend/internal/platform/db"
	jwtmw "sweetshop_backend/internal/platform/jwt"
	"sweetshop_backend/internal/platform/password"
	platformredis "sweetshop_backend/internal/platform/redis"
	"sweetshop_backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	gdb := db.OpenDB(cfg)

	// Redis is optional: the sweet catalogue cache degrades to direct DB
	// reads when it is unavailable.
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserRepository(gdb)
	sweetRepo := sweetadapters.NewSweetRepository(gdb)
	itemRepo := inventoryadapters.NewItemRepository(gdb)
	orderRepo := orderadapters.NewOrderRepository(gdb)

	cachedSweetRepo := cache.NewCachingSweetRepository(rdb, cfg.CacheTTL, sweetRepo, "sweets")

	// Platform services
	hasher := password.NewHasher(cfg.BcryptCost, cfg.HashWorkers)
	codec := jwtmw.NewCodec(cfg.JWTSecret, cfg.JWTExpiration)
	authLimiter := ratelimiter.NewRateLimiter(cfg.AuthRateLimit, time.Minute)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, codec, hasher)
	sweetUC := sweetusecase.NewSweetUsecase(cachedSweetRepo)
	inventoryUC := inventoryusecase.NewInventoryUsecase(itemRepo)
	orderUC := orderusecase.NewOrderUsecase(orderRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	sweetH := sweethandler.NewSweetHandler(sweetUC)
	inventoryH := inventoryhandler.NewInventoryHandler(inventoryUC)
	orderH := orderhandler.NewOrderHandler(orderUC)

	r := router.NewRouter(authH, sweetH, inventoryH, orderH, codec, authLimiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
