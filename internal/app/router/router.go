// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	"sweetshop_backend/internal/feature/auth/domain/entity"
	authhandler "sweetshop_backend/internal/feature/auth/transport/handler"
	inventoryhandler "sweetshop_backend/internal/feature/inventory/transport/handler"
	orderhandler "sweetshop_backend/internal/feature/orders/transport/handler"
	sweethandler "sweetshop_backend/internal/feature/sweets/transport/handler"
	"sweetshop_backend/internal/platform/http/handler"
	jwtmw "sweetshop_backend/internal/platform/jwt"
	"sweetshop_backend/internal/shared/ratelimiter"
)

// NewRouter builds the Gin engine with the full route table.
//
// Public: health check, registration, login and the sweet catalogue.
// Authenticated: sweet management, purchases, inventory and orders.
// Admin: sweet deletion and restocking.
func NewRouter(
	authH *authhandler.AuthHandler,
	sweetH *sweethandler.SweetHandler,
	inventoryH *inventoryhandler.InventoryHandler,
	orderH *orderhandler.OrderHandler,
	codec *jwtmw.Codec,
	authLimiter *ratelimiter.RateLimiter,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handler.Health)

	// Credential endpoints are rate limited to damp brute forcing.
	authRoutes := r.Group("/api/auth")
	authRoutes.Use(authLimiter.Middleware())
	{
		authRoutes.POST("/register", authH.Register)
		authRoutes.POST("/login", authH.Login)
	}

	// The catalogue is browsable without an account.
	r.GET("/api/sweets", sweetH.List)
	r.GET("/api/sweets/:id", sweetH.Get)

	auth := r.Group("/api")
	auth.Use(jwtmw.AuthRequired(codec))
	{
		auth.POST("/sweets", sweetH.Create)
		auth.PUT("/sweets/:id", sweetH.Update)
		auth.POST("/sweets/:id/purchase", sweetH.Purchase)

		auth.GET("/inventory", inventoryH.List)
		auth.GET("/inventory/:id", inventoryH.Get)
		auth.POST("/inventory", inventoryH.Create)
		auth.PUT("/inventory/:id", inventoryH.Update)
		auth.DELETE("/inventory/:id", inventoryH.Delete)

		auth.GET("/orders", orderH.List)
		auth.GET("/orders/:id", orderH.Get)
		auth.POST("/orders", orderH.Create)
		auth.DELETE("/orders/:id", orderH.Delete)

		admin := auth.Group("/")
		admin.Use(jwtmw.RequireRole(entity.RoleAdmin))
		{
			admin.DELETE("/sweets/:id", sweetH.Delete)
			admin.POST("/sweets/:id/restock", sweetH.Restock)
		}
	}

	return r
}
