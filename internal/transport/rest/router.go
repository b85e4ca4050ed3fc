package rest

import (
	"net/http"

	"github.com/sweetlab/sweetshop-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers wired into the router.
type Handlers struct {
	Auth      *AuthHandler
	Sweets    *SweetHandler
	Inventory *InventoryHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP routing table. Global middleware applies to
// every route; per-route middleware enforces authentication and admin
// access where required.
func NewRouter(h Handlers, global ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Middleware(middleware.RequireAuth)
	admin := middleware.Chain(middleware.RequireAuth, middleware.RequireAdmin)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /api/auth/me", authed(http.HandlerFunc(h.Auth.Me)))

	mux.Handle("POST /api/sweets", admin(http.HandlerFunc(h.Sweets.Create)))
	mux.Handle("GET /api/sweets", authed(http.HandlerFunc(h.Sweets.List)))
	mux.Handle("GET /api/sweets/search", authed(http.HandlerFunc(h.Sweets.Search)))
	mux.Handle("GET /api/sweets/{id}", authed(http.HandlerFunc(h.Sweets.Get)))
	mux.Handle("PUT /api/sweets/{id}", admin(http.HandlerFunc(h.Sweets.Update)))
	mux.Handle("DELETE /api/sweets/{id}", admin(http.HandlerFunc(h.Sweets.Delete)))

	mux.Handle("POST /api/inventory/sweets/{id}/purchase", authed(http.HandlerFunc(h.Inventory.Purchase)))
	mux.Handle("POST /api/inventory/sweets/{id}/restock", admin(http.HandlerFunc(h.Inventory.Restock)))
	mux.Handle("GET /api/inventory/stock", admin(http.HandlerFunc(h.Inventory.Stock)))
	mux.Handle("GET /api/inventory/analytics", admin(http.HandlerFunc(h.Inventory.Analytics)))

	return middleware.Chain(global...)(mux)
}
