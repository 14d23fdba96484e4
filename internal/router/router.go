package router

import (
	"encoding/json"
	"net/http"

	"github.com/Tilak630Devi/shop-webpage/internal/auth"
	"github.com/Tilak630Devi/shop-webpage/internal/handler"
	"github.com/Tilak630Devi/shop-webpage/internal/middleware"
	"github.com/Tilak630Devi/shop-webpage/internal/model"

	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers wired into the router.
type Handlers struct {
	Products *handler.ProductHandler
	Comments *handler.CommentHandler
	Auth     *handler.AuthHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Admin    *handler.AdminHandler
}

// New creates the HTTP router with all routes and middleware configured.
func New(h Handlers, tokens *auth.TokenManager, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	requireUser := middleware.RequireUser(tokens, logger)
	requireAdmin := middleware.RequireAdmin(tokens, logger)
	authLimit := middleware.AuthRateLimit(logger)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(model.APIResponse{OK: true, Data: map[string]string{"status": "UP"}})
	})

	// Public catalogue and reviews
	mux.HandleFunc("GET /products", h.Products.List)
	mux.HandleFunc("GET /products/{slug}", h.Products.GetBySlug)
	mux.HandleFunc("GET /products/{slug}/comments", h.Comments.List)
	mux.Handle("POST /products/{slug}/comments", requireUser(http.HandlerFunc(h.Comments.Create)))

	// Auth (rate-limited)
	mux.Handle("POST /auth/signup", authLimit(http.HandlerFunc(h.Auth.Signup)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /admin/login", authLimit(http.HandlerFunc(h.Auth.AdminLogin)))

	// Cart and checkout (user auth)
	mux.Handle("GET /cart", requireUser(http.HandlerFunc(h.Cart.Get)))
	mux.Handle("POST /cart/add", requireUser(http.HandlerFunc(h.Cart.Add)))
	mux.Handle("PATCH /cart/item/{productId}", requireUser(http.HandlerFunc(h.Cart.UpdateItem)))
	mux.Handle("DELETE /cart/item/{productId}", requireUser(http.HandlerFunc(h.Cart.RemoveItem)))
	mux.Handle("POST /cart/checkout", requireUser(http.HandlerFunc(h.Checkout.CheckoutCart)))
	mux.Handle("POST /checkout/now", requireUser(http.HandlerFunc(h.Checkout.BuyNow)))

	// Back office (admin auth)
	mux.Handle("GET /admin/products", requireAdmin(http.HandlerFunc(h.Admin.ListProducts)))
	mux.Handle("POST /admin/products", requireAdmin(http.HandlerFunc(h.Admin.CreateProduct)))
	mux.Handle("PATCH /admin/products/{id}", requireAdmin(http.HandlerFunc(h.Admin.PatchProduct)))
	mux.Handle("DELETE /admin/products/{id}", requireAdmin(http.HandlerFunc(h.Admin.DeleteProduct)))
	mux.Handle("PATCH /admin/comments/{id}", requireAdmin(http.HandlerFunc(h.Admin.PatchComment)))
	mux.Handle("DELETE /admin/comments/{id}", requireAdmin(http.HandlerFunc(h.Admin.DeleteComment)))

	// Everything else gets the uniform 404 envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(model.APIResponse{
			OK:    false,
			Error: &model.APIError{Code: model.ErrCodeNotFound, Message: "Route not found"},
		})
	})

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
