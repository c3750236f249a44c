package router

import (
	"net/http"

	"millet-market/internal/auth"
	"millet-market/internal/config"
	"millet-market/internal/handler"
	"millet-market/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	contactHandler *handler.ContactHandler,
	tokens *auth.Tokens,
	uploadsDir string,
	corsCfg config.CORSConfig,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Home Page"))
	}).Methods(http.MethodGet)

	// Locally stored product images
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))

	session := middleware.Session(tokens, logger)

	// User routes
	users := r.PathPrefix("/api/users").Subrouter()
	users.HandleFunc("/register", userHandler.Register).Methods(http.MethodPost)
	users.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)
	users.HandleFunc("/logout", userHandler.Logout).Methods(http.MethodGet)
	users.HandleFunc("/loginstatus", userHandler.LoginStatus).Methods(http.MethodGet)
	users.HandleFunc("/getshops", userHandler.GetShops).Methods(http.MethodGet)
	users.HandleFunc("/forgotpassword", userHandler.ForgotPassword).Methods(http.MethodGet)

	protectedUsers := users.PathPrefix("").Subrouter()
	protectedUsers.Use(session)
	protectedUsers.HandleFunc("/getuser", userHandler.GetUser).Methods(http.MethodGet)
	protectedUsers.HandleFunc("/updateuser", userHandler.UpdateProfile).Methods(http.MethodPatch)
	protectedUsers.HandleFunc("/changepassword", userHandler.ChangePassword).Methods(http.MethodPatch)

	// Product routes, all behind the session guard
	products := r.PathPrefix("/api/products").Subrouter()
	products.Use(session)
	products.HandleFunc("", productHandler.Create).Methods(http.MethodPost)
	products.HandleFunc("", productHandler.List).Methods(http.MethodGet)
	products.HandleFunc("/{id}", productHandler.Get).Methods(http.MethodGet)
	products.HandleFunc("/{id}", productHandler.Update).Methods(http.MethodPatch)
	products.HandleFunc("/{id}", productHandler.Delete).Methods(http.MethodDelete)

	// Contact route
	contact := r.PathPrefix("/api/contactus").Subrouter()
	contact.Use(session)
	contact.HandleFunc("", contactHandler.ContactUs).Methods(http.MethodPost)

	// Cookie auth across origins needs explicit origins with credentials,
	// not a wildcard.
	c := cors.New(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	rateLimiter := rate.NewLimiter(rate.Limit(50), 100)

	// Apply middleware in order: Recovery -> Logging -> CORS -> RateLimit
	var h http.Handler = r
	h = middleware.RateLimit(rateLimiter)(h)
	h = c.Handler(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
