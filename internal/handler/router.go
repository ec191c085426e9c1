package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"brana/internal/pkg/auth/jwt"
	"brana/internal/pkg/limiter"
	"brana/internal/pkg/logx"
	"brana/internal/pkg/resp"
)

const (
	// Credential endpoints get a tight per-IP budget against brute-force
	// and registration spam. The advisory username check is interactive
	// (typed into a form) and stays outside the limiter.
	CredentialRate  = 0.5
	CredentialBurst = 5
)

// Router sets up the HTTP routing table: CORS, request logging, the rate
// limiter on credential endpoints, and the auth guard on the books subtree.
func Router(deps *AppDeps) http.Handler {
	credentialLimiter := limiter.NewIPRateLimiter(rate.Limit(CredentialRate), CredentialBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondJSON(w, r, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "Brana Book Catalog",
		})
	})

	r.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", credentialLimiter.Middleware(HandleRegister(deps)).ServeHTTP)
		auth.Post("/login", credentialLimiter.Middleware(HandleLogin(deps)).ServeHTTP)
		auth.Get("/username", HandleCheckUsername(deps))
	})

	r.Route("/books", func(books chi.Router) {
		books.Use(jwt.RequireAuth(deps.Config.JWTSecret))

		books.Get("/", HandleListBooks(deps))
		books.Post("/", HandleCreateBook(deps))
		books.Get("/{id}", HandleGetBook(deps))
		books.Put("/{id}", HandleUpdateBook(deps))
		books.Delete("/{id}", HandleDeleteBook(deps))

		books.Post("/{id}/cover", HandleUploadCover(deps))
		books.Get("/{id}/cover", HandleGetCover(deps))
	})

	return r
}
