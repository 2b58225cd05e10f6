package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// EnableCORS wraps next with a CORS policy limited to origins.
func EnableCORS(next http.Handler, origins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
