package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/bookshelf-service/cmd/api/book"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type ServerConfig struct {
	Host        string
	Port        int
	PathPrefix  string
	CORSOrigins []string
}

// NewServer assembles the router and returns the http.Server ready to listen.
// All API routes live under config.PathPrefix; the documentation UI is served
// from the root. chi panics at registration time if two routes collide, so a
// misassembled routing table never reaches ListenAndServe.
func NewServer(config ServerConfig, logger *slog.Logger, bookHandler *BookHandler, docsHandler *DocsHandler) *http.Server {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(RequestID)
	r.Use(NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(NewCORSHandler(config.CORSOrigins))

	// Route level errors still carry the JSON error body, never a bare page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responseJSON(w, http.StatusNotFound, book.ErrResponseRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responseJSON(w, http.StatusMethodNotAllowed, book.ErrResponseMethodNotAllowed)
	})

	r.Get("/", docsHandler.ui)
	r.Get("/ping", ping)

	r.Route(config.PathPrefix, func(r chi.Router) {
		r.Get("/swagger-config", docsHandler.swaggerConfig)

		r.Route("/books", func(r chi.Router) {
			r.Get("/", bookHandler.listBooks)
			r.Post("/", bookHandler.createBook)

			r.Route("/{bookID}", func(r chi.Router) {
				r.Get("/", bookHandler.getBookById)
				r.Put("/", bookHandler.updateBook)
				r.Delete("/", bookHandler.deleteBook)
			})
		})
	})

	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return &server
}

/* Tests the http server connection. */
func ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
