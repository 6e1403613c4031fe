package http

import (
	"log/slog"
	"net/http"

	"github.com/bookshelf-service/cmd/api/book"
	"github.com/bookshelf-service/cmd/api/docs"
)

type DocsHandler struct {
	docs       *docs.Docs
	baseURL    string
	pathPrefix string
}

// NewDocsHandler serves the documentation UI and the rewritten OpenAPI
// document. baseURL may be empty, in which case the advertised server URL is
// inferred from each incoming request.
func NewDocsHandler(d *docs.Docs, baseURL, pathPrefix string) *DocsHandler {
	return &DocsHandler{docs: d, baseURL: baseURL, pathPrefix: pathPrefix}
}

/* Returns the OpenAPI document with its servers entry pointing at the origin this request arrived on. */
func (h *DocsHandler) swaggerConfig(w http.ResponseWriter, r *http.Request) {
	base := h.baseURL
	if base == "" {
		base = requestBaseURL(r)
	}

	body, err := h.docs.Render(base + h.pathPrefix)
	if err != nil {
		slog.ErrorContext(r.Context(), "rendering docs", "error", err, "request_id", GetRequestID(r.Context()))
		responseJSON(w, http.StatusInternalServerError, book.ErrResponseDocsUnavailable)
		return
	}

	w.Header().Set("content-type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("writing docs response", "error", err)
	}
}

/* Serves the static documentation UI page. */
func (h *DocsHandler) ui(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.docs.UI()); err != nil {
		slog.Error("writing ui response", "error", err)
	}
}

// requestBaseURL reconstructs the scheme and host the client used. A reverse
// proxy is expected to set X-Forwarded-Proto; otherwise the TLS state of the
// connection decides the scheme.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
