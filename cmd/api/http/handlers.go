package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bookshelf-service/cmd/api/book"
	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	bookService    book.ServiceAPI
	requestTimeout time.Duration
}

func NewBookHandler(bookService book.ServiceAPI, requestTimeout time.Duration) *BookHandler {
	return &BookHandler{bookService: bookService, requestTimeout: requestTimeout}
}

type BookEntry struct {
	Title string `json:"title"`
}

type BookResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

/* Validates the entry, then stores the entry as a new book. */
func (h *BookHandler) createBook(w http.ResponseWriter, r *http.Request) {
	bookEntry, ok := decodeBookEntry(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	storedBook, err := h.bookService.CreateBook(ctx, book.CreateBookRequest{Title: bookEntry.Title})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	responseJSON(w, http.StatusCreated, bookToResponse(storedBook))
}

/* Returns a list of the stored books, in creation order. */
func (h *BookHandler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	results := []BookResponse{}
	for _, b := range books {
		results = append(results, bookToResponse(b))
	}
	responseJSON(w, http.StatusOK, results)
}

/* Returns the book with that specific ID. */
func (h *BookHandler) getBookById(w http.ResponseWriter, r *http.Request) {
	id, ok := isolateId(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	returnedBook, err := h.bookService.GetBook(ctx, id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	responseJSON(w, http.StatusOK, bookToResponse(returnedBook))
}

/* Validates the entry, then updates the asked book. */
func (h *BookHandler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := isolateId(w, r)
	if !ok {
		return
	}

	bookEntry, ok := decodeBookEntry(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	updatedBook, err := h.bookService.UpdateBook(ctx, book.UpdateBookRequest{ID: id, Title: bookEntry.Title})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	responseJSON(w, http.StatusOK, bookToResponse(updatedBook))
}

/* Removes the book with that specific ID. */
func (h *BookHandler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := isolateId(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* Reads the JSON body into a BookEntry and verifies its fields are filled. */
func decodeBookEntry(w http.ResponseWriter, r *http.Request) (BookEntry, bool) {
	var bookEntry BookEntry
	if err := json.NewDecoder(r.Body).Decode(&bookEntry); err != nil {
		errR := book.ErrResponse{
			Code:    book.ErrResponseEntryInvalidJSON.Code,
			Message: book.ErrResponseEntryInvalidJSON.Message + err.Error(),
		}
		responseJSON(w, http.StatusBadRequest, errR)
		return BookEntry{}, false
	}

	if err := book.FilledFields(bookEntry.Title); err != nil {
		responseJSON(w, http.StatusBadRequest, err)
		return BookEntry{}, false
	}

	return bookEntry, true
}

/* Isolates the ID from the URL. */
func isolateId(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		responseJSON(w, http.StatusBadRequest, book.ErrResponseIdInvalidFormat)
		return 0, false
	}
	return id, true
}

/* Maps a service layer error to a status code plus a JSON error body. */
func (h *BookHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "book handler", "error", err, "request_id", GetRequestID(r.Context()))

	switch {
	case errors.Is(err, book.ErrResponseBookNotFound):
		responseJSON(w, http.StatusNotFound, book.ErrResponseBookNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		responseJSON(w, http.StatusRequestTimeout, book.ErrResponseRequestTimeout)
	default:
		errR := book.ErrResponse{
			Code:    book.ErrResponseFromRepository.Code,
			Message: book.ErrResponseFromRepository.Message + err.Error(),
		}
		responseJSON(w, http.StatusInternalServerError, errR)
	}
}

/* Copies the fields of a book object to an http layer struct with json tags. */
func bookToResponse(b book.Book) BookResponse {
	return BookResponse{
		ID:    b.ID,
		Title: b.Title,
	}
}

/* Writes a JSON response into a http.ResponseWriter. */
func responseJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
