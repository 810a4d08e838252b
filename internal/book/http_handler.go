package book

import (
	"errors"
	"log"
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{bookId}", h.GetByID)
	mux.HandleFunc("PUT /books/{bookId}", h.UpdateByID)
	mux.HandleFunc("DELETE /books/{bookId}", h.DeleteByID)
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var f Filter
	if query.Has("name") {
		v := query.Get("name")
		f.Name = &v
	}
	if query.Has("reading") {
		v := query.Get("reading")
		f.Reading = &v
	}
	if query.Has("finished") {
		v := query.Get("finished")
		f.Finished = &v
	}

	books, err := h.service.List(r.Context(), f)
	if err != nil {
		h.internalError(w, r, "Internal server error", err)
		return
	}

	httpx.JSONSuccess(w, r, http.StatusOK, "", map[string]any{"books": books})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r, "Failed to add book.")
	if !ok {
		return
	}

	id, err := h.service.Create(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			httpx.JSONFail(w, r, http.StatusBadRequest, "Failed to add book. Please fill in the book name")
		case errors.Is(err, ErrReadPageExceedsPageCount):
			httpx.JSONFail(w, r, http.StatusBadRequest, "Failed to add book. readPage cannot be greater than pageCount")
		case errors.Is(err, ErrValidation):
			httpx.JSONFail(w, r, http.StatusBadRequest, "Failed to add book. Invalid request body")
		default:
			h.internalError(w, r, "Failed to add book", err)
		}
		return
	}

	httpx.JSONSuccess(w, r, http.StatusCreated, "Book added successfully", map[string]string{"bookId": id})
}

// GetByID handles GET /books/{bookId}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, r, http.StatusNotFound, "Book not found")
			return
		}
		h.internalError(w, r, "Internal server error", err)
		return
	}

	httpx.JSONSuccess(w, r, http.StatusOK, "", map[string]any{"book": b})
}

// UpdateByID handles PUT /books/{bookId}
func (h *HTTPHandler) UpdateByID(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r, "Failed to update book.")
	if !ok {
		return
	}

	err := h.service.UpdateByID(r.Context(), r.PathValue("bookId"), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName):
			httpx.JSONFail(w, r, http.StatusBadRequest, "Failed to update book. Please fill in the book name")
		case errors.Is(err, ErrReadPageExceedsPageCount):
			httpx.JSONFail(w, r, http.StatusBadRequest, "Failed to update book. readPage cannot be greater than pageCount")
		case errors.Is(err, ErrValidation):
			httpx.JSONFail(w, r, http.StatusBadRequest, "Failed to update book. Invalid request body")
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, r, http.StatusNotFound, "Failed to update book. Id not found")
		default:
			h.internalError(w, r, "Failed to update book", err)
		}
		return
	}

	httpx.JSONSuccess(w, r, http.StatusOK, "Book updated successfully", nil)
}

// DeleteByID handles DELETE /books/{bookId}
func (h *HTTPHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteByID(r.Context(), r.PathValue("bookId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONFail(w, r, http.StatusNotFound, "Failed to delete book. Id not found")
			return
		}
		h.internalError(w, r, "Failed to delete book", err)
		return
	}

	httpx.JSONSuccess(w, r, http.StatusOK, "Book deleted successfully", nil)
}

// decodeInput writes the failure response itself and reports false when the
// body cannot be used.
func decodeInput(w http.ResponseWriter, r *http.Request, prefix string) (Input, bool) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		if httpx.IsBodyTooLarge(err) {
			httpx.JSONFail(w, r, http.StatusRequestEntityTooLarge, prefix+" Request body too large")
			return Input{}, false
		}
		httpx.JSONFail(w, r, http.StatusBadRequest, prefix+" Invalid request body")
		return Input{}, false
	}
	return in, true
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	log.Printf("book handler error: request_id=%s path=%s error=%v", httpx.RequestIDFrom(r), r.URL.Path, err)
	httpx.JSONError(w, r, http.StatusInternalServerError, message)
}
