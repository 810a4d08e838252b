package httpx

import (
	"errors"
	"io"
	"log"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Envelope wraps every JSON response body.
// "fail" is a client-caused problem, "error" a server-caused one.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: request_id=%s error=%v", RequestIDFrom(r), err)
	}
}

// JSONSuccess writes a "success" envelope. Empty message and nil data are omitted.
func JSONSuccess(w http.ResponseWriter, r *http.Request, statusCode int, message string, data any) {
	writeJSON(w, r, statusCode, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// JSONFail writes a "fail" envelope for client errors.
func JSONFail(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, r, statusCode, Envelope{Status: StatusFail, Message: message})
}

// JSONError writes an "error" envelope for server errors.
func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, r, statusCode, Envelope{Status: StatusError, Message: message})
}

// DecodeJSON reads the whole request body and decodes it into dst.
// A body cut short by http.MaxBytesReader is reported as *http.MaxBytesError.
func DecodeJSON(r *http.Request, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// IsBodyTooLarge reports whether err comes from exceeding a body size limit.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
