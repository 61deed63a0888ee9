package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Messages   []string `json:"messages"`
	Data       any      `json:"data,omitempty"`
}

// CacheMaxAge is the lifetime of cacheable read responses.
const CacheMaxAge = "max-age=60"

// WriteJSON writes v as JSON with the given status code. Responses are not
// cacheable unless the caller set Cache-Control beforehand.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	if w.Header().Get("Cache-Control") == "" {
		NoCache(w)
	}
	w.Header().Set("Content-Type", "application/json;charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteEnvelope writes a response envelope. success follows the status code.
func WriteEnvelope(w http.ResponseWriter, code int, data any, messages ...string) {
	if messages == nil {
		messages = []string{}
	}
	WriteJSON(w, code, Envelope{
		StatusCode: code,
		Success:    code < http.StatusBadRequest,
		Messages:   messages,
		Data:       data,
	})
}

// NoCache marks the response as not cacheable.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store")
	w.Header().Set("Pragma", "no-cache")
}

// Cache marks a read response as cacheable for CacheMaxAge.
func Cache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", CacheMaxAge)
}
