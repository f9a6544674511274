package middleware

import (
	"net/http"

	"restopos/internal/transport/http/api"
)

// BodyLimit caps mutation payloads. Oversize declared lengths are
// rejected up front with the JSON envelope; chunked bodies without a
// Content-Length still hit the MaxBytesReader cap during decode.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if maxBytes > 0 && hasBody(r.Method) {
				if r.ContentLength > maxBytes {
					api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body exceeds the allowed size", GetRequestID(r.Context()))
					return
				}
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}
