// Package httpjson holds the small request/response helpers shared by all
// JSON handlers: body decoding with a size limit, response encoding, and the
// error envelope.
//
// Errors are rendered as {"detail": "<message>"} so the existing frontend,
// which reads the detail field, keeps working.
package httpjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/coursehub/internal/app/system/limits"
)

// errorBody is the error envelope for all failed requests.
type errorBody struct {
	Detail string `json:"detail"`
}

// messageBody is the envelope for operations that return only a message
// (register, login, delete).
type messageBody struct {
	Message string `json:"message"`
}

// Decode reads a JSON request body into v. The body is capped at
// limits.MaxJSONBodySize to prevent memory exhaustion.
func Decode(w http.ResponseWriter, r *http.Request, v any) error {
	return DecodeLimit(w, r, v, limits.MaxJSONBodySize)
}

// DecodeLimit is Decode with a caller-chosen body cap. Teacher-course
// payloads use limits.MaxCourseBodySize because they can embed a base64
// thumbnail.
func DecodeLimit(w http.ResponseWriter, r *http.Request, v any, max int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, max)
	return json.NewDecoder(r.Body).Decode(v)
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": …} body with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, messageBody{Message: msg})
}

// Error writes a {"detail": …} body with the given status.
func Error(w http.ResponseWriter, status int, detail string) {
	Respond(w, status, errorBody{Detail: detail})
}

// IsBodyTooLarge reports whether err came from the MaxBytesReader cap.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
