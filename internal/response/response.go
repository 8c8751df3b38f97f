// Package response writes the uniform JSON envelope shared by every
// catalog endpoint.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
)

// Messages returned to clients. Kept byte-for-byte compatible with the
// existing frontend.
const (
	MessageInvalidFields = "欄位未填寫正確"
	MessageDuplicate     = "資料重複"
	MessageInvalidID     = "ID錯誤"
	MessageServerError   = "伺服器錯誤"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Headers": "Content-Type, Authorization, Content-Length, X-Requested-With",
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "PATCH, POST, GET,OPTIONS,DELETE",
}

type dataEnvelope struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type messageEnvelope struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

// Status maps an HTTP status code to the envelope status field.
// Only 400, 409 and 500 are classified; every other code reads "success".
func Status(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusConflict:
		return StatusFailed
	case http.StatusInternalServerError:
		return StatusError
	default:
		return StatusSuccess
	}
}

// SetHeaders applies the permissive CORS headers and JSON content type.
func SetHeaders(h http.Header) {
	for k, v := range corsHeaders {
		h.Set(k, v)
	}
	h.Set("Content-Type", "application/json")
}

// Write encodes payload in the envelope for code.
// A 200 carries payload as data, omitted when nil. Any other code carries
// payload as message, which may be null.
func Write(w http.ResponseWriter, code int, payload any) {
	if code == http.StatusOK {
		JSON(w, code, dataEnvelope{Status: Status(code), Data: payload})
		return
	}
	JSON(w, code, messageEnvelope{Status: Status(code), Message: payload})
}

// OK writes a success envelope with data.
func OK(w http.ResponseWriter, data any) {
	Write(w, http.StatusOK, data)
}

// Fail writes a failure envelope with message.
func Fail(w http.ResponseWriter, code int, message string) {
	Write(w, code, message)
}

// ServerError writes the generic 500 envelope.
func ServerError(w http.ResponseWriter) {
	Write(w, http.StatusInternalServerError, MessageServerError)
}

// JSON writes v as-is with the shared headers.
func JSON(w http.ResponseWriter, code int, v any) {
	SetHeaders(w.Header())
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
