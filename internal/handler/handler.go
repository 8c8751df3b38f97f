// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/coachhub/catalog/internal/middleware"
	"github.com/coachhub/catalog/internal/response"
	"github.com/coachhub/catalog/internal/service"
	"github.com/coachhub/catalog/internal/validation"
)

// NotFound handles every request no route claims, method mismatches included.
// The envelope reads "success" with a null message, as existing clients expect.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Write(w, http.StatusNotFound, nil)
}

// decodePayload reads the whole body as one JSON value.
// Syntax errors and trailing data are errors. Any valid JSON value that
// is not an object decodes to a payload with no fields.
func decodePayload(r *http.Request) (validation.Payload, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if obj, ok := v.(map[string]any); ok {
		return validation.Payload(obj), nil
	}
	return validation.Payload{}, nil
}

// responder maps service outcomes onto the envelope.
type responder struct {
	logger *slog.Logger
}

func (h responder) invalidFields(w http.ResponseWriter) {
	response.Fail(w, http.StatusBadRequest, response.MessageInvalidFields)
}

func (h responder) invalidID(w http.ResponseWriter) {
	response.Fail(w, http.StatusBadRequest, response.MessageInvalidID)
}

// internalError logs err with the request id and writes the generic 500.
func (h responder) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("internal_error",
		"request_id", middleware.GetRequestID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	response.ServerError(w)
}

func (h responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateName):
		response.Fail(w, http.StatusConflict, response.MessageDuplicate)
	case errors.Is(err, service.ErrInvalidID):
		h.invalidID(w)
	default:
		h.internalError(w, r, err)
	}
}
