// Package api holds the HTTP request and response helpers shared by the
// handler packages.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

// maxBody bounds request bodies.
const maxBody = 1 << 20

// Decode reads a single JSON value into T. Unknown fields and trailing data
// are rejected.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, apperr.EmptyBody()
	}
	dec := json.NewDecoder(io.LimitReader(body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, apperr.EmptyBody()
		}
		return payload, apperr.ParseData("%v", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return payload, apperr.ParseData("unexpected data after the request body")
	}
	return payload, nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("failed to write response")
	}
}

// WriteError maps err to its status code with a plain-text body.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	body := err.Error()
	var ae *apperr.Error
	if status == http.StatusBadRequest {
		detail := body
		if errors.As(err, &ae) && ae.Detail != "" {
			detail = ae.Detail
		}
		body = "Incorrect Data\nReason: " + detail
	}
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// MethodNotAllowed is installed on the router for known paths hit with the
// wrong verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, apperr.WrongMethod(r.Method))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, apperr.NotFound(r.URL.Path))
}

func Health(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
