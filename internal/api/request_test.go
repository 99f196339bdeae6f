package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xtding233/starrail-backend/internal/apperr"
)

type payload struct {
	Pity int `json:"pity"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"pity":12}`))
	if err != nil || got.Pity != 12 {
		t.Fatalf("got %+v, %v", got, err)
	}

	if got, err := Decode[payload](strings.NewReader("{\"pity\":3}\n\t ")); err != nil || got.Pity != 3 {
		t.Fatalf("trailing whitespace: got %+v, %v", got, err)
	}

	cases := map[string]apperr.Kind{
		``:                   apperr.KindEmptyBody,
		`{"pity":"x"}`:       apperr.KindParseData,
		`{"unknown":1}`:      apperr.KindParseData,
		`{`:                  apperr.KindParseData,
		`{}{"pity":9}`:       apperr.KindParseData,
		`{"pity":1} garbage`: apperr.KindParseData,
		`{"pity":1}]`:        apperr.KindParseData,
	}
	for body, want := range cases {
		if _, err := Decode[payload](strings.NewReader(body)); apperr.KindOf(err) != want {
			t.Errorf("body %q: got %v, want %s", body, err, want)
		}
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.ParseData("pity must be within 0..89, got 95"), http.StatusBadRequest, "Incorrect Data\nReason: pity must be within 0..89, got 95"},
		{apperr.EmptyBody(), http.StatusBadRequest, "Incorrect Data\nReason: request body is empty"},
		{apperr.NotFound("character 9999"), http.StatusNotFound, "character 9999 not found"},
		{apperr.WrongMethod("PUT"), http.StatusMethodNotAllowed, "method PUT not allowed"},
		{apperr.Computation(apperr.ErrBadDateComparison), http.StatusInternalServerError, apperr.ErrBadDateComparison.Error()},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		WriteError(rec, httptest.NewRequest(http.MethodPost, "/x", nil), tt.err)
		if rec.Code != tt.status {
			t.Errorf("%v: status %d, want %d", tt.err, rec.Code, tt.status)
		}
		if rec.Body.String() != tt.body {
			t.Errorf("%v: body %q, want %q", tt.err, rec.Body.String(), tt.body)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
			t.Errorf("content type %q", ct)
		}
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"status":"ok"}` {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}
