package httputils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Text string `json:"text"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if err := DecodeJSON(httptest.NewRecorder(), req, &v); err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if v.Text != "hi" {
		t.Fatalf("expected hi, got %q", v.Text)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		body        string
		code        int
	}{
		{"missing content type", "", `{}`, http.StatusUnsupportedMediaType},
		{"wrong content type", "text/plain", `{}`, http.StatusUnsupportedMediaType},
		{"invalid json", "application/json", `{`, http.StatusBadRequest},
		{"too large", "application/json", `{"text":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			var v map[string]any
			err := DecodeJSON(httptest.NewRecorder(), req, &v)
			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("expected *HTTPError, got %v", err)
			}
			if httpErr.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, httpErr.Code)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &HTTPError{Code: http.StatusNotFound, Message: "nope"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["error"] != "nope" {
		t.Fatalf("unexpected body %v %v", body, err)
	}

	rec = httptest.NewRecorder()
	HandleError(rec, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}
