package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"showlink/internal/apperr"
)

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.Header.Get("X-Test") != "1" || r.Header.Get("Content-Type") != "application/json" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
		case "/remote":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":409,"errorMessage":"already taken"}`))
		case "/text":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := context.Background()

	var out map[string]string
	err := DoJSON(ctx, srv.Client(), http.MethodPost, srv.URL+"/ok", map[string]string{"X-Test": "1"}, map[string]string{"name": "x"}, &out)
	if err != nil || out["echo"] != "x" {
		t.Fatalf("DoJSON() = %v, %v", out, err)
	}

	tests := []struct {
		path string
		code int
		msg  string
	}{
		{"/remote", 409, "already taken"},
		{"/text", http.StatusBadGateway, "upstream down"},
		{"/missing", http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := DoJSON(ctx, srv.Client(), http.MethodGet, srv.URL+tt.path, nil, nil, nil)
			if apperr.StatusCode(err) != tt.code || err.Error() != tt.msg {
				t.Errorf("DoJSON() error = %v (%d), want %q (%d)", err, apperr.StatusCode(err), tt.msg, tt.code)
			}
		})
	}
}
