package server

import (
	"net/http"
	"testing"
	"time"

	"showlink/internal/apperr"
)

func TestParseToken_Clock(t *testing.T) {
	signedAt := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	tok, err := SignToken(userClaims, "s", 24*time.Hour, signedAt)
	if err != nil {
		t.Fatalf("SignToken() error = %v", err)
	}

	tests := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{"at signing time", signedAt, true},
		{"before expiry", signedAt.Add(23 * time.Hour), true},
		{"after expiry", signedAt.Add(25 * time.Hour), false},
		{"before not-before", signedAt.Add(-time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(tok, "s", func() time.Time { return tt.now })
			if tt.valid {
				if err != nil {
					t.Fatalf("ParseToken() error = %v", err)
				}
				if claims.PlayFabId != userClaims.PlayFabId {
					t.Errorf("PlayFabId = %q", claims.PlayFabId)
				}
				return
			}
			if apperr.StatusCode(err) != http.StatusUnauthorized {
				t.Errorf("ParseToken() error = %v, want 401", err)
			}
		})
	}
}

func TestMustBeUser_UsesServerClock(t *testing.T) {
	env := newTestEnv(t)

	// signed a day before the server clock and long expired by wall time
	tok, err := SignToken(userClaims, env.server.conf.Jwt.Secret, 48*time.Hour, testNow.Add(-24*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	w := env.do(http.MethodGet, "/api/v1/users/profile", nil, http.Header{"Authorization": {"Bearer " + tok}})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, body %s", w.Code, w.Body.String())
	}

	expired, err := SignToken(userClaims, env.server.conf.Jwt.Secret, time.Hour, testNow.Add(-2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	w = env.do(http.MethodGet, "/api/v1/users/profile", nil, http.Header{"Authorization": {"Bearer " + expired}})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expired token status = %d", w.Code)
	}
}
