package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecureHeaders(t *testing.T) {
	handler := SecureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/estoque", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "SAMEORIGIN"},
		{"X-XSS-Protection", "0"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Permissions-Policy", "interest-cohort=()"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := rr.Header().Get(tt.header)
			if got != tt.want {
				t.Errorf("%s: got %q, want %q", tt.header, got, tt.want)
			}
		})
	}

	t.Run("Content-Security-Policy", func(t *testing.T) {
		csp := rr.Header().Get("Content-Security-Policy")
		if csp == "" {
			t.Fatal("Content-Security-Policy should be set")
		}
		// The public pages load Tailwind from its CDN.
		if !strings.Contains(csp, "https://cdn.tailwindcss.com") {
			t.Errorf("CSP should allow the Tailwind CDN, got %q", csp)
		}
		if !strings.Contains(csp, "img-src 'self' data: https:") {
			t.Errorf("CSP should allow https vehicle photos, got %q", csp)
		}
	})
}
