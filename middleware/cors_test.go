package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsOriginAllowed(t *testing.T) {
	origins := []string{"https://portail.association.fr", "https://www.association.fr"}

	tests := []struct {
		nom    string
		origin string
		want   bool
	}{
		{"portail autorisé", "https://portail.association.fr", true},
		{"site vitrine autorisé", "https://www.association.fr", true},
		{"origine inconnue", "https://evil.com", false},
		{"pas de correspondance par suffixe", "https://portail.association.fr.evil.com", false},
		{"origine vide", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.nom, func(t *testing.T) {
			if got := isOriginAllowed(tt.origin, origins); got != tt.want {
				t.Errorf("isOriginAllowed(%q) = %v, attendu %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestCORS_origineAutorisee(t *testing.T) {
	handler := CORS([]string{"https://portail.association.fr"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/responsible/house/getAll", nil)
	req.Header.Set("Origin", "https://portail.association.fr")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://portail.association.fr" {
		t.Errorf("Access-Control-Allow-Origin = %v", got)
	}
	if rr.Code != http.StatusOK {
		t.Errorf("Code = %v", rr.Code)
	}
}

func TestCORS_preflight(t *testing.T) {
	handler := CORS([]string{"https://portail.association.fr"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set("Origin", "https://portail.association.fr")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("Code = %v, attendu 204", rr.Code)
	}
}
