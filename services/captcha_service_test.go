package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fakeVerifier simule le endpoint siteverify de hCaptcha : chaque token
// n'est accepté qu'une seule fois.
func fakeVerifier(t *testing.T, validToken string) *httptest.Server {
	t.Helper()

	used := make(map[string]bool)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() erreur = %v", err)
		}

		token := r.FormValue("response")
		success := token == validToken && !used[token]
		used[token] = true

		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{"success": success}
		if !success {
			resp["error-codes"] = []string{"invalid-or-already-seen-response"}
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestCaptchaVerifyTokenValide(t *testing.T) {
	srv := fakeVerifier(t, "bon-token")
	defer srv.Close()

	service := NewCaptchaService("secret-test")
	service.verifyURL = srv.URL

	ok, err := service.Verify("bon-token", "1.2.3.4")
	if err != nil {
		t.Fatalf("Verify() erreur = %v", err)
	}
	if !ok {
		t.Error("Verify() = false, attendu true pour un token valide")
	}
}

func TestCaptchaVerifyTokenInvalide(t *testing.T) {
	srv := fakeVerifier(t, "bon-token")
	defer srv.Close()

	service := NewCaptchaService("secret-test")
	service.verifyURL = srv.URL

	ok, err := service.Verify("mauvais-token", "")
	if err != nil {
		t.Fatalf("Verify() erreur = %v", err)
	}
	if ok {
		t.Error("Verify() = true, attendu false pour un token invalide")
	}
}

func TestCaptchaVerifyUsageUnique(t *testing.T) {
	srv := fakeVerifier(t, "bon-token")
	defer srv.Close()

	service := NewCaptchaService("secret-test")
	service.verifyURL = srv.URL

	ok, _ := service.Verify("bon-token", "")
	if !ok {
		t.Fatal("Verify() = false au premier usage, attendu true")
	}

	ok, err := service.Verify("bon-token", "")
	if err != nil {
		t.Fatalf("Verify() erreur = %v", err)
	}
	if ok {
		t.Error("Verify() = true au second usage, le token doit être à usage unique")
	}
}

func TestCaptchaVerifyTokenVide(t *testing.T) {
	service := NewCaptchaService("secret-test")

	ok, err := service.Verify("", "")
	if err != nil {
		t.Fatalf("Verify() erreur = %v", err)
	}
	if ok {
		t.Error("Verify() = true pour un token vide, attendu false")
	}
}

func TestCaptchaVerifyDesactive(t *testing.T) {
	service := NewCaptchaService("")

	ok, err := service.Verify("peu-importe", "")
	if err != nil {
		t.Fatalf("Verify() erreur = %v", err)
	}
	if !ok {
		t.Error("Verify() = false avec service désactivé, attendu true")
	}
}
