package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const hcaptchaVerifyURL = "https://hcaptcha.com/siteverify"

// CaptchaService vérifie les tokens hCaptcha côté serveur
type CaptchaService struct {
	secret    string
	verifyURL string
	client    *http.Client
}

type captchaVerifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
}

// NewCaptchaService crée une nouvelle instance de CaptchaService.
// Avec un secret vide, la vérification est désactivée et Verify accepte tout.
func NewCaptchaService(secret string) *CaptchaService {
	if secret == "" {
		log.Println("⚠️  HCAPTCHA_SECRET non configuré - vérification CAPTCHA désactivée")
	}

	return &CaptchaService{
		secret:    secret,
		verifyURL: hcaptchaVerifyURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Verify vérifie un token CAPTCHA auprès de hCaptcha.
// Un token est à usage unique : hCaptcha refuse toute seconde vérification.
func (s *CaptchaService) Verify(token string, remoteIP string) (bool, error) {
	if s.secret == "" {
		return true, nil // Service désactivé
	}

	if token == "" {
		return false, nil
	}

	form := url.Values{}
	form.Set("secret", s.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := s.client.PostForm(s.verifyURL, form)
	if err != nil {
		return false, fmt.Errorf("erreur lors de la vérification CAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	var result captchaVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("erreur lors du décodage de la réponse CAPTCHA: %w", err)
	}

	if !result.Success {
		log.Printf("⚠️  Vérification CAPTCHA échouée: %v", result.ErrorCodes)
	}

	return result.Success, nil
}
