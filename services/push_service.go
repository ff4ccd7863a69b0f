package services

import (
	"encoding/json"
	"fmt"
	"log"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// PushService envoie des notifications push aux adhérents, via Web Push
// (VAPID) et via FCM quand Firebase est configuré.
type PushService struct {
	subscriptionRepo *database.SubscriptionRepository
	fcmTokenRepo     *database.FCMTokenRepository
	fcmService       *FCMService
	vapidPublicKey   string
	vapidPrivateKey  string
	vapidSubject     string
}

// NewPushService crée une nouvelle instance de PushService.
// fcmService peut être nil si Firebase n'est pas configuré.
func NewPushService(db *mongo.Database, fcmService *FCMService, vapidPublicKey, vapidPrivateKey, vapidSubject string) *PushService {
	return &PushService{
		subscriptionRepo: database.NewSubscriptionRepository(db),
		fcmTokenRepo:     database.NewFCMTokenRepository(db),
		fcmService:       fcmService,
		vapidPublicKey:   vapidPublicKey,
		vapidPrivateKey:  vapidPrivateKey,
		vapidSubject:     vapidSubject,
	}
}

// NotifyUser envoie une notification à tous les appareils d'un adhérent
func (s *PushService) NotifyUser(userID string, title, body string, data map[string]string) {
	subscriptions, err := s.subscriptionRepo.FindByUserID(userID)
	if err != nil {
		log.Printf("❌ Erreur lors de la récupération des abonnements de %s: %v", userID, err)
	} else {
		s.sendWebPush(subscriptions, title, body, data)
	}

	if s.fcmService == nil {
		return
	}

	tokens, err := s.fcmTokenRepo.FindByUserID(userID)
	if err != nil {
		log.Printf("❌ Erreur lors de la récupération des tokens FCM de %s: %v", userID, err)
		return
	}

	tokenStrings := make([]string, 0, len(tokens))
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	success, failed, failedTokens := s.fcmService.SendToAll(tokenStrings, title, body, data)
	if failed > 0 {
		log.Printf("⚠️  FCM: %d échecs pour %s", failed, userID)
		for _, token := range failedTokens {
			_ = s.fcmTokenRepo.Delete(token)
		}
	}
	_ = success
}

// NotifyAll envoie une notification à tous les abonnés du portail
func (s *PushService) NotifyAll(title, body string, data map[string]string) (sent int, failed int) {
	subscriptions, err := s.subscriptionRepo.FindAll()
	if err != nil {
		log.Printf("❌ Erreur lors de la récupération des abonnements: %v", err)
		return 0, 0
	}

	sent, failed = s.sendWebPush(subscriptions, title, body, data)

	if s.fcmService != nil {
		tokens, err := s.fcmTokenRepo.FindAll()
		if err != nil {
			log.Printf("❌ Erreur lors de la récupération des tokens FCM: %v", err)
			return sent, failed
		}

		tokenStrings := make([]string, 0, len(tokens))
		for _, t := range tokens {
			tokenStrings = append(tokenStrings, t.Token)
		}

		fcmSent, fcmFailed, failedTokens := s.fcmService.SendToAll(tokenStrings, title, body, data)
		for _, token := range failedTokens {
			_ = s.fcmTokenRepo.Delete(token)
		}
		sent += fcmSent
		failed += fcmFailed
	}

	return sent, failed
}

func (s *PushService) sendWebPush(subscriptions []models.PushSubscription, title, body string, data map[string]string) (sent int, failed int) {
	if len(subscriptions) == 0 {
		return 0, 0
	}

	payload := models.NotificationPayload{
		Title: title,
		Body:  body,
		Icon:  "/icon-192x192.png",
		Badge: "/badge-72x72.png",
		Data:  data,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Printf("❌ Erreur lors de la création du payload: %v", err)
		return 0, len(subscriptions)
	}

	for _, sub := range subscriptions {
		resp, err := webpush.SendNotification(payloadBytes, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.Keys.P256dh,
				Auth:   sub.Keys.Auth,
			},
		}, &webpush.Options{
			Subscriber:      s.vapidSubject,
			VAPIDPublicKey:  s.vapidPublicKey,
			VAPIDPrivateKey: s.vapidPrivateKey,
			TTL:             86400,
			Urgency:         webpush.UrgencyHigh,
		})

		if err != nil {
			log.Printf("❌ Erreur lors de l'envoi de la notification à %s: %v", sub.UserID, err)
			failed++

			// Endpoint expiré (410 Gone) : on purge l'abonnement
			if resp != nil && resp.StatusCode == 410 {
				log.Printf("🗑️  Suppression de l'abonnement invalide: %s", sub.Endpoint)
				_ = s.subscriptionRepo.Delete(sub.Endpoint)
			}
			continue
		}

		if resp.StatusCode == 200 || resp.StatusCode == 201 {
			sent++
		} else {
			log.Printf("⚠️  Réponse inattendue pour %s: %d", sub.UserID, resp.StatusCode)
			failed++
		}

		if resp != nil {
			resp.Body.Close()
		}
	}

	log.Printf("📊 Web Push: %d envoyées, %d échecs sur %d", sent, failed, len(subscriptions))
	return sent, failed
}

// BookingStatusMessage construit le texte de notification pour un changement
// de statut de réservation.
func BookingStatusMessage(activityTitle, status string) (title string, body string) {
	switch status {
	case models.BookingConfirme:
		return "Réservation confirmée", fmt.Sprintf("Votre réservation pour « %s » a été confirmée.", activityTitle)
	case models.BookingAnnule:
		return "Réservation annulée", fmt.Sprintf("Votre réservation pour « %s » a été annulée.", activityTitle)
	case models.BookingTermine:
		return "Réservation terminée", fmt.Sprintf("Votre réservation pour « %s » est terminée.", activityTitle)
	default:
		return "Réservation mise à jour", fmt.Sprintf("Votre réservation pour « %s » est passée au statut « %s ».", activityTitle, status)
	}
}
