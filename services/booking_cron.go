package services

import (
	"fmt"
	"log"
	"portail-adherents-backend/database"
	"portail-adherents-backend/models"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingCron gère les tâches planifiées liées aux réservations :
// clôture des séjours passés et rappels avant le début du séjour.
type BookingCron struct {
	bookingRepo *database.BookingRepository
	houseRepo   *database.HouseRepository
	eventRepo   *database.EventRepository
	pushService *PushService
	cron        *cron.Cron
}

// NewBookingCron crée une nouvelle instance
func NewBookingCron(db *mongo.Database, pushService *PushService) *BookingCron {
	return &BookingCron{
		bookingRepo: database.NewBookingRepository(db),
		houseRepo:   database.NewHouseRepository(db),
		eventRepo:   database.NewEventRepository(db),
		pushService: pushService,
		cron:        cron.New(),
	}
}

// Start démarre les tâches planifiées
func (bc *BookingCron) Start() {
	bc.cron.AddFunc("@every 1h", bc.closeExpiredBookings)
	bc.cron.AddFunc("@every 1h", bc.sendUpcomingReminders)
	bc.cron.Start()
	log.Println("✓ Cron réservations démarré (vérification toutes les heures)")
}

// Stop arrête les tâches planifiées
func (bc *BookingCron) Stop() {
	bc.cron.Stop()
}

// closeExpiredBookings passe au statut terminé les réservations confirmées
// dont la période est échue
func (bc *BookingCron) closeExpiredBookings() {
	expired, err := bc.bookingRepo.FindConfirmedExpired(time.Now())
	if err != nil {
		log.Printf("Erreur recherche réservations échues: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	log.Printf("🕒 %d réservation(s) échue(s) à clôturer", len(expired))

	for _, booking := range expired {
		if err := bc.bookingRepo.UpdateStatus(booking.ID, models.BookingTermine); err != nil {
			log.Printf("Erreur clôture réservation %s: %v", booking.ID.Hex(), err)
			continue
		}
		log.Printf("✓ Réservation %s clôturée", booking.ID.Hex())
	}
}

// sendUpcomingReminders envoie un rappel aux adhérents dont une réservation
// confirmée commence dans les prochaines 24 heures
func (bc *BookingCron) sendUpcomingReminders() {
	now := time.Now()
	upcoming, err := bc.bookingRepo.FindConfirmedStartingBetween(now, now.Add(24*time.Hour))
	if err != nil {
		log.Printf("Erreur recherche réservations à venir: %v", err)
		return
	}

	for _, booking := range upcoming {
		if booking.ReminderSent {
			continue
		}

		title := "📅 Votre réservation approche !"
		message := fmt.Sprintf("Votre séjour « %s » commence le %s.",
			bc.activityTitle(booking),
			booking.Periode.Debut.Format("02/01/2006"))

		bc.pushService.NotifyUser(booking.UserID.Hex(), title, message, map[string]string{
			"action":     "booking_reminder",
			"booking_id": booking.ID.Hex(),
		})

		// Marquer le rappel comme envoyé pour ne pas le renvoyer
		if err := bc.bookingRepo.Update(booking.ID, map[string]interface{}{
			"reminder_sent": true,
		}); err != nil {
			log.Printf("Erreur marquage rappel %s: %v", booking.ID.Hex(), err)
		}
	}
}

// activityTitle retourne le titre de l'activité liée à une réservation
func (bc *BookingCron) activityTitle(booking models.Booking) string {
	switch booking.ActivityCategory {
	case models.CategorieMaison:
		house, err := bc.houseRepo.FindByID(booking.ActivityID)
		if err == nil && house != nil {
			return house.Titre
		}
	case models.CategorieActivite:
		event, err := bc.eventRepo.FindByID(booking.ActivityID)
		if err == nil && event != nil {
			return event.Titre
		}
	}
	return "votre activité"
}
