package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portail-adherents-backend/config"
	"portail-adherents-backend/database"
	"portail-adherents-backend/handlers"
	"portail-adherents-backend/middleware"
	"portail-adherents-backend/services"
	"portail-adherents-backend/uploads"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

func main() {
	// Charger la configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur lors du chargement de la configuration: %v", err)
	}

	// Connexion à MongoDB
	if err := database.Connect(cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("❌ Erreur de connexion à MongoDB: %v", err)
	}
	defer database.Close()

	// Stockage local des fichiers (images, logos, PDF)
	store, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("❌ Erreur d'initialisation du répertoire d'upload: %v", err)
	}
	publicFilesURL := cfg.PublicBaseURL + "/files"

	// Initialiser Firebase Cloud Messaging (optionnel)
	fcmService, err := services.NewFCMService(cfg.FirebaseCredentialsFile)
	if err != nil {
		log.Printf("⚠️  Erreur d'initialisation Firebase: %v", err)
		log.Println("⚠️  Le serveur démarre SANS notifications FCM")
		fcmService = services.NewDisabledFCMService()
	}

	// Services transverses
	slackService := services.NewSlackService(cfg.SlackWebhookURL)
	captchaService := services.NewCaptchaService(cfg.HCaptchaSecret)
	pushService := services.NewPushService(
		database.DB,
		fcmService,
		cfg.VAPIDPublicKey,
		cfg.VAPIDPrivateKey,
		cfg.VAPIDSubject,
	)

	// Tâches planifiées : clôture des séjours échus et rappels
	bookingCron := services.NewBookingCron(database.DB, pushService)
	bookingCron.Start()
	defer bookingCron.Stop()

	// Créer le routeur
	router := mux.NewRouter()

	// Middlewares globaux
	router.Use(middleware.Logging(slackService))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Monter la table de routes
	registerRoutes(router, routeHandlers{
		auth:         handlers.NewAuthHandler(database.DB, cfg.JWTSecret, captchaService),
		house:        handlers.NewHouseHandler(database.DB, store, publicFilesURL),
		event:        handlers.NewEventHandler(database.DB, store, publicFilesURL),
		hotel:        handlers.NewHotelHandler(database.DB, store, publicFilesURL),
		convention:   handlers.NewConventionHandler(database.DB, store, publicFilesURL),
		booking:      handlers.NewBookingHandler(database.DB, pushService),
		contact:      handlers.NewContactHandler(slackService),
		admin:        handlers.NewAdminHandler(database.DB),
		notification: handlers.NewNotificationHandler(database.DB, pushService, cfg.VAPIDPublicKey),
		fcm:          handlers.NewFCMHandler(database.DB, fcmService),
		health:       handlers.NewHealthHandler(cfg.Environment),
	},
		middleware.Guest(cfg.JWTSecret),
		middleware.Auth(cfg.JWTSecret),
		middleware.RequireResponsable(database.DB),
		cfg.FCMVAPIDKey,
		store.Dir(),
	)

	// Démarrer le serveur
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 Serveur démarré sur http://%s", addr)
		log.Printf("📝 Environnement: %s", cfg.Environment)
		log.Printf("🗄️  Base de données: MongoDB")
		log.Printf("📁 Fichiers: %s (servis sous /files/)", store.Dir())
		log.Println("📋 Routes disponibles:")
		log.Println("   POST   /auth/register                      - Création de compte")
		log.Println("   POST   /auth/login                         - Connexion (CAPTCHA)")
		log.Println("   GET    /auth/check-auth                    - État de session")
		log.Println("   POST   /auth/logout                        - Déconnexion")
		log.Println("   GET    /api/health                         - Health check")
		log.Println("   POST   /api/contact/send                   - Formulaire de contact")
		log.Println("")
		log.Println("   🔒 Routes authentifiées (/responsible):")
		log.Println("   GET    /responsible/house/getAll           - Liste maisons (filtres/tri/pagination)")
		log.Println("   GET    /responsible/house/get/details/{id} - Détails maison")
		log.Println("   GET    /responsible/events/getAll          - Liste activités")
		log.Println("   GET    /responsible/events/get/details/{id} - Détails activité")
		log.Println("   GET    /responsible/hotel/getAll           - Liste hôtels")
		log.Println("   GET    /responsible/convention/getAll      - Liste conventions")
		log.Println("   POST   /responsible/booking/Add            - Créer une réservation")
		log.Println("   GET    /responsible/booking/mine           - Mes réservations")
		log.Println("   GET    /responsible/booking/recap/{id}     - Récapitulatif PDF")
		log.Println("")
		log.Println("   👑 Routes responsables:")
		log.Println("   POST   /responsible/house/add              - Créer maison")
		log.Println("   PUT    /responsible/house/update/{id}      - Modifier maison")
		log.Println("   DELETE /responsible/house/delete/{id}      - Supprimer maison")
		log.Println("   POST   /responsible/events/add             - Créer activité")
		log.Println("   PUT    /responsible/events/update/{id}     - Modifier activité")
		log.Println("   DELETE /responsible/events/delete/{id}     - Supprimer activité")
		log.Println("   GET    /responsible/booking/getAll         - Toutes les réservations")
		log.Println("   PUT    /responsible/booking/statuschange/{id} - Changer le statut")
		log.Println("   GET    /responsible/users/getAll           - Liste adhérents")
		log.Println("   GET    /responsible/stats                  - Statistiques globales")
		log.Println("")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Erreur du serveur: %v", err)
		}
	}()

	// Arrêt gracieux
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Arrêt du serveur...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Erreur lors de l'arrêt du serveur: %v", err)
	}

	log.Println("✓ Serveur arrêté proprement")
}
