package database

import (
	"context"
	"fmt"
	"portail-adherents-backend/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository gère les opérations sur les réservations
type BookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository crée une nouvelle instance de BookingRepository
func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{
		collection: db.Collection("bookings"),
	}
}

// Create crée une nouvelle réservation
func (r *BookingRepository) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if booking.Status == "" {
		booking.Status = models.BookingEnAttente
	}

	_, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la réservation: %w", err)
	}

	return nil
}

// FindAll retourne toutes les réservations, les plus récentes en premier
func (r *BookingRepository) FindAll() ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des réservations: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des réservations: %w", err)
	}

	return bookings, nil
}

// FindByID recherche une réservation par ID
func (r *BookingRepository) FindByID(id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la réservation: %w", err)
	}

	return &booking, nil
}

// FindByUser retourne les réservations d'un utilisateur
func (r *BookingRepository) FindByUser(userID primitive.ObjectID) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "booking_period.start", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des réservations: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des réservations: %w", err)
	}

	return bookings, nil
}

// FindActiveByUser retourne les réservations actives (en attente ou
// confirmées) d'un utilisateur. La détection de chevauchement se fait
// en mémoire sur ce sous-ensemble : les périodes sont des FlexibleTime
// et la comparaison appartient au modèle.
func (r *BookingRepository) FindActiveByUser(userID primitive.ObjectID) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"user_id": userID,
		"status":  bson.M{"$in": []string{models.BookingEnAttente, models.BookingConfirme}},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des réservations actives: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des réservations: %w", err)
	}

	return bookings, nil
}

// FindActiveByActivity retourne les réservations actives portant sur
// une activité (maison ou activité) donnée
func (r *BookingRepository) FindActiveByActivity(activityID primitive.ObjectID) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"activity_id": activityID,
		"status":      bson.M{"$in": []string{models.BookingEnAttente, models.BookingConfirme}},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des réservations actives: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des réservations: %w", err)
	}

	return bookings, nil
}

// UpdateStatus change le statut d'une réservation
func (r *BookingRepository) UpdateStatus(id primitive.ObjectID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)

	if err != nil {
		return fmt.Errorf("erreur lors du changement de statut: %w", err)
	}

	return nil
}

// Update met à jour une réservation
func (r *BookingRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)

	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la réservation: %w", err)
	}

	return nil
}

// Delete supprime une réservation
func (r *BookingRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de la réservation: %w", err)
	}

	return nil
}

// CountAll compte toutes les réservations
func (r *BookingRepository) CountAll() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des réservations: %w", err)
	}

	return count, nil
}

// CountActive compte les réservations actives
func (r *BookingRepository) CountActive() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"status": bson.M{"$in": []string{models.BookingEnAttente, models.BookingConfirme}}}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des réservations: %w", err)
	}

	return count, nil
}

// FindConfirmedExpired retourne les réservations confirmées dont la
// période est échue (candidates au passage automatique en "terminé")
func (r *BookingRepository) FindConfirmedExpired(now time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":             models.BookingConfirme,
		"booking_period.end": bson.M{"$lt": now},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des réservations échues: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des réservations: %w", err)
	}

	return bookings, nil
}

// FindConfirmedStartingBetween retourne les réservations confirmées
// débutant dans la fenêtre donnée (rappels de veille)
func (r *BookingRepository) FindConfirmedStartingBetween(from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.BookingConfirme,
		"booking_period.start": bson.M{
			"$gte": from,
			"$lt":  to,
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des réservations à venir: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des réservations: %w", err)
	}

	return bookings, nil
}
