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

// HotelRepository gère les opérations sur les hôtels partenaires
type HotelRepository struct {
	collection *mongo.Collection
}

// NewHotelRepository crée une nouvelle instance de HotelRepository
func NewHotelRepository(db *mongo.Database) *HotelRepository {
	return &HotelRepository{
		collection: db.Collection("hotels"),
	}
}

// Create crée un nouvel hôtel
func (r *HotelRepository) Create(hotel *models.Hotel) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hotel.ID = primitive.NewObjectID()
	hotel.CreatedAt = time.Now()
	hotel.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, hotel)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de l'hôtel: %w", err)
	}

	return nil
}

// FindAll retourne tous les hôtels
func (r *HotelRepository) FindAll() ([]models.Hotel, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des hôtels: %w", err)
	}
	defer cursor.Close(ctx)

	var hotels []models.Hotel
	if err = cursor.All(ctx, &hotels); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des hôtels: %w", err)
	}

	return hotels, nil
}

// FindByID recherche un hôtel par ID
func (r *HotelRepository) FindByID(id primitive.ObjectID) (*models.Hotel, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var hotel models.Hotel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&hotel)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de l'hôtel: %w", err)
	}

	return &hotel, nil
}

// Update met à jour un hôtel
func (r *HotelRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)

	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de l'hôtel: %w", err)
	}

	return nil
}

// Delete supprime un hôtel
func (r *HotelRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de l'hôtel: %w", err)
	}

	return nil
}
