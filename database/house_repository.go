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

// HouseRepository gère les opérations sur les maisons
type HouseRepository struct {
	collection *mongo.Collection
}

// NewHouseRepository crée une nouvelle instance de HouseRepository
func NewHouseRepository(db *mongo.Database) *HouseRepository {
	return &HouseRepository{
		collection: db.Collection("houses"),
	}
}

// Create crée une nouvelle maison
func (r *HouseRepository) Create(house *models.House) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	house.ID = primitive.NewObjectID()
	house.CreatedAt = time.Now()
	house.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, house)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la maison: %w", err)
	}

	return nil
}

// FindAll retourne toutes les maisons, les plus récentes en premier
func (r *HouseRepository) FindAll() ([]models.House, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des maisons: %w", err)
	}
	defer cursor.Close(ctx)

	var houses []models.House
	if err = cursor.All(ctx, &houses); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des maisons: %w", err)
	}

	return houses, nil
}

// FindByID recherche une maison par ID
func (r *HouseRepository) FindByID(id primitive.ObjectID) (*models.House, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var house models.House
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&house)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la maison: %w", err)
	}

	return &house, nil
}

// Update met à jour une maison
func (r *HouseRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)

	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la maison: %w", err)
	}

	return nil
}

// Delete supprime une maison
func (r *HouseRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de la maison: %w", err)
	}

	return nil
}

// CountAll compte toutes les maisons
func (r *HouseRepository) CountAll() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("erreur lors du comptage des maisons: %w", err)
	}

	return count, nil
}
