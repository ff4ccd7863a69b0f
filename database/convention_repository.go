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

// ConventionRepository gère les opérations sur les conventions
type ConventionRepository struct {
	collection *mongo.Collection
}

// NewConventionRepository crée une nouvelle instance de ConventionRepository
func NewConventionRepository(db *mongo.Database) *ConventionRepository {
	return &ConventionRepository{
		collection: db.Collection("conventions"),
	}
}

// Create crée une nouvelle convention
func (r *ConventionRepository) Create(convention *models.Convention) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	convention.ID = primitive.NewObjectID()
	convention.CreatedAt = time.Now()
	convention.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, convention)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la convention: %w", err)
	}

	return nil
}

// FindAll retourne toutes les conventions
func (r *ConventionRepository) FindAll() ([]models.Convention, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche des conventions: %w", err)
	}
	defer cursor.Close(ctx)

	var conventions []models.Convention
	if err = cursor.All(ctx, &conventions); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage des conventions: %w", err)
	}

	return conventions, nil
}

// FindByID recherche une convention par ID
func (r *ConventionRepository) FindByID(id primitive.ObjectID) (*models.Convention, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var convention models.Convention
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&convention)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche de la convention: %w", err)
	}

	return &convention, nil
}

// Update met à jour une convention
func (r *ConventionRepository) Update(id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update["updated_at"] = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
	)

	if err != nil {
		return fmt.Errorf("erreur lors de la mise à jour de la convention: %w", err)
	}

	return nil
}

// Delete supprime une convention
func (r *ConventionRepository) Delete(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("erreur lors de la suppression de la convention: %w", err)
	}

	return nil
}
