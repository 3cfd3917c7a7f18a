package user

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/package/mongo"
)

type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type userRepository struct {
	repo mongo.Repository[User]
}

func NewUserRepository(mongoService *mongo.MongoService) UserRepository {
	return &userRepository{
		repo: mongo.NewRepository[User](mongoService, CollectionName),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	result, err := r.repo.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return result, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	result, err := r.repo.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return result, nil
}
