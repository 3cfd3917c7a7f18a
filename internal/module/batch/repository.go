package batch

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cartorio-digital/apostille-platform-server/package/mongo"
)

type BatchRepository interface {
	Create(ctx context.Context, batch *Batch) (*Batch, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Batch, error)
	List(ctx context.Context, ownerID string) ([]Batch, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*Batch, error)
	// Transition moves a non-terminal batch to the given status and
	// progress. It returns nil without error when the batch is already
	// in a terminal state, which keeps COMPLETED and REJECTED final.
	Transition(ctx context.Context, id primitive.ObjectID, status BatchStatus, progress int) (*Batch, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type batchRepository struct {
	repo mongo.Repository[Batch]
}

func NewBatchRepository(mongoService *mongo.MongoService) BatchRepository {
	return &batchRepository{
		repo: mongo.NewRepository[Batch](mongoService, CollectionName),
	}
}

func (r *batchRepository) Create(ctx context.Context, batch *Batch) (*Batch, error) {
	batch.ID = primitive.NewObjectID()

	result, err := r.repo.Create(ctx, *batch)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	return result, nil
}

func (r *batchRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Batch, error) {
	result, err := r.repo.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get batch by ID: %w", err)
	}

	return result, nil
}

func (r *batchRepository) List(ctx context.Context, ownerID string) ([]Batch, error) {
	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	results, err := r.repo.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return results, nil
}

func (r *batchRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*Batch, error) {
	result, err := r.repo.Update(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update batch: %w", err)
	}

	return result, nil
}

func (r *batchRepository) Transition(ctx context.Context, id primitive.ObjectID, status BatchStatus, progress int) (*Batch, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$nin": []BatchStatus{StatusCompleted, StatusRejected}},
	}

	update := bson.M{"$set": bson.M{
		"status":     status,
		"progress":   progress,
		"updated_at": time.Now(),
	}}

	result, err := r.repo.Update(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to transition batch: %w", err)
	}

	return result, nil
}

func (r *batchRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.repo.Delete(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}

	return nil
}
