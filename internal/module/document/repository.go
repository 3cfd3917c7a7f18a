package document

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cartorio-digital/apostille-platform-server/package/mongo"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) (*Document, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Document, error)
	List(ctx context.Context, ownerID string) ([]Document, error)
	ListByBatch(ctx context.Context, batchID primitive.ObjectID) ([]Document, error)
	Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*Document, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByBatch(ctx context.Context, batchID primitive.ObjectID) (int64, error)
}

type documentRepository struct {
	repo mongo.Repository[Document]
}

func NewDocumentRepository(mongoService *mongo.MongoService) DocumentRepository {
	return &documentRepository{
		repo: mongo.NewRepository[Document](mongoService, CollectionName),
	}
}

func (r *documentRepository) Create(ctx context.Context, doc *Document) (*Document, error) {
	doc.ID = primitive.NewObjectID()

	result, err := r.repo.Create(ctx, *doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return result, nil
}

func (r *documentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Document, error) {
	result, err := r.repo.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return result, nil
}

func (r *documentRepository) List(ctx context.Context, ownerID string) ([]Document, error) {
	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	results, err := r.repo.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return results, nil
}

// ListByBatch returns the batch's documents in source page order.
func (r *documentRepository) ListByBatch(ctx context.Context, batchID primitive.ObjectID) ([]Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "page_index", Value: 1}})

	results, err := r.repo.Find(ctx, bson.M{"batch_id": batchID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list batch documents: %w", err)
	}

	return results, nil
}

func (r *documentRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*Document, error) {
	result, err := r.repo.Update(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return result, nil
}

func (r *documentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := r.repo.Delete(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

func (r *documentRepository) DeleteByBatch(ctx context.Context, batchID primitive.ObjectID) (int64, error) {
	count, err := r.repo.DeleteMany(ctx, bson.M{"batch_id": batchID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete batch documents: %w", err)
	}

	return count, nil
}
