package document

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/internal/services"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc *Document) (*Document, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *MockDocumentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context, ownerID string) ([]Document, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Document), args.Error(1)
}

func (m *MockDocumentRepository) ListByBatch(ctx context.Context, batchID primitive.ObjectID) ([]Document, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Document), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*Document, error) {
	args := m.Called(ctx, id, updateData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteByBatch(ctx context.Context, batchID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(int64), args.Error(1)
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(pdfBytes []byte) (string, error) {
	args := m.Called(pdfBytes)
	return args.String(0), args.Error(1)
}

type MockContentAnalyzer struct {
	mock.Mock
}

func (m *MockContentAnalyzer) Analyze(text string) (*services.DocumentAnalysis, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DocumentAnalysis), args.Error(1)
}

// CreateTestDocument returns a standalone document owned by owner-1.
func CreateTestDocument() *Document {
	now := time.Now()
	return &Document{
		ID:             primitive.NewObjectID(),
		OwnerID:        "owner-1",
		Title:          "Certidão de Nascimento",
		RegistrantName: "Ana Costa",
		Status:         StatusPending,
		FileURL:        "http://storage/documents/documents/abc.pdf",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
