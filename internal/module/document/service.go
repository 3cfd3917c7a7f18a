package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/internal/services"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidDocument  = errors.New("invalid document request")
)

const pdfContentType = "application/pdf"

// ObjectStorage is the slice of the blob store this module needs.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

// TextExtractor reads the visible text of a PDF buffer.
type TextExtractor interface {
	ExtractText(pdfBytes []byte) (string, error)
}

// ContentAnalyzer recovers structured fields from extracted text.
type ContentAnalyzer interface {
	Analyze(text string) (*services.DocumentAnalysis, error)
}

type DocumentService interface {
	UploadDocument(ctx context.Context, ownerID, title string, notes *string, pdfBytes []byte) (*DocumentResponse, error)
	GetDocument(ctx context.Context, id, ownerID string) (*DocumentResponse, error)
	ListDocuments(ctx context.Context, ownerID string) ([]DocumentResponse, error)
	UpdateDocument(ctx context.Context, id, ownerID string, req *UpdateDocumentRequest) (*DocumentResponse, error)
	DeleteDocument(ctx context.Context, id, ownerID string) error
	CompleteDocument(ctx context.Context, id, ownerID string) (*DocumentResponse, error)
	UploadApostilled(ctx context.Context, id, ownerID string, pdfBytes []byte) (*DocumentResponse, error)
}

type documentService struct {
	repository DocumentRepository
	storage    ObjectStorage
	extractor  TextExtractor
	analyzer   ContentAnalyzer
	logger     zerolog.Logger
}

func NewDocumentService(
	repository DocumentRepository,
	storage ObjectStorage,
	extractor TextExtractor,
	analyzer ContentAnalyzer,
	logger zerolog.Logger,
) DocumentService {
	return &documentService{
		repository: repository,
		storage:    storage,
		extractor:  extractor,
		analyzer:   analyzer,
		logger:     logger.With().Str("service", "document").Logger(),
	}
}

// UploadDocument stores a single standalone PDF and creates its record.
// The analyzer prefills the registrant name; extraction problems on an
// individual upload degrade to the fallback name instead of failing, since
// a human reviews the record anyway.
func (s *documentService) UploadDocument(ctx context.Context, ownerID, title string, notes *string, pdfBytes []byte) (*DocumentResponse, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidDocument)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidDocument)
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("%w: file is required", ErrInvalidDocument)
	}

	registrantName := services.FallbackRegistrantName
	if text, err := s.extractor.ExtractText(pdfBytes); err != nil {
		s.logger.Warn().Err(err).Msg("text extraction failed for individual upload")
	} else if analysis, err := s.analyzer.Analyze(text); err != nil {
		s.logger.Error().Err(err).Msg("analysis invariant violation on individual upload")
	} else {
		registrantName = analysis.RegistrantName
	}

	id := primitive.NewObjectID()
	objectName := fmt.Sprintf("documents/%s.pdf", id.Hex())

	fileURL, err := s.storage.Upload(ctx, objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), pdfContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store document file: %w", err)
	}

	now := time.Now()
	doc := &Document{
		ID:             id,
		OwnerID:        ownerID,
		Title:          title,
		RegistrantName: registrantName,
		Status:         StatusPending,
		Notes:          notes,
		FileURL:        fileURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repository.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return created.ToResponse(), nil
}

func (s *documentService) GetDocument(ctx context.Context, id, ownerID string) (*DocumentResponse, error) {
	doc, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	return doc.ToResponse(), nil
}

func (s *documentService) ListDocuments(ctx context.Context, ownerID string) ([]DocumentResponse, error) {
	docs, err := s.repository.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, *docs[i].ToResponse())
	}

	return responses, nil
}

func (s *documentService) UpdateDocument(ctx context.Context, id, ownerID string, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	doc, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	updateData := bson.M{"updated_at": time.Now()}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		updateData["title"] = *req.Title
	}
	if req.RegistrantName != nil && strings.TrimSpace(*req.RegistrantName) != "" {
		updateData["registrant_name"] = *req.RegistrantName
	}
	if req.Notes != nil {
		updateData["notes"] = *req.Notes
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDocument, *req.Status)
		}
		updateData["status"] = *req.Status
	}

	updated, err := s.repository.Update(ctx, doc.ID, updateData)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	if updated == nil {
		return nil, ErrDocumentNotFound
	}

	return updated.ToResponse(), nil
}

func (s *documentService) DeleteDocument(ctx context.Context, id, ownerID string) error {
	doc, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if doc.BatchID != nil {
		return fmt.Errorf("%w: document belongs to a batch; delete the batch instead", ErrInvalidDocument)
	}

	objectName := fmt.Sprintf("documents/%s.pdf", doc.ID.Hex())
	if err := s.storage.Delete(ctx, objectName); err != nil {
		s.logger.Error().Err(err).Str("object", objectName).Msg("failed to delete stored file")
	}

	if doc.ApostilledFileURL != nil {
		apostilledName := fmt.Sprintf("apostilled/%s.pdf", doc.ID.Hex())
		if err := s.storage.Delete(ctx, apostilledName); err != nil {
			s.logger.Error().Err(err).Str("object", apostilledName).Msg("failed to delete apostilled file")
		}
	}

	if err := s.repository.Delete(ctx, doc.ID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

func (s *documentService) CompleteDocument(ctx context.Context, id, ownerID string) (*DocumentResponse, error) {
	doc, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if doc.Status == StatusCompleted {
		return doc.ToResponse(), nil
	}

	updated, err := s.repository.Update(ctx, doc.ID, bson.M{
		"status":     StatusCompleted,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete document: %w", err)
	}
	if updated == nil {
		return nil, ErrDocumentNotFound
	}

	return updated.ToResponse(), nil
}

func (s *documentService) UploadApostilled(ctx context.Context, id, ownerID string, pdfBytes []byte) (*DocumentResponse, error) {
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("%w: file is required", ErrInvalidDocument)
	}

	doc, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("apostilled/%s.pdf", doc.ID.Hex())
	fileURL, err := s.storage.Upload(ctx, objectName, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), pdfContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store apostilled file: %w", err)
	}

	updated, err := s.repository.Update(ctx, doc.ID, bson.M{
		"apostilled_file_url": fileURL,
		"status":              StatusReviewing,
		"updated_at":          time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update document with apostilled file: %w", err)
	}
	if updated == nil {
		return nil, ErrDocumentNotFound
	}

	return updated.ToResponse(), nil
}

// findOwned resolves a document and enforces ownership scoping. An empty
// ownerID skips the scope check, which is how employee access works.
func (s *documentService) findOwned(ctx context.Context, id, ownerID string) (*Document, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid document ID %q", ErrDocumentNotFound, id)
	}

	doc, err := s.repository.GetByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	if ownerID != "" && doc.OwnerID != ownerID {
		return nil, ErrDocumentNotFound
	}

	return doc, nil
}
