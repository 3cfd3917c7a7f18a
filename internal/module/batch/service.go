package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/internal/module/document"
	"github.com/cartorio-digital/apostille-platform-server/internal/services"
)

var (
	ErrBatchNotFound = errors.New("batch not found")
	ErrInvalidUpload = errors.New("invalid batch upload request")
)

const pdfContentType = "application/pdf"

// PageSplitter turns a multi-page PDF into ordered single-page buffers.
type PageSplitter interface {
	Split(pdfBytes []byte) ([][]byte, error)
}

// TextExtractor reads the visible text of a single-page PDF buffer.
type TextExtractor interface {
	ExtractText(pdfBytes []byte) (string, error)
}

// ContentAnalyzer recovers structured fields from extracted text.
type ContentAnalyzer interface {
	Analyze(text string) (*services.DocumentAnalysis, error)
}

// ObjectStorage is the slice of the blob store the pipeline needs.
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type BatchService interface {
	// ProcessBatchUpload runs the full ingestion pipeline for one
	// uploaded multi-page PDF: split, extract, analyze, store, record.
	ProcessBatchUpload(ctx context.Context, ownerID, name string, notes *string, pdfBytes []byte) (*BatchResponse, error)

	FindAll(ctx context.Context, ownerID string) ([]BatchResponse, error)
	FindByID(ctx context.Context, id, ownerID string) (*BatchResponse, error)
	Update(ctx context.Context, id, ownerID string, req *UpdateBatchRequest) (*BatchResponse, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type batchService struct {
	repository BatchRepository
	documents  document.DocumentRepository
	splitter   PageSplitter
	extractor  TextExtractor
	analyzer   ContentAnalyzer
	storage    ObjectStorage
	logger     zerolog.Logger
}

func NewBatchService(
	repository BatchRepository,
	documents document.DocumentRepository,
	splitter PageSplitter,
	extractor TextExtractor,
	analyzer ContentAnalyzer,
	storage ObjectStorage,
	logger zerolog.Logger,
) BatchService {
	return &batchService{
		repository: repository,
		documents:  documents,
		splitter:   splitter,
		extractor:  extractor,
		analyzer:   analyzer,
		storage:    storage,
		logger:     logger.With().Str("service", "batch").Logger(),
	}
}

func (s *batchService) ProcessBatchUpload(ctx context.Context, ownerID, name string, notes *string, pdfBytes []byte) (*BatchResponse, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidUpload)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: batch name is required", ErrInvalidUpload)
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("%w: a PDF file is required", ErrInvalidUpload)
	}

	now := time.Now()
	created, err := s.repository.Create(ctx, &Batch{
		Name:      name,
		Notes:     notes,
		OwnerID:   ownerID,
		Status:    StatusPending,
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}

	logger := s.logger.With().Str("batch_id", created.ID.Hex()).Logger()

	started, err := s.repository.Transition(ctx, created.ID, StatusProcessing, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to start batch processing: %w", err)
	}
	if started == nil {
		return nil, fmt.Errorf("batch %s reached a terminal state mid-run", created.ID.Hex())
	}

	pages, err := s.splitter.Split(pdfBytes)
	if err != nil {
		logger.Error().Err(err).Msg("failed to split uploaded PDF")
		s.reject(ctx, created.ID, logger)
		return nil, err
	}

	logger.Info().Int("page_count", len(pages)).Msg("processing batch upload")

	total := len(pages)
	createdDocs := make([]document.Document, 0, total)

	for index, pageBytes := range pages {
		pageNumber := index + 1

		doc, err := s.processPage(ctx, created, index, pageBytes)
		if err != nil {
			logger.Error().Err(err).Int("page", pageNumber).Msg("page processing failed; rejecting batch")
			s.reject(ctx, created.ID, logger)
			return nil, err
		}

		createdDocs = append(createdDocs, *doc)

		progress := int(math.Round(float64(pageNumber) / float64(total) * 100))
		progressed, err := s.repository.Transition(ctx, created.ID, StatusProcessing, progress)
		if err != nil {
			logger.Error().Err(err).Int("page", pageNumber).Msg("failed to persist batch progress")
			s.reject(ctx, created.ID, logger)
			return nil, err
		}
		if progressed == nil {
			return nil, fmt.Errorf("batch %s reached a terminal state mid-run", created.ID.Hex())
		}
	}

	final, err := s.repository.Transition(ctx, created.ID, StatusCompleted, 100)
	if err != nil {
		s.reject(ctx, created.ID, logger)
		return nil, err
	}
	if final == nil {
		return nil, fmt.Errorf("batch %s reached a terminal state mid-run", created.ID.Hex())
	}

	logger.Info().Int("documents", len(createdDocs)).Msg("batch upload completed")

	return final.ToResponse(createdDocs), nil
}

// processPage runs one page through extract, analyze, store and record.
func (s *batchService) processPage(ctx context.Context, batch *Batch, index int, pageBytes []byte) (*document.Document, error) {
	pageNumber := index + 1

	text, err := s.extractor.ExtractText(pageBytes)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNumber, err)
	}

	analysis, err := s.analyzer.Analyze(text)
	if err != nil {
		if errors.Is(err, services.ErrAnalysisInvalid) {
			s.logger.Error().Err(err).Int("page", pageNumber).Msg("analysis invariant violation")
		}
		return nil, fmt.Errorf("page %d: %w", pageNumber, err)
	}

	objectName := fmt.Sprintf("%s/%d.pdf", batch.ID.Hex(), pageNumber)
	fileURL, err := s.storage.Upload(ctx, objectName, bytes.NewReader(pageBytes), int64(len(pageBytes)), pdfContentType)
	if err != nil {
		return nil, fmt.Errorf("page %d: failed to store page file: %w", pageNumber, err)
	}

	now := time.Now()
	doc := &document.Document{
		BatchID:        &batch.ID,
		OwnerID:        batch.OwnerID,
		Title:          fmt.Sprintf("Documento %d", pageNumber),
		RegistrantName: analysis.RegistrantName,
		Status:         document.StatusPending,
		Notes:          nil,
		FileURL:        fileURL,
		PageIndex:      index,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	createdDoc, err := s.documents.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("page %d: failed to create document record: %w", pageNumber, err)
	}

	return createdDoc, nil
}

// reject moves the batch to its terminal failure state. Documents created
// before the failing page are deliberately left in place.
func (s *batchService) reject(ctx context.Context, id primitive.ObjectID, logger zerolog.Logger) {
	if _, err := s.repository.Transition(ctx, id, StatusRejected, 0); err != nil {
		logger.Error().Err(err).Msg("failed to mark batch as rejected after processing error")
	}
}

func (s *batchService) FindAll(ctx context.Context, ownerID string) ([]BatchResponse, error) {
	batches, err := s.repository.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	responses := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		docs, err := s.documents.ListByBatch(ctx, batches[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load batch documents: %w", err)
		}
		responses = append(responses, *batches[i].ToResponse(docs))
	}

	return responses, nil
}

func (s *batchService) FindByID(ctx context.Context, id, ownerID string) (*BatchResponse, error) {
	batch, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	docs, err := s.documents.ListByBatch(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch documents: %w", err)
	}

	return batch.ToResponse(docs), nil
}

func (s *batchService) Update(ctx context.Context, id, ownerID string, req *UpdateBatchRequest) (*BatchResponse, error) {
	batch, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	updateData := bson.M{"updated_at": time.Now()}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		updateData["name"] = *req.Name
	}
	if req.Notes != nil {
		updateData["notes"] = *req.Notes
	}

	updated, err := s.repository.Update(ctx, batch.ID, updateData)
	if err != nil {
		return nil, fmt.Errorf("failed to update batch: %w", err)
	}
	if updated == nil {
		return nil, ErrBatchNotFound
	}

	docs, err := s.documents.ListByBatch(ctx, updated.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load batch documents: %w", err)
	}

	return updated.ToResponse(docs), nil
}

// Delete removes the batch, its document records and their stored files.
func (s *batchService) Delete(ctx context.Context, id, ownerID string) error {
	batch, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	docs, err := s.documents.ListByBatch(ctx, batch.ID)
	if err != nil {
		return fmt.Errorf("failed to load batch documents: %w", err)
	}

	for i := range docs {
		objectName := fmt.Sprintf("%s/%d.pdf", batch.ID.Hex(), docs[i].PageIndex+1)
		if err := s.storage.Delete(ctx, objectName); err != nil {
			s.logger.Error().Err(err).Str("object", objectName).Msg("failed to delete stored page file")
		}

		if docs[i].ApostilledFileURL != nil {
			apostilledName := fmt.Sprintf("apostilled/%s.pdf", docs[i].ID.Hex())
			if err := s.storage.Delete(ctx, apostilledName); err != nil {
				s.logger.Error().Err(err).Str("object", apostilledName).Msg("failed to delete apostilled file")
			}
		}
	}

	if _, err := s.documents.DeleteByBatch(ctx, batch.ID); err != nil {
		return fmt.Errorf("failed to delete batch documents: %w", err)
	}

	if err := s.repository.Delete(ctx, batch.ID); err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}

	return nil
}

func (s *batchService) findOwned(ctx context.Context, id, ownerID string) (*Batch, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid batch ID %q", ErrBatchNotFound, id)
	}

	batch, err := s.repository.GetByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	if ownerID != "" && batch.OwnerID != ownerID {
		return nil, ErrBatchNotFound
	}

	return batch, nil
}
