package batch

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/internal/module/document"
)

const CollectionName = "batches"

// BatchStatus tracks a batch through its processing lifecycle. COMPLETED
// and REJECTED are terminal: a batch never leaves them.
type BatchStatus string

const (
	StatusPending    BatchStatus = "PENDING"
	StatusProcessing BatchStatus = "PROCESSING"
	StatusCompleted  BatchStatus = "COMPLETED"
	StatusRejected   BatchStatus = "REJECTED"
)

func (s BatchStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

func (s BatchStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Batch is a submitted multi-page PDF tracked as one progress unit. Its
// documents live in their own collection, keyed by batch ID and ordered
// by page index.
type Batch struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Notes     *string            `json:"notes" bson:"notes"`
	OwnerID   string             `json:"owner_id" bson:"owner_id"`
	Status    BatchStatus        `json:"status" bson:"status"`
	Progress  int                `json:"progress" bson:"progress"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type UpdateBatchRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=3"`
	Notes *string `json:"notes,omitempty"`
}

type BatchResponse struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Notes     *string                     `json:"notes"`
	OwnerID   string                      `json:"owner_id"`
	Status    BatchStatus                 `json:"status"`
	Progress  int                         `json:"progress"`
	Documents []document.DocumentResponse `json:"documents"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}

func (b *Batch) ToResponse(documents []document.Document) *BatchResponse {
	responses := make([]document.DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, *documents[i].ToResponse())
	}

	return &BatchResponse{
		ID:        b.ID.Hex(),
		Name:      b.Name,
		Notes:     b.Notes,
		OwnerID:   b.OwnerID,
		Status:    b.Status,
		Progress:  b.Progress,
		Documents: responses,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
