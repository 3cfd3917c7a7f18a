package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "documents"

// DocumentStatus tracks a document through the apostille workflow.
type DocumentStatus string

const (
	StatusPending   DocumentStatus = "PENDING"
	StatusReviewing DocumentStatus = "REVIEWING"
	StatusCompleted DocumentStatus = "COMPLETED"
	StatusRejected  DocumentStatus = "REJECTED"
)

func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Document is one page-derived (or individually uploaded) unit of work.
// BatchID is nil for documents uploaded outside a batch. PageIndex is the
// zero-based position of the source page within its batch.
type Document struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	BatchID           *primitive.ObjectID `json:"batch_id,omitempty" bson:"batch_id,omitempty"`
	OwnerID           string              `json:"owner_id" bson:"owner_id"`
	Title             string              `json:"title" bson:"title"`
	RegistrantName    string              `json:"registrant_name" bson:"registrant_name"`
	Status            DocumentStatus      `json:"status" bson:"status"`
	Notes             *string             `json:"notes" bson:"notes"`
	FileURL           string              `json:"file_url" bson:"file_url"`
	ApostilledFileURL *string             `json:"apostilled_file_url" bson:"apostilled_file_url"`
	PageIndex         int                 `json:"page_index" bson:"page_index"`
	CreatedAt         time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" bson:"updated_at"`
}

type UpdateDocumentRequest struct {
	Title          *string         `json:"title,omitempty" validate:"omitempty,min=3"`
	RegistrantName *string         `json:"registrant_name,omitempty" validate:"omitempty,min=2"`
	Notes          *string         `json:"notes,omitempty"`
	Status         *DocumentStatus `json:"status,omitempty"`
}

type DocumentResponse struct {
	ID                string         `json:"id"`
	BatchID           *string        `json:"batch_id,omitempty"`
	OwnerID           string         `json:"owner_id"`
	Title             string         `json:"title"`
	RegistrantName    string         `json:"registrant_name"`
	Status            DocumentStatus `json:"status"`
	Notes             *string        `json:"notes"`
	FileURL           string         `json:"file_url"`
	ApostilledFileURL *string        `json:"apostilled_file_url"`
	PageIndex         int            `json:"page_index"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (d *Document) ToResponse() *DocumentResponse {
	response := &DocumentResponse{
		ID:                d.ID.Hex(),
		OwnerID:           d.OwnerID,
		Title:             d.Title,
		RegistrantName:    d.RegistrantName,
		Status:            d.Status,
		Notes:             d.Notes,
		FileURL:           d.FileURL,
		ApostilledFileURL: d.ApostilledFileURL,
		PageIndex:         d.PageIndex,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}

	if d.BatchID != nil {
		batchID := d.BatchID.Hex()
		response.BatchID = &batchID
	}

	return response
}
