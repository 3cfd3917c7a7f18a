package batch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cartorio-digital/apostille-platform-server/internal/module/document"
)

func TestBatchStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   BatchStatus
		expected bool
	}{
		{StatusPending, true},
		{StatusProcessing, true},
		{StatusCompleted, true},
		{StatusRejected, true},
		{BatchStatus("UNKNOWN"), false},
		{BatchStatus(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.status.IsValid(), "status %q", tt.status)
	}
}

func TestBatchStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestBatch_ToResponse(t *testing.T) {
	batchID := primitive.NewObjectID()
	notes := "verificar página 2"
	now := time.Now()

	batch := &Batch{
		ID:        batchID,
		Name:      "Lote de certidões",
		Notes:     &notes,
		OwnerID:   "owner-1",
		Status:    StatusCompleted,
		Progress:  100,
		CreatedAt: now,
		UpdatedAt: now,
	}

	docs := []document.Document{
		*createTestDocument(batchID, 0, "Ana Costa"),
		*createTestDocument(batchID, 1, "João Silva"),
	}

	response := batch.ToResponse(docs)

	assert.Equal(t, batchID.Hex(), response.ID)
	assert.Equal(t, "Lote de certidões", response.Name)
	assert.Equal(t, &notes, response.Notes)
	assert.Equal(t, StatusCompleted, response.Status)
	assert.Equal(t, 100, response.Progress)
	assert.Len(t, response.Documents, 2)
	assert.Equal(t, "Ana Costa", response.Documents[0].RegistrantName)
	assert.Equal(t, 1, response.Documents[1].PageIndex)
}

func TestBatch_ToResponse_NoDocuments(t *testing.T) {
	batch := createTestBatch(primitive.NewObjectID(), StatusPending, 0)

	response := batch.ToResponse(nil)

	assert.NotNil(t, response.Documents)
	assert.Empty(t, response.Documents)
}
