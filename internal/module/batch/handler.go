package batch

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/cartorio-digital/apostille-platform-server/internal/services"
)

type BatchHandler struct {
	service BatchService
}

func NewBatchHandler(service BatchService) *BatchHandler {
	return &BatchHandler{service: service}
}

// ownerScope returns the owner filter for the request: clients only see
// their own batches, staff roles see everything.
func ownerScope(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	if role == "EMPLOYEE" || role == "TRANSLATOR" {
		return ""
	}

	ownerID, _ := c.Locals("user_id").(string)
	return ownerID
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrBatchNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidUpload),
		errors.Is(err, services.ErrMalformedDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrSplitFailed),
		errors.Is(err, services.ErrExtractionFailed):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *BatchHandler) UploadBatch(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request",
			"message": "A PDF file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request",
			"message": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request",
			"message": "Failed to read uploaded file",
		})
	}

	var notes *string
	if value := c.FormValue("notes"); value != "" {
		notes = &value
	}

	ownerID, _ := c.Locals("user_id").(string)

	batch, err := h.service.ProcessBatchUpload(c.Context(), ownerID, c.FormValue("name"), notes, pdfBytes)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to process batch upload",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Batch processed successfully",
		"data":    batch,
	})
}

func (h *BatchHandler) ListBatches(c *fiber.Ctx) error {
	batches, err := h.service.FindAll(c.Context(), ownerScope(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to list batches",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Batches retrieved successfully",
		"data":    batches,
	})
}

func (h *BatchHandler) GetBatch(c *fiber.Ctx) error {
	batch, err := h.service.FindByID(c.Context(), c.Params("id"), ownerScope(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to get batch",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Batch retrieved successfully",
		"data":    batch,
	})
}

func (h *BatchHandler) UpdateBatch(c *fiber.Ctx) error {
	var req UpdateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	batch, err := h.service.Update(c.Context(), c.Params("id"), ownerScope(c), &req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to update batch",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Batch updated successfully",
		"data":    batch,
	})
}

func (h *BatchHandler) DeleteBatch(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id"), ownerScope(c)); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to delete batch",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Batch deleted successfully",
	})
}
