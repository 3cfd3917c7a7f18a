package document

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	service DocumentService
}

func NewDocumentHandler(service DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// ownerScope returns the owner filter for the request: clients only see
// their own documents, staff roles see everything.
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
	case errors.Is(err, ErrDocumentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidDocument):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *DocumentHandler) UploadDocument(c *fiber.Ctx) error {
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

	doc, err := h.service.UploadDocument(c.Context(), ownerID, c.FormValue("title"), notes, pdfBytes)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to upload document",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Document uploaded successfully",
		"data":    doc,
	})
}

func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	documents, err := h.service.ListDocuments(c.Context(), ownerScope(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to list documents",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Documents retrieved successfully",
		"data":    documents,
	})
}

func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.service.GetDocument(c.Context(), c.Params("id"), ownerScope(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to get document",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Document retrieved successfully",
		"data":    doc,
	})
}

func (h *DocumentHandler) UpdateDocument(c *fiber.Ctx) error {
	var req UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Invalid request body",
			"message": err.Error(),
		})
	}

	doc, err := h.service.UpdateDocument(c.Context(), c.Params("id"), ownerScope(c), &req)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to update document",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Document updated successfully",
		"data":    doc,
	})
}

func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.service.DeleteDocument(c.Context(), c.Params("id"), ownerScope(c)); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to delete document",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Document deleted successfully",
	})
}

func (h *DocumentHandler) CompleteDocument(c *fiber.Ctx) error {
	doc, err := h.service.CompleteDocument(c.Context(), c.Params("id"), ownerScope(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to complete document",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Document completed successfully",
		"data":    doc,
	})
}

func (h *DocumentHandler) UploadApostilled(c *fiber.Ctx) error {
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

	doc, err := h.service.UploadApostilled(c.Context(), c.Params("id"), ownerScope(c), pdfBytes)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error":   "Failed to upload apostilled file",
			"message": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Apostilled file uploaded successfully",
		"data":    doc,
	})
}
