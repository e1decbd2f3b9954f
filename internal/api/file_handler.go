package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akramas2005/backend-as-space/internal/service"
)

// FileHandler handles attachment upload, retrieval and deletion.
type FileHandler struct {
	service *service.AttachmentService
}

// NewFileHandler creates a FileHandler.
func NewFileHandler(svc *service.AttachmentService) *FileHandler {
	return &FileHandler{service: svc}
}

// Upload handles POST /api/files.
func (h *FileHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
	}
	if file.Size > service.MaxUploadSize {
		return Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file must be under 50 MB")
	}

	src, err := file.Open()
	if err != nil {
		return Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}

	var conversationID *string
	if cid := c.FormValue("conversation_id"); cid != "" {
		conversationID = &cid
	}

	att, url, err := h.service.Upload(c.Request().Context(), service.UploadInput{
		Filename:       file.Filename,
		MimeType:       file.Header.Get("Content-Type"),
		Data:           data,
		ConversationID: conversationID,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":              att.ID,
		"url":             url,
		"filename":        att.Filename,
		"mime_type":       att.MimeType,
		"conversation_id": att.ConversationID,
	})
}

// Fetch handles GET /api/files/:id, streaming the stored bytes back with
// their recorded content type and an inline disposition.
func (h *FileHandler) Fetch(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
	}

	att, err := h.service.Retrieve(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	contentType := att.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename=%q`, att.Filename))
	return c.Blob(http.StatusOK, contentType, att.FileData)
}

// Delete handles DELETE /api/files/:id.
func (h *FileHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid file ID")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true, "deleted": id})
}
