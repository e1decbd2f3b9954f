package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akramas2005/backend-as-space/internal/service"
)

// DeleteHandler handles the cross-store deletion and cleanup endpoints.
type DeleteHandler struct {
	deletion  *service.DeletionService
	retention *service.RetentionService
}

// NewDeleteHandler creates a DeleteHandler.
func NewDeleteHandler(deletion *service.DeletionService, retention *service.RetentionService) *DeleteHandler {
	return &DeleteHandler{deletion: deletion, retention: retention}
}

// DeleteFromMessage handles DELETE /api/messages/after/:id.
func (h *DeleteHandler) DeleteFromMessage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid message ID")
	}

	if err := h.deletion.DeleteFromMessage(c.Request().Context(), id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// DeleteConversation handles DELETE /api/conversations/:id.
func (h *DeleteHandler) DeleteConversation(c echo.Context) error {
	conversationID := c.Param("id")
	if conversationID == "" {
		return Error(c, http.StatusBadRequest, "MISSING_ID", "missing conversation ID")
	}

	messagesDeleted, filesDeleted, err := h.deletion.DeleteConversation(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":               true,
		"messages_deleted": messagesDeleted,
		"files_deleted":    filesDeleted,
	})
}

// DeleteAll handles DELETE /api/conversations/all.
func (h *DeleteHandler) DeleteAll(c echo.Context) error {
	if err := h.deletion.DeleteAll(c.Request().Context()); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// RunCleanup handles POST /api/cleanup.
func (h *DeleteHandler) RunCleanup(c echo.Context) error {
	if _, err := h.retention.RunCleanup(c.Request().Context()); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
