package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akramas2005/backend-as-space/internal/service"
)

// MessageHandler handles message endpoints.
type MessageHandler struct {
	service *service.MessageService
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{service: svc}
}

// postMessageRequest mirrors the wire format: snake_case for the core
// fields, camelCase for the attachment pointer fields.
type postMessageRequest struct {
	Role           string  `json:"role"`
	Content        string  `json:"content"`
	ParentID       *int64  `json:"parent_id"`
	AttachmentID   *int64  `json:"attachmentId"`
	AttachmentURL  *string `json:"attachmentUrl"`
	AttachmentName *string `json:"attachmentName"`
	AttachmentType *string `json:"attachmentType"`
	ConversationID *string `json:"conversation_id"`
}

// Post handles POST /api/messages.
func (h *MessageHandler) Post(c echo.Context) error {
	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}

	msg, err := h.service.Post(c.Request().Context(), service.PostMessageInput{
		Role:           req.Role,
		Content:        req.Content,
		ParentID:       req.ParentID,
		AttachmentID:   req.AttachmentID,
		AttachmentURL:  req.AttachmentURL,
		AttachmentName: req.AttachmentName,
		AttachmentType: req.AttachmentType,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"id":              msg.ID,
		"conversation_id": msg.ConversationID,
	})
}

// List handles GET /api/messages.
func (h *MessageHandler) List(c echo.Context) error {
	// Zero means unset; the service applies the default of 200.
	limit := 0
	if l := c.QueryParam("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 0 {
			return Error(c, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	var conversationID *string
	if cid := c.QueryParam("conversation_id"); cid != "" {
		conversationID = &cid
	}

	messages, err := h.service.List(c.Request().Context(), conversationID, limit)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, messages)
}

// Delete handles DELETE /api/messages/:id.
func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return Error(c, http.StatusBadRequest, "INVALID_ID", "invalid message ID")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true, "deleted": id})
}
