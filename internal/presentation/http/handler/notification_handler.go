package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/application/service"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/repository"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/presentation/http/dto/response"
	"github.com/famfam123/emspramitrarjawaliadikarya/pkg/pagination"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles listing the principal's notifications, newest first. The
// unread_only query parameter filters to unread entries.
func (h *NotificationHandler) List(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.NotificationFilterParams{
		Pagination: pagination.Default(),
		UnreadOnly: c.Query("unread_only") == "true",
	}
	if err := c.ShouldBindQuery(params.Pagination); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.notificationService.List(c.Request.Context(), *principal, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Notifications retrieved successfully", result)
}

// MarkRead handles flagging one notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), *principal, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notification marked as read", notification)
}

// MarkAllRead handles flagging every unread notification as read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), *principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notifications marked as read", gin.H{"updated_count": updated})
}
