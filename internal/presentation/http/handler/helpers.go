package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/entity"
	"github.com/famfam123/emspramitrarjawaliadikarya/internal/domain/enum"
)

// GetPrincipal extracts the authenticated principal from the Gin context.
// Returns nil when the auth middleware did not run.
func GetPrincipal(c *gin.Context) *entity.Principal {
	userIDValue, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return nil
	}

	principal := entity.Principal{ID: userID}
	if username, exists := c.Get("user_username"); exists {
		principal.Username, _ = username.(string)
	}
	if role, exists := c.Get("user_role"); exists {
		principal.Role, _ = role.(enum.Role)
	}
	return &principal
}

// ParseIDParam parses a UUID path parameter
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
