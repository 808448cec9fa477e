package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/constants"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/errors"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
)

// ParseIDParam reads a UUID path parameter.
// entityName is used in error messages (e.g., "event", "ticket type").
func ParseIDParam(c *gin.Context, paramName, entityName string) (string, error) {
	value := c.Param(paramName)
	if value == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}
	if !id.IsValid(value) {
		return "", errors.NewValidationError("invalid " + entityName + " ID format")
	}
	return value, nil
}

// GetCustomerID returns the authenticated customer set by the auth middleware.
func GetCustomerID(c *gin.Context) (string, error) {
	value, exists := c.Get(constants.ContextKeyCustomerID)
	if !exists {
		return "", errors.NewUnauthorizedError("customer not authenticated")
	}
	customerID, ok := value.(string)
	if !ok || customerID == "" {
		return "", errors.NewUnauthorizedError("customer not authenticated")
	}
	return customerID, nil
}
