package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/common"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/customer"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

// OrganizerMiddleware admits only active customers holding organizer
// capability. It must run after RequireAuth.
type OrganizerMiddleware struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewOrganizerMiddleware(customerRepo customer.Repository, logger logger.Interface) *OrganizerMiddleware {
	return &OrganizerMiddleware{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (m *OrganizerMiddleware) RequireOrganizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, err := utils.GetCustomerID(c)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if _, err := common.LoadOrganizer(c.Request.Context(), m.customerRepo, customerID); err != nil {
			m.logger.Warnw("organizer access denied",
				"customer_id", customerID,
				"path", c.Request.URL.Path,
				"error", err,
			)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}
