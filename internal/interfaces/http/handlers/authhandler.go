package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/identity/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/utils"
)

type LoginRequest struct {
	// Credential is the token issued by the identity provider.
	Credential string `json:"credential" validate:"required,max=8192"`
}

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid login request", "error", err, "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{Credential: req.Credential})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
