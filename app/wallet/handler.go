package wallet

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/agora/app/api"
)

// Handler handles HTTP requests for the wallet
type Handler struct {
	service Service
}

// NewHandler creates a new wallet handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetWallet godoc
// @Summary      Get my wallet
// @Description  Points balance, open stakes and lifetime staking aggregates
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.Response{data=WalletResponse}
// @Failure      401 {object} api.Response
// @Router       /api/v1/wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	user, ok := api.UserFromContext(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	wallet, err := h.service.GetWallet(c.Request.Context(), user)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch wallet")
		return
	}

	api.SuccessResponse(c, 200, "Wallet fetched successfully", wallet)
}
