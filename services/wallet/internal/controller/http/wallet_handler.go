package http

import (
	"errors"
	"net/http"
	"strconv"

	"itinera/pkg/logger"
	"itinera/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	walletUseCase       usecase.WalletUseCase
	verificationUseCase usecase.VerificationUseCase
	logger              *logger.Logger
}

func NewWalletHandler(walletUseCase usecase.WalletUseCase, verificationUseCase usecase.VerificationUseCase, logger *logger.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase:       walletUseCase,
		verificationUseCase: verificationUseCase,
		logger:              logger,
	}
}

type TopUpRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (h *WalletHandler) respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInsufficientBalance),
		errors.Is(err, usecase.ErrNotAvailable),
		errors.Is(err, usecase.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrOwnItinerary):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrAccountNotFound),
		errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrAlreadyPurchased), errors.Is(err, usecase.ErrAlreadyVerified):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetWallet godoc
// @Summary      Get wallet
// @Description  Get wallet balance for the authenticated user
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Wallet
// @Router       /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletUseCase.GetWallet(c.GetString("user_id"))
	if err != nil {
		h.respondError(c, "get wallet", err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// TopUp godoc
// @Summary      Top up wallet
// @Description  Add funds to user wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TopUpRequest true "Top up amount"
// @Success      200  {object}  entity.Wallet
// @Failure      400  {object}  map[string]string
// @Router       /wallet/topup [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.walletUseCase.TopUp(c.GetString("user_id"), req.Amount)
	if err != nil {
		h.respondError(c, "top up wallet", err)
		return
	}

	c.JSON(http.StatusOK, wallet)
}

// GetTransactions godoc
// @Summary      Get transactions
// @Description  Wallet ledger, newest first
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "Limit" default(50)
// @Param        offset  query  int  false  "Offset" default(0)
// @Success      200  {array}  entity.Transaction
// @Router       /wallet/transactions [get]
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	transactions, err := h.walletUseCase.GetTransactions(c.GetString("user_id"), limit, offset)
	if err != nil {
		h.respondError(c, "get transactions", err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// PurchaseItinerary godoc
// @Summary      Buy itinerary
// @Description  Pay for a published itinerary from the wallet. The creator is credited the full price.
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        itinerary_id path string true "Itinerary ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /purchases/{itinerary_id} [post]
func (h *WalletHandler) PurchaseItinerary(c *gin.Context) {
	purchase, wallet, err := h.walletUseCase.PurchaseItinerary(c.GetString("user_id"), c.Param("itinerary_id"))
	if err != nil {
		h.respondError(c, "purchase itinerary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"purchase": purchase,
		"balance":  wallet.Balance,
	})
}

// ListPurchases godoc
// @Summary      My purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /purchases [get]
func (h *WalletHandler) ListPurchases(c *gin.Context) {
	purchases, err := h.walletUseCase.ListPurchases(c.GetString("user_id"))
	if err != nil {
		h.respondError(c, "list purchases", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": purchases, "count": len(purchases)})
}

// PurchaseStatus godoc
// @Summary      Purchase status
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        itinerary_id path string true "Itinerary ID"
// @Success      200  {object}  map[string]bool
// @Router       /purchases/{itinerary_id}/status [get]
func (h *WalletHandler) PurchaseStatus(c *gin.Context) {
	ok, err := h.walletUseCase.HasPurchased(c.GetString("user_id"), c.Param("itinerary_id"))
	if err != nil {
		h.respondError(c, "check purchase", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchased": ok})
}

// StartVerification godoc
// @Summary      Start creator verification
// @Description  Creates a payment order for the verification fee and returns what the checkout widget needs.
// @Tags         verification
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Checkout
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /verify [post]
func (h *WalletHandler) StartVerification(c *gin.Context) {
	checkout, err := h.verificationUseCase.StartVerification(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.respondError(c, "start verification", err)
		return
	}

	c.JSON(http.StatusOK, checkout)
}

// ConfirmVerification godoc
// @Summary      Confirm creator verification
// @Description  Checks the provider signature and marks the creator verified.
// @Tags         verification
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.ConfirmInput true "Checkout result"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /verify/confirm [post]
func (h *WalletHandler) ConfirmVerification(c *gin.Context) {
	var req usecase.ConfirmInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.verificationUseCase.ConfirmVerification(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.respondError(c, "confirm verification", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "verified": true, "order": order})
}
