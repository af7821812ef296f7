package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"whaleportfolio/internal/service"
)

type TransactionHandler struct {
	Service *service.TransactionService
	Logger  *zap.Logger
}

func (h *TransactionHandler) Register(r *gin.Engine) {
	g := r.Group("/transactions")
	g.POST("", h.create)
	g.GET("/portfolio/:portfolioId", h.listByPortfolio)
	g.GET("/user/:userId", h.listByUser)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// @Summary Create a transaction
// @Tags transactions
// @Success 201 {object} service.TransactionView
// @Router /transactions [post]
func (h *TransactionHandler) create(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid body")
		return
	}
	view, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("create transaction failed", zap.Error(err))
		InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List transactions by portfolio
// @Tags transactions
// @Success 200 {array} service.TransactionView
// @Router /transactions/portfolio/{portfolioId} [get]
func (h *TransactionHandler) listByPortfolio(c *gin.Context) {
	portfolioID := c.Param("portfolioId")
	views, err := h.Service.ListByPortfolio(c.Request.Context(), portfolioID)
	if err != nil {
		h.Logger.Error("list transactions by portfolio failed", zap.String("portfolio_id", portfolioID), zap.Error(err))
		InternalError(c)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List transactions by user
// @Tags transactions
// @Success 200 {array} service.TransactionView
// @Router /transactions/user/{userId} [get]
func (h *TransactionHandler) listByUser(c *gin.Context) {
	userID := c.Param("userId")
	views, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("list transactions by user failed", zap.String("user_id", userID), zap.Error(err))
		InternalError(c)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get a transaction by id
// @Tags transactions
// @Success 200 {object} service.TransactionView
// @Router /transactions/{id} [get]
func (h *TransactionHandler) get(c *gin.Context) {
	id := c.Param("id")
	view, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("get transaction failed", zap.String("transaction_id", id), zap.Error(err))
		InternalError(c)
		return
	}
	if view == nil {
		NotFound(c, "the requested transaction does not exist")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update a transaction
// @Tags transactions
// @Success 200 {object} service.TransactionView
// @Router /transactions/{id} [put]
func (h *TransactionHandler) update(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid body")
		return
	}
	view, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Logger.Error("update transaction failed", zap.String("transaction_id", id), zap.Error(err))
		InternalError(c)
		return
	}
	if view == nil {
		NotFound(c, "the requested transaction does not exist")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete a transaction
// @Tags transactions
// @Success 200 {object} map[string]string
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("delete transaction failed", zap.String("transaction_id", id), zap.Error(err))
		InternalError(c)
		return
	}
	if !deleted {
		NotFound(c, "the requested transaction does not exist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}
