package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"whaleportfolio/internal/service"
)

type PortfolioHandler struct {
	Service *service.PortfolioService
	Logger  *zap.Logger
}

func (h *PortfolioHandler) Register(r *gin.Engine) {
	g := r.Group("/portfolios")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

// @Summary Create a portfolio
// @Tags portfolios
// @Success 201 {object} service.PortfolioView
// @Router /portfolios [post]
func (h *PortfolioHandler) create(c *gin.Context) {
	var req service.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid body")
		return
	}
	view, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("create portfolio failed", zap.Error(err))
		InternalError(c)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List portfolios by user
// @Tags portfolios
// @Success 200 {array} service.PortfolioView
// @Router /portfolios [get]
func (h *PortfolioHandler) list(c *gin.Context) {
	userID := c.Query("userId")
	views, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("list portfolios failed", zap.String("user_id", userID), zap.Error(err))
		InternalError(c)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get a portfolio by id
// @Tags portfolios
// @Success 200 {object} service.PortfolioView
// @Router /portfolios/{id} [get]
func (h *PortfolioHandler) get(c *gin.Context) {
	id := c.Param("id")
	view, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("get portfolio failed", zap.String("portfolio_id", id), zap.Error(err))
		InternalError(c)
		return
	}
	if view == nil {
		NotFound(c, "the requested portfolio does not exist")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update a portfolio
// @Tags portfolios
// @Success 200 {object} service.PortfolioView
// @Router /portfolios/{id} [put]
func (h *PortfolioHandler) update(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid body")
		return
	}
	view, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.Logger.Error("update portfolio failed", zap.String("portfolio_id", id), zap.Error(err))
		InternalError(c)
		return
	}
	if view == nil {
		NotFound(c, "the requested portfolio does not exist")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Soft-delete a portfolio
// @Tags portfolios
// @Success 200 {object} map[string]string
// @Router /portfolios/{id} [delete]
func (h *PortfolioHandler) delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("delete portfolio failed", zap.String("portfolio_id", id), zap.Error(err))
		InternalError(c)
		return
	}
	if !deleted {
		NotFound(c, "the requested portfolio does not exist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "portfolio deleted"})
}
