package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epicircle/scrap-pickups/internal/http/middleware"
	"github.com/epicircle/scrap-pickups/internal/service"
)

type startRequest struct {
	Code string `json:"code"`
}

// Price arrives as a JSON number; json.Number keeps a missing price apart
// from zero.
type itemRequest struct {
	Name     string      `json:"name"`
	Quantity string      `json:"quantity"`
	Price    json.Number `json:"price"`
}

type suggestRequest struct {
	ItemName string `json:"itemName"`
}

func (h *Handler) listPickups(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	pickups, err := h.pickups.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pickups": pickups})
}

func (h *Handler) getPickup(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	pickup, err := h.pickups.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *Handler) acceptPickup(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	pickup, err := h.pickups.Accept(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *Handler) startPickup(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pickup, err := h.pickups.Start(c.Request.Context(), principal, c.Param("id"), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *Handler) addItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pickup, item, err := h.pickups.AddItem(c.Request.Context(), principal, c.Param("id"), service.ItemInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price.String(),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pickup": pickup, "item": item})
}

func (h *Handler) removeItem(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	pickup, err := h.pickups.RemoveItem(c.Request.Context(), principal, c.Param("id"), c.Param("itemId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *Handler) submitPickup(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	pickup, err := h.pickups.Submit(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pickup)
}

func (h *Handler) pickupReceipt(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	result, err := h.pickups.Receipt(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendAttachment(c, "application/pdf", result.FileName, result.Content)
}

func (h *Handler) suggestPrice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	price, err := h.pickups.SuggestPrice(c.Request.Context(), principal, req.ItemName)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itemName": req.ItemName, "price": price.StringFixed(2)})
}
