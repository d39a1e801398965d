package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epicircle/scrap-pickups/internal/http/middleware"
	"github.com/epicircle/scrap-pickups/internal/model"
	"github.com/epicircle/scrap-pickups/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type scheduleRequest struct {
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Address  string `json:"address"`
	MapLink  string `json:"mapLink"`
}

func (h *Handler) dashboard(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	recent, err := h.requests.Recent(c.Request.Context(), principal, service.DashboardRecent)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":   model.User{Name: principal.Name, Phone: principal.Phone},
		"recent": recent,
	})
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": model.Categories,
		"timeSlots":  model.TimeSlots,
	})
}

func (h *Handler) schedulePickup(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.requests.Schedule(c.Request.Context(), principal, service.ScheduleInput{
		Category: req.Category,
		Quantity: req.Quantity,
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
		Address:  req.Address,
		MapLink:  req.MapLink,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	requests, err := h.requests.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) approveRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	approved, err := h.requests.Approve(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, approved)
}

func (h *Handler) exportRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	result, err := h.requests.Export(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendAttachment(c, xlsxContentType, result.FileName, result.Content)
}
