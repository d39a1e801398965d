package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/epicircle/scrap-pickups/internal/http/middleware"
	"github.com/epicircle/scrap-pickups/internal/model"
	"github.com/epicircle/scrap-pickups/internal/service"
)

type Handler struct {
	requests *service.RequestService
	pickups  *service.PickupService
	auth     *service.AuthService
	log      zerolog.Logger
}

func NewHandler(
	requests *service.RequestService,
	pickups *service.PickupService,
	auth *service.AuthService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		requests: requests,
		pickups:  pickups,
		auth:     auth,
		log:      log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customer := router.Group("/api/customer")
	customer.POST("/auth/otp", h.requestOTP)
	customer.POST("/auth/verify", h.verifyCustomer)

	customerProtected := customer.Group("/")
	customerProtected.Use(authMiddleware, middleware.RequireRole(model.RoleCustomer))
	customerProtected.POST("/auth/logout", h.logout)
	customerProtected.GET("/dashboard", h.dashboard)
	customerProtected.GET("/categories", h.categories)
	customerProtected.POST("/pickups", h.schedulePickup)
	customerProtected.GET("/pickups", h.listRequests)
	customerProtected.GET("/pickups/export", h.exportRequests)
	customerProtected.POST("/pickups/:id/approve", h.approveRequest)

	partner := router.Group("/api/partner")
	partner.POST("/auth/otp", h.requestOTP)
	partner.POST("/auth/verify", h.verifyPartner)

	partnerProtected := partner.Group("/")
	partnerProtected.Use(authMiddleware, middleware.RequireRole(model.RolePartner))
	partnerProtected.POST("/auth/logout", h.logout)
	partnerProtected.GET("/pickups", h.listPickups)
	partnerProtected.GET("/pickups/:id", h.getPickup)
	partnerProtected.POST("/pickups/:id/accept", h.acceptPickup)
	partnerProtected.POST("/pickups/:id/start", h.startPickup)
	partnerProtected.POST("/pickups/:id/items", h.addItem)
	partnerProtected.DELETE("/pickups/:id/items/:itemId", h.removeItem)
	partnerProtected.POST("/pickups/:id/submit", h.submitPickup)
	partnerProtected.GET("/pickups/:id/receipt", h.pickupReceipt)
	partnerProtected.POST("/prices/suggest", h.suggestPrice)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var lifecycleErr *service.Error
	if errors.As(err, &lifecycleErr) {
		c.JSON(statusFor(lifecycleErr.Kind), gin.H{
			"error": lifecycleErr.Cause.Message,
			"code":  lifecycleErr.Cause.Code,
		})
		return
	}
	var stepErr *service.StepError
	if errors.As(err, &stepErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": stepErr.Message, "step": stepErr.Step})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrSuggestionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func sendAttachment(c *gin.Context, contentType, fileName string, content []byte) {
	fileName = strings.ReplaceAll(fileName, "\"", "")
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, contentType, content)
}
