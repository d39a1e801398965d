package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epicircle/scrap-pickups/internal/http/middleware"
	"github.com/epicircle/scrap-pickups/internal/service"
)

type otpRequest struct {
	Phone  string `json:"phone" binding:"required"`
	Name   string `json:"name"`
	SignUp bool   `json:"signUp"`
}

type verifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Name  string `json:"name"`
	OTP   string `json:"otp" binding:"required"`
}

func (h *Handler) requestOTP(c *gin.Context) {
	var req otpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	hint, err := h.auth.RequestOTP(service.OTPInput{
		Phone:  req.Phone,
		Name:   req.Name,
		SignUp: req.SignUp,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": hint})
}

func (h *Handler) verifyCustomer(c *gin.Context) {
	h.verify(c, h.auth.VerifyCustomer)
}

func (h *Handler) verifyPartner(c *gin.Context) {
	h.verify(c, h.auth.VerifyPartner)
}

func (h *Handler) verify(c *gin.Context, verifyFn func(ctx context.Context, input service.VerifyInput) (*service.Session, error)) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := verifyFn(c.Request.Context(), service.VerifyInput{
		Phone: req.Phone,
		Name:  req.Name,
		OTP:   req.OTP,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) logout(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}
	if err := h.auth.Logout(c.Request.Context(), principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
