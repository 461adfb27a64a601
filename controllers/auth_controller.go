package controllers

import (
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc      *services.AuthService
	UserRepo *repository.UserRepository
}

func NewAuthController(svc *services.AuthService, userRepo *repository.UserRepository) *AuthController {
	return &AuthController{Svc: svc, UserRepo: userRepo}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Register(&req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": user})
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /me
func (h *AuthController) Me(c *gin.Context) {
	u, err := h.UserRepo.Get(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, u)
}

// PATCH /me
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req services.UpdateMeIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.Svc.UpdateMe(utils.CurrentUserID(c), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, u)
}

// POST /me/devices
func (h *AuthController) RegisterDevice(c *gin.Context) {
	var req struct {
		Platform  string `json:"platform" binding:"required,oneof=ios android"`
		PushToken string `json:"pushToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.UserRepo.UpsertDevice(utils.CurrentUserID(c), req.Platform, req.PushToken); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"registered": true})
}

// DELETE /me/devices
func (h *AuthController) DeleteDevice(c *gin.Context) {
	var req struct {
		PushToken string `json:"pushToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.UserRepo.DeleteDevice(utils.CurrentUserID(c), req.PushToken); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
