package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backend/entity"
	"backend/pkg/logger"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pkpassContentType = "application/vnd.apple.pkpass"

type WalletController struct {
	Apple    *services.ApplePassService
	Google   *services.GooglePassService
	PassRepo *repository.PassRepository

	Secret      string
	DownloadTTL time.Duration
}

func NewWalletController(apple *services.ApplePassService, google *services.GooglePassService,
	passRepo *repository.PassRepository, secret string, downloadTTL time.Duration) *WalletController {
	return &WalletController{
		Apple: apple, Google: google, PassRepo: passRepo,
		Secret: secret, DownloadTTL: downloadTTL,
	}
}

// GET /wallet/google/save-url
func (h *WalletController) GoogleSaveURL(c *gin.Context) {
	url, err := h.Google.SaveURL(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"saveUrl": url})
}

// GET /wallet/apple/pass — authenticated .pkpass download.
func (h *WalletController) AppleDownload(c *gin.Context) {
	pass, err := h.Apple.GetOrIssue(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	h.servePkpass(c, pass)
}

// POST /wallet/apple/download-url — mints a short-lived link that works
// without the Authorization header, for handing off to Safari/Mail.
func (h *WalletController) AppleDownloadURL(c *gin.Context) {
	pass, err := h.Apple.GetOrIssue(utils.CurrentUserID(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	token, err := utils.SignDownloadToken(pass.Serial, h.Secret, h.DownloadTTL)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"url":       "/api/v1/wallet/apple/download?token=" + token,
		"expiresIn": int(h.DownloadTTL.Seconds()),
	})
}

// GET /wallet/apple/download?token= — unauthenticated, token is the credential.
func (h *WalletController) AppleDownloadByToken(c *gin.Context) {
	serial, err := utils.VerifyDownloadToken(c.Query("token"), h.Secret)
	if err != nil {
		resp.Unauthorized(c, "invalid or expired token")
		return
	}
	pass, err := h.PassRepo.GetBySerial(serial)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	h.servePkpass(c, pass)
}

func (h *WalletController) servePkpass(c *gin.Context, pass *entity.WalletPass) {
	data, err := h.Apple.Build(pass)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="loyalty.pkpass"`)
	c.Data(http.StatusOK, pkpassContentType, data)
}

// ----- Apple Wallet web service protocol -----
//
// These endpoints speak Apple's wire format directly, not the API envelope.
// The pass row is resolved by middlewares.ApplePassAuth.

func walletPassFrom(c *gin.Context) *entity.WalletPass {
	v, _ := c.Get("walletPass")
	pass, _ := v.(*entity.WalletPass)
	return pass
}

// POST /v1/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier/:serialNumber
func (h *WalletController) RegisterDevice(c *gin.Context) {
	pass := walletPassFrom(c)
	var req struct {
		PushToken string `json:"pushToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.Apple.RegisterDevice(pass, c.Param("deviceLibraryIdentifier"), req.PushToken); err != nil {
		logger.Error(c, "pass registration failed", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusCreated)
}

// DELETE /v1/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier/:serialNumber
func (h *WalletController) UnregisterDevice(c *gin.Context) {
	pass := walletPassFrom(c)
	if err := h.Apple.UnregisterDevice(pass, c.Param("deviceLibraryIdentifier")); err != nil {
		logger.Error(c, "pass unregistration failed", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// GET /v1/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier?passesUpdatedSince=tag
func (h *WalletController) UpdatedSerials(c *gin.Context) {
	since := time.Time{}
	if tag := c.Query("passesUpdatedSince"); tag != "" {
		if sec, err := strconv.ParseInt(tag, 10, 64); err == nil {
			since = time.Unix(sec, 0)
		}
	}
	serials, err := h.PassRepo.UpdatedSerialsForDevice(c.Param("deviceLibraryIdentifier"), since)
	if err != nil {
		logger.Error(c, "updated serials lookup failed", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(serials) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lastUpdated":   fmt.Sprintf("%d", time.Now().Unix()),
		"serialNumbers": serials,
	})
}

// GET /v1/passes/:passTypeIdentifier/:serialNumber
func (h *WalletController) LatestPass(c *gin.Context) {
	h.servePkpass(c, walletPassFrom(c))
}

// POST /v1/log — wallet clients post diagnostics here.
func (h *WalletController) Log(c *gin.Context) {
	var req struct {
		Logs []string `json:"logs"`
	}
	if err := c.ShouldBindJSON(&req); err == nil {
		for _, line := range req.Logs {
			logger.Log.Info("wallet client log", zap.String("line", line))
		}
	}
	c.Status(http.StatusOK)
}
