package middlewares

import (
	"net/http"
	"strings"

	"backend/repository"

	"github.com/gin-gonic/gin"
)

// ApplePassAuth implements the `Authorization: ApplePass <token>` scheme from
// Apple's wallet web service protocol: the token must match the pass row for the
// serial in the route.
func ApplePassAuth(passRepo *repository.PassRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "ApplePass ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(h, "ApplePass ")

		serial := c.Param("serialNumber")
		pass, err := passRepo.GetBySerial(serial)
		if err != nil || pass.AuthToken == "" || pass.AuthToken != token {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		c.Set("walletPass", pass)
		c.Next()
	}
}
