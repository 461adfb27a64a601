package controllers

import (
	"net/http"

	"backend/pkg/logger"
	"backend/pkg/resp"
	"backend/utils"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set Authorization on websocket handshakes, so auth is a
	// query token and origin checking is left to the CORS layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsController struct {
	Hub    *ws.Hub
	Secret string
}

func NewWsController(hub *ws.Hub, secret string) *WsController {
	return &WsController{Hub: hub, Secret: secret}
}

// GET /ws/orders?token= — pushes order-status events for the token's user.
func (h *WsController) Orders(c *gin.Context) {
	claims, err := utils.ParseToken(c.Query("token"), h.Secret)
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error(c, "websocket upgrade failed", err)
		return
	}
	h.Hub.Register(claims.UserID, conn)
	go func() {
		defer h.Hub.Unregister(claims.UserID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
